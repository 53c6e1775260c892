/*
Package bignum provides an arbitrary-precision signed integer (Int) built from
a Sign and a magnitude of 64-bit limbs, along with conversion, comparison and
arithmetic against every native integer width.

Int is a value type; all operations return new values. Arithmetic never wraps:
results grow to whatever size is needed to hold the exact value.

	a := IntFromLimbs(Positive, []Word{0, 1}) // 1<<64
	b := IntFrom(int8(-128))
	fmt.Println(a.Mul(b))
	// Output: -2361183241434822606848

Division truncates towards zero, and the remainder takes the sign of the
dividend, as with Go's own / and % operators:

	q, r := IntFrom(-7).QuoRem(IntFrom(2)) // q == -3, r == -1

Division by zero panics with ErrDivisionByZero.

Native integers take part through generic functions over the Scalar
constraint, so comparisons and arithmetic with an int8 or a uintptr need no
intermediate Int:

	IntFrom[T Scalar](v T) Int
	ToScalar[T Scalar](x Int) (T, error)
	CmpScalar[T Scalar](x Int, v T) int
	AddScalar, SubScalar, MulScalar, QuoScalar, RemScalar, QuoRemScalar

The 128-bit widths are covered by the I128 and U128 types, and 256-bit
unsigned values by github.com/holiman/uint256:

	IntFromI128(v I128) Int
	IntFromU128(v U128) Int
	IntFromUint256(v *uint256.Int) Int
	CmpI128, CmpU128, CmpUint256

Narrowing conversions that do not fit return an error wrapping
ErrOutOfRange.

Int supports the following formatting interfaces via math/big:

	- fmt.Formatter
	- fmt.Stringer
*/
package bignum
