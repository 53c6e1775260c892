package bignum

import (
	"fmt"

	"fortio.org/safecast"
)

// Scalar is the set of native fixed-width integer types an Int can be
// converted to, compared with and combined with: int, int8, int16, int32,
// int64, uint, uint8, uint16, uint32, uint64 and uintptr (and any types
// derived from them). The 128-bit widths are I128 and U128.
type Scalar interface {
	safecast.Integer
}

// absInt64 returns |v| without overflowing on math.MinInt64.
func absInt64(v int64) Word {
	if v < 0 {
		return ^Word(v) + 1
	}
	return Word(v)
}

// scalarParts splits v into a sign and an absolute value. Every Scalar fits
// in a single Word once its sign is removed; signed values are widened to
// int64 before negation so the minimum of each width is handled.
func scalarParts[T Scalar](v T) (Sign, Word) {
	switch {
	case v < 0:
		return Negative, absInt64(int64(v))
	case v == 0:
		return Zero, 0
	}
	return Positive, Word(v)
}

// IntFrom creates an Int from any native integer.
func IntFrom[T Scalar](v T) Int {
	sign, w := scalarParts(v)
	return makeInt(sign, natFromWord(w))
}

// ToScalar converts x to the native integer type T. If x does not fit in T,
// the returned error wraps ErrOutOfRange; values never wrap around.
func ToScalar[T Scalar](x Int) (out T, err error) {
	switch len(x.mag) {
	case 0:
		return 0, nil
	case 1:
	default:
		return 0, rangeError[T](x)
	}

	m := x.mag[0]
	if x.sign == Positive {
		out, err = safecast.Conv[T](m)
	} else if m <= signBit {
		// -m in two's complement; m == 1<<63 yields math.MinInt64.
		out, err = safecast.Conv[T](int64(-m))
	} else {
		err = safecast.ErrOutOfRange
	}
	if err != nil {
		return 0, rangeError[T](x)
	}
	return out, nil
}

func rangeError[T Scalar](x Int) error {
	var zero T
	return fmt.Errorf("bignum: %s does not fit in %T: %w", x, zero, ErrOutOfRange)
}

// Int64 returns x as an int64, or an error wrapping ErrOutOfRange.
func (x Int) Int64() (int64, error) { return ToScalar[int64](x) }

// Uint64 returns x as a uint64, or an error wrapping ErrOutOfRange.
func (x Int) Uint64() (uint64, error) { return ToScalar[uint64](x) }

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	_, err := x.Int64()
	return err == nil
}

// IsUint64 reports whether x can be represented as a uint64.
func (x Int) IsUint64() bool {
	return x.sign != Negative && len(x.mag) <= 1
}

func AddScalar[T Scalar](x Int, v T) Int { return x.Add(IntFrom(v)) }
func SubScalar[T Scalar](x Int, v T) Int { return x.Sub(IntFrom(v)) }

// ScalarSub returns v - x.
func ScalarSub[T Scalar](v T, x Int) Int { return IntFrom(v).Sub(x) }

func MulScalar[T Scalar](x Int, v T) Int {
	sign, w := scalarParts(v)
	if sign == Zero || x.sign == Zero {
		return Int{}
	}
	return Int{sign: x.sign.mul(sign), mag: x.mag.mulW(w)}
}

// QuoRemScalar is Int.QuoRem with a native divisor. It divides by the
// single-word magnitude of v directly rather than promoting v to an Int. If
// v == 0, QuoRemScalar panics with ErrDivisionByZero.
func QuoRemScalar[T Scalar](x Int, v T) (q, r Int) {
	sign, w := scalarParts(v)
	if sign == Zero {
		panic(ErrDivisionByZero)
	}
	qm, rw := x.mag.divW(w)
	return makeInt(x.sign.mul(sign), qm), makeInt(x.sign, natFromWord(rw))
}

func QuoScalar[T Scalar](x Int, v T) (q Int) {
	q, _ = QuoRemScalar(x, v)
	return q
}

func RemScalar[T Scalar](x Int, v T) (r Int) {
	_, r = QuoRemScalar(x, v)
	return r
}

// ScalarQuo returns v / x, truncated towards zero.
func ScalarQuo[T Scalar](v T, x Int) Int { return IntFrom(v).Quo(x) }

// ScalarRem returns v % x, with the sign of v.
func ScalarRem[T Scalar](v T, x Int) Int { return IntFrom(v).Rem(x) }

func AddAssignScalar[T Scalar](x *Int, v T) { *x = AddScalar(*x, v) }
func SubAssignScalar[T Scalar](x *Int, v T) { *x = SubScalar(*x, v) }
func MulAssignScalar[T Scalar](x *Int, v T) { *x = MulScalar(*x, v) }
func QuoAssignScalar[T Scalar](x *Int, v T) { *x = QuoScalar(*x, v) }
func RemAssignScalar[T Scalar](x *Int, v T) { *x = RemScalar(*x, v) }
