package bignum

import (
	"fmt"
)

// Int is an arbitrary-precision signed integer, stored as a Sign and a
// magnitude. The zero value is 0.
//
// Int is a value type; all operations return new values and never modify
// their operands, so an Int can be shared between goroutines freely.
type Int struct {
	sign Sign
	mag  nat
}

// makeInt builds the canonical Int for a sign and a normalized magnitude.
// A zero magnitude always yields (Zero, nil) regardless of sign.
func makeInt(sign Sign, mag nat) Int {
	if len(mag) == 0 || sign == Zero {
		return Int{}
	}
	return Int{sign: normSign(sign), mag: mag}
}

// IntFromLimbs creates an Int from a sign and a little-endian sequence of
// 64-bit limbs. Leading zero limbs are ignored; if sign is Zero or the limbs
// are all zero, the result is 0. The slice is copied.
func IntFromLimbs(sign Sign, limbs []Word) Int {
	return makeInt(sign, nat(limbs).norm().clone())
}

// IntFromLimbs32 is IntFromLimbs for a little-endian sequence of 32-bit
// digits.
func IntFromLimbs32(sign Sign, digits []uint32) Int {
	mag := make(nat, (len(digits)+1)/2)
	for i, d := range digits {
		mag[i/2] |= Word(d) << (32 * uint(i%2))
	}
	return makeInt(sign, mag.norm())
}

// IntFromDigits creates an Int from a sign and a little-endian sequence of
// digits in an arbitrary base. Every digit must be less than base, and base
// must be at least 2.
func IntFromDigits(sign Sign, digits []uint32, base uint32) (Int, error) {
	if base < 2 {
		return Int{}, fmt.Errorf("bignum: base %d: %w", base, ErrInvalidDigit)
	}

	var mag nat
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d >= base {
			return Int{}, fmt.Errorf("bignum: digit %d at position %d not below base %d: %w", d, i, base, ErrInvalidDigit)
		}
		mag = mag.mulAddWW(Word(base), Word(d))
	}
	return makeInt(sign, mag), nil
}

func (x Int) Sign() Sign   { return x.sign }
func (x Int) IsZero() bool { return x.sign == Zero }

// Limbs returns a copy of the magnitude of x as little-endian 64-bit limbs.
// The result has no most significant zero limb; it is empty for 0.
func (x Int) Limbs() []Word { return x.mag.clone() }

// BitLen returns the length of the absolute value of x in bits. The bit
// length of 0 is 0.
func (x Int) BitLen() int { return x.mag.bitLen() }

func (x Int) Abs() Int {
	if x.sign == Negative {
		x.sign = Positive
	}
	return x
}

// Neg returns -x. The magnitude is shared with x.
func (x Int) Neg() Int {
	x.sign = x.sign.Neg()
	return x
}

func (x Int) Inc() Int { return x.Add(intOne) }
func (x Int) Dec() Int { return x.Sub(intOne) }

func (x Int) Add(y Int) Int {
	switch {
	case x.sign == Zero:
		return y
	case y.sign == Zero:
		return x
	case x.sign == y.sign:
		return Int{sign: x.sign, mag: x.mag.add(y.mag)}
	}

	// Signs differ: the larger magnitude decides the sign of the result.
	switch x.mag.cmp(y.mag) {
	case 0:
		return Int{}
	case 1:
		return Int{sign: x.sign, mag: x.mag.sub(y.mag)}
	default:
		return Int{sign: y.sign, mag: y.mag.sub(x.mag)}
	}
}

func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

func (x Int) Mul(y Int) Int {
	if x.sign == Zero || y.sign == Zero {
		return Int{}
	}
	return Int{sign: x.sign.mul(y.sign), mag: x.mag.mul(y.mag)}
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, QuoRem
// panics with ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The remainder takes the sign of the dividend: -7/2 is -3 remainder -1 and
// 7/-2 is -3 remainder 1.
func (x Int) QuoRem(y Int) (q, r Int) {
	if y.sign == Zero {
		panic(ErrDivisionByZero)
	}
	qm, rm := x.mag.div(y.mag)
	return makeInt(x.sign.mul(y.sign), qm), makeInt(x.sign, rm)
}

// Quo returns the quotient x/y for y != 0, truncated towards zero. If y == 0,
// Quo panics with ErrDivisionByZero.
func (x Int) Quo(y Int) (q Int) {
	q, _ = x.QuoRem(y)
	return q
}

// Rem returns the remainder x%y for y != 0, with the sign of x. If y == 0,
// Rem panics with ErrDivisionByZero.
func (x Int) Rem(y Int) (r Int) {
	_, r = x.QuoRem(y)
	return r
}

// The assign forms replace the Int pointed to by x with the result. The
// magnitude previously held by *x is not modified, so other copies of the old
// value are unaffected.

func (x *Int) AddAssign(y Int) { *x = x.Add(y) }
func (x *Int) SubAssign(y Int) { *x = x.Sub(y) }
func (x *Int) MulAssign(y Int) { *x = x.Mul(y) }
func (x *Int) QuoAssign(y Int) { *x = x.Quo(y) }
func (x *Int) RemAssign(y Int) { *x = x.Rem(y) }
