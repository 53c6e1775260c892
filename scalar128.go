package bignum

import (
	"fmt"
)

// U128 is an unsigned 128-bit scalar. It exists so that the 128-bit width can
// be converted to and compared with an Int like the native widths; it has no
// arithmetic of its own.
type U128 struct {
	hi, lo uint64
}

// I128 is a signed 128-bit scalar in two's complement form. Like U128 it is a
// conversion and comparison partner for Int only.
type I128 struct {
	hi, lo uint64
}

// U128FromRaw is the complement to U128.Raw(); it creates a U128 from two
// uint64s representing the hi and lo bits.
func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 { return I128{hi: hi, lo: lo} }

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func (u U128) IsZero() bool { return u == zeroU128 }
func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi, lo uint64) { return i.hi, i.lo }

func (i I128) Sign() Sign {
	if i == zeroI128 {
		return Zero
	} else if i.hi&signBit == 0 {
		return Positive
	}
	return Negative
}

// absParts splits i into its sign and the hi and lo words of its absolute
// value. MinI128 yields the magnitude 1<<127, which does not fit in an I128
// but does fit in the unsigned words returned here.
func (i I128) absParts() (sign Sign, hi, lo uint64) {
	sign = i.Sign()
	if sign != Negative {
		return sign, i.hi, i.lo
	}
	hi, lo = ^i.hi, ^i.lo+1
	if lo == 0 { // carry
		hi++
	}
	return sign, hi, lo
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// Int promotes u to an Int.
func (u U128) Int() Int { return IntFromU128(u) }

// Int promotes i to an Int.
func (i I128) Int() Int { return IntFromI128(i) }

// CmpInt compares u to x. It is always the negation of CmpU128(x, u).
func (u U128) CmpInt(x Int) int { return -CmpU128(x, u) }

// CmpInt compares i to x. It is always the negation of CmpI128(x, i).
func (i I128) CmpInt(x Int) int { return -CmpI128(x, i) }

func (u U128) String() string { return u.Int().String() }
func (i I128) String() string { return i.Int().String() }

func IntFromU128(v U128) Int {
	return makeInt(Positive, nat{v.lo, v.hi}.norm())
}

func IntFromI128(v I128) Int {
	sign, hi, lo := v.absParts()
	return makeInt(sign, nat{lo, hi}.norm())
}

// U128 returns x as a U128, or an error wrapping ErrOutOfRange if x is
// negative or needs more than 128 bits.
func (x Int) U128() (U128, error) {
	if x.sign == Negative || len(x.mag) > 2 {
		return U128{}, fmt.Errorf("bignum: %s does not fit in U128: %w", x, ErrOutOfRange)
	}
	var buf [2]Word
	copy(buf[:], x.mag)
	return U128{hi: buf[1], lo: buf[0]}, nil
}

// I128 returns x as an I128, or an error wrapping ErrOutOfRange if x is
// outside [MinI128, MaxI128].
func (x Int) I128() (I128, error) {
	if len(x.mag) > 2 {
		return I128{}, fmt.Errorf("bignum: %s does not fit in I128: %w", x, ErrOutOfRange)
	}
	var buf [2]Word
	copy(buf[:], x.mag)
	hi, lo := buf[1], buf[0]

	if x.sign != Negative {
		if hi&signBit != 0 {
			return I128{}, fmt.Errorf("bignum: %s does not fit in I128: %w", x, ErrOutOfRange)
		}
		return I128{hi: hi, lo: lo}, nil
	}

	// The largest negative magnitude is 1<<127 (MinI128).
	if hi > signBit || (hi == signBit && lo != 0) {
		return I128{}, fmt.Errorf("bignum: %s does not fit in I128: %w", x, ErrOutOfRange)
	}
	hi, lo = ^hi, ^lo+1
	if lo == 0 { // carry
		hi++
	}
	return I128{hi: hi, lo: lo}, nil
}
