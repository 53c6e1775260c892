package bignum

import (
	"math/bits"
)

// Word is a single limb of a magnitude. Magnitudes are stored least
// significant Word first.
type Word = uint64

// z1<<64 + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul64(x, y)
	var cc Word
	lo, cc = bits.Add64(lo, c, 0)
	return hi + cc, lo
}

// divWW returns the quotient and remainder of (u1<<64 + u0) / v. It requires
// u1 < v so that the quotient fits in a single Word.
//
// Hacker's Delight 9-4, divlu.
func divWW(u1, u0, v Word) (q, r Word) {
	const b = 1 << 32

	s := uint(bits.LeadingZeros64(v))
	v <<= s

	vn1 := v >> 32
	vn0 := v & 0xffffffff

	var un32, un10 Word
	if s > 0 {
		un32 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un32 = u1
		un10 = u0
	}

	un1 := un10 >> 32
	un0 := un10 & 0xffffffff

	q1 := un32 / vn1
	rhat := un32 % vn1

	for q1 >= b || q1*vn0 > (rhat<<32)|un1 {
		q1--
		rhat += vn1
		if rhat >= b {
			break
		}
	}

	un21 := (un32 << 32) + un1 - q1*v

	q0 := un21 / vn1
	rhat = un21 % vn1

	for q0 >= b || q0*vn0 > (rhat<<32)|un0 {
		q0--
		rhat += vn1
		if rhat >= b {
			break
		}
	}

	return (q1 << 32) | q0, ((un21 << 32) + un0 - q0*v) >> s
}

// The vector functions below operate on the shortest of their slice
// arguments unless stated otherwise. z may alias x or y.

// addVV sets z = x + y and returns the carry.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = bits.Sub64(x[i], y[i], c)
	}
	return c
}

// addVW sets z = x + y and returns the carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y and returns the borrow.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], c = bits.Sub64(x[i], c, 0)
	}
	return c
}

// shlVU sets z = x << s for s < 64 and returns the bits shifted out of the
// top. Requires len(z) == len(x).
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	sh := 64 - s
	w1 := x[len(z)-1]
	c = w1 >> sh
	for i := len(z) - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>sh
	}
	z[0] = w1 << s
	return c
}

// shrVU sets z = x >> s for s < 64 and returns the bits shifted out of the
// bottom, left aligned. Requires len(z) == len(x).
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	sh := 64 - s
	w1 := x[0]
	c = w1 << sh
	for i := 0; i < len(z)-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<sh
	}
	z[len(z)-1] = w1 >> s
	return c
}

// mulAddVWW sets z = x*y + r and returns the carry word.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry word.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		var cc Word
		z[i], cc = bits.Add64(z0, c, 0)
		c = z1 + cc
	}
	return c
}

// divWVW sets z = (xn<<(64*len(x)) + x) / y and returns the remainder.
// Requires xn < y and len(z) == len(x).
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}
