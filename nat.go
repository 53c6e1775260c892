package bignum

import (
	"errors"
	"math/bits"
)

// nat is an unsigned magnitude of the form
//
//	x = x[n-1]*2^(64*(n-1)) + ... + x[1]*2^64 + x[0]
//
// A nat is normalized if it has no most significant zero words; zero is the
// empty or nil slice. Every nat returned by the functions in this file is
// normalized and freshly allocated, or is one of the operands returned
// unchanged. A nat is never written to once it has been returned, which is
// what allows Int values to share them.
type nat []Word

var errNatUnderflow = errors.New("bignum: magnitude subtraction underflow")

func natFromWord(w Word) nat {
	if w == 0 {
		return nil
	}
	return nat{w}
}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*64 + bits.Len64(x[i])
	}
	return 0
}

// cmp returns -1, 0 or 1 as x is less than, equal to or greater than y.
// Both operands must be normalized.
func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}

	i := m - 1
	for i >= 0 && x[i] == y[i] {
		i--
	}
	switch {
	case i < 0:
		return 0
	case x[i] < y[i]:
		return -1
	}
	return 1
}

func (x nat) add(y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return y.add(x)
	}
	if n == 0 {
		return x
	}

	z := make(nat, m+1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub returns x - y. The caller guarantees x >= y; a violation panics rather
// than producing a wrapped result.
func (x nat) sub(y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		panic(errNatUnderflow)
	}
	if n == 0 {
		return x
	}

	z := make(nat, m)
	c := subVV(z[:n], x[:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic(errNatUnderflow)
	}
	return z.norm()
}

// mulW returns x * y.
func (x nat) mulW(y Word) nat {
	return x.mulAddWW(y, 0)
}

// mulAddWW returns x*y + r.
func (x nat) mulAddWW(y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return natFromWord(r)
	}
	z := make(nat, m+1)
	z[m] = mulAddVWW(z[:m], x, y, r)
	return z.norm()
}

// mul returns x * y using schoolbook multiplication: each word of y is
// multiplied into the accumulator at its offset.
func (x nat) mul(y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return y.mul(x)
	}
	switch {
	case n == 0:
		return nil
	case n == 1:
		return x.mulW(y[0])
	}

	z := make(nat, m+n)
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d)
		}
	}
	return z.norm()
}

// divW returns q = x/y and r = x%y for a single Word divisor. This is the
// path taken by every division by a native scalar.
func (x nat) divW(y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic(ErrDivisionByZero)
	case y == 1:
		return x, 0
	case m == 0:
		return nil, 0
	}

	q = make(nat, m)
	r = divWVW(q, 0, x, y)
	return q.norm(), r
}

// div returns q = u/v and r = u%v such that u == v*q + r and r < v.
func (u nat) div(v nat) (q, r nat) {
	if len(v) == 0 {
		panic(ErrDivisionByZero)
	}

	if u.cmp(v) < 0 {
		return nil, u
	}

	if len(v) == 1 {
		var rw Word
		q, rw = u.divW(v[0])
		return q, natFromWord(rw)
	}

	return u.divLarge(v)
}

// divLarge implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for a
// divisor of at least two words. Requires len(u) >= len(v) >= 2.
func (u nat) divLarge(v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	// D1: normalize so the top word of the divisor has its high bit set.
	shift := uint(bits.LeadingZeros64(v[n-1]))
	vn := make(nat, n)
	shlVU(vn, v, shift)

	un := make(nat, len(u)+1)
	un[len(u)] = shlVU(un[:len(u)], u, shift)

	q = make(nat, m+1)
	qhatv := make(nat, n+1)

	vn1, vn2 := vn[n-1], vn[n-2]

	// D2..D7
	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two words of the current window.
		// un[j+n] <= vn1 holds here; equality means the estimate saturates.
		qhat := Word(_M)
		if ujn := un[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, un[j+n-1], vn1)

			// Refine against the second divisor word. Each pass lowers qhat
			// by one; after at most two passes qhat is exact or one too big.
			x1, x2 := bits.Mul64(qhat, vn2)
			ujn2 := un[j+n-2]
			for x1 > rhat || (x1 == rhat && x2 > ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break
				}
				x1, x2 = bits.Mul64(qhat, vn2)
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		c := subVV(un[j:j+n+1], un[j:j+n+1], qhatv)

		// D5, D6: the estimate was one too large; add the divisor back.
		if c != 0 {
			c = addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}

		q[j] = qhat
	}

	// D8: unnormalize the remainder.
	r = make(nat, n)
	shrVU(r, un[:n], shift)

	return q.norm(), r.norm()
}
