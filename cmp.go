package bignum

// cmpSignMag compares x to the integer with the given sign and normalized
// magnitude. A Zero sign must come with an empty magnitude.
func cmpSignMag(x Int, sign Sign, mag nat) int {
	if c := x.sign.Cmp(sign); c != 0 {
		return c
	}
	if sign == Zero {
		return 0
	}

	// Same non-zero sign: the larger magnitude is the smaller value when both
	// are negative.
	c := x.mag.cmp(mag)
	if sign == Negative {
		c = -c
	}
	return c
}

// Cmp compares x to y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int) Cmp(y Int) int {
	return cmpSignMag(x, y.sign, y.mag)
}

// CmpAbs compares the absolute values of x and y.
func (x Int) CmpAbs(y Int) int {
	return x.mag.cmp(y.mag)
}

func (x Int) Equal(y Int) bool {
	return x.sign == y.sign && x.mag.cmp(y.mag) == 0
}

func (x Int) GreaterThan(y Int) bool      { return x.Cmp(y) > 0 }
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }
func (x Int) LessThan(y Int) bool         { return x.Cmp(y) < 0 }
func (x Int) LessOrEqualTo(y Int) bool    { return x.Cmp(y) <= 0 }

// CmpScalar compares x to the native integer v. The result is identical to
// x.Cmp(IntFrom(v)) but no magnitude is allocated.
func CmpScalar[T Scalar](x Int, v T) int {
	sign, w := scalarParts(v)
	buf := [1]Word{w}
	return cmpSignMag(x, sign, nat(buf[:]).norm())
}

// ScalarCmp compares the native integer v to x. It is always the negation of
// CmpScalar(x, v).
func ScalarCmp[T Scalar](v T, x Int) int {
	return -CmpScalar(x, v)
}

func EqualScalar[T Scalar](x Int, v T) bool {
	return CmpScalar(x, v) == 0
}

// CmpI128 compares x to the signed 128-bit integer v.
func CmpI128(x Int, v I128) int {
	sign, hi, lo := v.absParts()
	buf := [2]Word{lo, hi}
	return cmpSignMag(x, sign, nat(buf[:]).norm())
}

// CmpU128 compares x to the unsigned 128-bit integer v.
func CmpU128(x Int, v U128) int {
	sign := Positive
	if v.IsZero() {
		sign = Zero
	}
	buf := [2]Word{v.lo, v.hi}
	return cmpSignMag(x, sign, nat(buf[:]).norm())
}
