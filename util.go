package bignum

// Difference returns the absolute difference between a and b.
func Difference(a, b Int) Int {
	return a.Sub(b).Abs()
}

// Larger returns the larger of a and b, or a if they are equal.
func Larger(a, b Int) Int {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b, or a if they are equal.
func Smaller(a, b Int) Int {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
