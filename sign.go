package bignum

// Sign is the sign of an Int. It is tracked separately from the magnitude;
// Zero is used if and only if the magnitude is zero.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch {
	case s < 0:
		return "-"
	case s > 0:
		return "+"
	}
	return "0"
}

// Neg returns the opposite sign. Zero is its own opposite.
func (s Sign) Neg() Sign { return -s }

// Cmp compares two signs using the order Negative < Zero < Positive.
func (s Sign) Cmp(t Sign) int {
	switch {
	case s < t:
		return -1
	case s > t:
		return 1
	}
	return 0
}

// mul returns the sign of a product: Positive if the signs match, Negative if
// they differ, Zero if either is Zero.
func (s Sign) mul(t Sign) Sign { return s * t }

func normSign(s Sign) Sign {
	switch {
	case s < 0:
		return Negative
	case s > 0:
		return Positive
	}
	return Zero
}
