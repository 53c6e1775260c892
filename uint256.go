package bignum

import (
	"fmt"

	"github.com/holiman/uint256"
)

// IntFromUint256 creates an Int from an unsigned 256-bit integer.
func IntFromUint256(v *uint256.Int) Int {
	return makeInt(Positive, nat{v[0], v[1], v[2], v[3]}.norm())
}

// Uint256 returns x as a uint256.Int, or an error wrapping ErrOutOfRange if x
// is negative or needs more than 256 bits.
func (x Int) Uint256() (*uint256.Int, error) {
	if x.sign == Negative || len(x.mag) > 4 {
		return nil, fmt.Errorf("bignum: %s does not fit in uint256: %w", x, ErrOutOfRange)
	}
	var z uint256.Int
	copy(z[:], x.mag)
	return &z, nil
}

// CmpUint256 compares x to the unsigned 256-bit integer v.
func CmpUint256(x Int, v *uint256.Int) int {
	sign := Positive
	if v.IsZero() {
		sign = Zero
	}
	buf := [4]Word(*v)
	return cmpSignMag(x, sign, nat(buf[:]).norm())
}
