package bignum

import (
	"fmt"
	"math/big"
)

// IntFromBigInt creates an Int from a big.Int. The conversion is always exact.
func IntFromBigInt(v *big.Int) Int {
	words := v.Bits()

	var mag nat
	switch intSize {
	case 64:
		mag = make(nat, len(words))
		for i, w := range words {
			mag[i] = Word(w)
		}

	case 32:
		mag = make(nat, (len(words)+1)/2)
		for i, w := range words {
			mag[i/2] |= Word(w) << (32 * uint(i%2))
		}

	default:
		panic("bignum: unsupported bit size")
	}

	return makeInt(Sign(v.Sign()), mag.norm())
}

// IntoBigInt copies x into a big.Int, allowing you to retain and recycle
// memory.
func (x Int) IntoBigInt(b *big.Int) {
	words := b.Bits()[:0]

	switch intSize {
	case 64:
		for _, w := range x.mag {
			words = append(words, big.Word(w))
		}

	case 32:
		for _, w := range x.mag {
			words = append(words, big.Word(w&0xFFFFFFFF), big.Word(w>>32))
		}

	default:
		panic("bignum: unsupported bit size")
	}

	b.SetBits(words)
	if x.sign == Negative {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies x into it.
func (x Int) AsBigInt() *big.Int {
	var b big.Int
	x.IntoBigInt(&b)
	return &b
}

func (x Int) String() string {
	if len(x.mag) == 0 {
		return "0"
	}
	return x.AsBigInt().String()
}

func (x Int) Format(s fmt.State, c rune) {
	x.AsBigInt().Format(s, c)
}
