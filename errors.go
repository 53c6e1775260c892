package bignum

import (
	"errors"
)

var (
	// ErrDivisionByZero is the panic value of every division or remainder
	// with a zero divisor.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrOutOfRange is wrapped by the error returned from a narrowing
	// conversion when the value does not fit in the target type.
	ErrOutOfRange = errors.New("bignum: value out of range")

	// ErrInvalidDigit is wrapped by the error returned from IntFromDigits for
	// an unusable base or a digit that is not below the base.
	ErrInvalidDigit = errors.New("bignum: invalid digit")
)
