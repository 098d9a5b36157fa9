// Package radix converts numbers held as digit sequences between bases.
//
// A digit sequence is big-endian: the first element is the most significant
// digit. Conversion is done by repeated long division, so the magnitude of the
// number is unbounded and no big integer type is involved.
package radix

import (
	"errors"
	"fmt"
)

// MaxBase is the largest base Convert accepts.
const MaxBase = 1 << 16

var (
	ErrInvalidBase  = errors.New("invalid base")
	ErrInvalidDigit = errors.New("invalid digit")
)

// Convert returns the digits of the number held in digits (base from) expressed
// in base to, most significant digit first.
//
// If fixedLength is positive and the natural result is shorter, the result is
// left-padded with zero digits. A result longer than fixedLength is returned
// unchanged; callers that need an exact width must check for it.
//
// Zero converts to a single zero digit. An empty input converts to an empty
// result (before padding). The input slice is never modified.
func Convert(digits []uint, from, to uint, fixedLength int) ([]uint, error) {
	if from < 2 || from > MaxBase {
		return nil, fmt.Errorf("%w: from base %d", ErrInvalidBase, from)
	}
	if to < 2 || to > MaxBase {
		return nil, fmt.Errorf("%w: to base %d", ErrInvalidBase, to)
	}

	num := make([]uint, len(digits))
	for i, d := range digits {
		if d >= from {
			return nil, fmt.Errorf("%w: %d at position %d is not a base %d digit", ErrInvalidDigit, d, i, from)
		}
		num[i] = d
	}

	var out []uint
	for len(num) > 0 {
		// The quotient is written into num in place: index written <= index read.
		quotient := num[:0]
		var rem uint64
		for _, d := range num {
			acc := rem*uint64(from) + uint64(d)
			q := acc / uint64(to)
			rem = acc % uint64(to)
			if len(quotient) > 0 || q > 0 {
				quotient = append(quotient, uint(q))
			}
		}
		out = append(out, uint(rem))
		num = quotient
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	if fixedLength > len(out) {
		padded := make([]uint, fixedLength)
		copy(padded[fixedLength-len(out):], out)
		out = padded
	}
	if out == nil {
		out = []uint{}
	}
	return out, nil
}

// FromBytes widens a byte slice into base 256 digits.
func FromBytes(b []byte) []uint {
	digits := make([]uint, len(b))
	for i, v := range b {
		digits[i] = uint(v)
	}
	return digits
}
