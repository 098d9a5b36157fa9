package ksuid

import (
	"fmt"
	"strings"

	"github.com/sjatkinson/ksuid/internal/radix"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// encodeBase62 writes src as a base 62 number of at least width characters.
func encodeBase62(src []byte, width int) string {
	digits, err := radix.Convert(radix.FromBytes(src), 256, 62, width)
	if err != nil {
		// Bytes are always valid base 256 digits.
		panic(fmt.Sprintf("ksuid: base62 encode: %v", err))
	}

	var sb strings.Builder
	sb.Grow(width)
	for i := len(digits); i < width; i++ {
		sb.WriteByte('0')
	}
	for _, d := range digits {
		sb.WriteByte(base62Alphabet[d])
	}
	return sb.String()
}

// decodeBase62 reads s as a base 62 number and returns its bytes, left-padded
// to at least width bytes. A width of 0 returns the natural representation.
func decodeBase62(s string, width int) ([]byte, error) {
	digits := make([]uint, len(s))
	for i := 0; i < len(s); i++ {
		d, err := base62Value(s[i])
		if err != nil {
			return nil, fmt.Errorf("%w at position %d", err, i)
		}
		digits[i] = d
	}

	out, err := radix.Convert(digits, 62, 256, width)
	if err != nil {
		return nil, err
	}

	b := make([]byte, len(out))
	for i, d := range out {
		b[i] = byte(d)
	}
	return b, nil
}

func base62Value(c byte) (uint, error) {
	switch {
	case c >= '0' && c <= '9':
		return uint(c - '0'), nil
	case c >= 'A' && c <= 'Z':
		return uint(c-'A') + 10, nil
	case c >= 'a' && c <= 'z':
		return uint(c-'a') + 36, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
	}
}
