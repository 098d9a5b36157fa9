package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name        string
		digits      []uint
		from, to    uint
		fixedLength int
		want        []uint
	}{
		{"zero", []uint{0}, 10, 2, 0, []uint{0}},
		{"leading zeros dropped", []uint{0, 0, 5}, 256, 62, 0, []uint{5}},
		{"empty input", []uint{}, 256, 62, 0, []uint{}},
		{"empty input padded", nil, 256, 62, 3, []uint{0, 0, 0}},
		{"decimal to binary", []uint{1, 0}, 10, 2, 0, []uint{1, 0, 1, 0}},
		{"binary to decimal", []uint{1, 1, 1, 1, 1, 1, 1, 1}, 2, 10, 0, []uint{2, 5, 5}},
		{"byte to base62", []uint{255}, 256, 62, 0, []uint{4, 7}},
		{"two bytes to hex", []uint{0xab, 0xcd}, 256, 16, 0, []uint{0xa, 0xb, 0xc, 0xd}},
		{"padded", []uint{61}, 62, 256, 4, []uint{0, 0, 0, 61}},
		{"longer than fixed length kept", []uint{1, 0, 0}, 10, 10, 2, []uint{1, 0, 0}},
		{"same base", []uint{3, 1, 4}, 10, 10, 0, []uint{3, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.digits, tt.from, tt.to, tt.fixedLength)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{0xff, 0xff, 0xff, 0xff},
		{0x00, 0x01, 0x02, 0x03, 0x04},
		{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc},
	}

	for _, in := range inputs {
		encoded, err := Convert(FromBytes(in), 256, 62, 0)
		require.NoError(t, err)

		decoded, err := Convert(encoded, 62, 256, len(in))
		require.NoError(t, err)
		assert.Equal(t, FromBytes(in), decoded)
	}
}

func TestConvert_DoesNotModifyInput(t *testing.T) {
	in := []uint{0, 200, 17, 3}
	orig := append([]uint(nil), in...)

	_, err := Convert(in, 256, 62, 27)
	require.NoError(t, err)
	assert.Equal(t, orig, in)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name     string
		digits   []uint
		from, to uint
		wantErr  error
	}{
		{"from base too small", []uint{0}, 1, 10, ErrInvalidBase},
		{"to base too small", []uint{0}, 10, 0, ErrInvalidBase},
		{"base too large", []uint{0}, MaxBase + 1, 10, ErrInvalidBase},
		{"digit equals base", []uint{1, 62}, 62, 256, ErrInvalidDigit},
		{"digit above base", []uint{300}, 256, 62, ErrInvalidDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.digits, tt.from, tt.to, 0)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
