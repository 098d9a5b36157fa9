// Package ksuid implements K-Sortable Unique Identifiers.
//
// # Format
//
// A KSUID is 20 bytes: a big-endian uint32 timestamp counting seconds since
// a custom epoch (2014-05-13T16:53:20Z), followed by a 16 byte random payload.
// Its text form is the 20 bytes read as one big-endian number and written in
// base 62 (0-9A-Za-z), left-padded with '0' to 27 characters.
//
// Both forms sort in timestamp order, so byte-wise comparison, string
// comparison and chronological order agree.
//
// # Usage
//
//	id := ksuid.New()
//	s := id.String()        // 27 characters
//	parsed, err := ksuid.Parse(s)
//	id.Compare(parsed)      // 0
package ksuid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	// EpochMillis is the KSUID epoch in milliseconds since the Unix epoch.
	EpochMillis int64 = 1_400_000_000_000

	// MaxTimeMillis is the latest instant, in Unix milliseconds, whose
	// timestamp still fits in 32 bits.
	MaxTimeMillis int64 = EpochMillis + (1<<32-1)*1000

	TimestampLength = 4
	PayloadLength   = 16
	ByteLength      = TimestampLength + PayloadLength
	StringLength    = 27

	// MinString is the text form of Nil.
	MinString = "000000000000000000000000000"
	// MaxString is the text form of Max.
	MaxString = "aWgEPTl1tmebfsQzFP4bxwgy80V"
)

// KSUID is a 20 byte K-Sortable Unique Identifier.
type KSUID [ByteLength]byte

var (
	// Nil is the smallest KSUID, all bytes zero.
	Nil KSUID
	// Max is the largest KSUID, all bytes 0xFF.
	Max = KSUID{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
)

// IsValidLength reports whether b has the length of a binary KSUID.
func IsValidLength(b []byte) bool {
	return len(b) == ByteLength
}

// FromBytes copies a 20 byte buffer into a KSUID.
func FromBytes(b []byte) (KSUID, error) {
	var id KSUID
	if !IsValidLength(b) {
		return Nil, fmt.Errorf("%w: got %d", ErrInvalidLength, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// FromParts builds a KSUID from a timestamp and a 16 byte payload.
//
// t must fall between the KSUID epoch and MaxTimeMillis and carry no precision
// below one millisecond. Sub-second precision is otherwise discarded.
func FromParts(t time.Time, payload []byte) (KSUID, error) {
	ms, err := timestampMillis(t)
	if err != nil {
		return Nil, err
	}
	if len(payload) != PayloadLength {
		return Nil, fmt.Errorf("%w: got %d", ErrInvalidPayloadLength, len(payload))
	}
	return makeKSUID(ms, payload), nil
}

func timestampMillis(t time.Time) (int64, error) {
	if t.Nanosecond()%int(time.Millisecond) != 0 {
		return 0, fmt.Errorf("%w: %s is not a whole millisecond", ErrTimestampOutOfRange, t.Format(time.RFC3339Nano))
	}
	// Compare instants before UnixMilli, which wraps far outside int64 range.
	if t.Before(time.UnixMilli(EpochMillis)) || t.After(time.UnixMilli(MaxTimeMillis)) {
		return 0, fmt.Errorf("%w: %s is not between %s and %s", ErrTimestampOutOfRange,
			t.UTC().Format(time.RFC3339Nano),
			time.UnixMilli(EpochMillis).UTC().Format(time.RFC3339),
			time.UnixMilli(MaxTimeMillis).UTC().Format(time.RFC3339))
	}
	return t.UnixMilli(), nil
}

func makeKSUID(ms int64, payload []byte) KSUID {
	var id KSUID
	binary.BigEndian.PutUint32(id[:TimestampLength], uint32((ms-EpochMillis)/1000))
	copy(id[TimestampLength:], payload)
	return id
}

// Parse decodes the 27 character text form of a KSUID.
func Parse(s string) (KSUID, error) {
	if n := utf8.RuneCountInString(s); n != StringLength {
		return Nil, fmt.Errorf("%w: got %d", ErrInvalidEncodedLength, n)
	}

	// Leading zero bytes carry no magnitude and are dropped by the natural
	// decode; they are restored below.
	decoded, err := decodeBase62(s, 0)
	if err != nil {
		return Nil, err
	}
	if len(decoded) == ByteLength {
		return FromBytes(decoded)
	}
	if len(decoded) > ByteLength {
		// 62^27 exceeds 2^160, so text above MaxString decodes to 21 bytes.
		return Nil, fmt.Errorf("%w: %q decodes to %d bytes", ErrInvalidLength, s, len(decoded))
	}

	var id KSUID
	pad := ByteLength - len(decoded)
	for i := 0; i < pad; i++ {
		id[i] = 0
	}
	copy(id[pad:], decoded)
	return id, nil
}

// Bytes returns a copy of the 20 byte binary form.
func (i KSUID) Bytes() []byte {
	b := make([]byte, ByteLength)
	copy(b, i[:])
	return b
}

// Timestamp returns the raw timestamp: seconds since the KSUID epoch.
func (i KSUID) Timestamp() uint32 {
	return binary.BigEndian.Uint32(i[:TimestampLength])
}

// Time returns the instant encoded in the timestamp, in UTC.
func (i KSUID) Time() time.Time {
	return time.UnixMilli(int64(i.Timestamp())*1000 + EpochMillis).UTC()
}

// Payload returns a copy of the 16 byte payload.
func (i KSUID) Payload() []byte {
	b := make([]byte, PayloadLength)
	copy(b, i[TimestampLength:])
	return b
}

// IsNil reports whether i is the zero KSUID.
func (i KSUID) IsNil() bool {
	return i == Nil
}

// String returns the 27 character base 62 form.
func (i KSUID) String() string {
	return encodeBase62(i[:], StringLength)
}

// GoString renders i as KSUID { <text> }.
func (i KSUID) GoString() string {
	return "KSUID { " + i.String() + " }"
}

// Compare returns -1, 0 or 1 as i sorts before, equal to or after other.
func (i KSUID) Compare(other KSUID) int {
	return Compare(i, other)
}

// Equal reports whether i and other hold the same bytes.
func (i KSUID) Equal(other KSUID) bool {
	return Compare(i, other) == 0
}

// Compare orders KSUIDs by unsigned byte-wise comparison, which is also
// chronological order of their timestamps.
func Compare(a, b KSUID) int {
	if a == b {
		return 0
	}
	return bytes.Compare(a[:], b[:])
}
