package ksuid

import "errors"

// Errors returned while constructing or parsing a KSUID. All of them except
// ErrRandomSourceUnavailable describe bad input.
var (
	ErrInvalidLength           = errors.New("ksuid: valid KSUID buffers are 20 bytes")
	ErrInvalidEncodedLength    = errors.New("ksuid: valid encoded KSUIDs are 27 characters")
	ErrInvalidCharacter        = errors.New("ksuid: invalid character in encoded KSUID")
	ErrTimestampOutOfRange     = errors.New("ksuid: timestamp out of range")
	ErrInvalidPayloadLength    = errors.New("ksuid: valid KSUID payloads are 16 bytes")
	ErrRandomSourceUnavailable = errors.New("ksuid: secure random source unavailable")
)
