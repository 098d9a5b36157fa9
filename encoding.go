package ksuid

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler.
func (i KSUID) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *KSUID) UnmarshalText(b []byte) error {
	id, err := Parse(string(b))
	if err != nil {
		return err
	}
	*i = id
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (i KSUID) MarshalBinary() ([]byte, error) {
	return i.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *KSUID) UnmarshalBinary(b []byte) error {
	id, err := FromBytes(b)
	if err != nil {
		return err
	}
	*i = id
	return nil
}

// Value implements driver.Valuer, storing the text form.
func (i KSUID) Value() (driver.Value, error) {
	return i.String(), nil
}

// Scan implements sql.Scanner. It accepts the text form or the binary form,
// as a string or a byte slice. NULL scans to Nil.
func (i *KSUID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*i = Nil
		return nil
	case string:
		return i.scanBytes([]byte(v))
	case []byte:
		return i.scanBytes(v)
	default:
		return fmt.Errorf("ksuid: cannot scan %T into KSUID", src)
	}
}

func (i *KSUID) scanBytes(b []byte) error {
	switch len(b) {
	case ByteLength:
		return i.UnmarshalBinary(b)
	case StringLength:
		return i.UnmarshalText(b)
	default:
		return fmt.Errorf("%w: cannot scan %d bytes", ErrInvalidLength, len(b))
	}
}
