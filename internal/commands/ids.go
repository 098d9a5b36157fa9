package commands

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sjatkinson/ksuid"
	"github.com/sjatkinson/ksuid/internal/config"
)

// resolveID accepts either the 27 character text form or the 40 character
// hex form of the binary layout.
func resolveID(s string) (ksuid.KSUID, error) {
	s = strings.TrimSpace(s)
	if len(s) == hex.EncodedLen(ksuid.ByteLength) {
		b, err := hex.DecodeString(s)
		if err != nil {
			return ksuid.Nil, fmt.Errorf("invalid hex KSUID %q: %w", s, err)
		}
		return ksuid.FromBytes(b)
	}
	return ksuid.Parse(s)
}

// parsePayload reads a 16 byte payload written as a UUID or as 32 hex digits.
func parsePayload(s string) ([]byte, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid payload %q: expected a UUID or 32 hex digits", s)
	}
	return u[:], nil
}

func payloadUUID(id ksuid.KSUID) string {
	u, err := uuid.FromBytes(id.Payload())
	if err != nil {
		return ""
	}
	return u.String()
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// formatID renders id in one of the config.Formats.
func formatID(id ksuid.KSUID, format string, loc *time.Location) (string, error) {
	switch format {
	case config.FormatString:
		return id.String(), nil
	case config.FormatHex:
		return upperHex(id.Bytes()), nil
	case config.FormatInspect:
		return inspectText(id, loc), nil
	case config.FormatTime:
		return id.Time().In(loc).Format(time.RFC3339), nil
	case config.FormatTimestamp:
		return fmt.Sprintf("%d", id.Timestamp()), nil
	case config.FormatPayload:
		return upperHex(id.Payload()), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected one of %s)", format, strings.Join(config.Formats, ", "))
	}
}

func inspectText(id ksuid.KSUID, loc *time.Location) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, "REPRESENTATION:")
	fmt.Fprintln(&sb)
	fmt.Fprintf(&sb, "  String: %s\n", id.String())
	fmt.Fprintf(&sb, "     Raw: %s\n", upperHex(id.Bytes()))
	fmt.Fprintln(&sb)
	fmt.Fprintln(&sb, "COMPONENTS:")
	fmt.Fprintln(&sb)
	fmt.Fprintf(&sb, "       Time: %s\n", id.Time().In(loc).Format(time.RFC3339))
	fmt.Fprintf(&sb, "  Timestamp: %d\n", id.Timestamp())
	fmt.Fprintf(&sb, "    Payload: %s\n", upperHex(id.Payload()))
	fmt.Fprintf(&sb, "       UUID: %s\n", payloadUUID(id))
	return sb.String()
}
