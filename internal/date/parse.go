package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sjatkinson/ksuid/internal/config"
)

// Clock provides the current time for date parsing.
// This interface allows injecting a fixed time for testing.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements Clock with a fixed time for testing.
type FixedClock struct {
	FixedTime time.Time
}

func (c FixedClock) Now() time.Time {
	return c.FixedTime
}

var (
	numericDate = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}([/-]\d{2,4})?$`)
	compactDate = regexp.MustCompile(`^\d{8}$`)
)

// ParseTime parses a --time value into an instant. Accepted inputs, in the
// order they are tried:
//
//   - "now"
//   - "today", "+N", "-N": midnight in tz, offset by N days
//   - "@<seconds>": Unix seconds
//   - RFC 3339, with or without fractional seconds
//   - YYYY-MM-DD, YYYY/MM/DD, YYYY.MM.DD, YYYYMMDD
//   - MM/DD/YYYY (us) or DD/MM/YYYY (eu), dashes allowed
//
// Date-only inputs resolve to midnight in tz (UTC when nil).
func ParseTime(input string, locale config.DateLocale, clock Clock, tz *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("invalid time: empty input")
	}
	if tz == nil {
		tz = time.UTC
	}

	now := clock.Now().In(tz)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, tz)

	// Step 1: shortcuts
	if t, ok := parseShortcuts(input, now, today); ok {
		return t, nil
	}

	// Step 2: Unix seconds
	if strings.HasPrefix(input, "@") {
		secs, err := strconv.ParseInt(input[1:], 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time: %q is not a number of seconds", input)
		}
		return time.Unix(secs, 0).UTC(), nil
	}

	// Step 3: RFC 3339 (time.RFC3339 also accepts fractional seconds)
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}

	// Step 4: ISO-like dates
	if t, err := parseISOFormats(input, tz); err == nil {
		return t, nil
	}

	// Step 5: locale dates
	if locale == config.DateLocaleUS || locale == config.DateLocaleEU {
		if t, err := parseLocaleWithYear(input, locale, tz); err == nil {
			return t, nil
		}
		if numericDate.MatchString(input) {
			var expected string
			if locale == config.DateLocaleUS {
				expected = "MM/DD/YYYY or MM-DD-YYYY"
			} else {
				expected = "DD/MM/YYYY or DD-MM-YYYY"
			}
			return time.Time{}, fmt.Errorf("invalid time for locale %q: expected %s, got %q", locale, expected, input)
		}
	}

	if locale == config.DateLocaleISO && numericDate.MatchString(input) {
		return time.Time{}, fmt.Errorf("invalid time: ambiguous numeric date %q. Use YYYY-MM-DD or set date_locale=us or date_locale=eu", input)
	}

	return time.Time{}, fmt.Errorf("invalid time: unable to parse %q", input)
}

// parseShortcuts handles "now", "today" and "+N"/"-N" day offsets.
func parseShortcuts(input string, now, today time.Time) (time.Time, bool) {
	input = strings.ToLower(input)

	switch input {
	case "now":
		return now, true
	case "today":
		return today, true
	}

	if strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-") {
		days, err := strconv.Atoi(input[1:])
		if err != nil || days < 0 {
			return time.Time{}, false
		}
		if input[0] == '-' {
			days = -days
		}
		return today.AddDate(0, 0, days), true
	}

	return time.Time{}, false
}

// parseISOFormats tries YYYY-MM-DD, YYYY/MM/DD, YYYY.MM.DD and YYYYMMDD.
func parseISOFormats(input string, tz *time.Location) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006/01/02", "2006.01.02"} {
		if t, err := time.ParseInLocation(layout, input, tz); err == nil {
			return t, nil
		}
	}

	if compactDate.MatchString(input) {
		if t, err := time.ParseInLocation("20060102", input, tz); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("not an ISO format")
}

// parseLocaleWithYear parses MM/DD/YYYY (us) or DD/MM/YYYY (eu).
func parseLocaleWithYear(input string, locale config.DateLocale, tz *time.Location) (time.Time, error) {
	var layouts []string
	if locale == config.DateLocaleUS {
		layouts = []string{"01/02/2006", "1/2/2006", "01/2/2006", "1/02/2006"}
	} else { // EU
		layouts = []string{"02/01/2006", "2/1/2006", "02/1/2006", "2/01/2006"}
	}

	for _, sep := range []string{"/", "-"} {
		for _, layout := range layouts {
			layout = strings.ReplaceAll(layout, "/", sep)
			if t, err := time.ParseInLocation(layout, input, tz); err == nil {
				return t, nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("not a locale format with year")
}
