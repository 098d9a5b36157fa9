package date

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjatkinson/ksuid/internal/config"
)

func TestParseTime_Shortcuts(t *testing.T) {
	now := time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC)
	clock := FixedClock{FixedTime: now}
	midnight := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"now", "now", now},
		{"NOW uppercase", "NOW", now},
		{"today", "today", midnight},
		{"plus one", "+1", midnight.AddDate(0, 0, 1)},
		{"minus ten", "-10", midnight.AddDate(0, 0, -10)},
		{"plus zero", "+0", midnight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTime(tt.input, config.DateLocaleISO, clock, nil)
			require.NoError(t, err)
			assert.WithinDuration(t, tt.expected, result, 0)
		})
	}
}

func TestParseTime_ISOFormats(t *testing.T) {
	clock := FixedClock{FixedTime: time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)}
	locale := config.DateLocaleISO
	day := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"YYYY-MM-DD", "2025-12-15", day, false},
		{"YYYY/MM/DD", "2025/12/15", day, false},
		{"YYYY.MM.DD", "2025.12.15", day, false},
		{"YYYYMMDD", "20251215", day, false},
		{"RFC3339", "2017-10-10T04:00:47Z", time.Date(2017, 10, 10, 4, 0, 47, 0, time.UTC), false},
		{"RFC3339 offset", "2017-10-09T21:00:47-07:00", time.Date(2017, 10, 10, 4, 0, 47, 0, time.UTC), false},
		{"RFC3339 fraction", "2017-10-10T04:00:47.25Z", time.Date(2017, 10, 10, 4, 0, 47, 250_000_000, time.UTC), false},
		{"unix seconds", "@1507608047", time.Date(2017, 10, 10, 4, 0, 47, 0, time.UTC), false},
		{"bad unix seconds", "@soon", time.Time{}, true},
		{"reject numeric US format", "12/15/2025", time.Time{}, true},
		{"reject short numeric", "12/15", time.Time{}, true},
		{"garbage", "yesterday-ish", time.Time{}, true},
		{"empty", "  ", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTime(tt.input, locale, clock, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.WithinDuration(t, tt.expected, result, 0)
		})
	}
}

func TestParseTime_Locales(t *testing.T) {
	clock := FixedClock{FixedTime: time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)}
	day := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		locale   config.DateLocale
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"us slashes", config.DateLocaleUS, "12/15/2025", day, false},
		{"us dashes", config.DateLocaleUS, "12-15-2025", day, false},
		{"us single digits", config.DateLocaleUS, "1/5/2025", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"us rejects eu order", config.DateLocaleUS, "15/12/2025", time.Time{}, true},
		{"us invalid date", config.DateLocaleUS, "02/30/2025", time.Time{}, true},
		{"eu slashes", config.DateLocaleEU, "15/12/2025", day, false},
		{"eu dashes", config.DateLocaleEU, "15-12-2025", day, false},
		{"eu rejects us order", config.DateLocaleEU, "12/15/2025", time.Time{}, true},
		{"eu iso still works", config.DateLocaleEU, "2025-12-15", day, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTime(tt.input, tt.locale, clock, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.WithinDuration(t, tt.expected, result, 0)
		})
	}
}

func TestParseTime_Timezone(t *testing.T) {
	tz, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	// 2025-12-16 03:00 UTC is still the 15th in Los Angeles.
	clock := FixedClock{FixedTime: time.Date(2025, 12, 16, 3, 0, 0, 0, time.UTC)}

	result, err := ParseTime("today", config.DateLocaleISO, clock, tz)
	require.NoError(t, err)
	want := time.Date(2025, 12, 15, 0, 0, 0, 0, tz)
	assert.WithinDuration(t, want, result, 0)

	result, err = ParseTime("2025-12-15", config.DateLocaleISO, clock, tz)
	require.NoError(t, err)
	assert.WithinDuration(t, want, result, 0)
}
