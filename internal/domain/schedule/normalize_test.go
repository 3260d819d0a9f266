//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"table-booking/internal/domain/schedule"
	"table-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokyo = "Asia/Tokyo"

func TestNormalizeTimestamp(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		zone     string
		expected time.Time
		errIs    error
	}{
		{
			name:     "utc designator passes through",
			raw:      "2025-03-01T13:00:00Z",
			zone:     tokyo,
			expected: time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC),
		},
		{
			name:     "numeric offset honoured",
			raw:      "2025-03-01T22:00:00+05:30",
			zone:     tokyo,
			expected: time.Date(2025, 3, 1, 16, 30, 0, 0, time.UTC),
		},
		{
			name:     "negative offset honoured",
			raw:      "2025-03-01T08:15:30-04:00",
			zone:     tokyo,
			expected: time.Date(2025, 3, 1, 12, 15, 30, 0, time.UTC),
		},
		{
			name:     "offset without seconds",
			raw:      "2025-03-01T22:00+09:00",
			zone:     "UTC",
			expected: time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC),
		},
		{
			name:     "glued offset with seconds",
			raw:      "2025-03-01T22:00:0005:30",
			zone:     tokyo,
			expected: time.Date(2025, 3, 1, 16, 30, 0, 0, time.UTC),
		},
		{
			name:     "glued offset minutes only",
			raw:      "2025-03-01T22:0005:30",
			zone:     tokyo,
			expected: time.Date(2025, 3, 1, 16, 30, 0, 0, time.UTC),
		},
		{
			name:     "url-decoded plus becomes space",
			raw:      "2025-03-01T22:00:00 09:00",
			zone:     "UTC",
			expected: time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC),
		},
		{
			name:     "local time read in restaurant zone",
			raw:      "2025-03-01T22:00:00",
			zone:     tokyo,
			expected: time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC),
		},
		{
			name:     "local minutes read in restaurant zone",
			raw:      "2025-03-01T09:30",
			zone:     "America/New_York",
			expected: time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "seconds preserved",
			raw:      "2025-03-01T22:00:59",
			zone:     tokyo,
			expected: time.Date(2025, 3, 1, 13, 0, 59, 0, time.UTC),
		},
		{
			name:  "empty input",
			raw:   "",
			zone:  tokyo,
			errIs: schedule.ErrEmptyTimestamp,
		},
		{
			name:  "whitespace input",
			raw:   "   ",
			zone:  tokyo,
			errIs: schedule.ErrEmptyTimestamp,
		},
		{
			name:  "garbage input",
			raw:   "tomorrow evening",
			zone:  tokyo,
			errIs: schedule.ErrInvalidTimestamp,
		},
		{
			name:  "impossible calendar date",
			raw:   "2025-02-30T10:00:00",
			zone:  tokyo,
			errIs: schedule.ErrInvalidTimestamp,
		},
		{
			name:  "unknown zone for local time",
			raw:   "2025-03-01T22:00:00",
			zone:  "Mars/Olympus_Mons",
			errIs: schedule.ErrUnknownTimezone,
		},
		{
			name:  "server zone is never used for local time",
			raw:   "2025-03-01T12:00:00",
			zone:  "Local",
			errIs: schedule.ErrUnknownTimezone,
		},
		{
			name:     "server zone ignored when offset given",
			raw:      "2025-03-01T12:00:00Z",
			zone:     "Local",
			expected: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := schedule.NormalizeTimestamp(tc.raw, tc.zone)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, errs.KindMalformedInput, errs.KindOf(err))
				assert.True(t, actual.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(actual), "expected %s, got %s", tc.expected, actual)
			assert.Equal(t, time.UTC, actual.Location())
		})
	}
}

func TestNormalizeTimestamp_RoundTrip(t *testing.T) {
	t.Run("offset-bearing input is stable", func(t *testing.T) {
		in := "2025-07-14T19:45:12+02:00"
		first, err := schedule.NormalizeTimestamp(in, tokyo)
		require.NoError(t, err)
		second, err := schedule.NormalizeTimestamp(first.Format(time.RFC3339), tokyo)
		require.NoError(t, err)
		assert.True(t, first.Equal(second))
	})

	t.Run("glued forms equal corrected forms", func(t *testing.T) {
		pairs := [][2]string{
			{"2025-07-14T19:45:1202:00", "2025-07-14T19:45:12+02:00"},
			{"2025-07-14T19:4502:00", "2025-07-14T19:45+02:00"},
		}
		for _, p := range pairs {
			glued, err := schedule.NormalizeTimestamp(p[0], tokyo)
			require.NoError(t, err)
			corrected, err := schedule.NormalizeTimestamp(p[1], tokyo)
			require.NoError(t, err)
			assert.True(t, glued.Equal(corrected), "%s vs %s", p[0], p[1])
		}
	})
}

func TestLoadZone(t *testing.T) {
	testCases := []struct {
		name     string
		zone     string
		expected string
		errIs    error
	}{
		{name: "iana name", zone: tokyo, expected: tokyo},
		{name: "surrounding spaces", zone: " Europe/Paris ", expected: "Europe/Paris"},
		{name: "empty is utc", zone: "", expected: "UTC"},
		{name: "Local refused", zone: "Local", errIs: schedule.ErrUnknownTimezone},
		{name: "Local refused in any case", zone: " local ", errIs: schedule.ErrUnknownTimezone},
		{name: "unknown name", zone: "Europe/Atlantis", errIs: schedule.ErrUnknownTimezone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := schedule.LoadZone(tc.zone)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, loc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, loc.String())
		})
	}
}

func TestLocalClock(t *testing.T) {
	instant := time.Date(2025, 3, 1, 13, 5, 7, 0, time.UTC)

	local, err := schedule.LocalClock(instant, tokyo)
	require.NoError(t, err)
	assert.Equal(t, "22:05:07", local.String())

	local, err = schedule.LocalClock(instant, "UTC")
	require.NoError(t, err)
	assert.Equal(t, "13:05:07", local.String())

	_, err = schedule.LocalClock(instant, "Nowhere/Special")
	assert.ErrorIs(t, err, schedule.ErrUnknownTimezone)
}
