//go:build unit

package schedule_test

import (
	"strings"
	"testing"
	"time"

	"table-booking/internal/domain/schedule"
	"table-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atTokyo builds an instant from a Tokyo wall-clock time on 2025-03-01.
func atTokyo(t *testing.T, hh, mm, ss int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(tokyo)
	require.NoError(t, err)
	return time.Date(2025, 3, 1, hh, mm, ss, 0, loc)
}

func TestParseClockOfDay(t *testing.T) {
	testCases := []struct {
		input   string
		want    schedule.ClockOfDay
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "10:00", want: 36000},
		{input: "23:59:59", want: 86399},
		{input: "03:00:30", want: 10830},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "12:00:60", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "09:00:00.5", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual, err := schedule.ParseClockOfDay(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, schedule.ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, actual)
		})
	}
}

func TestIsWithinWindow(t *testing.T) {
	type testCase struct {
		name    string
		instant time.Time
		open    string
		close   string
		zone    string
		want    bool
	}

	runCases := func(t *testing.T, cases []testCase) {
		t.Helper()
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, schedule.IsWithinWindow(tc.instant, tc.open, tc.close, tc.zone))
			})
		}
	}

	t.Run("same-day window", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "exactly at open", instant: atTokyo(t, 10, 0, 0), open: "10:00", close: "22:00", zone: tokyo, want: true},
			{name: "exactly at close", instant: atTokyo(t, 22, 0, 0), open: "10:00", close: "22:00", zone: tokyo, want: true},
			{name: "one second before open", instant: atTokyo(t, 9, 59, 59), open: "10:00", close: "22:00", zone: tokyo, want: false},
			{name: "one second after close", instant: atTokyo(t, 22, 0, 1), open: "10:00", close: "22:00", zone: tokyo, want: false},
			{name: "midday", instant: atTokyo(t, 13, 30, 0), open: "10:00", close: "22:00", zone: tokyo, want: true},
			{name: "23:00 rejected", instant: atTokyo(t, 23, 0, 0), open: "10:00", close: "22:00", zone: tokyo, want: false},
			{name: "seconds in bounds", instant: atTokyo(t, 10, 0, 29), open: "10:00:30", close: "22:00", zone: tokyo, want: false},
		})
	})

	t.Run("overnight window", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "22:00 accepted", instant: atTokyo(t, 22, 0, 0), open: "20:00:00", close: "03:00:00", zone: tokyo, want: true},
			{name: "02:00 accepted", instant: atTokyo(t, 2, 0, 0), open: "20:00:00", close: "03:00:00", zone: tokyo, want: true},
			{name: "10:00 rejected", instant: atTokyo(t, 10, 0, 0), open: "20:00:00", close: "03:00:00", zone: tokyo, want: false},
			{name: "exactly at open", instant: atTokyo(t, 20, 0, 0), open: "20:00", close: "03:00", zone: tokyo, want: true},
			{name: "exactly at close", instant: atTokyo(t, 3, 0, 0), open: "20:00", close: "03:00", zone: tokyo, want: true},
			{name: "one second after close", instant: atTokyo(t, 3, 0, 1), open: "20:00", close: "03:00", zone: tokyo, want: false},
			{name: "one second before open", instant: atTokyo(t, 19, 59, 59), open: "20:00", close: "03:00", zone: tokyo, want: false},
			{name: "midnight", instant: atTokyo(t, 0, 0, 0), open: "20:00", close: "03:00", zone: tokyo, want: true},
		})
	})

	t.Run("zone decides the wall clock", func(t *testing.T) {
		// 13:00Z is 22:00 in Tokyo but 13:00 in UTC
		instant := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)
		runCases(t, []testCase{
			{name: "inside in UTC", instant: instant, open: "10:00", close: "14:00", zone: "UTC", want: true},
			{name: "outside in Tokyo", instant: instant, open: "10:00", close: "14:00", zone: tokyo, want: false},
		})
	})

	t.Run("unparsable input yields false", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "bad open", instant: atTokyo(t, 12, 0, 0), open: "ten", close: "22:00", zone: tokyo, want: false},
			{name: "bad close", instant: atTokyo(t, 12, 0, 0), open: "10:00", close: "25:00", zone: tokyo, want: false},
			{name: "bad zone", instant: atTokyo(t, 12, 0, 0), open: "10:00", close: "22:00", zone: "Not/AZone", want: false},
		})
	})
}

func TestCheckWithinWindow(t *testing.T) {
	t.Run("rejection names the window", func(t *testing.T) {
		err := schedule.CheckWithinWindow(atTokyo(t, 23, 0, 0), "10:00", "22:00", tokyo)
		require.ErrorIs(t, err, schedule.ErrOutsideHours)
		assert.Equal(t, errs.KindPolicyViolation, errs.KindOf(err))

		details := strings.Join(errs.Details(err), "\n")
		assert.Contains(t, details, "10:00 - 22:00")
		assert.Contains(t, details, "23:00")
	})

	t.Run("accepted instant", func(t *testing.T) {
		assert.NoError(t, schedule.CheckWithinWindow(atTokyo(t, 2, 0, 0), "20:00", "03:00", tokyo))
	})

	t.Run("malformed window is malformed input", func(t *testing.T) {
		err := schedule.CheckWithinWindow(atTokyo(t, 12, 0, 0), "10", "22:00", tokyo)
		assert.Equal(t, errs.KindMalformedInput, errs.KindOf(err))
	})
}

func TestWindowString(t *testing.T) {
	w, err := schedule.NewWindow("10:00:00", "22:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00 - 22:00", w.String())
	assert.False(t, w.Overnight())

	w, err = schedule.NewWindow("20:00", "03:00:30")
	require.NoError(t, err)
	assert.Equal(t, "20:00 - 03:00:30", w.String())
	assert.True(t, w.Overnight())
}
