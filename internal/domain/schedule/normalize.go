package schedule

import (
	"regexp"
	"strings"
	"time"

	"table-booking/internal/pkg/errs"
)

// A local time followed by an unsigned HH:MM pair, e.g. 2025-03-01T22:00:0005:30.
// A lone space stands in for a '+' lost to URL decoding.
var (
	gluedOffsetWithSeconds = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?) ?(\d{2}:\d{2})$`)
	gluedOffsetMinutes     = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}) ?(\d{2}:\d{2})$`)
)

var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// NormalizeTimestamp turns client input into an absolute instant in UTC.
// Offset-aware input is honoured as-is; offset-less input is read as wall
// clock time in fallbackZone.
func NormalizeTimestamp(raw, fallbackZone string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrEmptyTimestamp
	}

	s = repairGluedOffset(s)

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	loc, err := LoadZone(fallbackZone)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errs.WithDetail(ErrInvalidTimestamp, "value: %q", raw)
}

func repairGluedOffset(s string) string {
	if m := gluedOffsetWithSeconds.FindStringSubmatch(s); m != nil {
		return m[1] + "+" + m[2]
	}
	if m := gluedOffsetMinutes.FindStringSubmatch(s); m != nil {
		return m[1] + "+" + m[2]
	}
	return s
}

// LoadZone resolves an IANA zone name. Empty means UTC. "Local" is refused:
// it names the server's zone, not the restaurant's.
func LoadZone(name string) (*time.Location, error) {
	trimmed := strings.TrimSpace(name)
	if strings.EqualFold(trimmed, "Local") {
		return nil, errs.WithDetail(ErrUnknownTimezone, "timezone: %q", name)
	}
	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, errs.WithDetail(ErrUnknownTimezone, "timezone: %q", name)
	}
	return loc, nil
}

// LocalClock is the wall-clock time of day of instant in zone.
func LocalClock(instant time.Time, zone string) (ClockOfDay, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return 0, err
	}
	local := instant.In(loc)
	return ClockOfDay(local.Hour()*3600 + local.Minute()*60 + local.Second()), nil
}
