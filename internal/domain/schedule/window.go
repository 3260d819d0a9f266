package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"table-booking/internal/pkg/errs"
)

var clockPattern = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)

// ClockOfDay is seconds since local midnight, 0..86399.
type ClockOfDay int

func ParseClockOfDay(s string) (ClockOfDay, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, errs.WithDetail(ErrInvalidClock, "value: %q", s)
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	sec := 0
	if m[3] != "" {
		sec, _ = strconv.Atoi(m[3])
	}
	if h > 23 || mi > 59 || sec > 59 {
		return 0, errs.WithDetail(ErrInvalidClock, "value: %q", s)
	}
	return ClockOfDay(h*3600 + mi*60 + sec), nil
}

func (c ClockOfDay) String() string {
	h, m, s := int(c)/3600, int(c)%3600/60, int(c)%60
	if s == 0 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Window is a restaurant's single daily opening window. Open > Close means
// the window spans midnight.
type Window struct {
	Open  ClockOfDay
	Close ClockOfDay
}

func NewWindow(openLocal, closeLocal string) (Window, error) {
	o, err := ParseClockOfDay(openLocal)
	if err != nil {
		return Window{}, err
	}
	c, err := ParseClockOfDay(closeLocal)
	if err != nil {
		return Window{}, err
	}
	return Window{Open: o, Close: c}, nil
}

func (w Window) Overnight() bool {
	return w.Open > w.Close
}

// Contains applies inclusive bounds on both ends in both branches.
func (w Window) Contains(local ClockOfDay) bool {
	if w.Overnight() {
		return local >= w.Open || local <= w.Close
	}
	return local >= w.Open && local <= w.Close
}

func (w Window) String() string {
	return w.Open.String() + " - " + w.Close.String()
}

// IsWithinWindow reports whether instant falls inside [openLocal, closeLocal]
// as seen on the wall clock in zone. Unparsable bounds or zone yield false.
func IsWithinWindow(instant time.Time, openLocal, closeLocal, zone string) bool {
	w, err := NewWindow(openLocal, closeLocal)
	if err != nil {
		return false
	}
	local, err := LocalClock(instant, zone)
	if err != nil {
		return false
	}
	return w.Contains(local)
}

// CheckWithinWindow is IsWithinWindow with a reason: the rejection names the
// window and the evaluated local time.
func CheckWithinWindow(instant time.Time, openLocal, closeLocal, zone string) error {
	w, err := NewWindow(openLocal, closeLocal)
	if err != nil {
		return err
	}
	local, err := LocalClock(instant, zone)
	if err != nil {
		return err
	}
	if !w.Contains(local) {
		err := errs.WithDetail(ErrOutsideHours, "working hours: %s", w.String())
		return errs.WithDetail(err, "requested local time: %s (%s)", local.String(), zone)
	}
	return nil
}
