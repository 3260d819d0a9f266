package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// WithDetail attaches a user-facing detail line. Details survive wrapping and
// are surfaced by the HTTP layer.
func WithDetail(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.WithDetailf(err, format, args...)
}

func Details(err error) []string {
	if err == nil {
		return nil
	}
	return cr.GetAllDetails(err)
}

// UnwrapAll returns the innermost cause, whose message is the one shown to
// clients.
func UnwrapAll(err error) error {
	if err == nil {
		return nil
	}
	return cr.UnwrapAll(err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
