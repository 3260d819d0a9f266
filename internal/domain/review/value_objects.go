package review

import (
	"math"
	"strings"
	"unicode/utf8"

	"table-booking/internal/pkg/errs"
)

const (
	MinStars         = 0.0
	MaxStars         = 5.0
	MaxMessageLength = 500
)

type Stars struct {
	value float64
}

func NewStars(v float64) (Stars, error) {
	if math.IsNaN(v) || v < MinStars || v > MaxStars {
		return Stars{}, errs.WithDetail(ErrInvalidStars, "stars: %v", v)
	}
	return Stars{value: v}, nil
}

func (s Stars) Value() float64 { return s.value }

// Message is optional free text; the zero value means no message.
type Message struct {
	text string
}

func NewMessage(s string) (Message, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxMessageLength {
		return Message{}, errs.WithDetail(ErrMessageTooLong, "limit: %d characters", MaxMessageLength)
	}
	return Message{text: t}, nil
}

func (m Message) String() string { return m.text }

func (m Message) IsEmpty() bool { return m.text == "" }

// Ptr is nil for an empty message, matching the nullable column.
func (m Message) Ptr() *string {
	if m.IsEmpty() {
		return nil
	}
	s := m.text
	return &s
}
