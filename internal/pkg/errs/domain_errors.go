package errs

import cr "github.com/cockroachdb/errors"

// Error kinds. Concrete errors are marked with exactly one of these so callers
// can classify without knowing the concrete sentinel.
var (
	ErrMalformedInput  = cr.New("malformed input")
	ErrNotFound        = cr.New("not found")
	ErrUnauthorized    = cr.New("unauthorized")
	ErrPolicyViolation = cr.New("policy violation")
	ErrTransient       = cr.New("transient failure")
)

type Kind int

const (
	KindUnknown Kind = iota
	KindMalformedInput
	KindNotFound
	KindUnauthorized
	KindPolicyViolation
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "MALFORMED_INPUT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindPolicyViolation:
		return "POLICY_VIOLATION"
	case KindTransient:
		return "TRANSIENT"
	default:
		return "UNKNOWN"
	}
}

// NewKind builds a sentinel already carrying its kind mark.
func NewKind(msg string, kind error) error {
	return cr.Mark(cr.New(msg), kind)
}

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case cr.Is(err, ErrMalformedInput):
		return KindMalformedInput
	case cr.Is(err, ErrNotFound):
		return KindNotFound
	case cr.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case cr.Is(err, ErrPolicyViolation):
		return KindPolicyViolation
	case cr.Is(err, ErrTransient):
		return KindTransient
	default:
		return KindUnknown
	}
}
