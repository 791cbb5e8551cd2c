package weberr

import "fmt"

// Kind classifies a request failure for logging. The rendered message
// stays generic regardless of kind; the kind never reaches the client.
type Kind int

const (
	Validation Kind = iota
	Unauthorized
	NotFound
	Conflict
	Internal
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error carries the user-facing message separately from the wrapped
// cause, so handlers can log the cause and render only the message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, defaulting to Internal for anything
// that is not a *Error.
func KindOf(err error) Kind {
	if we, ok := err.(*Error); ok {
		return we.Kind
	}
	return Internal
}
