package content

import "fmt"

// Kind classifies an Error for callers that map failures to exit codes or
// HTTP statuses.
type Kind string

const (
	// KindInvalidArgument marks a blank or otherwise unusable caller input,
	// detected before any I/O is attempted.
	KindInvalidArgument Kind = "invalid_argument"
	// KindNotFound marks a slug with no matching entity. Repositories report
	// absence structurally (nil, nil); only the service layer produces this.
	KindNotFound Kind = "not_found"
	// KindIO marks an unexpected storage failure (unreadable file,
	// unlistable directory).
	KindIO Kind = "io"
	// KindParse marks malformed frontmatter in an otherwise readable entry.
	KindParse Kind = "parse"
)

// Error is the typed failure returned by the content layers.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// InvalidArgumentf builds a KindInvalidArgument error.
func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// IOf builds a KindIO error wrapping cause.
func IOf(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Parsef builds a KindParse error wrapping cause.
func Parsef(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the Kind of err, or KindIO when err carries no kind.
// A nil err has no kind and returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for e := err; e != nil; {
		if ce, ok := e.(*Error); ok {
			return ce.Kind
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return KindIO
}
