package errs

import (
	"fmt"

	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

// Kind classifies a failure so that the boundary can report it without
// inspecting the message
type Kind int

const (
	// ConfigError covers invalid cipher parameters: rounds, sizes, mode, codec, p and q
	ConfigError Kind = iota + 1
	// KeyError means the key is not binary or has the wrong length
	KeyError
	// InputError means the text given for encryption/decryption is unusable
	InputError
	// EncodingError means the codec could not map a character or bit string
	EncodingError
	// IVSourceError means the prime table backing the IV generator is missing, short or malformed
	IVSourceError
)

func (k Kind) String() string {
	switch k {
	case ConfigError:
		return "ConfigError"
	case KeyError:
		return "KeyError"
	case InputError:
		return "InputError"
	case EncodingError:
		return "EncodingError"
	case IVSourceError:
		return "IVSourceError"
	}
	return "UnknownError"
}

// WrapError wraps an error for the sake of showing a stack trace at the top level
// the go-errors package, for some reason, does not return nil when you try to wrap
// a non-error, so we're just doing it here
func WrapError(err error) *errors.Error {
	if err == nil {
		return nil
	}

	return errors.Wrap(err, 0)
}

// ComplexError an error which carries a code so that calling code has an easier job to do
// adapted from https://medium.com/yakka/better-go-error-handling-with-xerrors-1987650e0c79
type ComplexError struct {
	Message string
	Code    Kind
	frame   xerrors.Frame
}

// New returns a ComplexError of the given kind, recording the caller's frame
func New(code Kind, format string, args ...interface{}) error {
	return ComplexError{
		Message: fmt.Sprintf(format, args...),
		Code:    code,
		frame:   xerrors.Caller(1),
	}
}

// FormatError is a function
func (ce ComplexError) FormatError(p xerrors.Printer) error {
	p.Printf("%s: %s", ce.Code, ce.Message)
	ce.frame.Format(p)
	return nil
}

// Format is a function
func (ce ComplexError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce ComplexError) Error() string {
	return fmt.Sprint(ce)
}

// KindOf returns the kind of the first ComplexError in the chain
func KindOf(err error) (Kind, bool) {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Code, true
	}
	return 0, false
}

// HasErrorCode tells us whether the error chain contains a ComplexError of the given kind
func HasErrorCode(err error, code Kind) bool {
	kind, ok := KindOf(err)
	return ok && kind == code
}

// MessageOf returns the bare message of the first ComplexError in the chain,
// falling back to err.Error()
func MessageOf(err error) string {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Message
	}
	return err.Error()
}
