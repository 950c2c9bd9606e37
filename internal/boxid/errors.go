package boxid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrEmptyInput         = errors.New("no identifiers supplied")
	ErrInconsistentLength = errors.New("inconsistent identifier lengths")
	ErrInvalidEncoding    = errors.New("identifiers are not valid UTF-8")
	ErrNotFound           = errors.New("no matching pair found")
)

// LengthError describes one identifier whose length differs from the first one.
type LengthError struct {
	// Line is 1-based.
	Line int
	ID   string
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("line %d: %q has length %d, want %d", e.Line, e.ID, e.Got, e.Want)
}

func (e *LengthError) Unwrap() error {
	return ErrInconsistentLength
}

// EncodingError describes one identifier that is not valid UTF-8.
type EncodingError struct {
	// Line is 1-based.
	Line int
	ID   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("line %d: %q", e.Line, e.ID)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}

// newValidationError aggregates problems of one kind and keeps the message
// on a single line, prefixed by kind.
func newValidationError(kind error) *multierror.Error {
	return &multierror.Error{ErrorFormat: func(es []error) string {
		msgs := make([]string, 0, len(es))
		for _, e := range es {
			msgs = append(msgs, e.Error())
		}
		return fmt.Sprintf("%s: %s", kind, strings.Join(msgs, "; "))
	}}
}
