package boxid

import "unicode/utf8"

// AllSameLength reports whether every identifier has the length of the first.
// An empty set is trivially uniform.
func AllSameLength(ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	want := Length(ids[0])
	for _, id := range ids {
		if Length(id) != want {
			return false
		}
	}
	return true
}

// Validate checks the preconditions of FindCommon.
//
// It returns ErrEmptyInput for an empty set. Identifiers that are not valid
// UTF-8 are reported first, as *EncodingError values aggregated into an error
// matching ErrInvalidEncoding. Otherwise every identifier whose length differs
// from the first one is reported as a *LengthError, all of them aggregated
// into a single error that matches ErrInconsistentLength.
func Validate(ids []string) error {
	if len(ids) == 0 {
		return ErrEmptyInput
	}

	encErrs := newValidationError(ErrInvalidEncoding)
	for i, id := range ids {
		if !utf8.ValidString(id) {
			encErrs.Errors = append(encErrs.Errors, &EncodingError{Line: i + 1, ID: id})
		}
	}
	if err := encErrs.ErrorOrNil(); err != nil {
		return err
	}

	want := Length(ids[0])
	lenErrs := newValidationError(ErrInconsistentLength)
	for i, id := range ids {
		if got := Length(id); got != want {
			lenErrs.Errors = append(lenErrs.Errors, &LengthError{Line: i + 1, ID: id, Got: got, Want: want})
		}
	}
	return lenErrs.ErrorOrNil()
}
