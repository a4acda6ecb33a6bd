package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldErrors maps a field name to a human-readable message. It implements
// the error interface so services can return it through their normal error
// path, and the HTTP layer serializes it unchanged as the 400 response body.
type FieldErrors map[string]string

// Error renders the map as "field: message" pairs in field order, so logs
// stay deterministic.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}

	return strings.Join(parts, "; ")
}

// AsFieldErrors unwraps err into a FieldErrors map, reporting whether the
// error (or anything it wraps) is a validation failure.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrors FieldErrors
	ok := errors.As(err, &fieldErrors)
	return fieldErrors, ok
}
