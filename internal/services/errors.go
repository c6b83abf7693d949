package services

import "errors"

// Sentinel errors returned by service operations. Handlers translate these
// into HTTP responses; nothing here is fatal to the process.
var (
	// ErrForbidden means the acting account lacks the role or ownership
	// required for the operation.
	ErrForbidden = errors.New("forbidden")

	// errValidation aborts a transaction whose failure is fully described
	// by the accompanying FieldErrors.
	errValidation = errors.New("validation failed")
)

// FieldErrors maps a field name to its list of error messages.
type FieldErrors map[string][]string

// Add appends a message to the field's error list.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// HasErrors reports whether any field has an error recorded.
func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}
