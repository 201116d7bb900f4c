package catalog

import "errors"

// ErrCategoryNotFound is returned when category stats are requested for a
// category with zero records. Distinct from an empty filter result, which is
// not an error.
var ErrCategoryNotFound = errors.New("category not found")

// ValidationError reports a malformed or out-of-domain request parameter.
// It is always produced at the service boundary; the repositories and the
// analytics engine assume pre-validated input.
type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Description
}
