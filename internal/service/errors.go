package service

import (
	"errors"
	"fmt"
)

// ErrEnrichment marks a failure in the paid-computation or webhook-registration
// step. Handlers collapse it to a generic server error; the full cause stays in
// the logs.
var ErrEnrichment = errors.New("link enrichment failed")

// FieldError describes a single schema violation on a submitted link payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of schema violations for a payload
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("link validation failed: %d field error(s)", len(e.Fields))
}
