package analyze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingInput matches any MissingInputError via errors.Is.
var ErrMissingInput = errors.New("missing input")

// ErrSchema matches any SchemaError via errors.Is.
var ErrSchema = errors.New("schema mismatch")

// MissingInputError indicates the input does not exist or cannot be opened.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("cannot read input %q: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMissingInput.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// NewMissingInputError creates a new MissingInputError.
func NewMissingInputError(path string, err error) *MissingInputError {
	return &MissingInputError{
		Path: path,
		Err:  err,
	}
}

// SchemaError indicates a required field is absent after header normalization.
type SchemaError struct {
	// Missing is the required field that was not found.
	Missing string
	// Available lists the normalized field names the input does have.
	Available []string
}

func (e *SchemaError) Error() string {
	available := "(none)"
	if len(e.Available) > 0 {
		quoted := make([]string, len(e.Available))
		for i, name := range e.Available {
			quoted[i] = fmt.Sprintf("%q", name)
		}
		available = strings.Join(quoted, ", ")
	}
	return fmt.Sprintf("required field %q not found; available fields: %s", e.Missing, available)
}

// Is reports whether target is ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(missing string, available []string) *SchemaError {
	return &SchemaError{
		Missing:   missing,
		Available: available,
	}
}
