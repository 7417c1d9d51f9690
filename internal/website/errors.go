package website

import (
	"errors"
	"fmt"
)

// Common rendering errors.
var (
	ErrDuplicateKey  = errors.New("duplicate feature name")
	ErrMissingField  = errors.New("missing required field")
	ErrUnknownFormat = errors.New("unknown description format")
)

// DuplicateKeyError reports two features sharing a name in one render pass.
type DuplicateKeyError struct {
	Name   string
	First  int
	Second int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("feature %q at index %d duplicates index %d", e.Name, e.Second, e.First)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// MissingFieldError reports a feature without a name or description.
// Index is -1 when the error comes from NewFeature.
type MissingFieldError struct {
	Index int
	Name  string
	Field string
}

func (e *MissingFieldError) Error() string {
	switch {
	case e.Index < 0 && e.Name == "":
		return fmt.Sprintf("feature: %s is required", e.Field)
	case e.Index < 0:
		return fmt.Sprintf("feature %q: %s is required", e.Name, e.Field)
	case e.Name == "":
		return fmt.Sprintf("feature at index %d: %s is required", e.Index, e.Field)
	default:
		return fmt.Sprintf("feature %q at index %d: %s is required", e.Name, e.Index, e.Field)
	}
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }
