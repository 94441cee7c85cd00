package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports the first rule a value broke while an entity was
// being constructed. Its message is safe to show to end users.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// required fails when value is empty once surrounding whitespace is removed.
func required(field, label, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "%s is required", label)
	}
	return nil
}

// cloneAll deep-copies a slice of entities.
func cloneAll[T interface{ Clone() T }](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}
