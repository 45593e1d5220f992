package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrQuestionNotFound is returned when a question id does not exist.
var ErrQuestionNotFound = errors.New("question not found")

// ValidationError reports missing or invalid fields on catalog input.
// The catalog is left unchanged when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
