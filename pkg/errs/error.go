package errs

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrValidation = errors.New("validation failed")

type ValidateError struct {
	err     error
	Message string                 `json:"message"`
	Fields  map[string]interface{} `json:"fields"`
}

func NewValidateError(err error) *ValidateError {
	return &ValidateError{
		err:     err,
		Message: err.Error(),
		Fields:  make(map[string]interface{}),
	}
}

func (e *ValidateError) Error() string {
	var details []string
	flatten("", e.Fields, &details)
	if len(details) == 0 {
		return e.err.Error()
	}
	slices.Sort(details)
	return e.err.Error() + ": " + strings.Join(details, "; ")
}

func (e *ValidateError) Unwrap() error {
	return e.err
}

func flatten(prefix string, fields map[string]interface{}, details *[]string) {
	for name, v := range fields {
		if prefix != "" {
			name = prefix + "." + name
		}
		if nested, ok := v.(map[string]interface{}); ok {
			flatten(name, nested, details)
			continue
		}
		*details = append(*details, fmt.Sprintf("%s: %v", name, v))
	}
}
