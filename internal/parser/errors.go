package parser

import (
	"fmt"

	"github.com/pkg/errors"
)

// MalformedInputError is returned when a required line is missing from the
// ping output. Input holds the complete text that was parsed.
type MalformedInputError struct {
	Field string
	Input string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("invalid ping output: missing %s:\n%s", e.Field, e.Input)
}

// IsMalformedInput reports whether err, or any error it wraps, is a
// *MalformedInputError
func IsMalformedInput(err error) bool {
	var target *MalformedInputError
	return errors.As(err, &target)
}
