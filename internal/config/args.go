package config

import (
	"errors"
	"strings"
)

// ErrUsage is returned for positional arguments that are not a +FORMAT
var ErrUsage = errors.New("format must start with '+'")

// ParseTemplate interprets the positional arguments. No arguments selects
// the default template. Otherwise the first argument must start with '+';
// the leading '+' characters are dropped and all arguments are joined with
// single spaces, so an unquoted format split by the shell is put back
// together.
func ParseTemplate(args []string) (*string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if !strings.HasPrefix(args[0], "+") {
		return nil, ErrUsage
	}

	parts := make([]string, len(args))
	copy(parts, args)
	parts[0] = strings.TrimLeft(parts[0], "+")

	template := strings.Join(parts, " ")
	return &template, nil
}
