package application

import "errors"

var (
	// ErrMissingPrompter is returned when running an interactive session on
	// a calculator created without an input source.
	ErrMissingPrompter = errors.New("fee calculator has no prompter")
)
