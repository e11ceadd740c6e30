package fileio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned (wrapped) when an operation is called with an argument
	// that violates its contract. No file has been touched when it is returned
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyConfig is returned by ReadYAML if the document is empty
	ErrEmptyConfig = errors.New("yaml file is empty")

	// ErrExtraData is returned by the loaders if a file holds more than one document
	ErrExtraData = errors.New("extra data after the first document")
)

// invalidArgument creates an error wrapping ErrInvalidArgument
func invalidArgument(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// checkPath validates a path argument
func checkPath(op, path string) error {
	if path == "" {
		return invalidArgument(op, "path must not be empty")
	}
	return nil
}
