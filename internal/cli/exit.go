package cli

import (
	"errors"

	"xml-binder/internal/config"
	"xml-binder/model"
)

// Exit codes of the animl command.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitUsageError      = 2
	ExitPanic           = 3
	ExitConfigError     = 10
	ExitInvalidDocument = 11
	ExitCheckFailed     = 12
)

var (
	ErrUsage           = errors.New("invalid usage")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidDocument = errors.New("invalid document")
	ErrCheckFailed     = errors.New("family check failed")
)

// ExitCodeForError maps an error returned by a command to its exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, config.ErrConfigNotFound):
		return ExitConfigError
	case errors.Is(err, ErrCheckFailed):
		return ExitCheckFailed
	case errors.Is(err, ErrInvalidDocument):
		return ExitInvalidDocument
	}

	var e *model.Error
	if errors.As(err, &e) {
		return ExitInvalidDocument
	}

	return ExitGeneralError
}
