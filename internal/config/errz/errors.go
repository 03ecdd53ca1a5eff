// Package errz provides shared error definitions for the config package and its subpackages.
package errz

import "errors"

// Top-level error categories
var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrUnsupportedConfigVer   = errors.New("unsupported config version")
	ErrUnsupportedExtension   = errors.New("unsupported file extension")
	ErrNoSourceProvided       = errors.New("no source provided to loader")
)

// Validation specific errors
var (
	ErrInvalidValue         = errors.New("invalid value")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnknownKey           = errors.New("unknown key")
)

// Launcher setting errors
var (
	ErrInvalidBackend = errors.New("invalid vcs backend")
	ErrInvalidMode    = errors.New("invalid launch mode")
)

// Template errors
var (
	ErrInvalidTemplate = errors.New("invalid template")
	ErrInvalidRegex    = errors.New("invalid repository regex")
)
