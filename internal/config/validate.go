package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrMissingReleaseSource indicates the release owner or repo is empty.
	ErrMissingReleaseSource = errors.New("release owner and repo must be set")

	// ErrInvalidChannel indicates the release channel is malformed.
	ErrInvalidChannel = errors.New("invalid release channel")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Release.Owner == "" || cfg.Release.Repo == "" {
		errs = append(errs, ErrMissingReleaseSource)
	}

	// The channel is embedded in release tags and on-disk paths.
	if strings.ContainsAny(cfg.Release.Channel, `/\ `) {
		errs = append(errs, &FieldError{
			Field: "release.channel",
			Value: cfg.Release.Channel,
			Err:   ErrInvalidChannel,
		})
	}

	for field, value := range map[string]string{
		"data_dir":  cfg.DataDir,
		"cache_dir": cfg.CacheDir,
	} {
		if value == "" {
			continue
		}
		if err := validatePath(value); err != nil {
			errs = append(errs, &FieldError{Field: field, Value: value, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
