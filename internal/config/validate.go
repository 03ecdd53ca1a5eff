package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atlanticdynamic/crlauncher/internal/config/errz"
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
)

// Validate reports values the companion is likely to reject. The launcher
// exports malformed values as they are, so launch never calls Validate.
func (c Config) Validate() error {
	errs := c.Problems()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", errz.ErrFailedToValidateConfig, errors.Join(errs...))
	}
	return nil
}

// Problems lists every validation problem separately.
func (c Config) Problems() []error {
	var errs []error

	if c.Server == "" {
		errs = append(errs, fmt.Errorf("%w: %s", errz.ErrMissingRequiredField, keys.Server))
	}

	columns := []EnvVar{
		{Key: keys.MaxPerlCols, Value: c.Columns.Perl},
		{Key: keys.MaxPythonCols, Value: c.Columns.Python},
		{Key: keys.MaxJavaCols, Value: c.Columns.Java},
		{Key: keys.MaxOthersCols, Value: c.Columns.Others},
	}
	for _, col := range columns {
		n, err := strconv.Atoi(col.Value)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a positive integer, got %q", errz.ErrInvalidValue, col.Key, col.Value))
		}
	}

	if c.AllowTabs != "0" && c.AllowTabs != "1" {
		errs = append(errs, fmt.Errorf("%w: %s must be 0 or 1, got %q", errz.ErrInvalidValue, keys.AllowTabs, c.AllowTabs))
	}

	if c.Companion.Script == "" {
		errs = append(errs, fmt.Errorf("%w: %s", errz.ErrMissingRequiredField, keys.LauncherScript))
	}

	if c.VCS == nil {
		errs = append(errs, fmt.Errorf("%w: vcs backend", errz.ErrMissingRequiredField))
	} else if err := c.VCS.Validate(); err != nil {
		errs = append(errs, err)
	}

	// A double-quoted dotenv value loses its backslashes yet still compiles.
	if git, ok := c.VCS.(*Git); ok && c.Source(keys.GitRepoRegex) == SourceDotEnv && !strings.Contains(git.RepoRegex, `\`) {
		errs = append(errs, fmt.Errorf("%w: %s from the env file has no backslashes, quote it with single quotes", errz.ErrInvalidRegex, keys.GitRepoRegex))
	}

	return errs
}

// joinErrors is errors.Join that returns a plain nil for an empty slice.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
