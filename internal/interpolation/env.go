// Package interpolation expands ${VAR} and ${VAR:default} references inside config values.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// Pattern for ${VAR_NAME} and ${VAR_NAME:default} syntax - captures colon explicitly
var envVarWithDefaultPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// LookupFunc reports the value of a variable and whether it is set, like os.LookupEnv.
type LookupFunc func(string) (string, bool)

// MapLookup returns a LookupFunc backed by m.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Expand replaces every ${VAR_NAME} or ${VAR_NAME:default_value} in input.
//
// A set variable wins, even when empty. An unset variable uses the default when a colon is
// present (${VAR:} yields ""). An unset variable without default is left untouched and
// reported in the returned error.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var missingVars []error
	result := envVarWithDefaultPattern.ReplaceAllStringFunc(input, func(match string) string {
		// [full_match, varName, colon, defaultValue]
		submatches := envVarWithDefaultPattern.FindStringSubmatch(match)
		varName := submatches[1]

		if value, exists := lookup(varName); exists {
			return value
		}
		if submatches[2] == ":" {
			return submatches[3]
		}

		missingVars = append(
			missingVars,
			fmt.Errorf("environment variable not defined: %s", varName),
		)
		return match
	})

	return result, errors.Join(missingVars...)
}

// ExpandMap expands every value of m in place and returns all failures joined.
func ExpandMap(m map[string]string, lookup LookupFunc) error {
	var errs []error
	for key, value := range m {
		expanded, err := Expand(value, lookup)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		m[key] = expanded
	}
	return errors.Join(errs...)
}
