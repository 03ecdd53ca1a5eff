package loader

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads a dotenv file into a map without touching the process
// environment. The map is the launcher's overlay layer.
//
// Double-quoted values lose their backslashes and have $VAR expanded, so
// regex and template values belong in single quotes.
func LoadDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file '%s': %w", path, err)
	}
	return values, nil
}
