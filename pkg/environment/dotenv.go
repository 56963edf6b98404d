package environment

import (
	"fmt"

	"github.com/joho/godotenv"
)

// FromDotEnv reads a .env file into a Provider. The file is read once; later
// edits are not picked up.
func FromDotEnv(path string) (Provider, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return Map(values), nil
}
