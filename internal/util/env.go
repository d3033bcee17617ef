package util

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if one exists in the working
// directory. A missing file is not an error; real deployments set the
// environment directly.
func LoadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}
