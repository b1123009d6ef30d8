package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadEnv loads KEY=value pairs from the given files into the process
// environment. Missing files are skipped and variables that are already set
// win, so the shell can always override a .env file.
func LoadEnv(filenames ...string) error {
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", filename, err)
		}
	}
	return nil
}
