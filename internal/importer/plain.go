package importer

import (
	"fmt"
	"os"
)

// ReadPlain reads a UTF-8 text or Markdown file.
func ReadPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot open file: %w", err)
	}
	return string(data), nil
}
