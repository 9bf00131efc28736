package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// StdoutDest is the destination meaning "write to the given stdout writer".
const StdoutDest = "-"

// WriteOutput writes content to dest. StdoutDest writes to stdout; any other
// value is a file path whose parent directories are created as needed.
func WriteOutput(dest string, content []byte, stdout io.Writer) error {
	if dest == StdoutDest || dest == "" {
		if _, err := stdout.Write(content); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		return nil
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(dest, content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", dest, err)
	}

	return nil
}
