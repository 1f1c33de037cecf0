// Package persist writes generated sources to disk under an
// overwrite-protection contract and records compile runs in a local SQLite
// catalog.
package persist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	cgen "github.com/rnetlab/go-rnet/codegen/c"
)

// ErrRefused is returned when the destination exists and was not produced
// by this tool. Callers treat it as a warning: the compilation output is
// still valid, only the file write was skipped.
var ErrRefused = errors.New("refusing to overwrite")

// WriteSource writes generated text to path. A missing destination is
// written unconditionally; an existing one is overwritten only when its
// first line matches the generated-file marker.
func WriteSource(path, text string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, []byte(text), 0644)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	line, err := firstLine(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if line != cgen.Marker {
		return fmt.Errorf("%w: %s was not generated by rnetc", ErrRefused, path)
	}

	return os.WriteFile(path, []byte(text), 0644)
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}
