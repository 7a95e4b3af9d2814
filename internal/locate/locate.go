// Package locate finds the candidate resume file for the batch shell.
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoResume indicates the scanned directory holds no PDF or DOCX file.
var ErrNoResume = errors.New("no resume found")

var resumeExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
}

// Supported reports whether the file name carries an accepted resume extension.
func Supported(fileName string) bool {
	_, ok := resumeExtensions[strings.ToLower(filepath.Ext(fileName))]
	return ok
}

// Find returns the path of the first PDF or DOCX file in dir.
// Entries come back from os.ReadDir sorted by name, so ties break
// lexicographically.
func Find(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if Supported(entry.Name()) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", ErrNoResume
}
