package xlsx2json

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

const (
	documentPattern = "*.xlsx"
	// Spreadsheet editors leave "~$name.xlsx" lock files next to open documents.
	lockFilePattern = "~$*"
)

// IsDocument reports whether path names an eligible xlsx document.
// Matching ignores case.
func IsDocument(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	if locked, _ := doublestar.Match(lockFilePattern, name); locked {
		return false
	}
	ok, _ := doublestar.Match(documentPattern, name)
	return ok
}

// Discover lists the documents to convert under input, which may be a
// directory (searched recursively) or a single document. Paths are sorted.
func Discover(fsys afero.Fs, input string) ([]string, error) {
	info, err := fsys.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, input, err)
	}

	if !info.IsDir() {
		if !IsDocument(input) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, input)
		}
		return []string{input}, nil
	}

	var paths []string
	err = afero.Walk(fsys, input, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are skipped.
			return nil
		}
		if !info.IsDir() && IsDocument(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, &FilesystemError{Op: "walk", Path: input, Err: err}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, input)
	}
	sort.Strings(paths)
	return paths, nil
}
