package xlsx2json

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/afero"
)

// NeedsRegeneration reports whether either output is missing or older than the source.
// Both outputs are regenerated together, so one stale side is enough.
func NeedsRegeneration(fsys afero.Fs, sourcePath, serverPath, clientPath string) (bool, error) {
	info, err := fsys.Stat(sourcePath)
	if err != nil {
		return false, &FilesystemError{Op: "stat", Path: sourcePath, Err: err}
	}

	stale := false
	for _, path := range []string{serverPath, clientPath} {
		s, err := outputStale(fsys, path, info.ModTime())
		if err != nil {
			return false, err
		}
		stale = stale || s
	}
	return stale, nil
}

func outputStale(fsys afero.Fs, path string, sourceTime time.Time) (bool, error) {
	info, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, &FilesystemError{Op: "stat", Path: path, Err: err}
	}
	return info.ModTime().Before(sourceTime), nil
}
