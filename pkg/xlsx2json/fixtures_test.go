package xlsx2json

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// scenarioRows is a sheet with one column per visibility marker.
func scenarioRows() [][]any {
	return [][]any{
		{"Skills"},
		{"b", "s", "c"},
		{"string", "int", "bool"},
		{"Name", "Level", "Active"},
		{"Fire", "3", "true"},
		{"Ice", "", "false"},
	}
}

func writeSheet(t *testing.T, fsys afero.Fs, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &values))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fsys, path, buf.Bytes(), 0o644))
}

func setModTime(t *testing.T, fsys afero.Fs, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, fsys.Chtimes(path, mtime, mtime))
}

func newTestProcessor(t *testing.T, fsys afero.Fs, opts Options) *Processor {
	t.Helper()
	if opts.OutputDir == "" {
		opts.OutputDir = "/out"
	}
	p, err := NewProcessor(fsys, opts, nil)
	require.NoError(t, err)
	return p
}

// statErrFs fails Stat for one path with a non "not found" error.
type statErrFs struct {
	afero.Fs
	path string
}

func (s statErrFs) Stat(name string) (os.FileInfo, error) {
	if name == s.path {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: errors.New("permission denied")}
	}
	return s.Fs.Stat(name)
}

// failingDirFs rejects file creation inside one directory.
type failingDirFs struct {
	afero.Fs
	dir string
}

func (f failingDirFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Dir(name) == f.dir {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errors.New("disk full")}
	}
	return f.Fs.OpenFile(name, flag, perm)
}
