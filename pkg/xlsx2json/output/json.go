// Package output serializes converted documents to JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/roowe/xlsx2json-go/pkg/xlsx2json/models"
	"github.com/spf13/afero"
)

// Output subdirectories under the output root.
const (
	ServerDir = "server"
	ClientDir = "client"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Paths returns the server and client JSON paths for an output base name.
func Paths(outputDir, name string) (serverPath, clientPath string) {
	serverPath = filepath.Join(outputDir, ServerDir, name+".json")
	clientPath = filepath.Join(outputDir, ClientDir, name+".json")
	return serverPath, clientPath
}

// EnsureDirs creates the server and client directories if they are missing.
func EnsureDirs(fsys afero.Fs, outputDir string) error {
	for _, dir := range []string{ServerDir, ClientDir} {
		if err := fsys.MkdirAll(filepath.Join(outputDir, dir), dirPerm); err != nil {
			return err
		}
	}
	return nil
}

// ToJSON serializes a document. HTML characters are left unescaped.
func ToJSON(doc *models.OutputDocument, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// File is one encoded document and its destination.
type File struct {
	Path string
	Data []byte
}

// WriteFiles replaces every destination or none of them. Each payload is first
// written to a temporary file next to its destination; destinations are only
// replaced once all temporary files exist. Errors are *fs.PathError naming the
// destination.
func WriteFiles(fsys afero.Fs, files []File) error {
	temps := make([]string, 0, len(files))
	removeFrom := func(i int) {
		for _, name := range temps[i:] {
			_ = fsys.Remove(name)
		}
	}

	for _, file := range files {
		name, err := writeTemp(fsys, file)
		if err != nil {
			removeFrom(0)
			return &fs.PathError{Op: "write", Path: file.Path, Err: err}
		}
		temps = append(temps, name)
	}

	for i, file := range files {
		if err := fsys.Rename(temps[i], file.Path); err != nil {
			removeFrom(i)
			return &fs.PathError{Op: "rename", Path: file.Path, Err: err}
		}
	}
	return nil
}

func writeTemp(fsys afero.Fs, file File) (string, error) {
	tmp, err := afero.TempFile(fsys, filepath.Dir(file.Path), "."+filepath.Base(file.Path)+".*.tmp")
	if err != nil {
		return "", err
	}
	name := tmp.Name()

	_, err = tmp.Write(file.Data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = fsys.Chmod(name, filePerm)
	}
	if err != nil {
		_ = fsys.Remove(name)
		return "", err
	}
	return name, nil
}
