package xlsx2json

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// NameMapping maps a source base name to the output base name to use instead.
type NameMapping map[string]string

type mappingFile struct {
	FileMappings map[string]string `toml:"file_mappings"`
}

// LoadNameMapping reads a TOML file with a [file_mappings] table.
func LoadNameMapping(fsys afero.Fs, path string) (NameMapping, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &ConfigurationError{Source: path, Err: err}
	}
	m, err := ParseNameMapping(data)
	if err != nil {
		return nil, &ConfigurationError{Source: path, Err: err}
	}
	return m, nil
}

// ParseNameMapping decodes TOML mapping data. Targets must be non-empty
// plain file names.
func ParseNameMapping(data []byte) (NameMapping, error) {
	var file mappingFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}

	m := make(NameMapping, len(file.FileMappings))
	for source, target := range file.FileMappings {
		if err := validateOutputName(target); err != nil {
			return nil, fmt.Errorf("mapping for %q: %w", source, err)
		}
		m[source] = target
	}
	return m, nil
}

func validateOutputName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("output name is empty")
	case name == "." || name == "..":
		return fmt.Errorf("output name %q is not a file name", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("output name %q contains a path separator", name)
	}
	return nil
}

// BaseName returns the file name of path without its extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// OutputName resolves the output base name for a source document.
// Unmapped documents keep their own base name.
func (m NameMapping) OutputName(sourcePath string) string {
	base := BaseName(sourcePath)
	if name, ok := m[base]; ok {
		return name
	}
	return base
}
