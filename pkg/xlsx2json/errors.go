package xlsx2json

import (
	"errors"
	"fmt"

	"github.com/roowe/xlsx2json-go/pkg/xlsx2json/parser"
)

// ErrInvalidInput indicates the input path is neither a directory nor an eligible document.
var ErrInvalidInput = errors.New("input is neither a directory nor an xlsx document")

// ErrNoDocuments indicates discovery found nothing to convert.
var ErrNoDocuments = errors.New("no eligible documents found")

// ErrBatchFailed indicates at least one document in a batch failed.
var ErrBatchFailed = errors.New("one or more documents failed")

// FormatError represents a structurally invalid source document.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid document %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// FilesystemError represents an I/O failure on a source or output path.
type FilesystemError struct {
	Op   string // "stat", "write", "mkdir"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents malformed settings or name overrides.
type ConfigurationError struct {
	Source string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %v", e.Source, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ConversionErrors holds every cell of a document that failed conversion.
type ConversionErrors struct {
	Path   string
	Errors []*parser.ConversionError
}

func (e *ConversionErrors) Error() string {
	return fmt.Sprintf("%s: %d cell(s) failed conversion", e.Path, len(e.Errors))
}

func (e *ConversionErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// BatchError reports how many documents of a batch failed.
type BatchError struct {
	Failed int
	Total  int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d of %d documents failed", e.Failed, e.Total)
}

func (e *BatchError) Unwrap() error {
	return ErrBatchFailed
}
