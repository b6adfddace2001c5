// Package xlsx2json converts annotated xlsx sheets into server and client JSON files.
package xlsx2json

import (
	"runtime"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Options is the execution context shared by every conversion in a batch.
// It is read-only once a Processor has been built from it.
type Options struct {
	// OutputDir is the root holding the server and client directories.
	OutputDir string `validate:"required"`
	// Workers is the worker pool size. Zero selects DefaultWorkers.
	Workers int `validate:"gte=0"`
	// Pretty indents the written JSON.
	Pretty bool
	// RawCellValue reads numeric cells without their number format applied.
	RawCellValue bool
	// Mapping overrides output base names by source base name.
	Mapping NameMapping
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		OutputDir:    "output",
		RawCellValue: true,
	}
}

// DefaultWorkers returns one less than the number of CPUs, and at least one.
func DefaultWorkers() int {
	return max(1, runtime.NumCPU()-1)
}

// WorkerCount returns the effective worker pool size.
func (o Options) WorkerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return DefaultWorkers()
}

// Validate checks the options for missing or out-of-range values.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return &ConfigurationError{Source: "options", Err: err}
	}
	return nil
}
