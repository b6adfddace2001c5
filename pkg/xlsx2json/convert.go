package xlsx2json

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/roowe/xlsx2json-go/internal/logger"
	"github.com/roowe/xlsx2json-go/pkg/xlsx2json/models"
	"github.com/roowe/xlsx2json-go/pkg/xlsx2json/output"
	"github.com/roowe/xlsx2json-go/pkg/xlsx2json/parser"
	"github.com/spf13/afero"
)

// Status is the outcome of converting one document.
type Status int

const (
	// StatusFailed means no output was written because of an error.
	StatusFailed Status = iota
	// StatusSkipped means both outputs were already newer than the source.
	StatusSkipped
	// StatusSucceeded means at least one output was written.
	StatusSucceeded
	// StatusNothingToWrite means conversion succeeded but no column was visible to either side.
	StatusNothingToWrite
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusSucceeded:
		return "succeeded"
	case StatusNothingToWrite:
		return "succeeded, nothing to write"
	default:
		return "failed"
	}
}

// DocumentResult describes what happened to one source document.
type DocumentResult struct {
	// Path is the source document path.
	Path string
	// OutputName is the resolved output base name.
	OutputName string
	// Status is the conversion outcome.
	Status Status
	// Written lists the output files written, server first.
	Written []string
	// Err is set when Status is StatusFailed.
	Err error
}

// Processor converts documents according to a fixed set of Options.
type Processor struct {
	fs   afero.Fs
	opts Options
	log  logger.Logger
}

// NewProcessor validates opts and returns a Processor performing all I/O on fsys.
// A nil log discards log output.
func NewProcessor(fsys afero.Fs, opts Options, log logger.Logger) (*Processor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}
	if opts.Mapping == nil {
		opts.Mapping = NameMapping{}
	}
	return &Processor{fs: fsys, opts: opts, log: log}, nil
}

// Convert regenerates the server and client JSON for one document when they are stale.
// Any cell that fails conversion suppresses both outputs, and the outputs that
// are written are replaced together. Output directories are created as needed.
func (p *Processor) Convert(sourcePath string) DocumentResult {
	result := DocumentResult{
		Path:       sourcePath,
		OutputName: p.opts.Mapping.OutputName(sourcePath),
	}
	log := p.log.With("file", sourcePath)
	serverPath, clientPath := output.Paths(p.opts.OutputDir, result.OutputName)

	stale, err := NeedsRegeneration(p.fs, sourcePath, serverPath, clientPath)
	if err != nil {
		return p.fail(log, result, err)
	}
	if !stale {
		log.Info("skipping, outputs are up to date")
		result.Status = StatusSkipped
		return result
	}

	rows, err := parser.ReadRows(p.fs, sourcePath, p.opts.RawCellValue)
	if err != nil {
		return p.fail(log, result, &FormatError{Path: sourcePath, Err: err})
	}

	schema, err := parser.ExtractSchema(rows)
	if err != nil {
		return p.fail(log, result, &FormatError{Path: sourcePath, Err: err})
	}

	data, convErrs := parser.ConvertRows(schema, rows)
	if len(convErrs) > 0 {
		for _, e := range convErrs {
			log.Error("cell conversion failed",
				"row", e.Row, "header", e.Header, "value", e.Value, "type", e.TypeName, "reason", e.Message)
		}
		return p.fail(log, result, &ConversionErrors{Path: sourcePath, Errors: convErrs})
	}

	var (
		outputs []output.File
		counts  []int
	)
	for _, side := range []struct{ target, path string }{
		{models.MarkServer, serverPath},
		{models.MarkClient, clientPath},
	} {
		doc := parser.Partition(schema, data, side.target)
		if doc.IsEmpty() {
			continue
		}
		payload, err := output.ToJSON(doc, p.opts.Pretty)
		if err != nil {
			return p.fail(log, result, fmt.Errorf("encode %s: %w", side.path, err))
		}
		outputs = append(outputs, output.File{Path: side.path, Data: payload})
		counts = append(counts, len(doc.Data))
	}

	if len(outputs) == 0 {
		log.Warn("no column is marked for server or client output")
		result.Status = StatusNothingToWrite
		return result
	}

	if err := output.EnsureDirs(p.fs, p.opts.OutputDir); err != nil {
		return p.fail(log, result, &FilesystemError{Op: "mkdir", Path: p.opts.OutputDir, Err: err})
	}
	if err := output.WriteFiles(p.fs, outputs); err != nil {
		path := p.opts.OutputDir
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			path = pathErr.Path
		}
		return p.fail(log, result, &FilesystemError{Op: "write", Path: path, Err: err})
	}
	for i, out := range outputs {
		log.Info("wrote output", "path", out.Path, "rows", counts[i])
		result.Written = append(result.Written, out.Path)
	}
	result.Status = StatusSucceeded
	return result
}

func (p *Processor) fail(log logger.Logger, result DocumentResult, err error) DocumentResult {
	var convErrs *ConversionErrors
	if !errors.As(err, &convErrs) {
		log.Error("conversion failed", "err", err)
	}
	result.Status = StatusFailed
	result.Err = err
	return result
}
