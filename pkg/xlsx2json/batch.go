package xlsx2json

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/roowe/xlsx2json-go/pkg/xlsx2json/output"
	"golang.org/x/sync/errgroup"
)

// BatchResult aggregates the outcome of every document in a batch.
type BatchResult struct {
	// Documents holds one result per discovered document, in discovery order.
	Documents []DocumentResult
	// Workers is the worker pool size used.
	Workers int
	// Elapsed is the wall time of the whole batch.
	Elapsed time.Duration
}

// Failed returns the results of documents that failed.
func (r *BatchResult) Failed() []DocumentResult {
	return r.filter(func(d DocumentResult) bool { return d.Status == StatusFailed })
}

// Succeeded returns the results of documents that did not fail, including skipped ones.
func (r *BatchResult) Succeeded() []DocumentResult {
	return r.filter(func(d DocumentResult) bool { return d.Status != StatusFailed })
}

// Skipped returns the number of documents whose outputs were already current.
func (r *BatchResult) Skipped() int {
	return len(r.filter(func(d DocumentResult) bool { return d.Status == StatusSkipped }))
}

func (r *BatchResult) filter(keep func(DocumentResult) bool) []DocumentResult {
	var out []DocumentResult
	for _, d := range r.Documents {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// Run converts every document found under input concurrently. A failing
// document never stops the others; once all have finished, a *BatchError
// is returned alongside the result if any of them failed.
func (p *Processor) Run(input string) (*BatchResult, error) {
	start := time.Now()

	paths, err := Discover(p.fs, input)
	if err != nil {
		return nil, err
	}
	if err := output.EnsureDirs(p.fs, p.opts.OutputDir); err != nil {
		return nil, &FilesystemError{Op: "mkdir", Path: p.opts.OutputDir, Err: err}
	}

	workers := p.opts.WorkerCount()
	p.log.Info("converting documents", "documents", len(paths), "workers", workers)

	collisions := p.outputCollisions(paths)
	results := make([]DocumentResult, len(paths))
	total := int64(len(paths))
	var done atomic.Int64

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		if err, ok := collisions[path]; ok {
			results[i] = p.fail(p.log.With("file", path), DocumentResult{
				Path:       path,
				OutputName: p.opts.Mapping.OutputName(path),
			}, err)
			done.Add(1)
			continue
		}
		i, path := i, path
		g.Go(func() error {
			results[i] = p.convertIsolated(path)
			p.log.Debug("progress", "done", done.Add(1), "total", total)
			return nil
		})
	}
	_ = g.Wait()

	result := &BatchResult{
		Documents: results,
		Workers:   workers,
		Elapsed:   time.Since(start),
	}
	failed := len(result.Failed())
	p.log.Info("batch finished",
		"succeeded", len(paths)-failed,
		"failed", failed,
		"skipped", result.Skipped(),
		"workers", workers,
		"elapsed", result.Elapsed.Round(time.Millisecond))

	if failed > 0 {
		return result, &BatchError{Failed: failed, Total: len(paths)}
	}
	return result, nil
}

// convertIsolated runs Convert and turns a panic into a failed result.
func (p *Processor) convertIsolated(path string) (result DocumentResult) {
	defer func() {
		if r := recover(); r != nil {
			result = p.fail(p.log.With("file", path), DocumentResult{
				Path:       path,
				OutputName: p.opts.Mapping.OutputName(path),
			}, fmt.Errorf("panic during conversion: %v", r))
		}
	}()
	return p.Convert(path)
}

// outputCollisions finds documents that resolve to the same output name as
// another document. Each of them gets a ConfigurationError.
func (p *Processor) outputCollisions(paths []string) map[string]error {
	byName := make(map[string][]string)
	for _, path := range paths {
		name := p.opts.Mapping.OutputName(path)
		byName[name] = append(byName[name], path)
	}

	collisions := make(map[string]error)
	for name, group := range byName {
		if len(group) < 2 {
			continue
		}
		sort.Strings(group)
		for _, path := range group {
			collisions[path] = &ConfigurationError{
				Source: path,
				Err:    fmt.Errorf("output name %q is shared by %s", name, strings.Join(group, ", ")),
			}
		}
	}
	return collisions
}
