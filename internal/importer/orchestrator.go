package importer

import (
	"log/slog"

	"refeitorio/internal/model"
	"refeitorio/internal/parser"
)

// Options one import call: the raw grid plus what the caller knows.
type Options struct {
	Grid    [][]string
	Shifts  []string // shift codes; empty means lunch
	ActorID string   // recorded as creator of new day rows
	Debug   bool     // attach the diagnostic payload, writes unchanged
}

// Orchestrator drives the pipeline: detect layout, assemble records,
// expand each record across the requested shifts, upsert every tuple,
// aggregate per-tuple outcomes. A single failure never aborts the batch.
type Orchestrator struct {
	engine Upserter
	logger *slog.Logger
}

// NewOrchestrator creates an orchestrator over the given engine.
func NewOrchestrator(engine Upserter) *Orchestrator {
	return &Orchestrator{
		engine: engine,
		logger: slog.Default(),
	}
}

// Import runs one synchronous import. It always returns the
// {created, errors} shape: an empty grid yields two empty lists, and
// the caller decides whether that is an "empty file" condition.
func (o *Orchestrator) Import(opts Options) *model.ImportResult {
	result := &model.ImportResult{
		Created: []model.CreatedEntry{},
		Errors:  []model.ImportError{},
	}

	detection := parser.DetectLayout(opts.Grid)
	if opts.Debug {
		result.Debug = debugInfo(opts.Grid, detection)
	}
	if len(opts.Grid) == 0 {
		return result
	}

	records, assemblyErrs := parser.Assemble(opts.Grid, detection.Layout)
	result.Errors = append(result.Errors, assemblyErrs...)

	shifts := parser.ResolveShifts(opts.Shifts)

	for _, rec := range records {
		for _, shift := range shifts {
			res, err := o.engine.Upsert(rec, shift, opts.ActorID)
			if err != nil {
				result.Errors = append(result.Errors, model.ImportError{
					Locator: rec.Locator,
					Message: err.Error(),
				})
				continue
			}
			result.Created = append(result.Created, model.CreatedEntry{
				ID:     res.MenuDayID,
				Date:   rec.Date,
				Shift:  res.Shift,
				Action: res.Action,
			})
		}
	}

	o.logger.Info("import finished",
		"layout", string(detection.Layout),
		"records", len(records),
		"created", len(result.Created),
		"errors", len(result.Errors),
	)

	return result
}

func debugInfo(grid [][]string, detection parser.Detection) *model.DebugInfo {
	info := &model.DebugInfo{
		Rows:            [][]string{},
		RowCount:        len(grid),
		Layout:          string(detection.Layout),
		ColumnarProbe:   detection.ColumnarProbe,
		TransposedProbe: detection.TransposedProbe,
	}
	for i, row := range grid {
		if i == 3 {
			break
		}
		info.Rows = append(info.Rows, row)
	}
	for _, row := range grid {
		if len(row) > info.ColCount {
			info.ColCount = len(row)
		}
	}
	return info
}
