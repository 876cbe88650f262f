// Package observability provides the structured parse trace. Each parse
// gets a generated id so interleaved traces from concurrent parses stay
// attributable.
package observability

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const (
	// LogFieldParseID is the field name for the parse id.
	LogFieldParseID = "parse_id"
	// LogFieldStage is the field name for the pipeline stage.
	LogFieldStage = "stage"
)

// Trace is the stage-boundary debug sink. A disabled trace does no
// formatting work at all.
type Trace struct {
	enabled bool
	parseID string
	logger  *slog.Logger
}

// NewTrace creates a trace writing to logger. A nil logger uses the
// process default.
func NewTrace(logger *slog.Logger, enabled bool) *Trace {
	if !enabled {
		return &Trace{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Trace{
		enabled: true,
		parseID: uuid.New().String(),
		logger:  logger,
	}
}

// Enabled reports whether the trace is recording.
func (t *Trace) Enabled() bool {
	return t != nil && t.enabled
}

// Stage records one pipeline stage boundary with its key/value detail.
func (t *Trace) Stage(stage string, kvs ...any) {
	if !t.Enabled() {
		return
	}
	attrs := make([]any, 0, len(kvs)+4)
	attrs = append(attrs, LogFieldParseID, t.parseID, LogFieldStage, stage)
	attrs = append(attrs, kvs...)
	t.logger.Log(context.Background(), slog.LevelDebug, "parse stage", attrs...)
}
