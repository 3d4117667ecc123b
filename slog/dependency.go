package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shadng/sngmcp"
)

// Ensure LoggingDependencyInferrer implements sngmcp.DependencyInferrer.
var _ sngmcp.DependencyInferrer = (*LoggingDependencyInferrer)(nil)

// LoggingDependencyInferrer wraps a DependencyInferrer with debug logging.
// Inference runs once per component, so lines are logged at debug level.
type LoggingDependencyInferrer struct {
	next   sngmcp.DependencyInferrer
	logger *slog.Logger
}

// NewLoggingDependencyInferrer creates a new LoggingDependencyInferrer.
func NewLoggingDependencyInferrer(next sngmcp.DependencyInferrer, logger *slog.Logger) *LoggingDependencyInferrer {
	return &LoggingDependencyInferrer{next: next, logger: logger}
}

func (d *LoggingDependencyInferrer) InferDependencies(ctx context.Context, slug string) (deps *sngmcp.Dependencies, err error) {
	defer func(begin time.Time) {
		count, files := 0, 0
		if deps != nil {
			count, files = len(deps.Dependencies), len(deps.SourceFiles)
		}
		d.logger.Debug("dependency inference",
			"component", slug,
			"count", count,
			"files", files,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.InferDependencies(ctx, slug)
}
