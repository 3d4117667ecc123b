package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shadng/sngmcp"
)

// Ensure LoggingCatalogService implements sngmcp.CatalogService.
var _ sngmcp.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with per-lookup logging.
type LoggingCatalogService struct {
	next   sngmcp.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next sngmcp.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

func (s *LoggingCatalogService) ListComponents(ctx context.Context, req sngmcp.ListComponentsRequest) (res *sngmcp.ComponentList, err error) {
	defer func(begin time.Time) {
		count := 0
		if res != nil {
			count = res.Count
		}
		s.logger.Info("list components",
			"query", req.Query,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListComponents(ctx, req)
}

func (s *LoggingCatalogService) ComponentDocs(ctx context.Context, req sngmcp.ComponentDocsRequest) (res *sngmcp.ComponentDocsResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("component docs",
			"component", req.Component,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ComponentDocs(ctx, req)
}

func (s *LoggingCatalogService) ComponentExamples(ctx context.Context, req sngmcp.ComponentRequest) (res *sngmcp.ComponentExamplesResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("component examples",
			"component", req.Component,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ComponentExamples(ctx, req)
}

func (s *LoggingCatalogService) InstallCommand(ctx context.Context, req sngmcp.InstallCommandRequest) (res *sngmcp.InstallCommandResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("install command",
			"components", req.Components,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.InstallCommand(ctx, req)
}

func (s *LoggingCatalogService) DependencyMap(ctx context.Context, req sngmcp.ComponentRequest) (res *sngmcp.DependencyMapResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("dependency map",
			"component", req.Component,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DependencyMap(ctx, req)
}

func (s *LoggingCatalogService) IconCatalog(ctx context.Context, req sngmcp.IconCatalogRequest) (res *sngmcp.IconCatalogResult, err error) {
	defer func(begin time.Time) {
		count := 0
		if res != nil {
			count = res.Count
		}
		s.logger.Info("icon catalog",
			"query", req.Query,
			"variant", req.Variant,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.IconCatalog(ctx, req)
}

func (s *LoggingCatalogService) DashboardContext(ctx context.Context, req sngmcp.DashboardContextRequest) (res *sngmcp.DashboardContextResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("dashboard context",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DashboardContext(ctx, req)
}
