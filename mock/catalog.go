package mock

import (
	"context"

	"github.com/shadng/sngmcp"
)

var _ sngmcp.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of sngmcp.CatalogService.
type CatalogService struct {
	ListComponentsFn    func(ctx context.Context, req sngmcp.ListComponentsRequest) (*sngmcp.ComponentList, error)
	ComponentDocsFn     func(ctx context.Context, req sngmcp.ComponentDocsRequest) (*sngmcp.ComponentDocsResult, error)
	ComponentExamplesFn func(ctx context.Context, req sngmcp.ComponentRequest) (*sngmcp.ComponentExamplesResult, error)
	InstallCommandFn    func(ctx context.Context, req sngmcp.InstallCommandRequest) (*sngmcp.InstallCommandResult, error)
	DependencyMapFn     func(ctx context.Context, req sngmcp.ComponentRequest) (*sngmcp.DependencyMapResult, error)
	IconCatalogFn       func(ctx context.Context, req sngmcp.IconCatalogRequest) (*sngmcp.IconCatalogResult, error)
	DashboardContextFn  func(ctx context.Context, req sngmcp.DashboardContextRequest) (*sngmcp.DashboardContextResult, error)
}

func (s *CatalogService) ListComponents(ctx context.Context, req sngmcp.ListComponentsRequest) (*sngmcp.ComponentList, error) {
	return s.ListComponentsFn(ctx, req)
}

func (s *CatalogService) ComponentDocs(ctx context.Context, req sngmcp.ComponentDocsRequest) (*sngmcp.ComponentDocsResult, error) {
	return s.ComponentDocsFn(ctx, req)
}

func (s *CatalogService) ComponentExamples(ctx context.Context, req sngmcp.ComponentRequest) (*sngmcp.ComponentExamplesResult, error) {
	return s.ComponentExamplesFn(ctx, req)
}

func (s *CatalogService) InstallCommand(ctx context.Context, req sngmcp.InstallCommandRequest) (*sngmcp.InstallCommandResult, error) {
	return s.InstallCommandFn(ctx, req)
}

func (s *CatalogService) DependencyMap(ctx context.Context, req sngmcp.ComponentRequest) (*sngmcp.DependencyMapResult, error) {
	return s.DependencyMapFn(ctx, req)
}

func (s *CatalogService) IconCatalog(ctx context.Context, req sngmcp.IconCatalogRequest) (*sngmcp.IconCatalogResult, error) {
	return s.IconCatalogFn(ctx, req)
}

func (s *CatalogService) DashboardContext(ctx context.Context, req sngmcp.DashboardContextRequest) (*sngmcp.DashboardContextResult, error) {
	return s.DashboardContextFn(ctx, req)
}
