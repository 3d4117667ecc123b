package mcp

import (
	"context"
	"encoding/json"

	"github.com/shadng/sngmcp"
)

// CatalogTools returns the tool set backed by catalog.
func CatalogTools(catalog sngmcp.CatalogService) []Tool {
	return []Tool{
		{
			Name:        "list_components",
			Title:       "List Components",
			Description: "List available ShadNG UI components with selectors and docs URLs.",
			Action:      "list components",
			InputSchema: inputSchema(map[string]any{
				"query":             map[string]any{"type": "string", "description": "Case-insensitive filter on name, selector, or install name"},
				"includeDeprecated": map[string]any{"type": "boolean"},
			}, nil),
			Handle: func(ctx context.Context, args json.RawMessage) (any, error) {
				req, err := decode[sngmcp.ListComponentsRequest](args)
				if err != nil {
					return nil, err
				}
				return catalog.ListComponents(ctx, req)
			},
		},
		{
			Name:        "get_component_docs",
			Title:       "Get Component Docs",
			Description: "Return parsed markdown docs for a ShadNG component.",
			Action:      "load component docs",
			InputSchema: inputSchema(map[string]any{
				"component":          map[string]any{"type": "string", "description": "Component slug, name, or selector"},
				"includeRawMarkdown": map[string]any{"type": "boolean"},
			}, []string{"component"}),
			Handle: func(ctx context.Context, args json.RawMessage) (any, error) {
				req, err := decode[sngmcp.ComponentDocsRequest](args)
				if err != nil {
					return nil, err
				}
				return catalog.ComponentDocs(ctx, req)
			},
		},
		{
			Name:        "get_component_examples",
			Title:       "Get Component Examples",
			Description: "Return available examples and toc entries for a component page.",
			Action:      "load component examples",
			InputSchema: inputSchema(map[string]any{
				"component": map[string]any{"type": "string", "description": "Component slug, name, or selector"},
			}, []string{"component"}),
			Handle: func(ctx context.Context, args json.RawMessage) (any, error) {
				req, err := decode[sngmcp.ComponentRequest](args)
				if err != nil {
					return nil, err
				}
				return catalog.ComponentExamples(ctx, req)
			},
		},
		{
			Name:        "get_install_command",
			Title:       "Get Install Command",
			Description: "Return canonical install commands for @shadng/sng-ui.",
			Action:      "build install command",
			InputSchema: inputSchema(map[string]any{
				"components":  map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 1}},
				"includeInit": map[string]any{"type": "boolean"},
				"includeAll":  map[string]any{"type": "boolean"},
			}, nil),
			Handle: func(ctx context.Context, args json.RawMessage) (any, error) {
				req, err := decode[sngmcp.InstallCommandRequest](args)
				if err != nil {
					return nil, err
				}
				return catalog.InstallCommand(ctx, req)
			},
		},
		{
			Name:        "get_dependency_map",
			Title:       "Get Dependency Map",
			Description: "Return inferred Angular/CDK dependency usage for a component.",
			Action:      "build dependency map",
			InputSchema: inputSchema(map[string]any{
				"component": map[string]any{"type": "string", "description": "Component slug, name, or selector"},
			}, []string{"component"}),
			Handle: func(ctx context.Context, args json.RawMessage) (any, error) {
				req, err := decode[sngmcp.ComponentRequest](args)
				if err != nil {
					return nil, err
				}
				return catalog.DependencyMap(ctx, req)
			},
		},
		{
			Name:        "get_icon_catalog",
			Title:       "Get Icon Catalog",
			Description: "Return icon names from @shadng/sng-icons with optional filtering.",
			Action:      "load icon catalog",
			InputSchema: inputSchema(map[string]any{
				"query":   map[string]any{"type": "string", "description": "Case-insensitive filter on name or category"},
				"variant": map[string]any{"type": "string", "enum": []string{"regular", "solid"}},
				"limit":   map[string]any{"type": "integer", "minimum": 1, "maximum": 200},
			}, nil),
			Handle: func(ctx context.Context, args json.RawMessage) (any, error) {
				req, err := decode[sngmcp.IconCatalogRequest](args)
				if err != nil {
					return nil, err
				}
				return catalog.IconCatalog(ctx, req)
			},
		},
		{
			Name:        "get_dashboard_context",
			Title:       "Get Dashboard Context",
			Description: "Return parsed AI context for the Sng Dashboard page.",
			Action:      "load dashboard context",
			InputSchema: inputSchema(map[string]any{
				"includeRawMarkdown": map[string]any{"type": "boolean"},
			}, nil),
			Handle: func(ctx context.Context, args json.RawMessage) (any, error) {
				req, err := decode[sngmcp.DashboardContextRequest](args)
				if err != nil {
					return nil, err
				}
				return catalog.DashboardContext(ctx, req)
			},
		},
	}
}
