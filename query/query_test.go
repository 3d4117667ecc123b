package query_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shadng/sngmcp"
	"github.com/shadng/sngmcp/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func component(slug string) sngmcp.Component {
	return sngmcp.Component{
		Slug:        slug,
		Name:        sngmcp.ComponentName(slug),
		Selector:    sngmcp.ComponentSelector(slug),
		InstallName: slug,
		DocURL:      sngmcp.ComponentDocURL(slug),
		Docs: sngmcp.Docs{
			Title:          "ShadNG " + slug,
			Summary:        "Summary of " + slug + ".",
			Sections:       []sngmcp.Section{{Heading: "Usage", Body: "Use it."}},
			InstallCommand: sngmcp.InstallCommandForSlugs([]string{slug}),
			RawMarkdown:    "# ShadNG " + slug + "\n",
			SourceFiles:    []string{"projects/sng-app/public/ui/" + slug + ".md"},
		},
		Examples: sngmcp.Examples{
			Items:       []sngmcp.Example{{ID: "basic", Title: "Basic", PreviewPath: "basic.ts", CodePath: "basic.ts"}},
			Toc:         []sngmcp.TocItem{{ID: "usage", Label: "Usage"}},
			SourceFiles: []string{"basic.ts"},
		},
		Dependencies: sngmcp.Dependencies{
			Dependencies:     []sngmcp.Dependency{{Name: "@angular/core", Kind: sngmcp.DependencyAngular}},
			PeerDependencies: []string{"@angular/core"},
			SourceFiles:      []string{"projects/sng-ui/src/lib/" + slug + "/" + slug + ".ts"},
		},
	}
}

func newSnapshot() *sngmcp.Snapshot {
	legacy := component("legacy-grid")
	legacy.Deprecated = true
	return &sngmcp.Snapshot{
		Components: []sngmcp.Component{
			component("button"),
			component("date-picker"),
			legacy,
			component("table"),
		},
		Icons: []sngmcp.Icon{
			{Name: "arrow-left", Variant: sngmcp.IconRegular, Category: "Arrows"},
			{Name: "arrow-left", Variant: sngmcp.IconSolid, Category: "Arrows"},
			{Name: "github", Variant: sngmcp.IconRegular, Category: "Brands"},
		},
		AuthoringGuide: sngmcp.AuthoringGuide{
			Title: "ShadNG Component Authoring Guide",
			Rules: []string{"rule"},
		},
		DashboardContext: sngmcp.DashboardContext{
			Title:       "Sng Dashboard",
			Summary:     "Dashboard summary.",
			Sections:    []sngmcp.Section{{Heading: "Layout", Body: "Grid."}},
			RawMarkdown: "# Sng Dashboard\n",
			SourceFiles: []string{"projects/sng-app/public/ai/sng-dashboard.md"},
		},
	}
}

func requireMiss(t *testing.T, err error) *sngmcp.Miss {
	t.Helper()
	var miss *sngmcp.Miss
	require.True(t, errors.As(err, &miss), "expected *sngmcp.Miss, got %v", err)
	return miss
}

// Story: Listing Components

func TestService_ListComponents(t *testing.T) {
	t.Parallel()

	svc := query.NewService(newSnapshot())
	ctx := context.Background()

	t.Run("excludes deprecated by default", func(t *testing.T) {
		t.Parallel()

		list, err := svc.ListComponents(ctx, sngmcp.ListComponentsRequest{})

		require.NoError(t, err)
		assert.Equal(t, 3, list.Count)
		assert.Len(t, list.Components, 3)
		assert.Nil(t, list.QueryFallback)
		assert.Equal(t, []string{"data/snapshot.json"}, list.SourceFiles)
	})

	t.Run("includes deprecated on request", func(t *testing.T) {
		t.Parallel()

		list, err := svc.ListComponents(ctx, sngmcp.ListComponentsRequest{IncludeDeprecated: true})

		require.NoError(t, err)
		assert.Equal(t, 4, list.Count)
		assert.True(t, list.Components[2].Deprecated)
	})

	t.Run("query matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		list, err := svc.ListComponents(ctx, sngmcp.ListComponentsRequest{Query: "  SngDate "})

		require.NoError(t, err)
		require.Equal(t, 1, list.Count)
		assert.Equal(t, sngmcp.ComponentSummary{
			Name:        "SngDatePicker",
			Selector:    "sng-date-picker",
			InstallName: "date-picker",
			DocURL:      "https://shadng.js.org/ui/date-picker.md",
		}, list.Components[0])
	})

	t.Run("unmatched query attaches fallback", func(t *testing.T) {
		t.Parallel()

		// When a query matches nothing
		list, err := svc.ListComponents(ctx, sngmcp.ListComponentsRequest{Query: "Carousel"})

		// Then the listing is empty but carries guidance
		require.NoError(t, err)
		assert.Equal(t, 0, list.Count)
		assert.Equal(t, []sngmcp.ComponentSummary{}, list.Components)
		require.NotNil(t, list.QueryFallback)
		assert.Equal(t, "carousel", list.QueryFallback.Query)
		assert.Equal(t, []string{"carousel"}, list.QueryFallback.MissingComponents)
		assert.Equal(t, "ShadNG Component Authoring Guide", list.QueryFallback.AuthoringGuide.Title)
	})
}

// Story: Component Lookups

func TestService_ComponentDocs(t *testing.T) {
	t.Parallel()

	svc := query.NewService(newSnapshot())
	ctx := context.Background()

	t.Run("resolves any identifier form", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"date-picker", "DatePicker", "SngDatePicker", "sng-date-picker", "date_picker", "  DATE PICKER "} {
			res, err := svc.ComponentDocs(ctx, sngmcp.ComponentDocsRequest{Component: input})
			require.NoError(t, err, input)
			assert.Equal(t, "date-picker", res.Component, input)
		}
	})

	t.Run("omits raw markdown unless requested", func(t *testing.T) {
		t.Parallel()

		res, err := svc.ComponentDocs(ctx, sngmcp.ComponentDocsRequest{Component: "button"})
		require.NoError(t, err)
		assert.Empty(t, res.RawMarkdown)
		assert.Equal(t, "npx @shadng/sng-ui add button", res.InstallCommand)
		assert.Equal(t, "https://shadng.js.org/ui/button.md", res.DocURL)

		res, err = svc.ComponentDocs(ctx, sngmcp.ComponentDocsRequest{Component: "button", IncludeRawMarkdown: true})
		require.NoError(t, err)
		assert.Equal(t, "# ShadNG button\n", res.RawMarkdown)
	})

	t.Run("miss carries complete fallback", func(t *testing.T) {
		t.Parallel()

		// When docs are requested for an unknown component
		_, err := svc.ComponentDocs(ctx, sngmcp.ComponentDocsRequest{Component: "Fancy Widget"})

		// Then a DOC_NOT_FOUND miss is returned
		miss := requireMiss(t, err)
		assert.Equal(t, sngmcp.CodeDocNotFound, miss.Code)
		assert.Equal(t, "Component docs not found for 'fancy-widget'.", miss.Message)
		assert.Equal(t, "Use list_components to discover available component names.", miss.Hint)
		assert.Equal(t, sngmcp.ENOTFOUND, sngmcp.ErrorCode(err))

		// And the fallback lists both the raw and normalized names
		fb := miss.Fallback
		require.NotNil(t, fb)
		assert.Equal(t, []string{"Fancy Widget", "fancy-widget"}, fb.MissingComponents)
		assert.Equal(t, "@shadng/sng-ui", fb.ComponentFallbackPolicy.PreferredSource)
		assert.True(t, fb.ComponentFallbackPolicy.CustomComponentAllowed)
		assert.Equal(t, "If a component or behavior is missing in @shadng/sng-ui, build a custom component that follows ShadNG authoring rules.", fb.ComponentFallbackPolicy.Guidance)
		assert.Equal(t, "ShadNG Component Authoring Guide", fb.AuthoringGuide.Title)
		assert.Equal(t, []string{
			"Use list_components to verify current component coverage.",
			"Use get_component_docs on similar components to mirror API/style patterns.",
			"Create a custom sng- component and keep user classes override-friendly.",
			"Use shadcn/ui design references for visual direction, then implement with Angular and ShadNG patterns.",
		}, fb.SuggestedNextSteps)
		assert.Equal(t, []string{"button", "date-picker", "legacy-grid", "table"}, fb.AvailableComponentSample)
	})

	t.Run("empty component is a miss with guidance", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ComponentDocs(ctx, sngmcp.ComponentDocsRequest{})

		miss := requireMiss(t, err)
		assert.Equal(t, sngmcp.CodeDocNotFound, miss.Code)
		assert.Equal(t, "Component docs not found for ''.", miss.Message)
		assert.NotEmpty(t, miss.Fallback.SuggestedNextSteps)
		assert.Equal(t, []string{"button", "date-picker", "legacy-grid", "table"}, miss.Fallback.AvailableComponentSample)
	})
}

func TestService_ComponentExamples(t *testing.T) {
	t.Parallel()

	svc := query.NewService(newSnapshot())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		res, err := svc.ComponentExamples(ctx, sngmcp.ComponentRequest{Component: "SngTable"})

		require.NoError(t, err)
		assert.Equal(t, "table", res.Component)
		assert.Len(t, res.Examples, 1)
		assert.Equal(t, []sngmcp.TocItem{{ID: "usage", Label: "Usage"}}, res.Toc)
		assert.Equal(t, []string{"basic.ts"}, res.SourceFiles)
	})

	t.Run("miss", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ComponentExamples(ctx, sngmcp.ComponentRequest{Component: "carousel"})

		miss := requireMiss(t, err)
		assert.Equal(t, sngmcp.CodeComponentNotFound, miss.Code)
		assert.Equal(t, "Component page not found for 'carousel'.", miss.Message)
		assert.Equal(t, "Use list_components to discover valid names.", miss.Hint)
		assert.Equal(t, []string{"carousel"}, miss.Fallback.MissingComponents)
	})
}

func TestService_DependencyMap(t *testing.T) {
	t.Parallel()

	svc := query.NewService(newSnapshot())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		res, err := svc.DependencyMap(ctx, sngmcp.ComponentRequest{Component: "button"})

		require.NoError(t, err)
		assert.Equal(t, "button", res.Component)
		assert.Equal(t, "@angular/core", res.Dependencies[0].Name)
		assert.Equal(t, []string{"@angular/core"}, res.PeerDependencies)
	})

	t.Run("miss", func(t *testing.T) {
		t.Parallel()

		_, err := svc.DependencyMap(ctx, sngmcp.ComponentRequest{Component: "carousel"})

		miss := requireMiss(t, err)
		assert.Equal(t, sngmcp.CodeComponentNotFound, miss.Code)
		assert.Equal(t, "Component source not found for 'carousel'.", miss.Message)
	})
}

// Story: Install Commands

func TestService_InstallCommand(t *testing.T) {
	t.Parallel()

	svc := query.NewService(newSnapshot())
	ctx := context.Background()

	tests := []struct {
		name string
		req  sngmcp.InstallCommandRequest
		want []string
	}{
		{
			name: "no arguments installs everything",
			req:  sngmcp.InstallCommandRequest{},
			want: []string{"npx @shadng/sng-ui add --all"},
		},
		{
			name: "init only",
			req:  sngmcp.InstallCommandRequest{IncludeInit: true},
			want: []string{"npx @shadng/sng-ui init"},
		},
		{
			name: "deduplicated in input order",
			req:  sngmcp.InstallCommandRequest{Components: []string{"Table", "sng-button", "table"}},
			want: []string{"npx @shadng/sng-ui add table button"},
		},
		{
			name: "init then add then all",
			req: sngmcp.InstallCommandRequest{
				Components:  []string{"button", "table"},
				IncludeInit: true,
				IncludeAll:  true,
			},
			want: []string{
				"npx @shadng/sng-ui init",
				"npx @shadng/sng-ui add button table",
				"npx @shadng/sng-ui add --all",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := svc.InstallCommand(ctx, tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Commands)
			assert.Equal(t, []string{"data/snapshot.json"}, res.SourceFiles)
		})
	}

	t.Run("unknown components are all reported", func(t *testing.T) {
		t.Parallel()

		_, err := svc.InstallCommand(ctx, sngmcp.InstallCommandRequest{
			Components: []string{"button", "Fancy Widget", "carousel", "carousel"},
		})

		miss := requireMiss(t, err)
		assert.Equal(t, sngmcp.CodeComponentNotFound, miss.Code)
		assert.Equal(t, "Unknown component(s): fancy-widget, carousel, carousel", miss.Message)
		assert.Equal(t, []string{"fancy-widget", "carousel"}, miss.Fallback.MissingComponents)
	})

	t.Run("empty component entry is invalid input", func(t *testing.T) {
		t.Parallel()

		_, err := svc.InstallCommand(ctx, sngmcp.InstallCommandRequest{
			Components: []string{"button", ""},
		})

		assert.Equal(t, sngmcp.EINVALID, sngmcp.ErrorCode(err))
		assert.Equal(t, "components[1] is required", sngmcp.ErrorMessage(err))
	})
}

// Story: Icon Search

func TestService_IconCatalog(t *testing.T) {
	t.Parallel()

	svc := query.NewService(newSnapshot())
	ctx := context.Background()

	t.Run("filters by query and variant", func(t *testing.T) {
		t.Parallel()

		res, err := svc.IconCatalog(ctx, sngmcp.IconCatalogRequest{Query: "ARROWS", Variant: sngmcp.IconSolid})

		require.NoError(t, err)
		assert.Equal(t, []sngmcp.Icon{{Name: "arrow-left", Variant: sngmcp.IconSolid, Category: "Arrows"}}, res.Icons)
		assert.Equal(t, 1, res.Count)
		assert.Nil(t, res.FallbackSuggestion)
		assert.Equal(t, query.IconFallbackPolicy, res.FallbackPolicy)
	})

	t.Run("limit truncates but count reports all", func(t *testing.T) {
		t.Parallel()

		res, err := svc.IconCatalog(ctx, sngmcp.IconCatalogRequest{Limit: 1})

		require.NoError(t, err)
		assert.Len(t, res.Icons, 1)
		assert.Equal(t, 3, res.Count)
	})

	t.Run("no match suggests inline svg", func(t *testing.T) {
		t.Parallel()

		// When nothing matches
		res, err := svc.IconCatalog(ctx, sngmcp.IconCatalogRequest{Query: "unicorn"})

		// Then the result is empty with a fallback suggestion
		require.NoError(t, err)
		assert.Equal(t, []sngmcp.Icon{}, res.Icons)
		assert.Equal(t, 0, res.Count)
		require.NotNil(t, res.FallbackSuggestion)
		assert.Equal(t, "inline-svg-fallback", res.FallbackSuggestion.Strategy)
		assert.Equal(t, "No matching icon found for 'unicorn'.", res.FallbackSuggestion.Reason)
		assert.Equal(t, `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor">...</svg>`, res.FallbackSuggestion.Example)
		assert.Equal(t, "@shadng/sng-icons", res.FallbackPolicy.PreferredSource)
		assert.True(t, res.FallbackPolicy.InlineSVGAllowed)
	})

	t.Run("no match without query", func(t *testing.T) {
		t.Parallel()

		empty := newSnapshot()
		empty.Icons = []sngmcp.Icon{}

		res, err := query.NewService(empty).IconCatalog(ctx, sngmcp.IconCatalogRequest{})

		require.NoError(t, err)
		assert.Equal(t, "No matching icon found for current filters.", res.FallbackSuggestion.Reason)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		t.Parallel()

		for _, req := range []sngmcp.IconCatalogRequest{
			{Limit: 201},
			{Limit: -1},
			{Variant: "outline"},
		} {
			_, err := svc.IconCatalog(ctx, req)
			assert.Equal(t, sngmcp.EINVALID, sngmcp.ErrorCode(err), fmt.Sprintf("%+v", req))
		}
	})
}

func TestService_DashboardContext(t *testing.T) {
	t.Parallel()

	svc := query.NewService(newSnapshot())

	res, err := svc.DashboardContext(context.Background(), sngmcp.DashboardContextRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Sng Dashboard", res.Title)
	assert.Equal(t, "https://shadng.js.org/ai/sng-dashboard.md", res.ContextURL)
	assert.Empty(t, res.RawMarkdown)

	res, err = svc.DashboardContext(context.Background(), sngmcp.DashboardContextRequest{IncludeRawMarkdown: true})
	require.NoError(t, err)
	assert.Equal(t, "# Sng Dashboard\n", res.RawMarkdown)
}
