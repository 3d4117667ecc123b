// Package query answers catalog lookups against a loaded snapshot.
package query

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shadng/sngmcp"
)

// Icon limit bounds.
const (
	DefaultIconLimit = 50
	MaxIconLimit     = 200
)

// Ensure Service implements sngmcp.CatalogService at compile time.
var _ sngmcp.CatalogService = (*Service)(nil)

// Service implements sngmcp.CatalogService over an immutable snapshot.
type Service struct {
	snapshot *sngmcp.Snapshot
	index    *Index
	validate *validator.Validate
}

// NewService creates a service over snapshot. The snapshot must not be
// modified afterwards.
func NewService(snapshot *sngmcp.Snapshot) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Service{
		snapshot: snapshot,
		index:    NewIndex(snapshot.Components, DefaultMemoSize),
		validate: v,
	}
}

func (s *Service) ListComponents(ctx context.Context, req sngmcp.ListComponentsRequest) (*sngmcp.ComponentList, error) {
	q := strings.ToLower(strings.TrimSpace(req.Query))

	list := &sngmcp.ComponentList{
		Components:  []sngmcp.ComponentSummary{},
		SourceFiles: []string{sngmcp.SnapshotSourceFile},
	}
	for _, c := range s.snapshot.Components {
		if c.Deprecated && !req.IncludeDeprecated {
			continue
		}
		if q != "" && !containsFold(q, c.Name, c.Selector, c.InstallName) {
			continue
		}
		list.Components = append(list.Components, sngmcp.ComponentSummary{
			Name:        c.Name,
			Selector:    c.Selector,
			InstallName: c.InstallName,
			DocURL:      c.DocURL,
			Deprecated:  c.Deprecated,
		})
	}
	list.Count = len(list.Components)

	if q != "" && list.Count == 0 {
		list.QueryFallback = &sngmcp.QueryFallback{
			Query:             q,
			ComponentFallback: componentFallback(s.snapshot, []string{q}),
		}
	}
	return list, nil
}

func (s *Service) ComponentDocs(ctx context.Context, req sngmcp.ComponentDocsRequest) (*sngmcp.ComponentDocsResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	c, slug := s.index.Lookup(req.Component)
	if c == nil {
		return nil, s.miss(sngmcp.CodeDocNotFound,
			fmt.Sprintf("Component docs not found for '%s'.", slug), hintListDocs,
			req.Component, slug)
	}

	res := &sngmcp.ComponentDocsResult{
		Component:      slug,
		Title:          c.Docs.Title,
		Summary:        c.Docs.Summary,
		Sections:       nonNil(c.Docs.Sections),
		InstallCommand: c.Docs.InstallCommand,
		DocURL:         c.DocURL,
		SourceFiles:    nonNil(c.Docs.SourceFiles),
	}
	if res.DocURL == "" {
		res.DocURL = sngmcp.ComponentDocURL(slug)
	}
	if req.IncludeRawMarkdown {
		res.RawMarkdown = c.Docs.RawMarkdown
	}
	return res, nil
}

func (s *Service) ComponentExamples(ctx context.Context, req sngmcp.ComponentRequest) (*sngmcp.ComponentExamplesResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	c, slug := s.index.Lookup(req.Component)
	if c == nil {
		return nil, s.miss(sngmcp.CodeComponentNotFound,
			fmt.Sprintf("Component page not found for '%s'.", slug), hintListComponents,
			req.Component, slug)
	}

	return &sngmcp.ComponentExamplesResult{
		Component:   slug,
		Examples:    nonNil(c.Examples.Items),
		Toc:         nonNil(c.Examples.Toc),
		SourceFiles: nonNil(c.Examples.SourceFiles),
	}, nil
}

// InstallCommand fails with a single miss listing every unresolved
// component when any of them is unknown.
func (s *Service) InstallCommand(ctx context.Context, req sngmcp.InstallCommandRequest) (*sngmcp.InstallCommandResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	var slugs, missing []string
	seen := make(map[string]bool, len(req.Components))
	for _, name := range req.Components {
		slug, ok := s.index.Resolve(name)
		if !ok {
			missing = append(missing, sngmcp.NormalizeSlug(name))
			continue
		}
		if !seen[slug] {
			seen[slug] = true
			slugs = append(slugs, slug)
		}
	}

	if len(missing) > 0 {
		return nil, s.miss(sngmcp.CodeComponentNotFound,
			"Unknown component(s): "+strings.Join(missing, ", "), hintListComponents,
			missing...)
	}

	commands := []string{}
	if req.IncludeInit {
		commands = append(commands, sngmcp.InitCommand)
	}
	if len(slugs) > 0 {
		commands = append(commands, sngmcp.InstallCommandForSlugs(slugs))
	}
	if req.IncludeAll || len(commands) == 0 {
		commands = append(commands, sngmcp.AddAllCommand)
	}

	return &sngmcp.InstallCommandResult{
		Commands:    commands,
		SourceFiles: []string{sngmcp.SnapshotSourceFile},
	}, nil
}

func (s *Service) DependencyMap(ctx context.Context, req sngmcp.ComponentRequest) (*sngmcp.DependencyMapResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	c, slug := s.index.Lookup(req.Component)
	if c == nil {
		return nil, s.miss(sngmcp.CodeComponentNotFound,
			fmt.Sprintf("Component source not found for '%s'.", slug), hintListComponents,
			req.Component, slug)
	}

	return &sngmcp.DependencyMapResult{
		Component:        slug,
		Dependencies:     nonNil(c.Dependencies.Dependencies),
		PeerDependencies: nonNil(c.Dependencies.PeerDependencies),
		SourceFiles:      nonNil(c.Dependencies.SourceFiles),
	}, nil
}

// IconCatalog returns at most Limit icons; Count reports every match.
func (s *Service) IconCatalog(ctx context.Context, req sngmcp.IconCatalogRequest) (*sngmcp.IconCatalogResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = DefaultIconLimit
	}
	limit = min(max(limit, 1), MaxIconLimit)
	q := strings.ToLower(strings.TrimSpace(req.Query))

	var matches []sngmcp.Icon
	for _, icon := range s.snapshot.Icons {
		if req.Variant != "" && icon.Variant != req.Variant {
			continue
		}
		if q != "" && !containsFold(q, icon.Name, icon.Category) {
			continue
		}
		matches = append(matches, icon)
	}

	res := &sngmcp.IconCatalogResult{
		Icons:          make([]sngmcp.Icon, 0, min(len(matches), limit)),
		Count:          len(matches),
		FallbackPolicy: IconFallbackPolicy,
		SourceFiles:    []string{sngmcp.SnapshotSourceFile},
	}
	res.Icons = append(res.Icons, matches[:min(len(matches), limit)]...)
	if res.Count == 0 {
		res.FallbackSuggestion = iconFallbackSuggestion(req.Query)
	}
	return res, nil
}

func (s *Service) DashboardContext(ctx context.Context, req sngmcp.DashboardContextRequest) (*sngmcp.DashboardContextResult, error) {
	d := s.snapshot.DashboardContext
	res := &sngmcp.DashboardContextResult{
		Title:       d.Title,
		Summary:     d.Summary,
		Sections:    nonNil(d.Sections),
		ContextURL:  d.ContextURL,
		SourceFiles: nonNil(d.SourceFiles),
	}
	if res.ContextURL == "" {
		res.ContextURL = sngmcp.DashboardContextURL
	}
	if req.IncludeRawMarkdown {
		res.RawMarkdown = d.RawMarkdown
	}
	return res, nil
}

func (s *Service) miss(code sngmcp.ToolErrorCode, message, hint string, requested ...string) *sngmcp.Miss {
	return &sngmcp.Miss{
		Code:     code,
		Message:  message,
		Hint:     hint,
		Fallback: componentFallback(s.snapshot, requested),
	}
}

// check validates a request and reports the first failing field as EINVALID.
func (s *Service) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return sngmcp.Errorf(sngmcp.EINVALID, "%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return sngmcp.Errorf(sngmcp.EINVALID, "%s is %s", fe.Field(), fe.Tag())
	}
	return sngmcp.Errorf(sngmcp.EINVALID, "invalid request: %s", err)
}

func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
