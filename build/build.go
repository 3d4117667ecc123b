// Package build assembles the catalog snapshot from the component corpus.
// It fans out one task per component, merges the results into a single
// snapshot, and persists it only when its content changed.
package build

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shadng/sngmcp"
	"github.com/shadng/sngmcp/dts"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the component fan-out when none is configured.
const DefaultConcurrency = 8

// UnknownRevision is recorded when the source version cannot be resolved.
const UnknownRevision = "unknown"

// Builder orchestrates a whole-corpus snapshot build.
type Builder struct {
	Corpus       sngmcp.Corpus
	Dependencies sngmcp.DependencyInferrer
	Store        sngmcp.SnapshotStore
	Policy       *sngmcp.Policy
	Concurrency  int

	// Now returns the build timestamp. Defaults to time.Now.
	Now func() time.Time

	// Revision returns the source version of the corpus.
	Revision func(ctx context.Context) string
}

// Status is the outcome of a build.
type Status int

const (
	// StatusWritten means a new snapshot was persisted.
	StatusWritten Status = iota
	// StatusUpToDate means the stored snapshot already matched the corpus.
	StatusUpToDate
	// StatusKept means the corpus was absent and the stored snapshot was kept.
	StatusKept
)

func (s Status) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusUpToDate:
		return "up-to-date"
	case StatusKept:
		return "kept"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Warning records an input that could not be read and was degraded to
// empty fields.
type Warning struct {
	Input string
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Input, w.Err)
}

// Result holds the outcome of a build.
type Result struct {
	ID         string
	Status     Status
	Components int
	Icons      int
	Hash       string
	Warnings   []Warning
	Snapshot   *sngmcp.Snapshot
}

// componentResult holds the outcome of building a single component.
type componentResult struct {
	component sngmcp.Component
	warnings  []Warning
}

var installPattern = regexp.MustCompile("npx\\s+@shadng/sng-ui\\s+add\\s+[^\\n`]+")

// Build runs a whole-corpus build.
//
// When the corpus is unavailable the stored snapshot is kept; with no
// stored snapshot either, Build returns EUNAVAILABLE.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	id := uuid.NewString()

	ok, err := b.Corpus.Available(ctx)
	if err != nil {
		return nil, fmt.Errorf("check corpus: %w", err)
	}
	if !ok {
		return b.keep(ctx, id)
	}

	slugs, err := b.Corpus.ComponentSlugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	components := make([]componentResult, len(slugs))
	var (
		icons        []sngmcp.Icon
		iconWarnings []Warning
		dashboard    sngmcp.DashboardContext
		dashWarnings []Warning
		guide        sngmcp.AuthoringGuide
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, slug := range slugs {
		g.Go(func() error {
			res, err := b.buildComponent(gctx, slug)
			if err != nil {
				return err
			}
			components[i] = res
			return nil
		})
	}
	g.Go(func() error {
		var err error
		icons, iconWarnings, err = b.buildIcons(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard, dashWarnings, err = b.buildDashboard(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		guide, err = b.buildAuthoringGuide(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &sngmcp.Snapshot{
		Components:       make([]sngmcp.Component, 0, len(components)),
		Icons:            icons,
		AuthoringGuide:   guide,
		DashboardContext: dashboard,
	}
	var warnings []Warning
	for _, res := range components {
		snapshot.Components = append(snapshot.Components, res.component)
		warnings = append(warnings, res.warnings...)
	}
	warnings = append(warnings, iconWarnings...)
	warnings = append(warnings, dashWarnings...)

	return b.persist(ctx, id, snapshot, warnings)
}

// keep handles a build against an absent corpus.
func (b *Builder) keep(ctx context.Context, id string) (*Result, error) {
	prev, err := b.Store.Load(ctx)
	if sngmcp.ErrorCode(err) == sngmcp.ENOTFOUND {
		return nil, sngmcp.Errorf(sngmcp.EUNAVAILABLE, "workspace sources not found and no existing snapshot is available")
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	hash, err := prev.Projection().Hash()
	if err != nil {
		return nil, err
	}
	return &Result{
		ID:         id,
		Status:     StatusKept,
		Components: len(prev.Components),
		Icons:      len(prev.Icons),
		Hash:       hash,
		Snapshot:   prev,
	}, nil
}

// persist compares the new snapshot with the stored one and saves it when
// the stable projections differ.
func (b *Builder) persist(ctx context.Context, id string, snapshot *sngmcp.Snapshot, warnings []Warning) (*Result, error) {
	hash, err := snapshot.Projection().Hash()
	if err != nil {
		return nil, fmt.Errorf("hash snapshot: %w", err)
	}

	result := &Result{
		ID:         id,
		Components: len(snapshot.Components),
		Icons:      len(snapshot.Icons),
		Hash:       hash,
		Warnings:   warnings,
	}

	prev, err := b.Store.Load(ctx)
	if err != nil && sngmcp.ErrorCode(err) != sngmcp.ENOTFOUND {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if prev != nil {
		prevHash, err := prev.Projection().Hash()
		if err != nil {
			return nil, fmt.Errorf("hash stored snapshot: %w", err)
		}
		if prevHash == hash {
			result.Status = StatusUpToDate
			result.Snapshot = prev
			return result, nil
		}
	}

	snapshot.GeneratedAt = b.now().UTC().Format(time.RFC3339)
	snapshot.SourceVersion = b.revision(ctx)

	if err := b.Store.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	result.Status = StatusWritten
	result.Snapshot = snapshot
	return result, nil
}

// buildComponent assembles one component record. Unreadable inputs degrade
// to empty fields and are reported as warnings.
func (b *Builder) buildComponent(ctx context.Context, slug string) (componentResult, error) {
	var res componentResult

	docs, err := b.buildDocs(ctx, slug)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.warnings = append(res.warnings, Warning{Input: slug + " docs", Err: err})
	}

	examples, err := b.Corpus.ComponentExamples(ctx, slug)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.warnings = append(res.warnings, Warning{Input: slug + " examples", Err: err})
		examples = nil
	}

	deps, err := b.Dependencies.InferDependencies(ctx, slug)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.warnings = append(res.warnings, Warning{Input: slug + " dependencies", Err: err})
		deps = nil
	}

	res.component = sngmcp.Component{
		Slug:         slug,
		Name:         sngmcp.ComponentName(slug),
		Selector:     sngmcp.ComponentSelector(slug),
		InstallName:  slug,
		DocURL:       sngmcp.ComponentDocURL(slug),
		Deprecated:   false,
		Docs:         docs,
		Examples:     normalizeExamples(examples),
		Dependencies: normalizeDependencies(deps),
	}
	return res, nil
}

// buildDocs always returns usable docs, even alongside an error.
func (b *Builder) buildDocs(ctx context.Context, slug string) (sngmcp.Docs, error) {
	docs := sngmcp.Docs{
		Sections:       []sngmcp.Section{},
		InstallCommand: sngmcp.InstallCommandForSlugs([]string{slug}),
		SourceFiles:    []string{},
	}

	text, err := b.Corpus.ComponentDoc(ctx, slug)
	if err != nil {
		return docs, err
	}

	md := sngmcp.ExtractMarkdown(text.Text)
	docs.Title = md.Title
	docs.Summary = md.Summary
	docs.Sections = md.Sections
	docs.RawMarkdown = text.Text
	docs.SourceFiles = []string{text.Path}
	if match := installPattern.FindString(text.Text); match != "" {
		docs.InstallCommand = strings.TrimSpace(match)
	}
	return docs, nil
}

func (b *Builder) buildIcons(ctx context.Context) ([]sngmcp.Icon, []Warning, error) {
	text, err := b.Corpus.IconDeclarations(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return []sngmcp.Icon{}, []Warning{{Input: "icons", Err: err}}, nil
	}
	return dts.ParseIcons(text.Text), nil, nil
}

func (b *Builder) buildDashboard(ctx context.Context) (sngmcp.DashboardContext, []Warning, error) {
	dashboard := sngmcp.DashboardContext{
		Sections:    []sngmcp.Section{},
		ContextURL:  sngmcp.DashboardContextURL,
		SourceFiles: []string{},
	}

	text, err := b.Corpus.DashboardDoc(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return dashboard, nil, ctx.Err()
		}
		return dashboard, []Warning{{Input: "dashboard", Err: err}}, nil
	}

	md := sngmcp.ExtractMarkdown(text.Text)
	dashboard.Title = md.Title
	dashboard.Summary = md.Summary
	dashboard.Sections = md.Sections
	dashboard.RawMarkdown = text.Text
	dashboard.SourceFiles = []string{text.Path}
	return dashboard, nil, nil
}

func (b *Builder) buildAuthoringGuide(ctx context.Context) (sngmcp.AuthoringGuide, error) {
	sources, err := b.Corpus.AuthoringSources(ctx)
	if err != nil {
		return sngmcp.AuthoringGuide{}, fmt.Errorf("authoring sources: %w", err)
	}

	guide := b.Policy.AuthoringGuide
	guide.Rules = append([]string{}, guide.Rules...)
	guide.SourceFiles = append([]string{}, sources...)
	return guide, nil
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) revision(ctx context.Context) string {
	if b.Revision == nil {
		return UnknownRevision
	}
	if rev := b.Revision(ctx); rev != "" {
		return rev
	}
	return UnknownRevision
}

func normalizeExamples(e *sngmcp.Examples) sngmcp.Examples {
	if e == nil {
		return sngmcp.Examples{Items: []sngmcp.Example{}, Toc: []sngmcp.TocItem{}, SourceFiles: []string{}}
	}
	out := *e
	if out.Items == nil {
		out.Items = []sngmcp.Example{}
	}
	if out.Toc == nil {
		out.Toc = []sngmcp.TocItem{}
	}
	if out.SourceFiles == nil {
		out.SourceFiles = []string{}
	}
	return out
}

// normalizeDependencies falls back to the seeded core dependency when
// inference failed.
func normalizeDependencies(d *sngmcp.Dependencies) sngmcp.Dependencies {
	if d == nil {
		return sngmcp.Dependencies{
			Dependencies:     []sngmcp.Dependency{{Name: "@angular/core", Kind: sngmcp.DependencyAngular}},
			PeerDependencies: []string{"@angular/core"},
			SourceFiles:      []string{},
		}
	}
	out := *d
	if out.Dependencies == nil {
		out.Dependencies = []sngmcp.Dependency{}
	}
	if out.PeerDependencies == nil {
		out.PeerDependencies = []string{}
	}
	if out.SourceFiles == nil {
		out.SourceFiles = []string{}
	}
	return out
}
