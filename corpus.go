package sngmcp

import "context"

// SourceText is the content of one corpus file. Path is relative to the
// corpus root and uses forward slashes.
type SourceText struct {
	Path string
	Text string
}

// Corpus reads the inputs the snapshot is built from.
type Corpus interface {
	// Available reports whether every required input location exists.
	Available(ctx context.Context) (bool, error)

	// ComponentSlugs returns the slug of every documented component,
	// sorted ascending. Slugs derive from documentation file names.
	ComponentSlugs(ctx context.Context) ([]string, error)

	// ComponentDoc returns the documentation markdown of a component.
	ComponentDoc(ctx context.Context, slug string) (*SourceText, error)

	// ComponentExamples returns the examples and toc of a component page.
	// A page without examples yields empty lists.
	ComponentExamples(ctx context.Context, slug string) (*Examples, error)

	// IconDeclarations returns the generated icon type declarations.
	// Returns ENOTFOUND if the icon package is not installed.
	IconDeclarations(ctx context.Context) (*SourceText, error)

	// DashboardDoc returns the dashboard context markdown.
	DashboardDoc(ctx context.Context) (*SourceText, error)

	// AuthoringSources returns the corpus files backing the authoring guide.
	AuthoringSources(ctx context.Context) ([]string, error)
}

// DependencyInferrer infers a component's dependencies from its sources.
type DependencyInferrer interface {
	// InferDependencies scans the component's source directories.
	// Components without sources yield only the seeded core dependency.
	InferDependencies(ctx context.Context, slug string) (*Dependencies, error)
}
