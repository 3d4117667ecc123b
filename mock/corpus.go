package mock

import (
	"context"

	"github.com/shadng/sngmcp"
)

var _ sngmcp.Corpus = (*Corpus)(nil)

// Corpus is a mock implementation of sngmcp.Corpus.
type Corpus struct {
	AvailableFn         func(ctx context.Context) (bool, error)
	ComponentSlugsFn    func(ctx context.Context) ([]string, error)
	ComponentDocFn      func(ctx context.Context, slug string) (*sngmcp.SourceText, error)
	ComponentExamplesFn func(ctx context.Context, slug string) (*sngmcp.Examples, error)
	IconDeclarationsFn  func(ctx context.Context) (*sngmcp.SourceText, error)
	DashboardDocFn      func(ctx context.Context) (*sngmcp.SourceText, error)
	AuthoringSourcesFn  func(ctx context.Context) ([]string, error)
}

func (c *Corpus) Available(ctx context.Context) (bool, error) {
	return c.AvailableFn(ctx)
}

func (c *Corpus) ComponentSlugs(ctx context.Context) ([]string, error) {
	return c.ComponentSlugsFn(ctx)
}

func (c *Corpus) ComponentDoc(ctx context.Context, slug string) (*sngmcp.SourceText, error) {
	return c.ComponentDocFn(ctx, slug)
}

func (c *Corpus) ComponentExamples(ctx context.Context, slug string) (*sngmcp.Examples, error) {
	return c.ComponentExamplesFn(ctx, slug)
}

func (c *Corpus) IconDeclarations(ctx context.Context) (*sngmcp.SourceText, error) {
	return c.IconDeclarationsFn(ctx)
}

func (c *Corpus) DashboardDoc(ctx context.Context) (*sngmcp.SourceText, error) {
	return c.DashboardDocFn(ctx)
}

func (c *Corpus) AuthoringSources(ctx context.Context) ([]string, error) {
	return c.AuthoringSourcesFn(ctx)
}
