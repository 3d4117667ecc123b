package query

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shadng/sngmcp"
)

// DefaultMemoSize bounds the number of memoized identifier resolutions.
const DefaultMemoSize = 1024

type resolution struct {
	slug string
	ok   bool
}

// Index resolves caller identifiers to components of one snapshot.
// It is safe for concurrent use.
type Index struct {
	components []sngmcp.Component
	bySlug     map[string]int
	aliases    map[string]string
	memo       *lru.Cache[string, resolution]
}

// NewIndex precomputes the alias table of the given components.
func NewIndex(components []sngmcp.Component, memoSize int) *Index {
	if memoSize <= 0 {
		memoSize = DefaultMemoSize
	}
	// Only fails for a non-positive size.
	memo, _ := lru.New[string, resolution](memoSize)

	bySlug := make(map[string]int, len(components))
	for i, c := range components {
		bySlug[c.Slug] = i
	}

	return &Index{
		components: components,
		bySlug:     bySlug,
		aliases:    sngmcp.AliasTable(components),
		memo:       memo,
	}
}

// Resolve maps input to a component slug. Results match
// sngmcp.ResolveComponentSlug over the same components.
func (idx *Index) Resolve(input string) (string, bool) {
	if r, ok := idx.memo.Get(input); ok {
		return r.slug, r.ok
	}
	slug, ok := sngmcp.ResolveWithTable(input, idx.aliases)
	idx.memo.Add(input, resolution{slug: slug, ok: ok})
	return slug, ok
}

// Lookup resolves input and returns the matching component. Unresolved
// input falls back to its plain-normalized form, which is also returned
// as the slug used for messages.
func (idx *Index) Lookup(input string) (*sngmcp.Component, string) {
	slug, ok := idx.Resolve(input)
	if !ok {
		slug = sngmcp.NormalizeSlug(input)
	}
	i, ok := idx.bySlug[slug]
	if !ok {
		return nil, slug
	}
	return &idx.components[i], slug
}
