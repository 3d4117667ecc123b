package fs

import (
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shadng/sngmcp"
)

// Ensure Corpus implements sngmcp.Corpus at compile time.
var _ sngmcp.Corpus = (*Corpus)(nil)

// Corpus implements sngmcp.Corpus over a workspace checkout.
type Corpus struct {
	layout Layout
}

// NewCorpus creates a new Corpus.
func NewCorpus(layout Layout) *Corpus {
	return &Corpus{layout: layout}
}

// Layout returns the corpus layout.
func (c *Corpus) Layout() Layout {
	return c.layout
}

// Available reports whether the docs, pages, library and dashboard inputs
// all exist.
func (c *Corpus) Available(ctx context.Context) (bool, error) {
	required := []string{
		c.layout.DocsDir,
		c.layout.PagesDir,
		c.layout.LibDir,
		c.layout.DashboardFile,
	}
	for _, rel := range required {
		ok, err := exists(c.layout.Path(rel))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (c *Corpus) ComponentSlugs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.layout.Path(c.layout.DocsDir))
	if err != nil {
		return nil, err
	}

	var slugs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

func (c *Corpus) ComponentDoc(ctx context.Context, slug string) (*sngmcp.SourceText, error) {
	return c.read(filepath.Join(c.layout.DocsDir, slug+".md"))
}

// ComponentExamples lists the example sources of a component page (every
// .ts file under examples/ except index.ts) and its toc-items.json.
func (c *Corpus) ComponentExamples(ctx context.Context, slug string) (*sngmcp.Examples, error) {
	pageDir := c.layout.Path(filepath.Join(c.layout.PagesDir, slug))

	files, err := listFiles(filepath.Join(pageDir, "examples"), func(path string) bool {
		return strings.HasSuffix(path, ".ts") && filepath.Base(path) != "index.ts"
	})
	if err != nil {
		return nil, err
	}

	tocPath := filepath.Join(pageDir, "json", "toc-items.json")
	toc, err := readToc(tocPath)
	if err != nil {
		return nil, err
	}

	examples := &sngmcp.Examples{
		Items:       make([]sngmcp.Example, 0, len(files)),
		Toc:         toc,
		SourceFiles: make([]string, 0, len(files)+1),
	}
	for _, file := range files {
		rel := c.layout.Relative(file)
		id := strings.TrimSuffix(filepath.Base(file), ".ts")
		examples.Items = append(examples.Items, sngmcp.Example{
			ID:          id,
			Title:       ExampleTitle(id),
			PreviewPath: rel,
			CodePath:    rel,
		})
		examples.SourceFiles = append(examples.SourceFiles, rel)
	}
	if len(toc) > 0 {
		examples.SourceFiles = append(examples.SourceFiles, c.layout.Relative(tocPath))
	}
	sort.Strings(examples.SourceFiles)

	return examples, nil
}

// IconDeclarations returns ENOTFOUND when the icon package is not installed.
func (c *Corpus) IconDeclarations(ctx context.Context) (*sngmcp.SourceText, error) {
	text, err := c.read(c.layout.IconTypesFile)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, sngmcp.Errorf(sngmcp.ENOTFOUND, "icon declarations not found at %s", c.layout.IconTypesFile)
	}
	return text, err
}

func (c *Corpus) DashboardDoc(ctx context.Context) (*sngmcp.SourceText, error) {
	return c.read(c.layout.DashboardFile)
}

func (c *Corpus) AuthoringSources(ctx context.Context) ([]string, error) {
	path := c.layout.Path(c.layout.AgentsFile)
	ok, err := exists(path)
	if err != nil || !ok {
		return []string{}, err
	}
	return []string{c.layout.Relative(path)}, nil
}

func (c *Corpus) read(rel string) (*sngmcp.SourceText, error) {
	path := c.layout.Path(rel)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &sngmcp.SourceText{Path: c.layout.Relative(path), Text: string(data)}, nil
}

// ExampleTitle converts an example id to a display title.
// Example: basic-usage → Basic Usage
func ExampleTitle(id string) string {
	parts := strings.Split(id, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

type tocItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// readToc returns an empty toc when the file does not exist.
func readToc(path string) ([]sngmcp.TocItem, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return []sngmcp.TocItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []tocItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, sngmcp.Errorf(sngmcp.EINVALID, "invalid toc %s: %s", filepath.Base(path), err)
	}

	toc := make([]sngmcp.TocItem, 0, len(items))
	for _, item := range items {
		toc = append(toc, sngmcp.TocItem{ID: item.ID, Label: item.Label})
	}
	return toc, nil
}

// listFiles walks dir and returns the sorted paths accepted by keep.
// A missing directory yields no files.
func listFiles(dir string, keep func(path string) bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && keep(path) {
			files = append(files, path)
		}
		return nil
	})
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
