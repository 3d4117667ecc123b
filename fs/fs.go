// Package fs provides file-based access to the component corpus and the
// persisted snapshot.
package fs

import (
	"path/filepath"
)

// Layout locates the corpus inputs. Every field except Root is relative to
// Root.
type Layout struct {
	Root          string
	DocsDir       string
	PagesDir      string
	LibDir        string
	IconTypesFile string
	DashboardFile string
	AgentsFile    string
}

// DefaultLayout returns the layout of the ShadNG workspace rooted at root.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:          root,
		DocsDir:       filepath.Join("projects", "sng-app", "public", "ui"),
		PagesDir:      filepath.Join("projects", "sng-app", "src", "app", "pages", "ui"),
		LibDir:        filepath.Join("projects", "sng-ui", "src", "lib"),
		IconTypesFile: filepath.Join("node_modules", "@shadng", "sng-icons", "dist", "types", "shadng-sng-icons.d.ts"),
		DashboardFile: filepath.Join("projects", "sng-app", "public", "ai", "sng-dashboard.md"),
		AgentsFile:    "AGENTS.md",
	}
}

// Path returns the absolute location of a layout-relative path.
func (l Layout) Path(rel string) string {
	return filepath.Join(l.Root, rel)
}

// Relative converts an absolute path into a slash-separated path relative
// to the corpus root.
func (l Layout) Relative(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// WatchDirs returns the directories whose changes affect the snapshot.
func (l Layout) WatchDirs() []string {
	return []string{
		l.Path(l.DocsDir),
		l.Path(l.PagesDir),
		l.Path(l.LibDir),
		filepath.Dir(l.Path(l.DashboardFile)),
		filepath.Dir(l.Path(l.IconTypesFile)),
	}
}
