package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/shadng/sngmcp"
)

// Ensure Inferrer implements sngmcp.DependencyInferrer at compile time.
var _ sngmcp.DependencyInferrer = (*Inferrer)(nil)

// Inferrer implements sngmcp.DependencyInferrer by scanning the library
// source tree.
type Inferrer struct {
	root   string
	libDir string
	policy *sngmcp.Policy
}

// NewInferrer creates a new Inferrer.
// root is the corpus root that reported paths are relative to; libDir holds
// one directory per component.
func NewInferrer(root, libDir string, policy *sngmcp.Policy) *Inferrer {
	return &Inferrer{
		root:   root,
		libDir: libDir,
		policy: policy,
	}
}

// InferDependencies scans every source file under the component's source
// directories.
func (inf *Inferrer) InferDependencies(ctx context.Context, slug string) (*sngmcp.Dependencies, error) {
	files, err := inf.sourceFiles(slug)
	if err != nil {
		return nil, err
	}

	set := newDependencySet()
	read := make([]string, 0, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		set.add(ScanImports(string(content))...)
		read = append(read, inf.relative(file))
	}

	deps := set.sorted()
	return &sngmcp.Dependencies{
		Dependencies:     deps,
		PeerDependencies: PeerDependencies(deps),
		SourceFiles:      read,
	}, nil
}

// sourceFiles lists the scannable files of a component, sorted and without
// duplicates. Missing directories are skipped.
func (inf *Inferrer) sourceFiles(slug string) ([]string, error) {
	dirs := []string{slug}
	if inf.policy != nil {
		dirs = inf.policy.SourceDirectories(slug)
	}

	seen := make(map[string]bool)
	var files []string

	for _, name := range dirs {
		dir := filepath.Join(inf.libDir, name)
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !sourceExtensions[filepath.Ext(path)] || seen[path] {
				return nil
			}
			seen[path] = true
			files = append(files, path)
			return nil
		})
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func (inf *Inferrer) relative(path string) string {
	rel, err := filepath.Rel(inf.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
