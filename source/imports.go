// Package source infers component dependencies from library source files.
package source

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shadng/sngmcp"
)

const (
	corePackage    = "@angular/core"
	cdkPackage     = "@angular/cdk"
	angularPrefix  = "@angular/"
	cdkPrefix      = "@angular/cdk/"
	iconMarker     = "sng-icon"
	iconUsageNotes = "Used for icon rendering."
)

var (
	cdkPathRe = regexp.MustCompile(`@angular/cdk/[a-z0-9-]+`)
	importRe  = regexp.MustCompile(`from\s+['"]([^'"]+)['"]`)
)

// sourceExtensions are the file types scanned for imports.
var sourceExtensions = map[string]bool{
	".ts":   true,
	".html": true,
	".css":  true,
}

// ScanImports classifies the imports of one source file. Relative imports
// are ignored. Later entries for the same name override earlier ones.
func ScanImports(content string) []sngmcp.Dependency {
	var deps []sngmcp.Dependency

	for _, path := range cdkPathRe.FindAllString(content, -1) {
		deps = append(deps, sngmcp.Dependency{Name: path, Kind: sngmcp.DependencyCDK})
	}

	for _, m := range importRe.FindAllStringSubmatch(content, -1) {
		path := m[1]
		if strings.HasPrefix(path, ".") {
			continue
		}
		deps = append(deps, classifyImport(path))
	}

	if strings.Contains(content, iconMarker) || strings.Contains(content, sngmcp.IconPackageName) {
		deps = append(deps, iconDependency())
	}

	return deps
}

func classifyImport(path string) sngmcp.Dependency {
	switch {
	case strings.HasPrefix(path, cdkPrefix):
		return sngmcp.Dependency{Name: path, Kind: sngmcp.DependencyCDK}
	case strings.HasPrefix(path, angularPrefix):
		return sngmcp.Dependency{Name: path, Kind: sngmcp.DependencyAngular}
	case path == sngmcp.IconPackageName:
		return iconDependency()
	default:
		return sngmcp.Dependency{Name: path, Kind: sngmcp.DependencyExternal}
	}
}

func iconDependency() sngmcp.Dependency {
	return sngmcp.Dependency{
		Name:  sngmcp.IconPackageName,
		Kind:  sngmcp.DependencyIcons,
		Notes: iconUsageNotes,
	}
}

// dependencySet accumulates dependencies keyed by name.
type dependencySet map[string]sngmcp.Dependency

func newDependencySet() dependencySet {
	return dependencySet{
		corePackage: {Name: corePackage, Kind: sngmcp.DependencyAngular},
	}
}

func (s dependencySet) add(deps ...sngmcp.Dependency) {
	for _, d := range deps {
		s[d.Name] = d
	}
}

// sorted returns the dependencies ordered by name.
func (s dependencySet) sorted() []sngmcp.Dependency {
	out := make([]sngmcp.Dependency, 0, len(s))
	for _, d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PeerDependencies derives the packages a consuming project must provide.
// The core framework package is always included.
func PeerDependencies(deps []sngmcp.Dependency) []string {
	peers := map[string]bool{corePackage: true}
	for _, d := range deps {
		switch d.Kind {
		case sngmcp.DependencyCDK:
			peers[cdkPackage] = true
		case sngmcp.DependencyAngular:
			if !strings.HasPrefix(d.Name, angularPrefix) {
				continue
			}
			parts := strings.Split(d.Name, "/")
			peers[parts[0]+"/"+parts[1]] = true
		}
	}

	out := make([]string, 0, len(peers))
	for p := range peers {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
