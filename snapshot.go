package sngmcp

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is the persisted catalog of components, icons, and guidance.
// It is replaced wholesale on every rebuild.
type Snapshot struct {
	GeneratedAt      string           `json:"generatedAt"`
	SourceVersion    string           `json:"sourceVersion"`
	Components       []Component      `json:"components"`
	Icons            []Icon           `json:"icons"`
	AuthoringGuide   AuthoringGuide   `json:"authoringGuide"`
	DashboardContext DashboardContext `json:"dashboardContext"`
}

// Component is one documented UI element.
type Component struct {
	Slug         string       `json:"slug"`
	Name         string       `json:"name"`
	Selector     string       `json:"selector"`
	InstallName  string       `json:"installName"`
	DocURL       string       `json:"docUrl"`
	Deprecated   bool         `json:"deprecated"`
	Docs         Docs         `json:"docs"`
	Examples     Examples     `json:"examples"`
	Dependencies Dependencies `json:"dependencies"`
}

// Section pairs a second-level markdown heading with its body.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Docs holds the parsed documentation page of a component.
type Docs struct {
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	Sections       []Section `json:"sections"`
	InstallCommand string    `json:"installCommand"`
	RawMarkdown    string    `json:"rawMarkdown"`
	SourceFiles    []string  `json:"sourceFiles"`
}

// Example references one example source file of a component page.
type Example struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PreviewPath string `json:"previewPath"`
	CodePath    string `json:"codePath"`
}

// TocItem is one table-of-contents entry of a component page.
type TocItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Examples holds the examples and table of contents of a component page.
type Examples struct {
	Items       []Example `json:"items"`
	Toc         []TocItem `json:"toc"`
	SourceFiles []string  `json:"sourceFiles"`
}

// DependencyKind classifies an inferred dependency.
type DependencyKind string

// DependencyKind constants.
const (
	DependencyAngular  DependencyKind = "angular"
	DependencyCDK      DependencyKind = "cdk"
	DependencyLibrary  DependencyKind = "sng-ui"
	DependencyIcons    DependencyKind = "sng-icons"
	DependencyExternal DependencyKind = "external"
)

// Dependency is one package a component's sources import.
type Dependency struct {
	Name  string         `json:"name"`
	Kind  DependencyKind `json:"kind"`
	Notes string         `json:"notes,omitempty"`
}

// Dependencies is the inferred dependency set of a component.
type Dependencies struct {
	Dependencies     []Dependency `json:"dependencies"`
	PeerDependencies []string     `json:"peerDependencies"`
	SourceFiles      []string     `json:"sourceFiles"`
}

// IconVariant is the drawing style of an icon.
type IconVariant string

// IconVariant constants.
const (
	IconRegular IconVariant = "regular"
	IconSolid   IconVariant = "solid"
)

// Icon is one entry of the icon catalog.
type Icon struct {
	Name     string      `json:"name"`
	Variant  IconVariant `json:"variant"`
	Category string      `json:"category"`
}

// AuthoringGuide describes how to build a replacement component when the
// catalog has no match.
type AuthoringGuide struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Reference   string   `json:"reference"`
	Rules       []string `json:"rules"`
	SourceFiles []string `json:"sourceFiles"`
}

// DashboardContext is the parsed dashboard AI context page.
type DashboardContext struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Sections    []Section `json:"sections"`
	RawMarkdown string    `json:"rawMarkdown"`
	ContextURL  string    `json:"contextUrl"`
	SourceFiles []string  `json:"sourceFiles"`
}

// Validate returns an error if the snapshot is structurally incomplete.
func (s *Snapshot) Validate() error {
	if s.Components == nil {
		return Errorf(EINVALID, "snapshot components list required")
	}
	if s.Icons == nil {
		return Errorf(EINVALID, "snapshot icons list required")
	}
	return nil
}

// Projection returns the content-stable part of the snapshot, which
// excludes build metadata.
func (s *Snapshot) Projection() Projection {
	return Projection{
		Components:       s.Components,
		Icons:            s.Icons,
		AuthoringGuide:   s.AuthoringGuide,
		DashboardContext: s.DashboardContext,
	}
}

// Projection is the snapshot minus generatedAt and sourceVersion.
// Two snapshots with equal projections carry the same catalog.
type Projection struct {
	Components       []Component      `json:"components"`
	Icons            []Icon           `json:"icons"`
	AuthoringGuide   AuthoringGuide   `json:"authoringGuide"`
	DashboardContext DashboardContext `json:"dashboardContext"`
}

// Hash returns the xxHash of the projection's JSON encoding as hex.
func (p Projection) Hash() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64(data))
	return hex.EncodeToString(b), nil
}

// Equal reports whether both projections encode to the same JSON.
func (p Projection) Equal(other Projection) (bool, error) {
	a, err := p.Hash()
	if err != nil {
		return false, err
	}
	b, err := other.Hash()
	if err != nil {
		return false, err
	}
	return a == b, nil
}

// SnapshotStore persists and loads the snapshot artifact.
type SnapshotStore interface {
	// Load returns the first valid snapshot the store can find.
	// Returns ENOTFOUND if no snapshot exists.
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the persisted snapshot atomically.
	Save(ctx context.Context, snapshot *Snapshot) error
}
