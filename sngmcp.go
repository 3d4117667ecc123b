// Package sngmcp catalogs the ShadNG UI component library into a single
// queryable snapshot and answers structured lookups against it for
// automated assistants.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., fs/, mcp/, yaml/).
package sngmcp

// Library identity used when deriving component metadata and commands.
const (
	// PackageName is the npm package components are installed from.
	PackageName = "@shadng/sng-ui"

	// IconPackageName is the npm package icons are rendered with.
	IconPackageName = "@shadng/sng-icons"

	// ComponentNamePrefix prefixes every component's display name.
	ComponentNamePrefix = "Sng"

	// SelectorPrefix prefixes every component's element selector.
	SelectorPrefix = "sng-"

	// DocBaseURL is where per-component markdown docs are published.
	DocBaseURL = "https://shadng.js.org/ui"

	// DashboardContextURL is where the dashboard AI context is published.
	DashboardContextURL = "https://shadng.js.org/ai/sng-dashboard.md"

	// SnapshotSourceFile is reported as the source of answers served
	// straight from the snapshot.
	SnapshotSourceFile = "data/snapshot.json"
)
