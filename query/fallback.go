package query

import (
	"sort"

	"github.com/shadng/sngmcp"
)

// availableSampleSize caps the install names listed in a miss.
const availableSampleSize = 12

// Hints attached to component misses.
const (
	hintListComponents = "Use list_components to discover valid names."
	hintListDocs       = "Use list_components to discover available component names."
)

var componentFallbackPolicy = sngmcp.ComponentFallbackPolicy{
	PreferredSource:        sngmcp.PackageName,
	CustomComponentAllowed: true,
	Guidance:               "If a component or behavior is missing in " + sngmcp.PackageName + ", build a custom component that follows ShadNG authoring rules.",
}

var suggestedNextSteps = []string{
	"Use list_components to verify current component coverage.",
	"Use get_component_docs on similar components to mirror API/style patterns.",
	"Create a custom sng- component and keep user classes override-friendly.",
	"Use shadcn/ui design references for visual direction, then implement with Angular and ShadNG patterns.",
}

// IconFallbackPolicy is attached to every icon catalog response.
var IconFallbackPolicy = sngmcp.IconFallbackPolicy{
	PreferredSource:  sngmcp.IconPackageName,
	InlineSVGAllowed: true,
	Guidance:         "If no suitable icon is found in " + sngmcp.IconPackageName + ", use inline SVG.",
}

const inlineSVGExample = `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor">...</svg>`

// componentFallback builds the guidance attached to a component miss.
func componentFallback(s *sngmcp.Snapshot, requested []string) *sngmcp.ComponentFallback {
	sample := make([]string, 0, len(s.Components))
	for _, c := range s.Components {
		sample = append(sample, c.InstallName)
	}
	sort.Strings(sample)
	if len(sample) > availableSampleSize {
		sample = sample[:availableSampleSize]
	}

	return &sngmcp.ComponentFallback{
		MissingComponents:        uniqueNonEmpty(requested),
		ComponentFallbackPolicy:  componentFallbackPolicy,
		AuthoringGuide:           s.AuthoringGuide,
		SuggestedNextSteps:       append([]string{}, suggestedNextSteps...),
		AvailableComponentSample: sample,
	}
}

func iconFallbackSuggestion(query string) *sngmcp.IconFallbackSuggestion {
	reason := "No matching icon found for current filters."
	if query != "" {
		reason = "No matching icon found for '" + query + "'."
	}
	return &sngmcp.IconFallbackSuggestion{
		Strategy: "inline-svg-fallback",
		Reason:   reason,
		Example:  inlineSVGExample,
	}
}

func uniqueNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
