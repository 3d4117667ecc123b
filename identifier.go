package sngmcp

import (
	"regexp"
	"strings"
)

var (
	camelBoundaryRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separatorRe     = regexp.MustCompile(`[_\s]+`)
	invalidCharRe   = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	hyphenRunRe     = regexp.MustCompile(`-{2,}`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// identifierPrefixes are stripped, in order, to produce extra candidates.
var identifierPrefixes = []string{"sng-", "sng"}

// NormalizeIdentifier converts an arbitrary identifier (PascalCase,
// snake_case, selector, free text) to lowercase hyphenated form.
func NormalizeIdentifier(input string) string {
	s := strings.TrimSpace(input)
	s = camelBoundaryRe.ReplaceAllString(s, "${1}-${2}")
	s = separatorRe.ReplaceAllString(s, "-")
	s = invalidCharRe.ReplaceAllString(s, "")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

// NormalizeSlug is the plain fallback normalization applied to inputs that
// do not resolve to a known component.
func NormalizeSlug(input string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(input)), "-")
}

// ComponentAliases returns every normalized identifier a component answers to.
func ComponentAliases(c *Component) []string {
	raw := []string{
		c.Slug,
		c.InstallName,
		c.Selector,
		c.Name,
		strings.TrimPrefix(c.Name, ComponentNamePrefix),
	}
	aliases := make([]string, 0, len(raw))
	for _, r := range raw {
		if a := NormalizeIdentifier(r); a != "" {
			aliases = append(aliases, a)
		}
	}
	return aliases
}

// IdentifierCandidates returns the lookup keys for an input in priority
// order: the normalized form, then the form with a catalog prefix stripped.
func IdentifierCandidates(input string) []string {
	base := NormalizeIdentifier(input)
	if base == "" {
		return nil
	}

	candidates := []string{base}
	seen := map[string]bool{base: true}
	for _, prefix := range identifierPrefixes {
		if !strings.HasPrefix(base, prefix) {
			continue
		}
		c := strings.Trim(strings.TrimPrefix(base, prefix), "-")
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		candidates = append(candidates, c)
	}
	return candidates
}

// AliasTable maps normalized aliases to component slugs. When two
// components share an alias the later one wins.
func AliasTable(components []Component) map[string]string {
	table := make(map[string]string, len(components)*5)
	for i := range components {
		for _, alias := range ComponentAliases(&components[i]) {
			table[alias] = components[i].Slug
		}
	}
	return table
}

// ResolveComponentSlug maps a caller-supplied identifier to the canonical
// slug of a component. It reports false when nothing matches.
func ResolveComponentSlug(input string, components []Component) (string, bool) {
	return ResolveWithTable(input, AliasTable(components))
}

// ResolveWithTable resolves input against a prebuilt alias table.
func ResolveWithTable(input string, table map[string]string) (string, bool) {
	for _, candidate := range IdentifierCandidates(input) {
		if slug, ok := table[candidate]; ok {
			return slug, true
		}
	}
	return "", false
}
