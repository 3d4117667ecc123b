// Package dts parses generated TypeScript declaration files.
package dts

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shadng/sngmcp"
)

// iconBlockRe matches a doc-comment block immediately followed by an icon
// constant declaration. The block body may not contain a closing "*/".
var iconBlockRe = regexp.MustCompile(`/\*\*((?:[^*]|\*+[^*/])*)\*+/\s*declare\s+const\s+([A-Za-z0-9_$]+)\s*:\s*IconData\s*;`)

var (
	typeTagRe     = regexp.MustCompile(`@type\s+(regular|solid)\b`)
	categoryTagRe = regexp.MustCompile(`@category\s+([^\n\r*]+)`)
	nameTagRe     = regexp.MustCompile(`@name\s+([^\n\r*]+)`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

const defaultCategory = "other"

// ParseIcons extracts every icon record from a declaration file.
// Declarations whose variant cannot be determined are skipped.
// The result is sorted by name, then variant.
func ParseIcons(text string) []sngmcp.Icon {
	icons := []sngmcp.Icon{}

	for _, m := range iconBlockRe.FindAllStringSubmatch(text, -1) {
		doc, ident := m[1], m[2]

		variant, ok := iconVariant(doc, ident)
		if !ok {
			continue
		}

		name := ident
		if tag := nameTagRe.FindStringSubmatch(doc); tag != nil {
			name = tag[1]
		}
		category := defaultCategory
		if tag := categoryTagRe.FindStringSubmatch(doc); tag != nil {
			category = tag[1]
		}

		icons = append(icons, sngmcp.Icon{
			Name:     whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-"),
			Variant:  variant,
			Category: TitleCaseCategory(strings.TrimSpace(category)),
		})
	}

	sort.SliceStable(icons, func(i, j int) bool {
		if icons[i].Name != icons[j].Name {
			return icons[i].Name < icons[j].Name
		}
		return icons[i].Variant < icons[j].Variant
	})
	return icons
}

// iconVariant reads the explicit @type tag or infers the variant from the
// identifier suffix.
func iconVariant(doc, ident string) (sngmcp.IconVariant, bool) {
	if tag := typeTagRe.FindStringSubmatch(doc); tag != nil {
		return sngmcp.IconVariant(tag[1]), true
	}
	switch {
	case strings.HasSuffix(ident, "Regular"):
		return sngmcp.IconRegular, true
	case strings.HasSuffix(ident, "Solid"):
		return sngmcp.IconSolid, true
	}
	return "", false
}

// TitleCaseCategory converts a hyphenated category to title case.
// Example: arrows-and-chevrons → Arrows And Chevrons
func TitleCaseCategory(raw string) string {
	parts := strings.Split(raw, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return strings.Join(parts, " ")
}
