package sngmcp

import "strings"

// Canonical install commands.
var (
	InitCommand   = "npx " + PackageName + " init"
	AddAllCommand = "npx " + PackageName + " add --all"
)

// InstallCommandForSlugs returns the add command for the given slugs, or
// the add-everything command when none are given.
func InstallCommandForSlugs(slugs []string) string {
	if len(slugs) == 0 {
		return AddAllCommand
	}
	return "npx " + PackageName + " add " + strings.Join(slugs, " ")
}

// ComponentName derives a component's display name from its slug.
// Example: date-picker → SngDatePicker
func ComponentName(slug string) string {
	var b strings.Builder
	b.WriteString(ComponentNamePrefix)
	for _, part := range strings.Split(slug, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// ComponentSelector derives a component's element selector from its slug.
func ComponentSelector(slug string) string {
	return SelectorPrefix + slug
}

// ComponentDocURL returns the published markdown URL of a component.
func ComponentDocURL(slug string) string {
	return DocBaseURL + "/" + slug + ".md"
}
