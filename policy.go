package sngmcp

// Policy is the static configuration of the catalog: the authoring guide
// served on misses and the table of components whose sources live under
// differently named directories.
type Policy struct {
	AuthoringGuide AuthoringGuide
	SourceAliases  map[string][]string
}

// Validate returns an error if the policy is unusable.
func (p *Policy) Validate() error {
	if p.AuthoringGuide.Title == "" {
		return Errorf(EINVALID, "authoring guide title required")
	}
	if len(p.AuthoringGuide.Rules) == 0 {
		return Errorf(EINVALID, "authoring guide rules required")
	}
	for slug, dirs := range p.SourceAliases {
		if slug == "" {
			return Errorf(EINVALID, "source alias slug required")
		}
		for _, dir := range dirs {
			if dir == "" {
				return Errorf(EINVALID, "source alias for %q has an empty directory", slug)
			}
		}
	}
	return nil
}

// SourceDirectories returns the library directory names holding a
// component's sources: the slug itself followed by any aliased directories.
func (p *Policy) SourceDirectories(slug string) []string {
	dirs := []string{slug}
	seen := map[string]bool{slug: true}
	for _, dir := range p.SourceAliases[slug] {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}
