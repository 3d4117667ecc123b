// Package yaml loads the catalog policy from YAML documents.
package yaml

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shadng/sngmcp"
	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

type guideDoc struct {
	Title     string   `yaml:"title"`
	Summary   string   `yaml:"summary"`
	Reference string   `yaml:"reference"`
	Rules     []string `yaml:"rules"`
}

type policyDoc struct {
	AuthoringGuide *guideDoc           `yaml:"authoringGuide"`
	SourceAliases  map[string][]string `yaml:"sourceAliases"`
}

// DefaultPolicy returns the built-in policy.
func DefaultPolicy() *sngmcp.Policy {
	p, err := ParsePolicy(defaultPolicy)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in policy: %v", err))
	}
	return p
}

// LoadPolicy reads a policy file. Sections the file omits keep their
// built-in values.
func LoadPolicy(path string) (*sngmcp.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	return parseOver(DefaultPolicy(), data)
}

// ParsePolicy parses a complete policy document.
func ParsePolicy(data []byte) (*sngmcp.Policy, error) {
	return parseOver(&sngmcp.Policy{}, data)
}

func parseOver(base *sngmcp.Policy, data []byte) (*sngmcp.Policy, error) {
	var doc policyDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, sngmcp.Errorf(sngmcp.EINVALID, "invalid policy: %s", err)
	}

	p := *base
	if doc.AuthoringGuide != nil {
		p.AuthoringGuide = sngmcp.AuthoringGuide{
			Title:       doc.AuthoringGuide.Title,
			Summary:     doc.AuthoringGuide.Summary,
			Reference:   doc.AuthoringGuide.Reference,
			Rules:       doc.AuthoringGuide.Rules,
			SourceFiles: []string{},
		}
	}
	if doc.SourceAliases != nil {
		p.SourceAliases = doc.SourceAliases
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
