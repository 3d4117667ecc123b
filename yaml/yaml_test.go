package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shadng/sngmcp"
	"github.com/shadng/sngmcp/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	t.Parallel()

	p := yaml.DefaultPolicy()

	assert.Equal(t, "ShadNG Component Authoring Guide", p.AuthoringGuide.Title)
	assert.Equal(t, "When a requested component or behavior is missing from @shadng/sng-ui, it is recommended to create a custom component that follows ShadNG architecture and styling patterns.", p.AuthoringGuide.Summary)
	assert.Equal(t, "Use shadcn/ui design references for visual direction, then implement in Angular with ShadNG patterns.", p.AuthoringGuide.Reference)
	require.Len(t, p.AuthoringGuide.Rules, 7)
	assert.Equal(t, `Prefer element selectors with sng- prefix (for example: selector: "sng-foo").`, p.AuthoringGuide.Rules[0])
	assert.Equal(t, "If a component is missing in sng-ui, build a custom component using ShadNG patterns.", p.AuthoringGuide.Rules[6])
	assert.Equal(t, []string{}, p.AuthoringGuide.SourceFiles)
	assert.Equal(t, []string{"sng-table", "sng-table-core"}, p.SourceAliases["table"])
	assert.Equal(t, []string{"layout"}, p.SourceAliases["layout"])
}

func TestLoadPolicy(t *testing.T) {
	t.Parallel()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		// Given a policy file that only overrides aliases
		path := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sourceAliases:\n  grid: [sng-grid]\n"), 0644))

		// When loading
		p, err := yaml.LoadPolicy(path)

		// Then aliases are replaced and the guide is the built-in one
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"grid": {"sng-grid"}}, p.SourceAliases)
		assert.Equal(t, "ShadNG Component Authoring Guide", p.AuthoringGuide.Title)
	})

	t.Run("guide without rules", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("authoringGuide:\n  title: Custom\n"), 0644))

		_, err := yaml.LoadPolicy(path)

		assert.Equal(t, sngmcp.EINVALID, sngmcp.ErrorCode(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("authoringGuide: [\n"), 0644))

		_, err := yaml.LoadPolicy(path)

		assert.Equal(t, sngmcp.EINVALID, sngmcp.ErrorCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Error(t, err)
	})
}
