package sngmcp_test

import (
	"testing"

	"github.com/shadng/sngmcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("extracts title summary and sections", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("# Title\n\nSummary line.\n\n## Heading\nBody text\n")

		assert.Equal(t, "Title", doc.Title)
		assert.Equal(t, "Summary line.", doc.Summary)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, sngmcp.Section{Heading: "Heading", Body: "Body text"}, doc.Sections[0])
	})

	t.Run("joins multi-line summary with spaces", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("# Button\n\nA clickable\n  element that triggers\nactions.\n\nSecond paragraph.")

		assert.Equal(t, "A clickable element that triggers actions.", doc.Summary)
	})

	t.Run("summary starts at the beginning without a title", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("Intro text\nmore\n\n## Usage\nuse it")

		assert.Empty(t, doc.Title)
		assert.Equal(t, "Intro text more", doc.Summary)
	})

	t.Run("summary stops at the next heading", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("# Card\nShort.\n## Install\nnpx")

		assert.Equal(t, "Short.", doc.Summary)
	})

	t.Run("drops sections with empty bodies", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("# T\n\n## Empty\n\n   \n## Full\ncontent\n")

		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "Full", doc.Sections[0].Heading)
	})

	t.Run("keeps deeper headings inside the section body", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("## API\n### Inputs\n- size\n## Next\nx")

		require.Len(t, doc.Sections, 2)
		assert.Equal(t, "### Inputs\n- size", doc.Sections[0].Body)
	})

	t.Run("level one heading ends the current section", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("## A\nbody a\n# Other\ntrailing")

		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "body a", doc.Sections[0].Body)
	})

	t.Run("ignores hash lines inside code fences", func(t *testing.T) {
		t.Parallel()

		markdown := "# Real\n\n## Install\n```bash\n# comment\n## not a heading\nnpx @shadng/sng-ui add button\n```\n"

		doc := sngmcp.ExtractMarkdown(markdown)

		assert.Equal(t, "Real", doc.Title)
		require.Len(t, doc.Sections, 1)
		assert.Contains(t, doc.Sections[0].Body, "## not a heading")
	})

	t.Run("summary follows the title after a fenced hash line", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("```bash\n# install\n```\n\n# Title\n\nReal summary.\n")

		assert.Equal(t, "Title", doc.Title)
		assert.Equal(t, "Real summary.", doc.Summary)
	})

	t.Run("handles CRLF line endings", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("# Title\r\n\r\nSummary.\r\n\r\n## H\r\nBody\r\n")

		assert.Equal(t, "Title", doc.Title)
		assert.Equal(t, "Summary.", doc.Summary)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "Body", doc.Sections[0].Body)
	})

	t.Run("empty input yields empty fields", func(t *testing.T) {
		t.Parallel()

		doc := sngmcp.ExtractMarkdown("")

		assert.Empty(t, doc.Title)
		assert.Empty(t, doc.Summary)
		assert.Empty(t, doc.Sections)
	})
}
