package dts_test

import (
	"testing"

	"github.com/shadng/sngmcp"
	"github.com/shadng/sngmcp/dts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declarations = `import { IconData } from './types';

/**
 * @name github
 * @type solid
 * @category brands
 */
declare const githubSolid: IconData;

/**
 * @name arrow left
 * @category arrows-and-chevrons
 */
declare const arrowLeftRegular: IconData;

/**
 * @category misc
 */
declare const mysteryIcon: IconData;

/** Helper, not an icon. */
declare function renderIcon(icon: IconData): string;

/**
 * @type regular
 */
declare const Bell: IconData;

/**
 * @name github
 * @type regular
 * @category brands
 */
declare const githubRegular: IconData;
`

func TestParseIcons(t *testing.T) {
	t.Parallel()

	t.Run("extracts icons sorted by name then variant", func(t *testing.T) {
		t.Parallel()

		icons := dts.ParseIcons(declarations)

		require.Len(t, icons, 4)
		assert.Equal(t, []sngmcp.Icon{
			{Name: "arrow-left", Variant: sngmcp.IconRegular, Category: "Arrows And Chevrons"},
			{Name: "bell", Variant: sngmcp.IconRegular, Category: "Other"},
			{Name: "github", Variant: sngmcp.IconRegular, Category: "Brands"},
			{Name: "github", Variant: sngmcp.IconSolid, Category: "Brands"},
		}, icons)
	})

	t.Run("silently drops icons without a determinable variant", func(t *testing.T) {
		t.Parallel()

		icons := dts.ParseIcons(declarations)

		for _, icon := range icons {
			assert.NotEqual(t, "mysteryicon", icon.Name)
		}
	})

	t.Run("explicit type tag wins over identifier suffix", func(t *testing.T) {
		t.Parallel()

		text := "/**\n * @type regular\n */\ndeclare const starSolid: IconData;"

		icons := dts.ParseIcons(text)

		require.Len(t, icons, 1)
		assert.Equal(t, sngmcp.IconRegular, icons[0].Variant)
		assert.Equal(t, "starsolid", icons[0].Name)
	})

	t.Run("only reads the block directly above the declaration", func(t *testing.T) {
		t.Parallel()

		text := "/** @name wrong @type solid */\nexport type X = 1;\n/** @category media */\ndeclare const playSolid: IconData;"

		icons := dts.ParseIcons(text)

		require.Len(t, icons, 1)
		assert.Equal(t, "playsolid", icons[0].Name)
		assert.Equal(t, "Media", icons[0].Category)
	})

	t.Run("returns empty slice for text without icons", func(t *testing.T) {
		t.Parallel()

		icons := dts.ParseIcons("export {};")

		assert.NotNil(t, icons)
		assert.Empty(t, icons)
	})
}

func TestTitleCaseCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Arrows And Chevrons", dts.TitleCaseCategory("arrows-and-chevrons"))
	assert.Equal(t, "Brands", dts.TitleCaseCategory("BRANDS"))
	assert.Equal(t, "Other", dts.TitleCaseCategory("other"))
}
