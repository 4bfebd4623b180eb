package components

import (
	"sort"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorTokensSortedAndKnown(t *testing.T) {
	tokens := ColorTokens()
	require.NotEmpty(t, tokens)
	assert.True(t, sort.SliceIsSorted(tokens, func(i, j int) bool { return tokens[i] < tokens[j] }))

	for _, token := range tokens {
		assert.True(t, IsColorToken(string(token)), "token %s", token)
	}
	for _, token := range []ColorToken{
		TokenHighestBaseDefaultBackground,
		TokenHighestBaseHoveredBackground,
		TokenHighestBasePressedBackground,
		TokenHighestBaseDefaultBorder,
		TokenHighestOnDefaultBackground,
		TokenSurfaceBackground,
		TokenSurface,
		TokenElevatedSurface,
		"icon.disabled",
		"label.muted",
		"palette.primary.base",
	} {
		assert.Contains(t, tokens, token)
	}
	assert.False(t, IsColorToken("highest.base.sideways.background"))
}

func TestDefaultThemeResolvesComponentTokens(t *testing.T) {
	theme := DefaultTheme()
	for _, token := range []ColorToken{
		TokenHighestBaseHoveredBackground,
		TokenHighestBasePressedBackground,
		TokenHighestOnDefaultBackground,
		TokenElevatedSurface,
	} {
		c := theme.Color(token)
		assert.NotEmpty(t, c.Light, "token %s", token)
		assert.NotEmpty(t, c.Dark, "token %s", token)
	}
	assert.Equal(t, theme.IconColors[IconColorDisabled], theme.Color("icon.disabled"))
}

func TestThemeColorUnknownToken(t *testing.T) {
	assert.Equal(t, lipgloss.AdaptiveColor{}, DefaultTheme().Color("nope"))
}

func TestThemeWithColorCopies(t *testing.T) {
	original := DefaultTheme()
	override := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}

	updated := original.WithColor(TokenElevatedSurface, override)

	assert.Equal(t, override, updated.Color(TokenElevatedSurface))
	assert.Equal(t, override, updated.Surfaces.Elevated)
	assert.NotEqual(t, override, original.Color(TokenElevatedSurface), "the receiver is not modified")

	unchanged := original.WithColor("nope", override)
	assert.Equal(t, original.Color(TokenElevatedSurface), unchanged.Color(TokenElevatedSurface))
}

func TestPinnedThemes(t *testing.T) {
	base := DefaultTheme()
	dark := DarkTheme()
	light := LightTheme()

	assert.Equal(t, "dark", dark.Name)
	assert.Equal(t, "light", light.Name)

	for _, token := range ColorTokens() {
		d := dark.Color(token)
		assert.Equal(t, d.Dark, d.Light, "dark token %s", token)
		assert.Equal(t, base.Color(token).Dark, d.Dark, "dark token %s", token)

		l := light.Color(token)
		assert.Equal(t, l.Light, l.Dark, "light token %s", token)
		assert.Equal(t, base.Color(token).Light, l.Light, "light token %s", token)
	}
}

func TestStyleSetForState(t *testing.T) {
	set := DefaultTheme().Layers.Highest.Base

	assert.Equal(t, set.Default, set.ForState(InteractionStateDefault))
	assert.Equal(t, set.Hovered, set.ForState(InteractionStateHovered))
	assert.Equal(t, set.Pressed, set.ForState(InteractionStatePressed))
	assert.Equal(t, set.Disabled, set.ForState(InteractionStateDisabled))
}

func TestNormalizeFillsSpacing(t *testing.T) {
	theme := Theme{}.Normalize()

	assert.Equal(t, 0, PaddingValue(theme, SpacingSizeNone))
	assert.Equal(t, 3, PaddingValue(theme, SpacingSizeMedium))
	assert.Equal(t, 4, MarginValue(theme, SpacingSizeLarge))
}

func TestIconAssetsLookup(t *testing.T) {
	assets := IconAssets()
	require.Len(t, assets, int(IconXCircle)+1)

	for _, asset := range assets {
		parsed, ok := ParseIconAsset(asset.String())
		require.True(t, ok, "asset %d", asset)
		assert.Equal(t, asset, parsed)
		assert.NotEmpty(t, asset.Glyph())
		assert.Positive(t, asset.GlyphWidth())
	}

	_, ok := ParseIconAsset("not-an-icon")
	assert.False(t, ok)
	assert.Equal(t, "unknown", IconAsset(-1).String())
}

func TestLabelUsesThemeColor(t *testing.T) {
	assert.Equal(t, "muted", LabelColorMuted.String())
	assert.Equal(t, "Saved", MutedLabel("Saved").View())
	assert.Equal(t, "Saved", NewLabel("Saved").Text())
}
