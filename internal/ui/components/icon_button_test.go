package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iconOf(t *testing.T, fragment *Div) *Icon {
	t.Helper()
	children := fragment.Children()
	require.Len(t, children, 1, "icon button should hold exactly one child")
	icon, ok := children[0].(*Icon)
	require.True(t, ok, "icon button child should be an *Icon")
	return icon
}

func TestNewIconButtonDefaults(t *testing.T) {
	button := NewIconButton(IconStar)

	assert.Equal(t, IconStar, button.IconAsset())
	assert.Equal(t, IconColorDefault, button.ConfiguredColor())
	assert.Equal(t, ButtonVariantPlain, button.ButtonVariant())
	assert.Equal(t, InteractionStateDefault, button.InteractionState())
}

func TestIconButtonSettersReturnCopies(t *testing.T) {
	base := NewIconButton(IconStar)
	filled := base.Variant(ButtonVariantFilled).Color(IconColorAccent)

	assert.Equal(t, ButtonVariantPlain, base.ButtonVariant(), "setters must not mutate the receiver")
	assert.Equal(t, IconColorDefault, base.ConfiguredColor())
	assert.Equal(t, ButtonVariantFilled, filled.ButtonVariant())
	assert.Equal(t, IconColorAccent, filled.ConfiguredColor())
}

func TestIconButtonLastWriteWins(t *testing.T) {
	button := NewIconButton(IconStar).
		Icon(IconClose).
		Color(IconColorError).
		Color(IconColorSuccess).
		State(InteractionStateDisabled).
		State(InteractionStateHovered)

	assert.Equal(t, IconClose, button.IconAsset())
	assert.Equal(t, IconColorSuccess, button.ConfiguredColor())
	assert.Equal(t, InteractionStateHovered, button.InteractionState())
}

func TestIconButtonDisabledOverridesColor(t *testing.T) {
	ctx := DefaultContext()
	for _, state := range InteractionStates() {
		for _, color := range IconColors() {
			button := NewIconButton(IconStar).Color(color).State(state)
			expected := color
			if state == InteractionStateDisabled {
				expected = IconColorDisabled
			}

			assert.Equal(t, expected, button.EffectiveColor(), "state=%s color=%s", state, color)
			assert.Equal(t, expected, iconOf(t, button.Render(ctx)).IconColor(), "state=%s color=%s", state, color)
		}
	}
}

func TestIconButtonFillOnlyWhenFilled(t *testing.T) {
	ctx := DefaultContext()

	plain := NewIconButton(IconStar).Variant(ButtonVariantPlain).Render(ctx)
	_, hasFill := plain.Background()
	assert.False(t, hasFill, "plain buttons are transparent")

	filled := NewIconButton(IconStar).Variant(ButtonVariantFilled).Render(ctx)
	fill, hasFill := filled.Background()
	require.True(t, hasFill, "filled buttons get a background")
	assert.Equal(t, ctx.Theme.Color(TokenHighestOnDefaultBackground), fill)
}

func TestIconButtonFragmentShape(t *testing.T) {
	ctx := DefaultContext()
	fragment := NewIconButton(IconPlus).WithID("add").Render(ctx)

	width, height := fragment.FixedSize()
	assert.Equal(t, iconButtonWidth, width)
	assert.Equal(t, iconButtonHeight, height)
	assert.True(t, fragment.IsCentered())
	assert.True(t, fragment.IsRounded())
	assert.False(t, fragment.IsAbsolute())
	assert.Equal(t, "add", fragment.ID())

	hover, ok := fragment.HoverBackground()
	require.True(t, ok)
	assert.Equal(t, ctx.Theme.Color(TokenHighestBaseHoveredBackground), hover)

	active, ok := fragment.ActiveBackground()
	require.True(t, ok)
	assert.Equal(t, ctx.Theme.Color(TokenHighestBasePressedBackground), active)

	icon := iconOf(t, fragment)
	assert.Equal(t, IconPlus, icon.Asset())
}

func TestIconButtonFilledDisabledEndToEnd(t *testing.T) {
	ctx := DefaultContext()
	fragment := NewIconButton(IconStar).
		Color(IconColorAccent).
		Variant(ButtonVariantFilled).
		State(InteractionStateDisabled).
		Render(ctx)

	_, hasFill := fragment.Background()
	assert.True(t, hasFill)
	icon := iconOf(t, fragment)
	assert.Equal(t, IconColorDisabled, icon.IconColor())
	assert.Equal(t, ctx.Theme.IconColor(IconColorDisabled), icon.ForegroundColor(ctx.Theme))
}

func TestIconButtonView(t *testing.T) {
	view := NewIconButton(IconPlus).View()

	assert.Contains(t, view, "+")
	assert.Equal(t, iconButtonWidth+2, lipgloss.Width(view), "rounded corners add a cell on each side")
	assert.Equal(t, iconButtonHeight+2, lipgloss.Height(view))
}

func TestIconButtonIsNotAParent(t *testing.T) {
	var candidate any = NewIconButton(IconStar)
	_, ok := candidate.(ParentElement)
	assert.False(t, ok, "icon buttons must not accept children")
}

func TestConvenienceConstructors(t *testing.T) {
	assert.Equal(t, IconClose, CloseIconButton().IconAsset())
	assert.Equal(t, IconMenu, MenuIconButton().IconAsset())
	assert.Equal(t, IconStar, StarIconButton().IconAsset())
	assert.Equal(t, ButtonVariantPlain, SettingsIconButton().ButtonVariant())
}
