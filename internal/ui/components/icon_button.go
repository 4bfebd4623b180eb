package components

// ButtonVariant selects the visual treatment of a button.
type ButtonVariant int

const (
	ButtonVariantPlain ButtonVariant = iota
	ButtonVariantFilled
)

func (v ButtonVariant) String() string {
	switch v {
	case ButtonVariantPlain:
		return "plain"
	case ButtonVariantFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// Icon buttons are a compact fixed-size target; the rounded corners add one
// cell on every side.
const (
	iconButtonWidth  = 5
	iconButtonHeight = 1
)

// IconButton is a clickable icon. It is a value: every setter returns an
// updated copy and the receiver is left untouched.
type IconButton struct {
	id      string
	icon    IconAsset
	color   IconColor
	variant ButtonVariant
	state   InteractionState
}

// NewIconButton creates a plain button in the default color and state.
func NewIconButton(icon IconAsset) IconButton {
	return IconButton{icon: icon}
}

// WithID names the button so the host can report hover and press for it.
func (b IconButton) WithID(id string) IconButton {
	b.id = id
	return b
}

// Icon replaces the glyph.
func (b IconButton) Icon(icon IconAsset) IconButton {
	b.icon = icon
	return b
}

// Color sets the configured icon color.
func (b IconButton) Color(color IconColor) IconButton {
	b.color = color
	return b
}

// Variant sets the visual treatment.
func (b IconButton) Variant(variant ButtonVariant) IconButton {
	b.variant = variant
	return b
}

// State sets the interaction state.
func (b IconButton) State(state InteractionState) IconButton {
	b.state = state
	return b
}

// ID returns the element ID.
func (b IconButton) ID() string {
	return b.id
}

// IconAsset returns the glyph identifier.
func (b IconButton) IconAsset() IconAsset {
	return b.icon
}

// ConfiguredColor returns the color as set, before state resolution.
func (b IconButton) ConfiguredColor() IconColor {
	return b.color
}

// ButtonVariant returns the visual treatment.
func (b IconButton) ButtonVariant() ButtonVariant {
	return b.variant
}

// InteractionState returns the interaction state.
func (b IconButton) InteractionState() InteractionState {
	return b.state
}

// EffectiveColor is the color the icon is drawn with. Disabled always wins.
func (b IconButton) EffectiveColor() IconColor {
	if b.state == InteractionStateDisabled {
		return IconColorDisabled
	}
	return b.color
}

// Render builds the button's fragment: a centered, rounded box with hover and
// pressed fills, holding the icon.
func (b IconButton) Render(ctx RenderContext) *Div {
	theme := ctx.Theme

	div := NewDiv()
	if b.variant == ButtonVariantFilled {
		div = div.Fill(theme.Color(TokenHighestOnDefaultBackground))
	}

	return div.
		WithID(b.id).
		WithSize(iconButtonWidth, iconButtonHeight).
		Flex().
		ItemsCenter().
		JustifyCenter().
		Rounded().
		HoverFill(theme.Color(TokenHighestBaseHoveredBackground)).
		ActiveFill(theme.Color(TokenHighestBasePressedBackground)).
		Child(NewIcon(b.icon).Color(b.EffectiveColor()))
}

// View renders the button with the default context.
func (b IconButton) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button.
func (b IconButton) ViewWithContext(ctx RenderContext) string {
	return b.Render(ctx).ViewWithContext(ctx)
}

// Convenience constructors for common icons

func AIIconButton() IconButton              { return NewIconButton(IconAI) }
func CloseIconButton() IconButton           { return NewIconButton(IconClose) }
func CopyIconButton() IconButton            { return NewIconButton(IconCopy) }
func MagnifyingGlassIconButton() IconButton { return NewIconButton(IconMagnifyingGlass) }
func MenuIconButton() IconButton            { return NewIconButton(IconMenu) }
func PlusIconButton() IconButton            { return NewIconButton(IconPlus) }
func SettingsIconButton() IconButton        { return NewIconButton(IconSettings) }
func SplitIconButton() IconButton           { return NewIconButton(IconSplit) }
func StarIconButton() IconButton            { return NewIconButton(IconStar) }
func TerminalIconButton() IconButton        { return NewIconButton(IconTerminal) }
