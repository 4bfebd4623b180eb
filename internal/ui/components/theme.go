package components

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
//   - Contrast: An accent color that "pops" against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by text-level components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// StateStyle is the set of colors an element uses in one interaction state.
type StateStyle struct {
	Background lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
}

// StyleSet holds a StateStyle for each interaction state that has its own look.
type StyleSet struct {
	Default  StateStyle
	Hovered  StateStyle
	Pressed  StateStyle
	Disabled StateStyle
}

// ForState returns the style for state. Focused elements share the default look.
func (s StyleSet) ForState(state InteractionState) StateStyle {
	switch state {
	case InteractionStateHovered:
		return s.Hovered
	case InteractionStatePressed:
		return s.Pressed
	case InteractionStateDisabled:
		return s.Disabled
	default:
		return s.Default
	}
}

// Layer is one elevation level of the UI. Base styles plain elements, On
// styles elements drawn on top of the layer, Accent styles highlighted ones.
type Layer struct {
	Base   StyleSet
	On     StyleSet
	Accent StyleSet
}

// Layers groups the three elevation levels, from the app background up to
// floating content.
type Layers struct {
	Lowest  Layer
	Middle  Layer
	Highest Layer
}

// Surfaces are the flat background fills used for panels.
type Surfaces struct {
	Background lipgloss.AdaptiveColor
	Surface    lipgloss.AdaptiveColor
	Elevated   lipgloss.AdaptiveColor
}

// BorderVariant selects a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantEmphasis
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Emphasis lipgloss.Style
}

// Theme represents an immutable styling theme for components.
// All modification operations return new theme instances.
type Theme struct {
	Name        string
	Palette     Palette
	Layers      Layers
	Surfaces    Surfaces
	IconColors  [iconColorCount]lipgloss.AdaptiveColor
	LabelColors [labelColorCount]lipgloss.AdaptiveColor
	Borders     BorderSet
	Spacing     SpacingConfig
	Typography  TypographyScale
}

// Normalize returns a new theme with all derived fields properly initialized.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	t.Typography = defaultTypography(t.Palette)
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func styleSet(bg, hovered, pressed, fg, border, disabledFg lipgloss.AdaptiveColor) StyleSet {
	return StyleSet{
		Default:  StateStyle{Background: bg, Foreground: fg, Border: border},
		Hovered:  StateStyle{Background: hovered, Foreground: fg, Border: border},
		Pressed:  StateStyle{Background: pressed, Foreground: fg, Border: border},
		Disabled: StateStyle{Background: bg, Foreground: disabledFg, Border: border},
	}
}

// DefaultTheme returns the default adaptive theme. Colors follow the
// terminal's light or dark background.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	fg := ac("#1f2328", "#e6e8eb")
	disabledFg := ac("#a0a7b1", "#5b616b")
	border := ac("#d0d7de", "#464c57")
	accentFg := ac("#0550ae", "#cae8ff")

	layers := Layers{
		Lowest: Layer{
			Base:   styleSet(ac("#f6f8fa", "#16181d"), ac("#eaeef2", "#1f2228"), ac("#d8dee4", "#292d35"), fg, border, disabledFg),
			On:     styleSet(ac("#eaeef2", "#1f2228"), ac("#dde3e9", "#292d35"), ac("#ced5dc", "#333842"), fg, border, disabledFg),
			Accent: styleSet(ac("#ddf4ff", "#0c2d6b"), ac("#b6e3ff", "#113d8c"), ac("#80ccff", "#1a4fb0"), accentFg, border, disabledFg),
		},
		Middle: Layer{
			Base:   styleSet(ac("#fbfcfd", "#1e2127"), ac("#eef1f4", "#272b33"), ac("#dfe4ea", "#31363f"), fg, border, disabledFg),
			On:     styleSet(ac("#f0f3f6", "#272b33"), ac("#e3e8ed", "#31363f"), ac("#d3dae1", "#3b414c"), fg, border, disabledFg),
			Accent: styleSet(ac("#ddf4ff", "#0c2d6b"), ac("#b6e3ff", "#113d8c"), ac("#80ccff", "#1a4fb0"), accentFg, border, disabledFg),
		},
		Highest: Layer{
			Base:   styleSet(ac("#ffffff", "#2b2f38"), ac("#eef0f3", "#363b46"), ac("#dde1e6", "#414754"), fg, border, disabledFg),
			On:     styleSet(ac("#f3f4f6", "#3a3f4b"), ac("#e5e7eb", "#454b58"), ac("#d1d5db", "#505766"), fg, border, disabledFg),
			Accent: styleSet(ac("#ddf4ff", "#0c2d6b"), ac("#b6e3ff", "#113d8c"), ac("#80ccff", "#1a4fb0"), accentFg, border, disabledFg),
		},
	}

	surfaces := Surfaces{
		Background: ac("#f6f8fa", "#16181d"),
		Surface:    ac("#ffffff", "#1e2127"),
		Elevated:   ac("#fdfdfe", "#2b2f38"),
	}

	var icons [iconColorCount]lipgloss.AdaptiveColor
	icons[IconColorDefault] = fg
	icons[IconColorMuted] = ac("#656d76", "#9198a1")
	icons[IconColorDisabled] = disabledFg
	icons[IconColorPlaceholder] = ac("#8c959f", "#6e7681")
	icons[IconColorAccent] = ac("#0969da", "#58a6ff")
	icons[IconColorError] = ac("#cf222e", "#f85149")
	icons[IconColorWarning] = ac("#9a6700", "#d29922")
	icons[IconColorSuccess] = ac("#1a7f37", "#3fb950")
	icons[IconColorInfo] = ac("#0550ae", "#79c0ff")

	var labels [labelColorCount]lipgloss.AdaptiveColor
	labels[LabelColorDefault] = fg
	labels[LabelColorMuted] = icons[IconColorMuted]
	labels[LabelColorDisabled] = disabledFg
	labels[LabelColorPlaceholder] = icons[IconColorPlaceholder]
	labels[LabelColorAccent] = icons[IconColorAccent]

	theme := Theme{
		Name:        "default",
		Palette:     palette,
		Layers:      layers,
		Surfaces:    surfaces,
		IconColors:  icons,
		LabelColors: labels,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
	}

	return theme.Normalize()
}

// DarkTheme returns the default theme pinned to its dark colors.
func DarkTheme() Theme {
	theme := pinAppearance(DefaultTheme(), true)
	theme.Name = "dark"
	return theme
}

// LightTheme returns the default theme pinned to its light colors.
func LightTheme() Theme {
	theme := pinAppearance(DefaultTheme(), false)
	theme.Name = "light"
	return theme
}

func pinAppearance(t Theme, dark bool) Theme {
	for _, get := range colorTokens {
		c := get(&t)
		if dark {
			c.Light = c.Dark
		} else {
			c.Dark = c.Light
		}
	}
	return t.Normalize()
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base).Faint(true),
		Emphasis: body.Bold(true),
	}
}

// ColorToken names a single color slot of a Theme, e.g.
// "highest.base.hovered.background".
type ColorToken string

// Tokens the built-in components resolve.
const (
	TokenHighestBaseDefaultBackground ColorToken = "highest.base.default.background"
	TokenHighestBaseHoveredBackground ColorToken = "highest.base.hovered.background"
	TokenHighestBasePressedBackground ColorToken = "highest.base.pressed.background"
	TokenHighestBaseDefaultBorder     ColorToken = "highest.base.default.border"
	TokenHighestOnDefaultBackground   ColorToken = "highest.on.default.background"
	TokenSurfaceBackground            ColorToken = "surface.background"
	TokenSurface                      ColorToken = "surface.surface"
	TokenElevatedSurface              ColorToken = "surface.elevated"
)

type colorAccessor func(*Theme) *lipgloss.AdaptiveColor

var colorTokens = buildColorTokens()

func buildColorTokens() map[ColorToken]colorAccessor {
	tokens := make(map[ColorToken]colorAccessor)

	layers := []struct {
		name string
		get  func(*Theme) *Layer
	}{
		{"lowest", func(t *Theme) *Layer { return &t.Layers.Lowest }},
		{"middle", func(t *Theme) *Layer { return &t.Layers.Middle }},
		{"highest", func(t *Theme) *Layer { return &t.Layers.Highest }},
	}
	sets := []struct {
		name string
		get  func(*Layer) *StyleSet
	}{
		{"base", func(l *Layer) *StyleSet { return &l.Base }},
		{"on", func(l *Layer) *StyleSet { return &l.On }},
		{"accent", func(l *Layer) *StyleSet { return &l.Accent }},
	}
	states := []struct {
		name string
		get  func(*StyleSet) *StateStyle
	}{
		{"default", func(s *StyleSet) *StateStyle { return &s.Default }},
		{"hovered", func(s *StyleSet) *StateStyle { return &s.Hovered }},
		{"pressed", func(s *StyleSet) *StateStyle { return &s.Pressed }},
		{"disabled", func(s *StyleSet) *StateStyle { return &s.Disabled }},
	}
	fields := []struct {
		name string
		get  func(*StateStyle) *lipgloss.AdaptiveColor
	}{
		{"background", func(s *StateStyle) *lipgloss.AdaptiveColor { return &s.Background }},
		{"foreground", func(s *StateStyle) *lipgloss.AdaptiveColor { return &s.Foreground }},
		{"border", func(s *StateStyle) *lipgloss.AdaptiveColor { return &s.Border }},
	}

	for _, layer := range layers {
		for _, set := range sets {
			for _, state := range states {
				for _, field := range fields {
					name := ColorToken(layer.name + "." + set.name + "." + state.name + "." + field.name)
					tokens[name] = func(t *Theme) *lipgloss.AdaptiveColor {
						return field.get(state.get(set.get(layer.get(t))))
					}
				}
			}
		}
	}

	tokens[TokenSurfaceBackground] = func(t *Theme) *lipgloss.AdaptiveColor { return &t.Surfaces.Background }
	tokens[TokenSurface] = func(t *Theme) *lipgloss.AdaptiveColor { return &t.Surfaces.Surface }
	tokens[TokenElevatedSurface] = func(t *Theme) *lipgloss.AdaptiveColor { return &t.Surfaces.Elevated }

	for i, name := range iconColorNames {
		tokens[ColorToken("icon."+name)] = func(t *Theme) *lipgloss.AdaptiveColor { return &t.IconColors[i] }
	}
	for i, name := range labelColorNames {
		tokens[ColorToken("label."+name)] = func(t *Theme) *lipgloss.AdaptiveColor { return &t.LabelColors[i] }
	}

	slots := []struct {
		name string
		get  func(*Palette) *ColourSet
	}{
		{"primary", func(p *Palette) *ColourSet { return &p.Primary }},
		{"surface", func(p *Palette) *ColourSet { return &p.Surface }},
		{"success", func(p *Palette) *ColourSet { return &p.Success }},
		{"warning", func(p *Palette) *ColourSet { return &p.Warning }},
		{"danger", func(p *Palette) *ColourSet { return &p.Danger }},
		{"info", func(p *Palette) *ColourSet { return &p.Info }},
		{"neutral", func(p *Palette) *ColourSet { return &p.Neutral }},
	}
	for _, slot := range slots {
		prefix := "palette." + slot.name + "."
		tokens[ColorToken(prefix+"base")] = func(t *Theme) *lipgloss.AdaptiveColor { return &slot.get(&t.Palette).Base }
		tokens[ColorToken(prefix+"on_base")] = func(t *Theme) *lipgloss.AdaptiveColor { return &slot.get(&t.Palette).OnBase }
		tokens[ColorToken(prefix+"muted")] = func(t *Theme) *lipgloss.AdaptiveColor { return &slot.get(&t.Palette).Muted }
		tokens[ColorToken(prefix+"contrast")] = func(t *Theme) *lipgloss.AdaptiveColor { return &slot.get(&t.Palette).Contrast }
	}

	return tokens
}

// ColorTokens lists every token a Theme resolves, sorted by name.
func ColorTokens() []ColorToken {
	names := make([]ColorToken, 0, len(colorTokens))
	for name := range colorTokens {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// IsColorToken reports whether name is a token a Theme can resolve.
func IsColorToken(name string) bool {
	_, ok := colorTokens[ColorToken(name)]
	return ok
}

// Color resolves token against the theme. Unknown tokens resolve to the zero
// color, which lipgloss renders as "no color".
func (t Theme) Color(token ColorToken) lipgloss.AdaptiveColor {
	get, ok := colorTokens[token]
	if !ok {
		return lipgloss.AdaptiveColor{}
	}
	return *get(&t)
}

// WithColor returns a copy of the theme with token set to color. Unknown
// tokens leave the copy unchanged.
func (t Theme) WithColor(token ColorToken, color lipgloss.AdaptiveColor) Theme {
	get, ok := colorTokens[token]
	if !ok {
		return t
	}
	*get(&t) = color
	return t.Normalize()
}

// IconColor returns the color for an icon category.
func (t Theme) IconColor(category IconColor) lipgloss.AdaptiveColor {
	if category < 0 || int(category) >= len(t.IconColors) {
		return t.IconColors[IconColorDefault]
	}
	return t.IconColors[category]
}

// LabelColor returns the color for a label category.
func (t Theme) LabelColor(category LabelColor) lipgloss.AdaptiveColor {
	if category < 0 || int(category) >= len(t.LabelColors) {
		return t.LabelColors[LabelColorDefault]
	}
	return t.LabelColors[category]
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return theme.Typography.Title
	case TypographyVariantSubtitle:
		return theme.Typography.Subtitle
	case TypographyVariantEmphasis:
		return theme.Typography.Emphasis
	default:
		return theme.Typography.Body
	}
}

// Fluent modifier functions

// Fill applies a token as the background color.
//
// Example:
//
//	div := NewDiv().WithAppliers(Fill(TokenElevatedSurface))
func Fill(token ColorToken) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(theme.Color(token))
	}
}

// TokenForeground applies a token as the text color.
func TokenForeground(token ColorToken) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Color(token))
	}
}

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
