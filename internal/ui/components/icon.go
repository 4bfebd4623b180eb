package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// IconAsset identifies a glyph.
type IconAsset int

const (
	IconAI IconAsset = iota
	IconArrowLeft
	IconArrowRight
	IconArrowUpRight
	IconAudioOff
	IconAudioOn
	IconBell
	IconBolt
	IconCheck
	IconChevronDown
	IconChevronLeft
	IconChevronRight
	IconChevronUp
	IconClose
	IconCopy
	IconExclamationTriangle
	IconFile
	IconFolder
	IconFolderOpen
	IconHash
	IconMagicWand
	IconMagnifyingGlass
	IconMaximize
	IconMenu
	IconMessageBubbles
	IconMic
	IconMicMute
	IconPlus
	IconQuote
	IconScreen
	IconSettings
	IconSplit
	IconStar
	IconTerminal
	IconXCircle
)

type iconGlyph struct {
	name  string
	glyph string
}

var iconGlyphs = [...]iconGlyph{
	IconAI:                  {"ai", "✦"},
	IconArrowLeft:           {"arrow-left", "←"},
	IconArrowRight:          {"arrow-right", "→"},
	IconArrowUpRight:        {"arrow-up-right", "↗"},
	IconAudioOff:            {"audio-off", "🔇"},
	IconAudioOn:             {"audio-on", "🔊"},
	IconBell:                {"bell", "🔔"},
	IconBolt:                {"bolt", "⚡"},
	IconCheck:               {"check", "✓"},
	IconChevronDown:         {"chevron-down", "⌄"},
	IconChevronLeft:         {"chevron-left", "‹"},
	IconChevronRight:        {"chevron-right", "›"},
	IconChevronUp:           {"chevron-up", "⌃"},
	IconClose:               {"close", "✕"},
	IconCopy:                {"copy", "⧉"},
	IconExclamationTriangle: {"exclamation-triangle", "⚠"},
	IconFile:                {"file", "🗎"},
	IconFolder:              {"folder", "🗀"},
	IconFolderOpen:          {"folder-open", "🗁"},
	IconHash:                {"hash", "#"},
	IconMagicWand:           {"magic-wand", "⁂"},
	IconMagnifyingGlass:     {"magnifying-glass", "⌕"},
	IconMaximize:            {"maximize", "⤢"},
	IconMenu:                {"menu", "☰"},
	IconMessageBubbles:      {"message-bubbles", "💬"},
	IconMic:                 {"mic", "🎙"},
	IconMicMute:             {"mic-mute", "⊘"},
	IconPlus:                {"plus", "+"},
	IconQuote:               {"quote", "❝"},
	IconScreen:              {"screen", "▭"},
	IconSettings:            {"settings", "⚙"},
	IconSplit:               {"split", "◫"},
	IconStar:                {"star", "★"},
	IconTerminal:            {"terminal", "❯"},
	IconXCircle:             {"x-circle", "⊗"},
}

// IconAssets lists every icon in declaration order.
func IconAssets() []IconAsset {
	assets := make([]IconAsset, len(iconGlyphs))
	for i := range iconGlyphs {
		assets[i] = IconAsset(i)
	}
	return assets
}

// ParseIconAsset looks an icon up by its kebab-case name.
func ParseIconAsset(name string) (IconAsset, bool) {
	for i, g := range iconGlyphs {
		if g.name == name {
			return IconAsset(i), true
		}
	}
	return 0, false
}

func (a IconAsset) valid() bool {
	return a >= 0 && int(a) < len(iconGlyphs)
}

func (a IconAsset) String() string {
	if !a.valid() {
		return "unknown"
	}
	return iconGlyphs[a].name
}

// Glyph returns the characters drawn for the icon.
func (a IconAsset) Glyph() string {
	if !a.valid() {
		return "?"
	}
	return iconGlyphs[a].glyph
}

// GlyphWidth is the number of cells the glyph occupies.
func (a IconAsset) GlyphWidth() int {
	return runewidth.StringWidth(a.Glyph())
}

// IconColor is a semantic color category for icons.
type IconColor int

const (
	IconColorDefault IconColor = iota
	IconColorMuted
	IconColorDisabled
	IconColorPlaceholder
	IconColorAccent
	IconColorError
	IconColorWarning
	IconColorSuccess
	IconColorInfo
)

const iconColorCount = int(IconColorInfo) + 1

var iconColorNames = [iconColorCount]string{
	IconColorDefault:     "default",
	IconColorMuted:       "muted",
	IconColorDisabled:    "disabled",
	IconColorPlaceholder: "placeholder",
	IconColorAccent:      "accent",
	IconColorError:       "error",
	IconColorWarning:     "warning",
	IconColorSuccess:     "success",
	IconColorInfo:        "info",
}

func (c IconColor) String() string {
	if c < 0 || int(c) >= iconColorCount {
		return "unknown"
	}
	return iconColorNames[c]
}

// IconColors lists every color category.
func IconColors() []IconColor {
	colors := make([]IconColor, iconColorCount)
	for i := range colors {
		colors[i] = IconColor(i)
	}
	return colors
}

// Icon renders one glyph in a themed color.
type Icon struct {
	BaseComponent
	asset IconAsset
	color IconColor
}

// NewIcon creates an icon in the default color.
func NewIcon(asset IconAsset) *Icon {
	return &Icon{
		BaseComponent: NewBaseComponent(),
		asset:         asset,
	}
}

// Color sets the icon's color category.
func (i *Icon) Color(color IconColor) *Icon {
	i.color = color
	return i
}

// Asset returns the icon identifier.
func (i *Icon) Asset() IconAsset {
	return i.asset
}

// IconColor returns the configured color category.
func (i *Icon) IconColor() IconColor {
	return i.color
}

// View renders the icon.
func (i *Icon) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon with the given theme context.
func (i *Icon) ViewWithContext(ctx RenderContext) string {
	style := i.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.IconColor(i.color))
	return style.Render(i.asset.Glyph())
}

// ForegroundColor is the color the icon will be drawn with under theme.
func (i *Icon) ForegroundColor(theme Theme) lipgloss.AdaptiveColor {
	return theme.IconColor(i.color)
}
