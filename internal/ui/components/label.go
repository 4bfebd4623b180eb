package components

import "github.com/charmbracelet/lipgloss"

// LabelColor is a semantic color category for text.
type LabelColor int

const (
	LabelColorDefault LabelColor = iota
	LabelColorMuted
	LabelColorDisabled
	LabelColorPlaceholder
	LabelColorAccent
)

const labelColorCount = int(LabelColorAccent) + 1

var labelColorNames = [labelColorCount]string{
	LabelColorDefault:     "default",
	LabelColorMuted:       "muted",
	LabelColorDisabled:    "disabled",
	LabelColorPlaceholder: "placeholder",
	LabelColorAccent:      "accent",
}

func (c LabelColor) String() string {
	if c < 0 || int(c) >= labelColorCount {
		return "unknown"
	}
	return labelColorNames[c]
}

// Label is a primitive component for a single piece of themed text.
type Label struct {
	BaseComponent
	text  string
	color LabelColor
}

// NewLabel creates a label in the default color.
func NewLabel(text string) *Label {
	return &Label{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// Color sets the label's color category.
func (l *Label) Color(color LabelColor) *Label {
	l.color = color
	return l
}

// WithAppliers applies theme-based style modifiers.
func (l *Label) WithAppliers(appliers ...StyleFunc) *Label {
	l.SetAppliers(appliers...)
	return l
}

// Text returns the label content.
func (l *Label) Text() string {
	return l.text
}

// View renders the label.
func (l *Label) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label with the given theme context.
func (l *Label) ViewWithContext(ctx RenderContext) string {
	style := l.ComputeStyle(ctx.Theme)
	if _, ok := style.GetForeground().(lipgloss.NoColor); ok {
		style = style.Foreground(ctx.Theme.LabelColor(l.color))
	}
	return style.Render(l.text)
}

// Theme-aware label constructor helpers

// MutedLabel creates a label in the muted color.
func MutedLabel(text string) *Label {
	return NewLabel(text).Color(LabelColorMuted)
}

// TitleLabel creates a label using the title typography.
func TitleLabel(text string) *Label {
	return NewLabel(text).WithAppliers(Typography(TypographyVariantTitle))
}
