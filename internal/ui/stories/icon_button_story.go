package stories

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/alexisbeaulieu97/glint/internal/ui/components"
)

// IconButtonStory shows every variant in every state, and a row per color.
type IconButtonStory struct {
	icon components.IconAsset
}

// NewIconButtonStory creates the story drawing the star icon.
func NewIconButtonStory() *IconButtonStory {
	return &IconButtonStory{icon: components.IconStar}
}

var storyVariants = []components.ButtonVariant{
	components.ButtonVariantPlain,
	components.ButtonVariantFilled,
}

// ButtonID is the element ID the story gives the button for variant and state.
func ButtonID(variant components.ButtonVariant, state components.InteractionState) string {
	return fmt.Sprintf("icon_button.%s.%s", variant, state)
}

// ColorButtonID is the element ID of the button showing color.
func ColorButtonID(color components.IconColor) string {
	return "icon_button.color." + color.String()
}

// Render implements Story.
func (s *IconButtonStory) Render(ctx components.RenderContext) []ui.Renderable {
	page := Container(ctx).Child(TitleFor(components.IconButton{}))
	states := components.InteractionMap{}

	for _, variant := range storyVariants {
		row := components.HStack().WithGap(1)
		for _, state := range components.InteractionStates() {
			id := ButtonID(variant, state)
			states[id] = state
			button := components.NewIconButton(s.icon).
				WithID(id).
				Variant(variant).
				State(state)
			row.Add(components.NewDiv(button, Label(state.String())).FlexCol().ItemsCenter())
		}
		page.Child(Label(capitalize(variant.String()))).Child(row)
	}

	colors := components.HStack().WithGap(1)
	for _, color := range components.IconColors() {
		colors.Add(components.NewIconButton(s.icon).
			WithID(ColorButtonID(color)).
			Color(color))
	}
	page.Child(Label("Colors")).Child(colors)

	return []ui.Renderable{pinned{child: page, states: states}}
}

// Focusable implements Story. Disabled buttons are skipped.
func (s *IconButtonStory) Focusable() []string {
	ids := make([]string, 0, len(storyVariants)*len(components.InteractionStates())+len(components.IconColors()))
	for _, variant := range storyVariants {
		for _, state := range components.InteractionStates() {
			if state == components.InteractionStateDisabled {
				continue
			}
			ids = append(ids, ButtonID(variant, state))
		}
	}
	for _, color := range components.IconColors() {
		ids = append(ids, ColorButtonID(color))
	}
	return ids
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
