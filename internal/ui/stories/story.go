// Package stories holds the demo pages shown by the gallery and the story
// command.
package stories

import (
	"reflect"

	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/alexisbeaulieu97/glint/internal/ui/components"
)

// Story is one demo page.
type Story interface {
	// Render builds the page for one frame. The result is laid out in a
	// Viewport, so absolute fragments such as toasts may be among it.
	Render(ctx components.RenderContext) []ui.Renderable
	// Focusable lists the element IDs the host may hover or press, in tab order.
	Focusable() []string
}

// OriginSetter is implemented by stories whose toasts follow the host's origin.
type OriginSetter interface {
	SetOrigin(origin components.ToastOrigin)
}

// Container is the padded surface a story lays its sections out on.
func Container(ctx components.RenderContext) *components.Div {
	return components.NewDiv().
		FlexCol().
		WithGap(1).
		WithPadding(components.SymmetricSpacing(1, 2)).
		Fill(ctx.Theme.Color(components.TokenSurfaceBackground))
}

// Title is a story heading.
func Title(text string) *components.Label {
	return components.TitleLabel(text)
}

// TitleFor is a heading naming the type of v, without its package.
func TitleFor(v any) *components.Label {
	return Title(typeName(v))
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

// Label is a section caption.
func Label(text string) *components.Label {
	return components.MutedLabel(text)
}

// pinned scopes an InteractionSource to a subtree. States reported by the
// host win; otherwise the pinned state for the ID is used.
type pinned struct {
	child  ui.Renderable
	states components.InteractionMap
}

type pinnedSource struct {
	host   components.InteractionSource
	states components.InteractionMap
}

func (p pinnedSource) StateOf(id string) components.InteractionState {
	if p.host != nil {
		if state := p.host.StateOf(id); state != components.InteractionStateDefault {
			return state
		}
	}
	return p.states.StateOf(id)
}

func (p pinned) View() string {
	return p.ViewWithContext(components.DefaultContext())
}

func (p pinned) ViewWithContext(ctx components.RenderContext) string {
	ctx = ctx.WithInteraction(pinnedSource{host: ctx.Interaction, states: p.states})
	if contextual, ok := p.child.(components.ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return p.child.View()
}
