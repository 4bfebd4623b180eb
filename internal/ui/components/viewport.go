package components

import (
	"sort"

	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Viewport is the positioning context for absolute elements. In-flow
// children stack vertically from the top-left; absolute Element children are
// composited over them in ascending z-index order.
type Viewport struct {
	BaseComponent
	children []ui.Renderable
}

// NewViewport creates a viewport holding children.
func NewViewport(children ...ui.Renderable) *Viewport {
	return &Viewport{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// View renders the viewport at the default size.
func (v *Viewport) View() string {
	return v.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the viewport at ctx.Viewport.
func (v *Viewport) ViewWithContext(ctx RenderContext) string {
	size := ctx.Viewport
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultViewport
		ctx.Viewport = size
	}

	var flow []string
	var overlays []*Div
	for _, child := range v.children {
		if child == nil {
			continue
		}
		element, ok := child.(Element)
		if !ok {
			flow = append(flow, viewChild(child, ctx))
			continue
		}
		fragment := element.Render(ctx)
		if fragment.IsAbsolute() {
			overlays = append(overlays, fragment)
			continue
		}
		flow = append(flow, fragment.ViewWithContext(ctx))
	}

	canvas := NewCanvas(size.Width, size.Height)
	if len(flow) > 0 {
		canvas.Draw(0, 0, lipgloss.JoinVertical(lipgloss.Left, flow...))
	}

	sort.SliceStable(overlays, func(i, j int) bool {
		return overlays[i].Position().ZIndex < overlays[j].Position().ZIndex
	})
	for _, fragment := range overlays {
		block := fragment.ViewWithContext(ctx)
		x, y := fragment.Place(size, lipgloss.Width(block), lipgloss.Height(block))
		canvas.Draw(x, y, block)
	}

	return v.ComputeStyle(ctx.Theme).Render(canvas.String())
}

// Add appends children to the viewport.
func (v *Viewport) Add(children ...ui.Renderable) *Viewport {
	v.children = append(v.children, children...)
	return v
}

// AppendChildren implements ParentElement.
func (v *Viewport) AppendChildren(children ...ui.Renderable) {
	v.Add(children...)
}

// Children returns the child renderables.
func (v *Viewport) Children() []ui.Renderable {
	return v.children
}
