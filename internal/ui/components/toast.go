package components

import "github.com/alexisbeaulieu97/glint/internal/ui"

// ToastOrigin is the edge of the positioning context a toast anchors to.
type ToastOrigin int

const (
	ToastOriginBottom ToastOrigin = iota
	ToastOriginBottomRight
)

func (o ToastOrigin) String() string {
	switch o {
	case ToastOriginBottom:
		return "bottom"
	case ToastOriginBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

const (
	toastZIndex   = 5
	toastMinWidth = 32
	toastMaxWidth = 48
)

// Toast is a small, temporary panel that shows a message or a required
// action, floating above the rest of the content.
//
// Toasts should not stay on screen for more than a few seconds unless they
// are showing a process in progress. Only one toast should be visible at a
// time.
//
// A toast is single-use: Render moves its children into the returned
// fragment, leaving the toast empty.
type Toast struct {
	origin   ToastOrigin
	children []ui.Renderable
}

// NewToast creates an empty toast anchored at origin.
func NewToast(origin ToastOrigin) *Toast {
	return &Toast{origin: origin}
}

// Origin returns the anchor.
func (t *Toast) Origin() ToastOrigin {
	return t.origin
}

// Child appends one child.
func (t *Toast) Child(child ui.Renderable) *Toast {
	t.children = append(t.children, child)
	return t
}

// Children appends children in order.
func (t *Toast) Children(children ...ui.Renderable) *Toast {
	t.children = append(t.children, children...)
	return t
}

// AppendChildren implements ParentElement.
func (t *Toast) AppendChildren(children ...ui.Renderable) {
	t.Children(children...)
}

// Len returns how many children are waiting to be rendered.
func (t *Toast) Len() int {
	return len(t.children)
}

// Render builds the toast's floating panel and drains the children into it.
func (t *Toast) Render(ctx RenderContext) *Div {
	elevated := ctx.Theme.Color(TokenElevatedSurface)

	div := NewDiv()
	if t.origin == ToastOriginBottom {
		div = div.WithRight(Fraction(0.5))
	} else {
		div = div.WithRight(Cells(2))
	}

	var children []ui.Renderable
	children, t.children = t.children, nil

	return div.
		WithZIndex(toastZIndex).
		Absolute().
		WithBottom(Cells(1)).
		Flex().
		WithPadding(SymmetricSpacing(0, 2)).
		WithMinWidth(toastMinWidth).
		Rounded().
		Fill(elevated).
		WithMaxWidth(toastMaxWidth).
		Add(children...)
}

// View renders the toast with the default context. Like Render, it drains
// the toast.
func (t *Toast) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toast's panel on its own, without placing it.
func (t *Toast) ViewWithContext(ctx RenderContext) string {
	return t.Render(ctx).ViewWithContext(ctx)
}
