package stories

import (
	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/alexisbeaulieu97/glint/internal/ui/components"
)

// ToastStory shows a single toast holding one label.
type ToastStory struct {
	origin components.ToastOrigin
}

// NewToastStory creates the story with toasts at the bottom.
func NewToastStory() *ToastStory {
	return &ToastStory{}
}

// SetOrigin implements OriginSetter.
func (s *ToastStory) SetOrigin(origin components.ToastOrigin) {
	s.origin = origin
}

// Origin returns the toast origin the story renders with.
func (s *ToastStory) Origin() components.ToastOrigin {
	return s.origin
}

// Render implements Story. A fresh toast is built each frame because
// rendering drains it.
func (s *ToastStory) Render(ctx components.RenderContext) []ui.Renderable {
	caption := "Default"
	if s.origin == components.ToastOriginBottomRight {
		caption = "Bottom Right"
	}

	page := Container(ctx).
		Child(TitleFor(components.Toast{})).
		Child(Label(caption))

	toast := components.WithChildren(components.NewToast(s.origin), Label("label"))

	return []ui.Renderable{page, toast}
}

// Focusable implements Story; toasts take no focus.
func (s *ToastStory) Focusable() []string {
	return nil
}
