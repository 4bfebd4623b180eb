// Package ui holds the minimal contracts shared by every glint component.
package ui

// Renderable is anything that can produce its terminal representation.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to the Renderable interface.
type RenderableFunc func() string

// View calls f.
func (f RenderableFunc) View() string {
	return f()
}
