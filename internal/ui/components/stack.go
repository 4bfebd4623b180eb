package components

import (
	"strings"

	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx.WithConstraints(s.childConstraints(ctx.Constraints))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := viewChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}
	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	return style.Render(s.join(views))
}

// childConstraints divides the available width among children of a
// horizontal stack. Vertical stacks pass width through unchanged.
func (s *Stack) childConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

func (s *Stack) join(views []string) string {
	pos := s.crossAlign.position()
	if s.gap > 0 {
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, s.spacer())
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}
	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(pos, views...)
	}
	return lipgloss.JoinVertical(pos, views...)
}

func (s *Stack) spacer() string {
	if s.direction == DirectionHorizontal {
		return strings.Repeat(" ", s.gap)
	}
	// JoinVertical treats each string as a block; gap-1 newlines give gap rows.
	return strings.Repeat("\n", s.gap-1)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// AppendChildren implements ParentElement.
func (s *Stack) AppendChildren(children ...ui.Renderable) {
	s.Add(children...)
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// Direction returns the layout direction.
func (s *Stack) Direction() Direction {
	return s.direction
}
