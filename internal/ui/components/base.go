package components

import (
	"math"

	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme. This is the core abstraction for theme-aware styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	existing, ok := b.strategy.(CompositeStrategy)
	if !ok {
		current := b.strategy
		existing = CompositeStrategy{}
		if current != nil {
			existing.funcs = []StyleFunc{current.Apply}
		}
	}
	funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
	copy(funcs, existing.funcs)
	b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
}

// Spacing represents spacing (padding or margin) around a component.
// Uses CSS box model ordering: Top, Right, Bottom, Left (clockwise from top).
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different horizontal and vertical values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns the total vertical spacing (top + bottom).
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

func (s Spacing) apply(style lipgloss.Style) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  -1, // -1 means unlimited
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  maxWidth,
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// Constrain applies the constraints to a given size.
func (c Constraints) Constrain(width, height int) (int, int) {
	w := width
	h := height

	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth != -1 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight != -1 && h > c.MaxHeight {
		h = c.MaxHeight
	}

	return w, h
}

// Size is a width and height measured in terminal cells.
type Size struct {
	Width  int
	Height int
}

// DefaultViewport is the positioning context used when none is known.
var DefaultViewport = Size{Width: 80, Height: 24}

// RenderContext provides layout information, theme and interaction state to
// components during rendering. Components never reach for global state.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	// Viewport is the size of the positioning context absolute elements are
	// resolved against.
	Viewport Size
	// Interaction reports pointer state for element IDs. Nil means nothing
	// is hovered or pressed.
	Interaction InteractionSource
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
		Viewport:    DefaultViewport,
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithViewport returns a new context with the given positioning context size.
func (r RenderContext) WithViewport(width, height int) RenderContext {
	r.Viewport = Size{Width: width, Height: height}
	return r
}

// WithInteraction returns a new context reporting pointer state from source.
func (r RenderContext) WithInteraction(source InteractionSource) RenderContext {
	r.Interaction = source
	return r
}

// StateOf returns the pointer state for id, or InteractionStateDefault when
// there is no source or id is empty.
func (r RenderContext) StateOf(id string) InteractionState {
	if r.Interaction == nil || id == "" {
		return InteractionStateDefault
	}
	return r.Interaction.StateOf(id)
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Element is a component that describes itself as a Div fragment.
// Render is called once per frame by whoever owns the component.
type Element interface {
	Render(ctx RenderContext) *Div
}

// ParentElement is implemented by container-like components that accept
// children. Leaf components such as IconButton do not implement it.
type ParentElement interface {
	AppendChildren(children ...ui.Renderable)
}

// WithChildren appends children to p and returns p, so any parent can be
// filled inline regardless of its concrete type.
func WithChildren[P ParentElement](p P, children ...ui.Renderable) P {
	p.AppendChildren(children...)
	return p
}

func viewChild(child ui.Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// Length is a distance inside a positioning context: either a whole number of
// cells or a fraction of the context's extent. The zero Length is unset.
type Length struct {
	cells    int
	fraction float64
	relative bool
	set      bool
}

// Cells returns an absolute length in terminal cells.
func Cells(n int) Length {
	return Length{cells: n, set: true}
}

// Fraction returns a length relative to the positioning context, e.g. 0.5 for 50%.
func Fraction(f float64) Length {
	return Length{fraction: f, relative: true, set: true}
}

// IsSet reports whether the length was specified.
func (l Length) IsSet() bool {
	return l.set
}

// IsFraction reports whether the length is relative to its context.
func (l Length) IsFraction() bool {
	return l.relative
}

// Resolve converts the length to cells within an extent.
func (l Length) Resolve(extent int) int {
	if !l.set {
		return 0
	}
	if l.relative {
		return int(math.Round(l.fraction * float64(extent)))
	}
	return l.cells
}

// MainAxisAlignment specifies how children are aligned along the main axis.
type MainAxisAlignment int

const (
	MainStart MainAxisAlignment = iota
	MainCenter
	MainEnd
)

func (m MainAxisAlignment) position() lipgloss.Position {
	switch m {
	case MainCenter:
		return lipgloss.Center
	case MainEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
