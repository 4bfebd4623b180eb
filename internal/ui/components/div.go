package components

import (
	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// PositionMode selects how a Div is placed inside its positioning context.
type PositionMode int

const (
	PositionRelative PositionMode = iota
	PositionAbsolute
)

// Position describes where an absolutely positioned Div sits. Offsets are
// measured inward from the matching edge of the positioning context.
type Position struct {
	Mode   PositionMode
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
	ZIndex int
}

// Div is the box-model element every higher-level component renders to.
// It carries size, padding, flex layout, fills, pseudo-state fills and
// positioning, and owns an ordered list of children.
type Div struct {
	BaseComponent
	id        string
	children  []ui.Renderable
	direction Direction
	gap       int
	justify   MainAxisAlignment
	items     CrossAxisAlignment
	width     int
	height    int
	minWidth  int
	maxWidth  int
	padding   Spacing
	rounded   bool
	fill      lipgloss.TerminalColor
	hover     lipgloss.TerminalColor
	active    lipgloss.TerminalColor
	position  Position
}

// NewDiv creates a block (vertical) div holding children.
func NewDiv(children ...ui.Renderable) *Div {
	return &Div{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// View renders the div with the default context.
func (d *Div) View() string {
	return d.ViewWithContext(DefaultContext())
}

// Render implements Element; a Div is its own fragment.
func (d *Div) Render(RenderContext) *Div {
	return d
}

// ViewWithContext renders the div and its children.
func (d *Div) ViewWithContext(ctx RenderContext) string {
	style := d.padding.apply(d.ComputeStyle(ctx.Theme))

	bg, hasBg := d.EffectiveBackground(ctx)
	if hasBg {
		style = style.Background(bg)
	}
	if d.rounded {
		edge := lipgloss.TerminalColor(ctx.Theme.Color(TokenHighestBaseDefaultBorder))
		if hasBg {
			edge = bg
		}
		style = style.Border(ctx.Theme.Borders.Rounded).BorderForeground(edge)
	}

	inner := ctx
	if limit := d.innerWidthLimit(); limit > 0 {
		inner = ctx.WithConstraints(WithMaxWidth(limit))
	}
	content := NewStack(d.children...).
		WithDirection(d.direction).
		WithGap(d.gap).
		WithCrossAlign(d.items).
		ViewWithContext(inner)

	if width := d.resolveWidth(content); width > 0 {
		style = style.Width(width)
	}
	if d.height > 0 {
		style = style.Height(d.height)
	}

	horizontal, vertical := d.justify.position(), d.items.position()
	if d.direction == DirectionVertical {
		horizontal, vertical = d.items.position(), d.justify.position()
	}
	style = style.AlignHorizontal(horizontal).AlignVertical(vertical)

	return style.Render(content)
}

// innerWidthLimit is the widest content the div allows, or 0 for no limit.
func (d *Div) innerWidthLimit() int {
	limit := d.width
	if limit == 0 {
		limit = d.maxWidth
	}
	if limit == 0 {
		return 0
	}
	if inner := limit - d.padding.Horizontal(); inner > 0 {
		return inner
	}
	return 1
}

// resolveWidth applies the fixed width or the min/max band to the natural
// width of content. Widths include padding.
func (d *Div) resolveWidth(content string) int {
	if d.width > 0 {
		return d.width
	}
	natural := lipgloss.Width(content) + d.padding.Horizontal()
	if width, _ := d.widthBand().Constrain(natural, 0); width != natural {
		return width
	}
	return 0
}

// widthBand expresses the min/max width as layout constraints.
func (d *Div) widthBand() Constraints {
	band := Unconstrained()
	band.MinWidth = d.minWidth
	if d.maxWidth > 0 {
		band.MaxWidth = d.maxWidth
	}
	return band
}

// EffectiveBackground resolves the fill for the div's current interaction
// state. Active beats hover, hover beats the base fill.
func (d *Div) EffectiveBackground(ctx RenderContext) (lipgloss.TerminalColor, bool) {
	state := ctx.StateOf(d.id)
	if state == InteractionStatePressed && d.active != nil {
		return d.active, true
	}
	if (state == InteractionStateHovered || state == InteractionStatePressed) && d.hover != nil {
		return d.hover, true
	}
	if d.fill != nil {
		return d.fill, true
	}
	return nil, false
}

// Place returns the top-left cell of the rendered block (w x h) inside a
// positioning context of the given size.
func (d *Div) Place(context Size, w, h int) (x, y int) {
	p := d.position
	switch {
	case p.Left.IsSet():
		x = p.Left.Resolve(context.Width)
	case p.Right.IsSet():
		x = context.Width - p.Right.Resolve(context.Width) - w
	}
	switch {
	case p.Top.IsSet():
		y = p.Top.Resolve(context.Height)
	case p.Bottom.IsSet():
		y = context.Height - p.Bottom.Resolve(context.Height) - h
	}
	return max(x, 0), max(y, 0)
}

// WithID names the div so the host can report pseudo-states for it.
func (d *Div) WithID(id string) *Div {
	d.id = id
	return d
}

// Flex lays children out in a row.
func (d *Div) Flex() *Div {
	d.direction = DirectionHorizontal
	return d
}

// FlexCol lays children out in a column.
func (d *Div) FlexCol() *Div {
	d.direction = DirectionVertical
	return d
}

// WithGap sets the spacing between children.
func (d *Div) WithGap(gap int) *Div {
	d.gap = gap
	return d
}

// ItemsCenter centers children on the cross axis.
func (d *Div) ItemsCenter() *Div {
	d.items = CrossCenter
	return d
}

// JustifyCenter centers children on the main axis.
func (d *Div) JustifyCenter() *Div {
	d.justify = MainCenter
	return d
}

// WithSize fixes both dimensions.
func (d *Div) WithSize(width, height int) *Div {
	d.width = width
	d.height = height
	return d
}

// WithMinWidth sets the lower bound of the width band.
func (d *Div) WithMinWidth(width int) *Div {
	d.minWidth = width
	return d
}

// WithMaxWidth sets the upper bound of the width band.
func (d *Div) WithMaxWidth(width int) *Div {
	d.maxWidth = width
	return d
}

// WithPadding sets the padding using a Spacing value object.
func (d *Div) WithPadding(padding Spacing) *Div {
	d.padding = padding
	return d
}

// Rounded draws the div with rounded corners.
func (d *Div) Rounded() *Div {
	d.rounded = true
	return d
}

// Fill sets the base background.
func (d *Div) Fill(color lipgloss.TerminalColor) *Div {
	d.fill = color
	return d
}

// HoverFill registers the background used while the div is hovered.
func (d *Div) HoverFill(color lipgloss.TerminalColor) *Div {
	d.hover = color
	return d
}

// ActiveFill registers the background used while the div is pressed.
func (d *Div) ActiveFill(color lipgloss.TerminalColor) *Div {
	d.active = color
	return d
}

// Absolute takes the div out of flow; a Viewport places it by its offsets.
func (d *Div) Absolute() *Div {
	d.position.Mode = PositionAbsolute
	return d
}

func (d *Div) WithTop(l Length) *Div {
	d.position.Top = l
	return d
}

func (d *Div) WithRight(l Length) *Div {
	d.position.Right = l
	return d
}

func (d *Div) WithBottom(l Length) *Div {
	d.position.Bottom = l
	return d
}

func (d *Div) WithLeft(l Length) *Div {
	d.position.Left = l
	return d
}

// WithZIndex sets the stacking order among absolute siblings.
func (d *Div) WithZIndex(z int) *Div {
	d.position.ZIndex = z
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Div) WithAppliers(appliers ...StyleFunc) *Div {
	d.AddAppliers(appliers...)
	return d
}

// Child appends one child.
func (d *Div) Child(child ui.Renderable) *Div {
	d.children = append(d.children, child)
	return d
}

// Add appends children to the div.
func (d *Div) Add(children ...ui.Renderable) *Div {
	d.children = append(d.children, children...)
	return d
}

// AppendChildren implements ParentElement.
func (d *Div) AppendChildren(children ...ui.Renderable) {
	d.Add(children...)
}

// Children returns the child renderables.
func (d *Div) Children() []ui.Renderable {
	return d.children
}

// ID returns the element ID, empty if none was set.
func (d *Div) ID() string {
	return d.id
}

// Background returns the base fill, if any.
func (d *Div) Background() (lipgloss.TerminalColor, bool) {
	return d.fill, d.fill != nil
}

// HoverBackground returns the hover fill, if any.
func (d *Div) HoverBackground() (lipgloss.TerminalColor, bool) {
	return d.hover, d.hover != nil
}

// ActiveBackground returns the pressed fill, if any.
func (d *Div) ActiveBackground() (lipgloss.TerminalColor, bool) {
	return d.active, d.active != nil
}

// Position returns the positioning settings.
func (d *Div) Position() Position {
	return d.position
}

// IsAbsolute reports whether the div is out of flow.
func (d *Div) IsAbsolute() bool {
	return d.position.Mode == PositionAbsolute
}

// FixedSize returns the fixed width and height; zero means auto.
func (d *Div) FixedSize() (width, height int) {
	return d.width, d.height
}

// WidthBand returns the min and max width; zero means unbounded.
func (d *Div) WidthBand() (minWidth, maxWidth int) {
	return d.minWidth, d.maxWidth
}

// Padding returns the div's padding.
func (d *Div) Padding() Spacing {
	return d.padding
}

// IsRounded reports whether the div has rounded corners.
func (d *Div) IsRounded() bool {
	return d.rounded
}

// Direction returns the flex direction.
func (d *Div) Direction() Direction {
	return d.direction
}

// IsCentered reports whether children are centered on both axes.
func (d *Div) IsCentered() bool {
	return d.justify == MainCenter && d.items == CrossCenter
}
