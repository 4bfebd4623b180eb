package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivEffectiveBackground(t *testing.T) {
	fill := lipgloss.Color("1")
	hover := lipgloss.Color("2")
	active := lipgloss.Color("3")

	tests := []struct {
		name   string
		div    *Div
		state  InteractionState
		want   lipgloss.TerminalColor
		wantOK bool
	}{
		{name: "no fill", div: NewDiv(), state: InteractionStateDefault},
		{name: "base fill", div: NewDiv().Fill(fill), state: InteractionStateDefault, want: fill, wantOK: true},
		{name: "hovered", div: NewDiv().Fill(fill).HoverFill(hover).ActiveFill(active), state: InteractionStateHovered, want: hover, wantOK: true},
		{name: "pressed", div: NewDiv().Fill(fill).HoverFill(hover).ActiveFill(active), state: InteractionStatePressed, want: active, wantOK: true},
		{name: "pressed without active falls back to hover", div: NewDiv().HoverFill(hover), state: InteractionStatePressed, want: hover, wantOK: true},
		{name: "hover without fill is transparent at rest", div: NewDiv().HoverFill(hover), state: InteractionStateDefault},
		{name: "focused keeps base fill", div: NewDiv().Fill(fill).HoverFill(hover), state: InteractionStateFocused, want: fill, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := DefaultContext().WithInteraction(InteractionMap{"target": tt.state})
			got, ok := tt.div.WithID("target").EffectiveBackground(ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDivStateIsKeyedByID(t *testing.T) {
	ctx := DefaultContext().WithInteraction(InteractionMap{"other": InteractionStatePressed})
	div := NewDiv().WithID("mine").Fill(lipgloss.Color("1")).ActiveFill(lipgloss.Color("3"))

	got, ok := div.EffectiveBackground(ctx)
	require.True(t, ok)
	assert.Equal(t, lipgloss.TerminalColor(lipgloss.Color("1")), got)
}

func TestDivPlace(t *testing.T) {
	context := Size{Width: 80, Height: 24}

	tests := []struct {
		name  string
		div   *Div
		wantX int
		wantY int
	}{
		{name: "unpositioned", div: NewDiv().Absolute(), wantX: 0, wantY: 0},
		{name: "top left", div: NewDiv().Absolute().WithTop(Cells(2)).WithLeft(Cells(3)), wantX: 3, wantY: 2},
		{name: "bottom right", div: NewDiv().Absolute().WithBottom(Cells(1)).WithRight(Cells(2)), wantX: 80 - 2 - 10, wantY: 24 - 1 - 3},
		{name: "fractional right", div: NewDiv().Absolute().WithBottom(Cells(1)).WithRight(Fraction(0.5)), wantX: 80 - 40 - 10, wantY: 20},
		{name: "clamped to origin", div: NewDiv().Absolute().WithRight(Cells(200)), wantX: 0, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.div.Place(context, 10, 3)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestDivFixedSizeRendering(t *testing.T) {
	view := NewDiv(NewLabel("x")).WithSize(5, 1).View()

	assert.Equal(t, 5, lipgloss.Width(view))
	assert.Equal(t, 1, lipgloss.Height(view))
}

func TestDivRoundedAddsBorder(t *testing.T) {
	view := NewDiv(NewLabel("x")).Rounded().View()

	assert.Equal(t, 3, lipgloss.Width(view))
	assert.Equal(t, 3, lipgloss.Height(view))
	assert.Contains(t, view, "╭")
	assert.Contains(t, view, "╯")
}

func TestDivCentersInFlexRow(t *testing.T) {
	view := NewDiv(NewLabel("x")).Flex().ItemsCenter().JustifyCenter().WithSize(5, 1).View()

	assert.Equal(t, "  x  ", view)
}

func TestDivWidthBand(t *testing.T) {
	narrow := NewDiv(NewLabel("ab")).WithMinWidth(10).WithMaxWidth(20).View()
	assert.Equal(t, 10, lipgloss.Width(narrow))

	wide := NewDiv(NewLabel(longText(60))).WithMinWidth(10).WithMaxWidth(20).View()
	assert.LessOrEqual(t, lipgloss.Width(wide), 20)
}

func TestConstraintsConstrain(t *testing.T) {
	tests := []struct {
		name        string
		constraints Constraints
		width       int
		height      int
		wantWidth   int
		wantHeight  int
	}{
		{"unconstrained", Unconstrained(), 7, 3, 7, 3},
		{"raised to min", Constraints{MinWidth: 10, MaxWidth: -1, MaxHeight: -1}, 4, 1, 10, 1},
		{"lowered to max", WithMaxWidth(5), 9, 2, 5, 2},
		{"height capped", Constraints{MaxWidth: -1, MinHeight: 2, MaxHeight: 4}, 1, 9, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.constraints.Constrain(tt.width, tt.height)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}

func TestDivWidthBandOnlyMin(t *testing.T) {
	view := NewDiv(NewLabel("abcdefghijklmnopqrstuvwxyz0123")).WithMinWidth(10).View()

	assert.Equal(t, 30, lipgloss.Width(view), "an unset max leaves wide content alone")
}

func TestDivChildrenOrder(t *testing.T) {
	a, b, c := NewLabel("a"), NewLabel("b"), NewLabel("c")
	div := NewDiv(a).Child(b)
	div.AppendChildren(c)

	children := div.Children()
	require.Len(t, children, 3)
	assert.Same(t, a, children[0])
	assert.Same(t, b, children[1])
	assert.Same(t, c, children[2])
}

func TestDivRenderIsItself(t *testing.T) {
	div := NewDiv()
	assert.Same(t, div, div.Render(DefaultContext()))
}
