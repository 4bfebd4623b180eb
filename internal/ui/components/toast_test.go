package components

import (
	"testing"

	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToastIsEmpty(t *testing.T) {
	toast := NewToast(ToastOriginBottom)

	assert.Equal(t, ToastOriginBottom, toast.Origin())
	assert.Equal(t, 0, toast.Len())
}

func TestToastDefaultOriginIsBottom(t *testing.T) {
	var origin ToastOrigin
	assert.Equal(t, ToastOriginBottom, origin)
}

func TestToastPreservesInsertionOrder(t *testing.T) {
	a, b, c := NewLabel("A"), NewLabel("B"), NewLabel("C")
	toast := NewToast(ToastOriginBottom).Child(a)
	toast.AppendChildren(b)
	toast.Children(c)

	fragment := toast.Render(DefaultContext())

	assert.Equal(t, []ui.Renderable{a, b, c}, fragment.Children())
}

func TestToastRenderDrainsChildren(t *testing.T) {
	ctx := DefaultContext()
	toast := WithChildren(NewToast(ToastOriginBottomRight), NewLabel("one"), NewLabel("two"), NewLabel("three"))
	require.Equal(t, 3, toast.Len())

	first := toast.Render(ctx)
	assert.Len(t, first.Children(), 3)
	assert.Equal(t, 0, toast.Len(), "render moves children out of the toast")

	second := toast.Render(ctx)
	assert.Empty(t, second.Children())
	assert.Len(t, first.Children(), 3, "earlier fragments keep their children")
}

func TestEmptyToastRenderIsRepeatable(t *testing.T) {
	ctx := DefaultContext()
	toast := NewToast(ToastOriginBottom)

	first := toast.Render(ctx)
	second := toast.Render(ctx)

	assert.Equal(t, first.Position(), second.Position())
	assert.Equal(t, first.Padding(), second.Padding())
	assert.Equal(t, first.ViewWithContext(ctx), second.ViewWithContext(ctx))
}

func TestToastOriginSelectsOffset(t *testing.T) {
	ctx := DefaultContext()

	bottom := NewToast(ToastOriginBottom).Render(ctx).Position()
	bottomRight := NewToast(ToastOriginBottomRight).Render(ctx).Position()

	assert.Equal(t, Fraction(0.5), bottom.Right)
	assert.Equal(t, Cells(2), bottomRight.Right)
	assert.NotEqual(t, bottom.Right, bottomRight.Right)

	again := NewToast(ToastOriginBottom).Render(ctx).Position()
	assert.Equal(t, bottom, again, "offsets are deterministic for an origin")
}

func TestToastFragmentShape(t *testing.T) {
	ctx := DefaultContext()
	fragment := NewToast(ToastOriginBottom).Render(ctx)

	assert.True(t, fragment.IsAbsolute())
	assert.Equal(t, toastZIndex, fragment.Position().ZIndex)
	assert.Equal(t, Cells(1), fragment.Position().Bottom)
	assert.Equal(t, DirectionHorizontal, fragment.Direction())
	assert.True(t, fragment.IsRounded())

	minWidth, maxWidth := fragment.WidthBand()
	assert.Equal(t, toastMinWidth, minWidth)
	assert.Equal(t, toastMaxWidth, maxWidth)

	fill, ok := fragment.Background()
	require.True(t, ok)
	assert.Equal(t, ctx.Theme.Color(TokenElevatedSurface), fill)
}

func TestToastWidthBand(t *testing.T) {
	ctx := DefaultContext()

	short := NewToast(ToastOriginBottom).Child(NewLabel("ok")).Render(ctx)
	assert.Equal(t, toastMinWidth+2, widthOf(short.ViewWithContext(ctx)))

	long := NewToast(ToastOriginBottom).Child(NewLabel(longText(120))).Render(ctx)
	width := widthOf(long.ViewWithContext(ctx))
	assert.LessOrEqual(t, width, toastMaxWidth+2)
	assert.Greater(t, width, toastMinWidth+2)
}
