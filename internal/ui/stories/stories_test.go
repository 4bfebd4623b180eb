package stories

import (
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/alexisbeaulieu97/glint/internal/ui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderStory(story Story, width, height int) string {
	ctx := components.DefaultContext().WithViewport(width, height)
	return components.NewViewport(story.Render(ctx)...).ViewWithContext(ctx)
}

func TestTitleForUsesBareTypeName(t *testing.T) {
	assert.Equal(t, "Toast", TitleFor(components.Toast{}).Text())
	assert.Equal(t, "Toast", TitleFor(components.NewToast(components.ToastOriginBottom)).Text())
	assert.Equal(t, "IconButton", TitleFor(components.IconButton{}).Text())
	assert.Equal(t, "", TitleFor(nil).Text())
}

func TestToastStoryRendersOneToast(t *testing.T) {
	story := NewToastStory()
	ctx := components.DefaultContext()

	items := story.Render(ctx)
	require.Len(t, items, 2)

	toast, ok := items[1].(*components.Toast)
	require.True(t, ok)
	assert.Equal(t, components.ToastOriginBottom, toast.Origin())
	assert.Equal(t, 1, toast.Len())
	assert.Empty(t, story.Focusable())
}

func TestToastStoryView(t *testing.T) {
	view := renderStory(NewToastStory(), 80, 16)

	assert.Contains(t, view, "Toast")
	assert.Contains(t, view, "Default")
	assert.Contains(t, view, "label")
	assert.Len(t, strings.Split(view, "\n"), 16)
}

func TestToastStoryFollowsOrigin(t *testing.T) {
	story := NewToastStory()
	var setter OriginSetter = story
	setter.SetOrigin(components.ToastOriginBottomRight)

	assert.Equal(t, components.ToastOriginBottomRight, story.Origin())
	assert.Contains(t, renderStory(story, 80, 16), "Bottom Right")
}

func TestIconButtonStoryFocusable(t *testing.T) {
	story := NewIconButtonStory()
	ids := story.Focusable()

	assert.Contains(t, ids, ButtonID(components.ButtonVariantFilled, components.InteractionStateDefault))
	assert.Contains(t, ids, ColorButtonID(components.IconColorAccent))
	assert.NotContains(t, ids, ButtonID(components.ButtonVariantPlain, components.InteractionStateDisabled))
	assert.Equal(t, "icon_button.filled.hovered", ButtonID(components.ButtonVariantFilled, components.InteractionStateHovered))
}

func TestIconButtonStoryView(t *testing.T) {
	view := renderStory(NewIconButtonStory(), 100, 40)

	assert.Contains(t, view, "IconButton")
	assert.Contains(t, view, "Plain")
	assert.Contains(t, view, "Filled")
	assert.Contains(t, view, "disabled")
	assert.Contains(t, view, "Colors")
	assert.Contains(t, view, components.IconStar.Glyph())
}

type stateRecorder struct {
	seen map[string]components.InteractionState
}

func (r *stateRecorder) View() string { return "" }

func (r *stateRecorder) ViewWithContext(ctx components.RenderContext) string {
	for _, id := range []string{"pinned", "other"} {
		r.seen[id] = ctx.StateOf(id)
	}
	return ""
}

var _ ui.Renderable = (*stateRecorder)(nil)

func TestPinnedStatesYieldToHost(t *testing.T) {
	recorder := &stateRecorder{seen: map[string]components.InteractionState{}}
	scope := pinned{
		child:  recorder,
		states: components.InteractionMap{"pinned": components.InteractionStateHovered, "other": components.InteractionStateHovered},
	}

	ctx := components.DefaultContext().WithInteraction(components.InteractionMap{"other": components.InteractionStatePressed})
	scope.ViewWithContext(ctx)

	assert.Equal(t, components.InteractionStateHovered, recorder.seen["pinned"])
	assert.Equal(t, components.InteractionStatePressed, recorder.seen["other"])
}
