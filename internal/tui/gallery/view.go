package gallery

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glint/internal/ui"
	"github.com/alexisbeaulieu97/glint/internal/ui/components"
)

const (
	sidebarWidth = 20
	minWidth     = 48
	minHeight    = 12
)

// View renders the current model state
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d", m.width, m.height, minWidth, minHeight)
	}

	footer := m.help.View(m.keys)
	bodyHeight := max(m.height-lipgloss.Height(footer), 1)

	sidebar := m.renderSidebar(bodyHeight)
	stage := m.renderStage(m.width-lipgloss.Width(sidebar), bodyHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, stage),
		footer,
	)
}

func (m Model) context() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme).WithInteraction(m)
}

func (m Model) renderSidebar(height int) string {
	list := components.NewDiv().
		FlexCol().
		WithSize(sidebarWidth, height).
		WithPadding(components.SymmetricSpacing(1, 1)).
		Fill(m.theme.Color(components.TokenSurface))

	list.Child(components.TitleLabel("Stories"))
	for i, name := range m.names {
		if i == m.selected {
			list.Child(components.NewLabel("› " + name).Color(components.LabelColorAccent))
			continue
		}
		list.Child(components.MutedLabel("  " + name))
	}

	return list.ViewWithContext(m.context())
}

func (m Model) renderStage(width, height int) string {
	ctx := m.context().WithViewport(width, height)
	viewport := components.NewViewport()

	if m.story != nil {
		for _, item := range m.story.Render(ctx) {
			// one toast at a time: the host's replaces the story's own
			if _, isToast := item.(*components.Toast); isToast && m.toast != nil {
				continue
			}
			viewport.Add(item)
		}
	} else {
		viewport.Add(components.MutedLabel("No stories registered"))
	}

	if toast := m.buildToast(); toast != nil {
		viewport.Add(toast)
	}

	return viewport.ViewWithContext(ctx)
}

func (m Model) buildToast() *components.Toast {
	if m.toast == nil {
		return nil
	}

	toast := components.NewToast(m.origin)
	if m.toast.progress {
		spin := m.spinner
		bar := m.progress
		ratio := m.ratio
		return toast.Child(components.HStack(
			ui.RenderableFunc(spin.View),
			components.NewLabel(m.toast.message),
			ui.RenderableFunc(func() string { return bar.ViewAs(ratio) }),
		).WithGap(1))
	}

	return toast.Child(components.HStack(
		components.NewIcon(components.IconCheck).Color(components.IconColorSuccess),
		components.NewLabel(m.toast.message),
	).WithGap(1))
}
