package gallery

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glint/internal/ui/components"
	"github.com/alexisbeaulieu97/glint/internal/ui/stories"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if m.toast == nil || !m.toast.progress {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressTickMsg:
		if msg.seq != m.toastSeq || m.toast == nil || !m.toast.progress {
			return m, nil
		}
		m.ratio += progressIncrement
		if m.ratio >= 1 {
			m.ratio = 1
			m.log.Info("progress complete")
			return m, m.showToast("Export finished")
		}
		return m, progressTickCmd(msg.seq)

	case dismissToastMsg:
		if msg.seq == m.toastSeq && m.toast != nil && !m.toast.progress {
			m.toast = nil
		}
		return m, nil

	case releaseMsg:
		if msg.seq == m.pressSeq {
			m.pressed = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.NextStory):
		if len(m.names) > 0 {
			m.selected = (m.selected + 1) % len(m.names)
			m.loadStory()
		}

	case key.Matches(msg, m.keys.PrevStory):
		if len(m.names) > 0 {
			m.selected = (m.selected - 1 + len(m.names)) % len(m.names)
			m.loadStory()
		}

	case key.Matches(msg, m.keys.Focus):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.Unfocus):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Press):
		id := m.focusedID()
		if id == "" {
			return m, nil
		}
		m.pressed = id
		m.pressSeq++
		m.log.With("element", id).Debug("pressed")
		return m, releaseCmd(m.pressSeq)

	case key.Matches(msg, m.keys.Toast):
		m.shown++
		return m, m.showToast(fmt.Sprintf("Saved (%d)", m.shown))

	case key.Matches(msg, m.keys.Progress):
		return m, m.showProgress()

	case key.Matches(msg, m.keys.Origin):
		m.origin = toggleOrigin(m.origin)
		if setter, ok := m.story.(stories.OriginSetter); ok {
			setter.SetOrigin(m.origin)
		}
		m.log.With("origin", m.origin.String()).Debug("toast origin changed")
	}

	return m, nil
}

func (m *Model) moveFocus(delta int) {
	if m.story == nil {
		return
	}
	count := len(m.story.Focusable())
	if count == 0 {
		m.focus = -1
		return
	}
	if m.focus < 0 {
		if delta > 0 {
			m.focus = 0
		} else {
			m.focus = count - 1
		}
		return
	}
	m.focus = (m.focus + delta + count) % count
}

// showToast replaces any toast on screen with a transient one.
func (m *Model) showToast(message string) tea.Cmd {
	m.toastSeq++
	m.toast = &toastState{message: message}
	return dismissToastCmd(m.toastSeq)
}

// showProgress replaces any toast on screen with one that stays until the
// progress completes.
func (m *Model) showProgress() tea.Cmd {
	m.toastSeq++
	m.toast = &toastState{message: "Exporting", progress: true}
	m.ratio = 0
	return tea.Batch(m.spinner.Tick, progressTickCmd(m.toastSeq))
}

func toggleOrigin(origin components.ToastOrigin) components.ToastOrigin {
	if origin == components.ToastOriginBottom {
		return components.ToastOriginBottomRight
	}
	return components.ToastOriginBottom
}
