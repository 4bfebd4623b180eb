package gallery

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func dismissToastCmd(seq int) tea.Cmd {
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return dismissToastMsg{seq: seq}
	})
}

func releaseCmd(seq int) tea.Cmd {
	return tea.Tick(pressDuration, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}

func progressTickCmd(seq int) tea.Cmd {
	return tea.Tick(progressInterval, func(time.Time) tea.Msg {
		return progressTickMsg{seq: seq}
	})
}
