// Package gallery is the interactive story browser.
package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glint/internal/logger"
	"github.com/alexisbeaulieu97/glint/internal/ui/components"
	"github.com/alexisbeaulieu97/glint/internal/ui/stories"
)

// Options configures a gallery model.
type Options struct {
	Theme  components.Theme
	Logger *logger.Logger
	// Story is the name selected at start; empty selects the first.
	Story  string
	Origin components.ToastOrigin
}

// toastState is the host toast on screen. The toast element itself is
// rebuilt every frame because rendering drains it.
type toastState struct {
	message  string
	progress bool
}

// Model is the gallery's Bubble Tea model.
type Model struct {
	registry *stories.Registry
	names    []string
	selected int
	story    stories.Story

	// focus indexes story.Focusable(); -1 means nothing is focused.
	focus    int
	pressed  string
	pressSeq int

	origin   components.ToastOrigin
	toast    *toastState
	toastSeq int
	shown    int

	spinner  spinner.Model
	progress progress.Model
	ratio    float64

	help     help.Model
	keys     keyMap
	showHelp bool

	theme components.Theme
	log   *logger.Logger

	width  int
	height int
}

// NewModel creates a gallery over the stories in reg.
func NewModel(reg *stories.Registry, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 16

	theme := opts.Theme
	if theme.Name == "" {
		theme = components.DefaultTheme()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	m := Model{
		registry: reg,
		names:    reg.Names(),
		focus:    -1,
		origin:   opts.Origin,
		spinner:  s,
		progress: bar,
		help:     help.New(),
		keys:     defaultKeyMap(),
		theme:    theme,
		log:      log,
		width:    80,
		height:   24,
	}

	for i, name := range m.names {
		if name == opts.Story {
			m.selected = i
		}
	}
	m.loadStory()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// StateOf implements components.InteractionSource. The pressed element
// reports Pressed and the focused one Hovered.
func (m Model) StateOf(id string) components.InteractionState {
	if id == "" {
		return components.InteractionStateDefault
	}
	if id == m.pressed {
		return components.InteractionStatePressed
	}
	if id == m.focusedID() {
		return components.InteractionStateHovered
	}
	return components.InteractionStateDefault
}

// SelectedStory returns the name of the story on screen.
func (m Model) SelectedStory() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.selected]
}

func (m Model) focusedID() string {
	if m.story == nil || m.focus < 0 {
		return ""
	}
	ids := m.story.Focusable()
	if m.focus >= len(ids) {
		return ""
	}
	return ids[m.focus]
}

func (m *Model) loadStory() {
	m.story = nil
	m.focus = -1
	m.pressed = ""

	name := m.SelectedStory()
	if name == "" {
		return
	}

	story, err := m.registry.Get(name)
	if err != nil {
		m.log.Error(err, "load story")
		return
	}
	if setter, ok := story.(stories.OriginSetter); ok {
		setter.SetOrigin(m.origin)
	}
	m.story = story
	m.log.With("story", name).Debug("story selected")
}

var _ components.InteractionSource = Model{}
