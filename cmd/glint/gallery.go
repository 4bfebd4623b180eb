package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/tui/gallery"
	"github.com/alexisbeaulieu97/glint/internal/ui/stories"
)

func newGalleryCmd(app *AppContext) *cobra.Command {
	var story string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the stories interactively",
		Long:  `Launch the interactive gallery. Tab moves focus, enter presses, t and p show toasts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(app, story)
		},
	}

	cmd.Flags().StringVar(&story, "story", "", "Story to open first")

	return cmd
}

func runGallery(app *AppContext, story string) error {
	reg := stories.Default()
	if story != "" {
		if _, err := reg.Get(story); err != nil {
			return err
		}
	}

	log := app.tuiLogger().With("command", "gallery")
	log.Info("launching gallery")

	m := gallery.NewModel(reg, gallery.Options{Theme: app.theme, Logger: log, Story: story})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	log.Info("gallery closed")
	return nil
}
