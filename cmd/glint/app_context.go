package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/glint/internal/config"
	"github.com/alexisbeaulieu97/glint/internal/logger"
	"github.com/alexisbeaulieu97/glint/internal/ui/components"
)

const (
	appearanceAuto  = "auto"
	appearanceLight = "light"
	appearanceDark  = "dark"
)

// AppContext carries what every command needs once the root flags are parsed.
type AppContext struct {
	flags   *rootFlags
	log     *logger.Logger
	theme   components.Theme
	logFile *os.File
}

func newAppContext(flags *rootFlags) *AppContext {
	return &AppContext{flags: flags, log: logger.Nop(), theme: components.DefaultTheme()}
}

// setup applies the root flags: terminal appearance, logging and theme.
func (a *AppContext) setup(cmd *cobra.Command) error {
	switch a.flags.appearance {
	case appearanceAuto:
	case appearanceLight:
		lipgloss.SetHasDarkBackground(false)
	case appearanceDark:
		lipgloss.SetHasDarkBackground(true)
	default:
		return fmt.Errorf("invalid --appearance %q: want auto, light or dark", a.flags.appearance)
	}
	if a.flags.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if err := a.openLogger(cmd.ErrOrStderr()); err != nil {
		return err
	}

	if a.flags.themePath == "" {
		return nil
	}
	theme, err := config.LoadTheme(a.flags.themePath)
	if err != nil {
		a.log.Error(err, "theme rejected")
		return fmt.Errorf("failed to load theme: %w", err)
	}
	a.theme = theme
	a.log.WithFields(map[string]any{"theme": theme.Name, "path": a.flags.themePath}).Debug("theme loaded")
	return nil
}

func (a *AppContext) openLogger(stderr io.Writer) error {
	level := "warn"
	if a.flags.verbose {
		level = "debug"
	}

	opts := logger.Options{Level: level, HumanReadable: true, NoColor: a.flags.noColor, Writer: stderr}
	if a.flags.logFile != "" {
		file, err := os.OpenFile(a.flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = file
		opts = logger.Options{Level: level, Writer: file}
	}

	log, err := logger.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = log
	return nil
}

// tuiLogger is the logger for full-screen commands. Without --log-file it
// discards, since the terminal is owned by the program.
func (a *AppContext) tuiLogger() *logger.Logger {
	if a.logFile == nil {
		return logger.Nop()
	}
	return a.log
}

func (a *AppContext) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// renderContext is the context for one-shot rendering at the given size.
func (a *AppContext) renderContext(width, height int) components.RenderContext {
	return components.DefaultContext().WithTheme(a.theme).WithViewport(width, height)
}

// terminalSize reports the size of w when it is a terminal, and the default
// viewport otherwise.
func terminalSize(w io.Writer) components.Size {
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, height, err := term.GetSize(int(file.Fd())); err == nil && width > 0 && height > 0 {
			return components.Size{Width: width, Height: height}
		}
	}
	return components.DefaultViewport
}
