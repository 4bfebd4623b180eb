package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/ui/components"
	"github.com/alexisbeaulieu97/glint/internal/ui/stories"
	"github.com/alexisbeaulieu97/glint/pkg/diff"
)

func newStoriesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stories",
		Short: "List the available stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, entry := range stories.Default().List() {
				fmt.Fprintf(out, "%-14s %s\n", entry.Name, entry.Description)
			}
			app.log.Debug("stories listed")
			return nil
		},
	}
}

type storyFlags struct {
	width  int
	height int
	origin string
	golden string
	update bool
}

func newStoryCmd(app *AppContext) *cobra.Command {
	flags := &storyFlags{}

	cmd := &cobra.Command{
		Use:   "story <name>",
		Short: "Render a story once to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStory(cmd, app, flags, args[0])
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 0, "Viewport width (defaults to the terminal width, or 80 with --golden)")
	cmd.Flags().IntVar(&flags.height, "height", 0, "Viewport height (defaults to the terminal height, or 24 with --golden)")
	cmd.Flags().StringVar(&flags.origin, "origin", "bottom", "Toast origin: bottom or bottom-right")
	cmd.Flags().StringVar(&flags.golden, "golden", "", "Compare the render against this snapshot file instead of printing it")
	cmd.Flags().BoolVar(&flags.update, "update", false, "Write the render to the --golden file")

	return cmd
}

func runStory(cmd *cobra.Command, app *AppContext, flags *storyFlags, name string) error {
	origin, err := parseOrigin(flags.origin)
	if err != nil {
		return err
	}

	story, err := stories.Default().Get(name)
	if err != nil {
		return err
	}
	if setter, ok := story.(stories.OriginSetter); ok {
		setter.SetOrigin(origin)
	}

	out := cmd.OutOrStdout()
	size := components.DefaultViewport
	if flags.golden == "" {
		size = terminalSize(out)
	}
	if flags.width > 0 {
		size.Width = flags.width
	}
	if flags.height > 0 {
		size.Height = flags.height
	}

	ctx := app.renderContext(size.Width, size.Height)
	view := components.NewViewport(story.Render(ctx)...).ViewWithContext(ctx)

	app.log.WithFields(map[string]any{"story": name, "width": size.Width, "height": size.Height}).Debug("story rendered")
	if flags.golden != "" {
		return checkGolden(cmd, app, flags, name, view+"\n")
	}
	_, err = fmt.Fprintln(out, view)
	return err
}

// checkGolden compares rendered against the snapshot file, or rewrites the
// file when --update is set.
func checkGolden(cmd *cobra.Command, app *AppContext, flags *storyFlags, name, rendered string) error {
	log := app.log.With("golden", flags.golden)

	if flags.update {
		if err := os.WriteFile(flags.golden, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		log.Info("snapshot updated")
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", flags.golden)
		return nil
	}

	expected, err := os.ReadFile(flags.golden)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if d := diff.Unified(expected, []byte(rendered), flags.golden, "rendered"); d != "" {
		fmt.Fprint(cmd.OutOrStdout(), d)
		log.Warn("snapshot mismatch")
		return fmt.Errorf("story %q does not match %s", name, flags.golden)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "story %s matches %s\n", name, flags.golden)
	return nil
}

func parseOrigin(value string) (components.ToastOrigin, error) {
	switch value {
	case "", "bottom":
		return components.ToastOriginBottom, nil
	case "bottom-right", "bottom_right":
		return components.ToastOriginBottomRight, nil
	default:
		return 0, fmt.Errorf("invalid --origin %q: want bottom or bottom-right", value)
	}
}
