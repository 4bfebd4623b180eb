package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	logFile    string
	themePath  string
	appearance string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

// newRootCommand builds the command tree and returns the context it shares,
// so the caller can release it once Execute returns.
func newRootCommand() (*cobra.Command, *AppContext) {
	flags := &rootFlags{}
	app := newAppContext(flags)

	cmd := &cobra.Command{
		Use:           "glint",
		Short:         "Glint is a themed terminal component kit with a story gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the gallery
			if len(args) == 0 {
				return runGallery(app, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append JSON logs to this file")
	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Load a YAML theme file")
	cmd.PersistentFlags().StringVar(&flags.appearance, "appearance", appearanceAuto, "Terminal background: auto, light or dark")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Render without colors")

	cmd.AddCommand(newStoriesCmd(app))
	cmd.AddCommand(newStoryCmd(app))
	cmd.AddCommand(newIconsCmd())
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd, app
}
