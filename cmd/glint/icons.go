package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/ui/components"
)

func newIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List the icon assets and their glyphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, asset := range components.IconAssets() {
				fmt.Fprintf(out, "%-22s %s\n", asset, asset.Glyph())
			}
			return nil
		},
	}
}
