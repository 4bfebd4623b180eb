package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd, app := newRootCommand()
	if err := run(cmd, app); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes cmd and closes the log file whether or not it succeeded.
func run(cmd *cobra.Command, app *AppContext) error {
	defer app.close()
	return cmd.Execute()
}
