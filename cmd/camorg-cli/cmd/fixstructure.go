package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"camorg/internal/adapters/shell"
	"camorg/internal/application/commands"
)

var fixStructureCmd = &cobra.Command{
	Use:   "fix-structure <source>",
	Short: "Emit shell commands that repair a date-folder layout",
	Long: `Scan date folders (YYYY-MM-DD, optionally suffixed) and print a bash
script that moves Insta360 files into the insta360/ subfolder where they
belong. Nothing is executed; review the script and pipe it to bash.

Only stdout carries the script. Warnings about top-level folders that do
not look like date folders go to stderr, as do the "nothing to do"
notes.

Example:
  camorg fix-structure /archive | bash`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fix := commands.NewFixStructureCommand(repo, rules, args[0])
		res, err := fix.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		errw := cmd.ErrOrStderr()

		if len(res.Plan.Warnings) > 0 {
			fmt.Fprintln(errw, "Warning: Non-compliant folders found in root:")
			for _, name := range res.Plan.Warnings {
				fmt.Fprintf(errw, "  %s\n", name)
			}
		}

		if res.ManagedCount == 0 {
			fmt.Fprintln(errw, "# No Insta360 files found in source directory.")
			return nil
		}
		if res.Plan.Empty() {
			fmt.Fprintln(errw, "# All Insta360 files are already compliant.")
			return nil
		}

		return shell.RenderScript(out, res.Plan)
	},
}

func init() {
	rootCmd.AddCommand(fixStructureCmd)
}
