package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"camorg/internal/application"
	"camorg/internal/application/commands"
)

var (
	organizeApprove bool
	organizeMove    bool
)

var (
	dryRunStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

var organizeCmd = &cobra.Command{
	Use:   "organize <source> <destination>",
	Short: "Copy or move Insta360 files into date folders",
	Long: `Organize Insta360 files from a source tree into date-based folders
under the destination.

Files land at <destination>/YYYY-MM-DD/insta360/<filename>. The date
comes from the filename when it carries one (VID_20241011_...), from
filesystem timestamps otherwise. An existing date folder with an added
suffix ("2024-10-11 Trip") is reused rather than duplicated.

By default this is a dry run that only reports what would happen.

Examples:
  camorg organize /mnt/card /archive              # dry run
  camorg organize /mnt/card /archive --approve    # copy files
  camorg organize /mnt/card /archive --approve --move`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		org := commands.NewOrganizeCommand(repo, rules, args[0], args[1], organizeApprove, organizeMove)
		report, err := org.Execute(context.Background())
		if err != nil {
			return err
		}
		renderReport(cmd.OutOrStdout(), report)
		return nil
	},
}

func renderReport(w io.Writer, r *application.Report) {
	if r.Candidates == 0 {
		fmt.Fprintln(w, "No Insta360 files found in source directory.")
		return
	}

	size := humanize.IBytes(uint64(r.TotalBytes))
	if r.Approved {
		fmt.Fprintln(w, summaryStyle.Render(
			fmt.Sprintf("%s %d files (%s)", r.Gerund(), len(r.Transfers), size)))
	} else {
		fmt.Fprintf(w, "%s Would %s %d files (%s)\n",
			dryRunStyle.Render("[DRY RUN]"), r.Verb(), len(r.Transfers), size)
	}
	if r.Skipped > 0 {
		fmt.Fprintf(w, "Skipping %d files (already exist with same size)\n", r.Skipped)
	}
	fmt.Fprintln(w)

	for _, t := range r.Transfers {
		if r.Approved {
			// <date folder>/insta360/ is enough context once the file is
			// actually placed.
			folder := filepath.Base(filepath.Dir(filepath.Dir(t.Dst)))
			fmt.Fprintf(w, "%s: %s -> %s/%s/\n",
				r.PastVerb(), filepath.Base(t.Src), folder, filepath.Base(filepath.Dir(t.Dst)))
		} else {
			fmt.Fprintf(w, "Would %s: %s -> %s\n", r.Verb(), t.Src, t.Dst)
		}
	}

	if !r.Approved && len(r.Transfers) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Run with --approve to %s files.\n", r.Verb())
	}
}

func init() {
	organizeCmd.Flags().BoolVar(&organizeApprove, "approve", false,
		"actually transfer files (default is a dry run)")
	organizeCmd.Flags().BoolVar(&organizeMove, "move", false,
		"move files instead of copying them")
	rootCmd.AddCommand(organizeCmd)
}
