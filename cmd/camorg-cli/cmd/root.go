package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"camorg/internal/adapters/filesystem"
	"camorg/internal/config"
	"camorg/internal/domain"
	"camorg/internal/ports"
)

var (
	configPath string
	repo       ports.MediaRepository
	rules      domain.Ruleset
)

var rootCmd = &cobra.Command{
	Use:   "camorg",
	Short: "Organize Insta360 camera files into date folders",
	Long: `camorg reorganizes Insta360 action-camera output on disk into a
date-partitioned layout:

  <root>/YYYY-MM-DD[ -suffix]/insta360/<filename>

It provides two tools: "organize" copies or moves files from a card dump
into the layout, and "fix-structure" emits a shell script that repairs
an existing tree whose files are not yet in their insta360/ subfolder.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		cfg := config.Default()
		path := configPath
		if path == "" {
			path = config.Path()
		}
		if path != "" {
			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return err
			}
		}
		rules = cfg.Ruleset()
		repo = filesystem.NewRepository()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a yaml ruleset (defaults to $CAMORG_CONFIG)")
}
