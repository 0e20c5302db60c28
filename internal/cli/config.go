package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mikkode/bingo/internal/config"
	"github.com/Mikkode/bingo/internal/game"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the bingo configuration file",
		Long:  `Commands for the defaults stored in $XDG_CONFIG_HOME/bingo/config.toml.`,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.GetConfigFilePath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite it", path)
			}
			if err := config.SaveCLIConfig(config.DefaultCLIConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLIConfig()
			if err != nil {
				return err
			}
			if _, err := game.LookupVariant(cfg.DefaultVariant); err != nil {
				return fmt.Errorf("default_variant in %s: %w", config.GetConfigFilePath(), err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file:     %s\n", config.GetConfigFilePath())
			fmt.Fprintf(out, "default_variant: %s\n", cfg.DefaultVariant)
			fmt.Fprintf(out, "default_winners: %d\n", cfg.DefaultWinners)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
