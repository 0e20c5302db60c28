// Package cli implements the bingo command line tool: batches printed to the terminal,
// variant listing and validation, and the CLI config file.
package cli

import (
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// NewRootCmd builds the bingo command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bingo",
		Short: "Emoji Detective Bingo card generator",
		Long: `Bingo generates batches of 50 emoji bingo cards where exactly the requested
number of cards are winners, and prints them to the terminal or as JSON.

Custom games can be described in TOML variant files, see 'bingo validate'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// klog flags (-v, --logtostderr, ...) on every command.
	goFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(goFlags)
	root.PersistentFlags().AddGoFlagSet(goFlags)

	root.AddCommand(
		newGenerateCmd(),
		newVariantsCmd(),
		newValidateCmd(),
		newConfigCmd(),
	)
	return root
}

// Execute runs the bingo command line.
func Execute() error {
	defer klog.Flush()
	return NewRootCmd().Execute()
}
