package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mikkode/bingo/internal/config"
	"github.com/Mikkode/bingo/internal/game"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a variant TOML file",
		Long: `Validate checks that a variant file describes a playable game: enough symbols to
fill a card, winning emotions taken from the catalog and a pattern inside the grid.
Every problem found is listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			vf, undecoded, err := config.DecodeVariantFile(path)
			if err != nil {
				return err
			}
			v, problems := vf.Variant()

			fmt.Fprintln(out, "Validation Results:")
			fmt.Fprintln(out, "-------------------")

			if len(problems) == 0 {
				fmt.Fprintf(out, "✅ Variant '%s' in %s is valid.\n", v.Name, path)
			} else {
				fmt.Fprintf(out, "❌ Variant '%s' in %s has %d problems:\n", v.Name, path, len(problems))
				for i, p := range problems {
					fmt.Fprintf(out, "%d. %s\n", i+1, p)
				}
			}

			if len(undecoded) > 0 {
				fmt.Fprintln(out, "\nWarnings:")
				for i, key := range undecoded {
					fmt.Fprintf(out, "%d. unknown key %q is ignored\n", i+1, key)
				}
			}

			if len(problems) > 0 {
				return fmt.Errorf("%w: %d problems in %s", game.ErrInvalidVariant, len(problems), path)
			}
			return nil
		},
	}
}
