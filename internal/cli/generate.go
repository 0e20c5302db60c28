package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/Mikkode/bingo/internal/config"
	"github.com/Mikkode/bingo/internal/game"
)

type generateOptions struct {
	winners     int
	variant     string
	variantFile string
	seed        uint64
	reveal      bool
	hearts      bool
	json        bool
	columns     int
}

// batchJSON is the --json output.
type batchJSON struct {
	Batch     game.Batch `json:"batch"`
	WinnerIDs []int      `json:"winner_ids"`
}

func addGenerateFlags(fs *pflag.FlagSet, o *generateOptions) {
	fs.IntVarP(&o.winners, "winners", "w", game.DefaultWinners, "Number of winner cards, 0 to 50 (default from the config file)")
	fs.StringVar(&o.variant, "variant", "", "Variant to play, see 'bingo variants' (default from the config file)")
	fs.StringVarP(&o.variantFile, "variant-file", "f", "", "TOML file describing a custom variant")
	fs.Uint64Var(&o.seed, "seed", 0, "Seed for a reproducible batch")
	fs.BoolVarP(&o.reveal, "reveal", "r", false, "Mark the winner cards")
	fs.BoolVar(&o.hearts, "hearts", false, "Draw a heart over the winning pattern cells")
	fs.BoolVar(&o.json, "json", false, "Print the batch as JSON")
	fs.IntVarP(&o.columns, "columns", "c", 0, "Cards per line (default: fit the terminal)")
}

func newGenerateCmd() *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of 50 cards",
		Long: `Generate draws a batch of 50 cards where exactly --winners cards are winners.

Examples:
  bingo generate --winners 5 --reveal
  bingo generate --variant fullcard --seed 42 --json
  bingo generate --variant-file classroom.toml --hearts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLIConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("winners") {
				o.winners = cfg.DefaultWinners
			}
			if o.variant == "" && o.variantFile == "" {
				o.variant = cfg.DefaultVariant
			}

			v, err := resolveVariant(o.variant, o.variantFile)
			if err != nil {
				return err
			}

			rng := game.NewRNG()
			if cmd.Flags().Changed("seed") {
				rng = game.NewSeededRNG(o.seed)
			}
			g, err := game.NewGenerator(v, rng)
			if err != nil {
				return err
			}
			batch, err := g.GenerateBatch(o.winners)
			if err != nil {
				return fmt.Errorf("error generating cards: %w", err)
			}
			klog.V(1).Infof("generate: batch %s, winners %v", batch.ID, batch.WinnerIDs())

			out := cmd.OutOrStdout()
			if o.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(batchJSON{Batch: batch, WinnerIDs: batch.WinnerIDs()})
			}
			RenderBatch(out, &batch, v, RenderOptions{
				Reveal:  o.reveal,
				Hearts:  o.hearts,
				Columns: o.columns,
			})
			return nil
		},
	}
	addGenerateFlags(cmd.Flags(), o)
	return cmd
}

// errConflictingVariant is returned when --variant names another variant than the one
// defined by --variant-file.
var errConflictingVariant = errors.New("conflicting --variant and --variant-file")

// resolveVariant returns the variant of the variant file if given, otherwise the built-in
// variant name. Both may be given only if name matches the file's variant.
func resolveVariant(name, file string) (*game.Variant, error) {
	if file == "" {
		return game.LookupVariant(name)
	}
	v, err := config.LoadVariantFile(file)
	if err != nil {
		return nil, err
	}
	if name != "" && name != v.Name {
		return nil, fmt.Errorf("%w: %s defines variant %q, not %q", errConflictingVariant, file, v.Name, name)
	}
	return v, nil
}
