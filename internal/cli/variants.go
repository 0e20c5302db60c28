package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Mikkode/bingo/internal/config"
	"github.com/Mikkode/bingo/internal/game"
)

func newVariantsCmd() *cobra.Command {
	var variantFile string
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the available variants and their winning emotions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLIConfig()
			if err != nil {
				return err
			}
			variants := game.Variants()
			if variantFile != "" {
				v, err := config.LoadVariantFile(variantFile)
				if err != nil {
					return err
				}
				variants = append(variants, v)
			}
			for _, v := range variants {
				describeVariant(cmd.OutOrStdout(), v, v.Name == cfg.DefaultVariant)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&variantFile, "variant-file", "f", "", "Also list the variant of this TOML file")
	return cmd
}

func describeVariant(w io.Writer, v *game.Variant, isDefault bool) {
	marker := " "
	suffix := ""
	if isDefault {
		marker = "*"
		suffix = " [DEFAULT]"
	}
	fmt.Fprintf(w, "%s %s (%s)%s\n", marker, color.HiWhiteString(v.Name), v.Title, suffix)
	fmt.Fprintf(w, "    %s %s\n", color.CyanString("Policy:"), v.Policy)

	names := make([]string, 0, len(v.Winning))
	for _, sym := range v.WinningSymbols() {
		names = append(names, sym.Glyph+" "+sym.Name)
	}
	fmt.Fprintf(w, "    %s %d of %d emotions\n", color.CyanString("Winning:"), len(v.Winning), len(v.Catalog))
	for start := 0; start < len(names); start += 4 {
		fmt.Fprintf(w, "      %s\n", strings.Join(names[start:min(start+4, len(names))], ", "))
	}
	if v.HasPattern() {
		fmt.Fprintf(w, "    %s\n", color.CyanString("Pattern:"))
		renderPattern(w, v)
	}
	fmt.Fprintln(w)
}
