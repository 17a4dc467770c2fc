package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/typoglyph/preset"
	"github.com/spf13/cobra"
)

// newPresetsCommand lists the merged preset catalogue.
func newPresetsCommand() *cobra.Command {
	var presetsFile string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in and file-defined presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := preset.NewCatalog()
			if presetsFile != "" {
				f, err := preset.Load(presetsFile)
				if err != nil {
					return err
				}
				catalog.Merge(f)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderPresetTable(catalog))
			return nil
		},
	}

	cmd.Flags().StringVar(&presetsFile, "presets-file", "", "TOML file with additional presets")

	return cmd
}

// renderPresetTable tabulates the catalogue; unset fields show as "-" to
// mean "engine default".
func renderPresetTable(catalog *preset.Catalog) string {
	rows := make([][]string, 0, 4)
	for _, name := range catalog.Names() {
		def, err := catalog.Resolve(name)
		if err != nil {
			continue
		}

		display := name
		if name == catalog.DefaultName() {
			display += " (default)"
		}
		rows = append(rows, []string{
			display,
			intOrDash(def.MinLength),
			int64OrDash(def.Seed),
			boolOrDash(def.PreserveCase),
			floatOrDash(def.Probability),
		})
	}

	return renderTable(
		[]string{"NAME", "MIN LENGTH", "SEED", "PRESERVE CASE", "PROBABILITY"},
		rows,
		2, 3, 5,
	)
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}

	return strconv.Itoa(*v)
}

func int64OrDash(v *int64) string {
	if v == nil {
		return "-"
	}

	return strconv.FormatInt(*v, 10)
}

func boolOrDash(v *bool) string {
	if v == nil {
		return "-"
	}

	return strconv.FormatBool(*v)
}

func floatOrDash(v *float64) string {
	if v == nil {
		return "-"
	}

	return strconv.FormatFloat(*v, 'g', -1, 64)
}
