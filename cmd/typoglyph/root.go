package main

import (
	"os"
	"time"

	"github.com/katalvlaran/typoglyph/preset"
	"github.com/katalvlaran/typoglyph/scramble"
	"github.com/katalvlaran/typoglyph/token"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootOptions carries the root command's flag values.
type rootOptions struct {
	seed         int64
	minLength    int
	probability  float64
	preserveCase bool
	presetName   string
	presetsFile  string
	inPath       string
	outPath      string
	encodingName string
	highlight    bool
	verbose      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "typoglyph [text ...]",
		Short: "Scramble word interiors while keeping first and last letters",
		Long: `typoglyph applies the typoglycemia effect: it shuffles the interior
letters of each word while anchoring the first and last letter, so the
output stays approximately readable.

Text is taken from the arguments, from --in, or from stdin. With --seed
the output is reproducible; without it, every run scrambles differently.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScramble(cmd, opts, args)
		},
	}

	fl := rootCmd.Flags()
	fl.Int64Var(&opts.seed, "seed", 0, "Deterministic seed; omit for ambient randomness")
	fl.IntVar(&opts.minLength, "min-length", scramble.DefaultMinLength, "Minimum letter-core length for a word to scramble")
	fl.Float64Var(&opts.probability, "probability", scramble.DefaultProbability, "Per-word scramble probability in [0,1]")
	fl.BoolVar(&opts.preserveCase, "preserve-case", scramble.DefaultPreserveCase, "Keep the positional casing pattern of each word")
	fl.StringVar(&opts.presetName, "preset", "", "Named option preset; explicit flags override its fields")
	fl.StringVar(&opts.presetsFile, "presets-file", "", "TOML file with additional presets")
	fl.StringVar(&opts.inPath, "in", "", "Read input from this file instead of arguments or stdin")
	fl.StringVar(&opts.outPath, "out", "", "Write output to this file instead of stdout")
	fl.StringVar(&opts.encodingName, "encoding", "utf-8", "Input/output text encoding (utf-8, latin-1, windows-1252, utf-16le, utf-16be)")
	fl.BoolVar(&opts.highlight, "highlight", false, "Colorize scrambled words when writing to a terminal")
	fl.BoolVarP(&opts.verbose, "verbose", "v", false, "Log a run summary to stderr")

	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newPresetsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// engineOptions builds the scramble options: preset fields first, then every
// explicitly set flag, so flags win field by field.
func (o *rootOptions) engineOptions(flags *pflag.FlagSet) ([]scramble.Option, error) {
	var opts []scramble.Option

	if o.presetName != "" || o.presetsFile != "" {
		catalog := preset.NewCatalog()
		if o.presetsFile != "" {
			f, err := preset.Load(o.presetsFile)
			if err != nil {
				return nil, err
			}
			catalog.Merge(f)
		}

		def, err := catalog.Resolve(o.presetName)
		if err != nil {
			return nil, err
		}
		opts = def.Options()
	}

	if flags.Changed("seed") {
		opts = append(opts, scramble.WithSeed(o.seed))
	}
	if flags.Changed("min-length") {
		opts = append(opts, scramble.WithMinLength(o.minLength))
	}
	if flags.Changed("probability") {
		opts = append(opts, scramble.WithProbability(o.probability))
	}
	if flags.Changed("preserve-case") {
		opts = append(opts, scramble.WithPreserveCase(o.preserveCase))
	}

	return opts, nil
}

func runScramble(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := newLogger(opts.verbose)

	engineOpts, err := opts.engineOptions(cmd.Flags())
	if err != nil {
		return err
	}

	input, err := readInput(args, opts.inPath, opts.encodingName)
	if err != nil {
		return err
	}

	start := time.Now()
	output := scramble.Scramble(input, engineOpts...)

	if opts.verbose {
		inToks := token.Split(input)
		logger.Debug().
			Int("tokens", len(inToks)).
			Int("scrambled", countChanged(inToks, token.Split(output))).
			Dur("elapsed", time.Since(start)).
			Msg("scramble complete")
	}

	rendered := output
	if opts.highlight && opts.outPath == "" && shouldColorize(os.Stdout) {
		rendered = highlightChanges(input, output)
	}

	return writeOutput(rendered, opts.outPath, opts.encodingName)
}
