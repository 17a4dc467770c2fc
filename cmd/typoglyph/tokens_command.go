package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/typoglyph/scramble"
	"github.com/katalvlaran/typoglyph/token"
	"github.com/spf13/cobra"
)

// newTokensCommand builds the debug view of the token stream: how the
// input partitions, how each content token segments, and which words the
// length filter would let through.
func newTokensCommand() *cobra.Command {
	var (
		minLength    int
		inPath       string
		encodingName string
	)

	cmd := &cobra.Command{
		Use:   "tokens [text ...]",
		Short: "Show how input splits into tokens and segments",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args, inPath, encodingName)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTokenTable(input, minLength))
			return nil
		},
	}

	cmd.Flags().IntVar(&minLength, "min-length", scramble.DefaultMinLength, "Minimum core length used for the eligibility column")
	cmd.Flags().StringVar(&inPath, "in", "", "Read input from this file instead of arguments or stdin")
	cmd.Flags().StringVar(&encodingName, "encoding", "utf-8", "Input text encoding")

	return cmd
}

// renderTokenTable tabulates the token stream of input.
func renderTokenTable(input string, minLength int) string {
	rows := make([][]string, 0, 16)
	for i, tok := range token.Split(input) {
		if tok.Kind == token.Whitespace {
			rows = append(rows, []string{
				strconv.Itoa(i), tok.Kind.String(), strconv.Quote(tok.Text), "", "", "", "",
			})
			continue
		}

		seg := token.Classify(tok.Text)
		eligible := "no"
		if seg.CoreLen() >= minLength {
			eligible = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(i), tok.Kind.String(), seg.Prefix, seg.Core, seg.Suffix,
			strconv.Itoa(seg.CoreLen()), eligible,
		})
	}

	return renderTable(
		[]string{"#", "KIND", "PREFIX", "CORE", "SUFFIX", "CORE LEN", "ELIGIBLE"},
		rows,
		1, 6,
	)
}
