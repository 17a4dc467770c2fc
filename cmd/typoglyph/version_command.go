package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at link time:
//
//	go build -ldflags "-X main.version=v1.2.3" ./cmd/typoglyph
var version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the typoglyph version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "typoglyph %s\n", version)
		},
	}
}
