package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cli.stdout, "corruptor %s\n", appVersion())
		},
	}
}
