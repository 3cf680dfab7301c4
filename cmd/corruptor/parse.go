package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"namecorruptor/internal/patterns"
)

func newParseCommand(cli *CLI) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [grammar]",
		Short: "Show the patterns a grammar expands to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.execute(cmd, func() error {
				grammar := cli.config.Grammar
				if len(args) == 1 {
					grammar = args[0]
				}
				return cli.parse(grammar, format)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or yaml")
	return cmd
}

func (cli *CLI) parse(grammar, format string) error {
	seq := cli.parsePatterns(grammar)
	switch format {
	case "text":
		_, err := fmt.Fprint(cli.stdout, patterns.Format(seq))
		return err
	case "yaml":
		data, err := yaml.Marshal(seq)
		if err != nil {
			return fmt.Errorf("encode patterns: %w", err)
		}
		_, err = cli.stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}
