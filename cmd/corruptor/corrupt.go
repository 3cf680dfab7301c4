package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"namecorruptor/internal/diff"
)

func newCorruptCommand(cli *CLI) *cobra.Command {
	var (
		iterations int
		showDiff   bool
	)

	cmd := &cobra.Command{
		Use:   "corrupt <name>",
		Short: "Corrupt a single name",
		Long: `Corrupt applies --iterations corruptions to one name and prints every step.

Example:
  corruptor corrupt agatha --grammar "th => ff"   # agatha => agaffa`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.execute(cmd, func() error {
				return cli.corrupt(args[0], iterations, showDiff)
			})
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "i", 1, "Number of corruption steps")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show what changed at each step")
	cmd.Flags().Bool("relax", false, "Collapse tripled letters after each change")

	return cmd
}

func (cli *CLI) corrupt(name string, iterations int, showDiff bool) error {
	if iterations < 0 {
		return fmt.Errorf("iterations must be >= 0, got %d", iterations)
	}
	c, err := cli.newCorruptor()
	if err != nil {
		return err
	}

	gen := diff.NewGenerator(cli.colorEnabled())
	fmt.Fprintln(cli.stdout, name)
	current := name
	for i := 1; i <= iterations; i++ {
		next := c.CorruptOnce(current)
		if showDiff {
			fmt.Fprintf(cli.stdout, "%d: %s  (%s)\n", i, next, gen.Render(gen.Describe(current, next)))
		} else {
			fmt.Fprintf(cli.stdout, "%d: %s\n", i, next)
		}
		current = next
	}
	return nil
}
