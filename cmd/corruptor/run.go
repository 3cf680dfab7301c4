package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"namecorruptor/internal/config"
	"namecorruptor/internal/corruptor"
	"namecorruptor/internal/metrics"
	"namecorruptor/internal/namelist"
	"namecorruptor/internal/output"
	"namecorruptor/internal/runner"
)

func newRunCommand(cli *CLI) *cobra.Command {
	var strict, stats bool

	cmd := &cobra.Command{
		Use:   "run [names...]",
		Short: "Evolve every name of a list through several steps",
		Long: `Run evolves each name (from the arguments or a name list file with one name
per line) through --steps corruptions. All names share one corruptor, so the
pattern rotation carries over from one name to the next.

Names that end unchanged are printed in red; with --strict they fail the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.execute(cmd, func() error {
				return cli.run(args, strict, stats)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringP("names", "n", "", "Name list file, one name per line")
	flags.IntP("steps", "s", config.DefaultSteps, "Corruptions applied to each name")
	flags.Bool("relax", false, "Collapse tripled letters after each change")
	flags.StringP("report", "r", "", "Write a markdown report to this file")
	flags.BoolVar(&strict, "strict", false, "Exit with code 2 if any name is left unchanged")
	flags.BoolVar(&stats, "stats", false, "Print pattern usage statistics")

	return cmd
}

func (cli *CLI) run(args []string, strict, stats bool) error {
	names, err := cli.loadNames(args)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	var opts []corruptor.Option
	if stats {
		opts = append(opts, corruptor.WithObserver(metrics.MustNewMetrics(registry)))
	}
	c, err := cli.newCorruptor(opts...)
	if err != nil {
		return err
	}

	report := runner.New(c, cli.logger).Run(names, cli.config.Steps)
	manager := output.NewOutputManager(output.NewCLIRenderer(cli.colorEnabled()), output.MarkdownRenderer{})
	if err := manager.Write(cli.stdout, output.TargetCLI, report); err != nil {
		return err
	}

	if stats {
		if err := cli.printStats(registry, c); err != nil {
			return err
		}
	}

	if path := cli.config.ReportPath; path != "" {
		var buf bytes.Buffer
		if err := manager.Write(&buf, output.TargetMarkdown, report); err != nil {
			return err
		}
		if err := writeIfChanged(path, buf.Bytes()); err != nil {
			return err
		}
		cli.logger.Info("report written to %s", path)
	}

	if strict && report.Remaining() > 0 {
		return &ExitCodeError{
			Code: 2,
			Err:  fmt.Errorf("%d of %d names left unchanged after %d steps", report.Remaining(), len(report.Entries), report.Steps),
		}
	}
	return nil
}

func (cli *CLI) loadNames(args []string) ([]string, error) {
	if len(args) > 0 {
		names := make([]string, 0, len(args))
		for _, arg := range args {
			more, err := namelist.Load(strings.NewReader(arg))
			if err != nil {
				return nil, err
			}
			names = append(names, more...)
		}
		return names, nil
	}
	if cli.config.NameList == "" {
		return nil, errors.New("no names given: pass names as arguments or use --names FILE")
	}
	return namelist.LoadFile(cli.config.NameList)
}

func (cli *CLI) printStats(gatherer prometheus.Gatherer, c *corruptor.Corruptor) error {
	summary, err := metrics.Snapshot(gatherer)
	if err != nil {
		return fmt.Errorf("collect stats: %w", err)
	}

	fmt.Fprintf(cli.stdout, "probes: %d, corruptions: %d, exhausted searches: %d\n",
		summary.Probes, summary.Corruptions, summary.Exhausted)
	seq := c.Patterns()
	for _, idx := range summary.TopPatterns() {
		if idx < 0 || idx >= len(seq) {
			continue
		}
		fmt.Fprintf(cli.stdout, "  %4d  %s\n", summary.ByPattern[idx], seq[idx])
	}
	return nil
}

// writeIfChanged leaves path untouched when it already holds data.
func writeIfChanged(path string, data []byte) error {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
