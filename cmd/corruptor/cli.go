package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"namecorruptor/internal/config"
	"namecorruptor/internal/corruptor"
	"namecorruptor/internal/logging"
	"namecorruptor/internal/output"
	"namecorruptor/internal/patterns"
)

// CLI holds the command line interface state shared by every subcommand.
type CLI struct {
	stdout     io.Writer
	stderr     io.Writer
	viper      *viper.Viper
	configPath string

	config  config.RuntimeConfig
	meta    config.Metadata
	logger  logging.Logger
	logFile *os.File
	fileLog logging.Logger
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"grammar":   "grammar",
	"delimiter": "link_delimiter",
	"color":     "color",
	"names":     "name_list",
	"steps":     "steps",
	"relax":     "relax",
	"report":    "report_path",
	"verbose":   "verbose",
	"log-file":  "log_file",
}

// NewRootCommand creates the root cobra command
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cli := &CLI{
		stdout: stdout,
		stderr: stderr,
		viper:  viper.New(),
		logger: logging.Nop(),
	}
	// log_file only matters to the CLI, so viper resolves it from the flag or
	// CORRUPTOR_LOG_FILE directly.
	cli.viper.SetEnvPrefix("CORRUPTOR")
	_ = cli.viper.BindEnv("log_file")

	rootCmd := &cobra.Command{
		Use:   "corruptor",
		Short: "Evolve names through rotating sound-shift patterns",
		Long: `corruptor applies literal substitution patterns to names, one change per step.

A grammar lists chains separated by ';'. Each chain "a => b => c" expands into
the patterns a=>b and b=>c. Every step applies the next pattern, in rotation,
that actually changes the name.

Examples:
  corruptor corrupt agatha --grammar "th => ff"
  corruptor run --names names.txt --steps 4 --report README.md
  corruptor parse "bh => b => p => f; dh => d => t"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cli.configPath, "config", "c", "", "Config file (default $CORRUPTOR_CONFIG or ~/.corruptor.yaml)")
	flags.StringP("grammar", "g", "", "Pattern grammar, e.g. \"th => dd => t; d => t\"")
	flags.String("delimiter", patterns.DefaultLinkDelimiter, "Token separator inside a chain")
	flags.String("color", string(config.ColorAuto), "Color output: auto, always or never")
	flags.BoolP("verbose", "v", false, "Debug logging on stderr")
	flags.String("log-file", "", "Also append debug logs to this file (default $CORRUPTOR_LOG_FILE)")

	rootCmd.AddCommand(newRunCommand(cli))
	rootCmd.AddCommand(newCorruptCommand(cli))
	rootCmd.AddCommand(newParseCommand(cli))
	rootCmd.AddCommand(newVersionCommand(cli))

	return rootCmd
}

// execute initializes cli for cmd, runs fn and releases the log file.
func (cli *CLI) execute(cmd *cobra.Command, fn func() error) error {
	if err := cli.initialize(cmd); err != nil {
		cli.close()
		return err
	}
	defer cli.close()
	return fn()
}

// initialize resolves configuration for cmd.
//
// Only values viper reports as set (an explicit flag) become overrides.
// config.Load owns file and environment precedence for the corruptor
// settings because it records where every value came from; viper would
// flatten that provenance.
func (cli *CLI) initialize(cmd *cobra.Command) error {
	if err := cli.bindFlags(cmd.Flags()); err != nil {
		return err
	}

	v := cli.viper
	overrides := config.Overrides{}
	if v.IsSet("grammar") {
		overrides.Grammar = ptr(v.GetString("grammar"))
	}
	if v.IsSet("link_delimiter") {
		overrides.LinkDelimiter = ptr(v.GetString("link_delimiter"))
	}
	if v.IsSet("color") {
		overrides.Color = ptr(config.ColorMode(v.GetString("color")))
	}
	if v.IsSet("name_list") {
		overrides.NameList = ptr(v.GetString("name_list"))
	}
	if v.IsSet("steps") {
		overrides.Steps = ptr(v.GetInt("steps"))
	}
	if v.IsSet("relax") {
		overrides.Relax = ptr(v.GetBool("relax"))
	}
	if v.IsSet("report_path") {
		overrides.ReportPath = ptr(v.GetString("report_path"))
	}
	if v.GetBool("verbose") {
		overrides.LogLevel = ptr("debug")
	}

	opts := []config.Option{config.WithOverrides(overrides)}
	if cli.configPath != "" {
		opts = append(opts, config.WithConfigPath(cli.configPath))
	}
	cfg, meta, err := config.Load(opts...)
	if err != nil {
		return err
	}
	cli.config = cfg
	cli.meta = meta

	logging.Configure(logging.LogConfig{Level: cfg.LogLevel, Format: "text", Output: cli.stderr})
	if path := v.GetString("log_file"); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		cli.logFile = file
		cli.fileLog = logging.New(logging.LogConfig{Level: "debug", Format: "text", Output: file})
	}

	cli.logger = cli.componentLogger("cli")
	if meta.Path() != "" {
		cli.logger.Debug("loaded config from %s", meta.Path())
	}
	return nil
}

// componentLogger logs to stderr at the configured level and, when
// --log-file is set, to that file at debug level.
func (cli *CLI) componentLogger(component string) logging.Logger {
	stderr := logging.NewComponentLogger(component)
	if cli.fileLog == nil {
		return stderr
	}
	return logging.Multi(stderr, logging.WithComponent(cli.fileLog, component))
}

func (cli *CLI) close() {
	if cli.logFile == nil {
		return
	}
	_ = cli.logFile.Close()
	cli.logFile = nil
	cli.fileLog = nil
}

// bindFlags binds the flags of the executing command to configuration keys.
// Binding happens per invocation because several subcommands define the
// same flag names.
func (cli *CLI) bindFlags(flags *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := cli.viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// parsePatterns parses grammar with the configured delimiter.
func (cli *CLI) parsePatterns(grammar string) []patterns.Pattern {
	seq := cli.config.Parser().Parse(grammar)
	cli.logger.Debug("parsed %d patterns with delimiter %q", len(seq), cli.config.LinkDelimiter)
	return seq
}

// newCorruptor builds a corruptor from the configured grammar.
func (cli *CLI) newCorruptor(extra ...corruptor.Option) (*corruptor.Corruptor, error) {
	opts := []corruptor.Option{corruptor.WithLogger(cli.componentLogger("corruptor"))}
	if cli.config.Relax {
		opts = append(opts, corruptor.WithRelax())
	}
	opts = append(opts, extra...)

	c, err := corruptor.New(cli.parsePatterns(cli.config.Grammar), opts...)
	if err != nil {
		return nil, fmt.Errorf("build corruptor: %w", err)
	}
	return c, nil
}

func (cli *CLI) colorEnabled() bool {
	return output.ColorEnabled(cli.config.Color, cli.stdout)
}

func ptr[T any](v T) *T {
	return &v
}
