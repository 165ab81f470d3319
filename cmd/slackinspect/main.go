// Package main provides the slackinspect CLI for classifying Slack Web API
// responses and Block Kit payloads.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cecil-the-coder/slack-api-types/internal/config"
	"github.com/cecil-the-coder/slack-api-types/internal/inspect"
	"github.com/cecil-the-coder/slack-api-types/internal/logging"
)

var version = "dev"

var errNotSuccess = errors.New("response is not a success")

type rootOptions struct {
	configPath string
	format     string
	color      string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "slackinspect: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "slackinspect",
		Short:         "Classify Slack Web API responses and Block Kit payloads",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "",
		"Path to a YAML config file (env: "+config.EnvConfigPath+")")
	flags.StringVar(&opts.format, "format", "", "Output format: table or json")
	flags.StringVar(&opts.color, "color", "", "Colour output: auto, always or never")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")

	cmd.AddCommand(newClassifyCmd(opts))
	cmd.AddCommand(newBlocksCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var fail bool

	cmd := &cobra.Command{
		Use:   "classify [file|-]",
		Short: "Report how a Web API response is classified",
		Long: "Reads a JSON response from a file or stdin and reports its success or error\n" +
			"status, error category and pagination state.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			report, err := inspect.New(logger).Response(data)
			if err != nil {
				return err
			}
			if err := inspect.WriteResponse(cmd.OutOrStdout(), report, renderOptions(cmd, cfg)); err != nil {
				return err
			}
			if fail && report.Status != inspect.StatusSuccess {
				return fmt.Errorf("%w: %s", errNotSuccess, report.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fail, "fail", false, "Exit non-zero unless the response is a success")
	return cmd
}

func newBlocksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks [file|-]",
		Short: "List the blocks of a payload and whether each is a known type",
		Long: "Reads a JSON block array, or an object holding blocks directly or under\n" +
			"message, from a file or stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			report, err := inspect.New(logger).Blocks(data)
			if err != nil {
				return err
			}
			return inspect.WriteBlocks(cmd.OutOrStdout(), report, renderOptions(cmd, cfg))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// setup loads the config file, applies flag overrides, validates the result
// and builds the logger
func (o *rootOptions) setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path := o.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.color != "" {
		cfg.Output.Color = o.color
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		if path != "" {
			return config.Config{}, nil, fmt.Errorf("config %s: %w", path, err)
		}
		return config.Config{}, nil, err
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return cfg, logger, nil
}

func renderOptions(cmd *cobra.Command, cfg config.Config) inspect.RenderOptions {
	return inspect.RenderOptions{
		Format: cfg.Output.Format,
		Color:  inspect.UseColor(cfg.Output.Color, cmd.OutOrStdout()),
		Width:  inspect.TerminalWidth(cmd.OutOrStdout()),
	}
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
