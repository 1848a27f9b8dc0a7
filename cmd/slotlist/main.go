// slotlist drives a slot-array list from an op script and inspects
// archived diagnostics.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/slotlist"
	"github.com/urfave/cli/v2"
)

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "TOML configuration file",
		EnvVars: []string{"SLOTLIST_CONFIG"},
	}
	VerbosityFlag = &cli.StringFlag{
		Name:  "log.level",
		Usage: "log level (debug|info|warn|error), overrides the config file",
	}
	LogFormatFlag = &cli.StringFlag{
		Name:  "log.format",
		Usage: "log format (text|json), overrides the config file",
	}
)

// Command definitions.
var (
	runCommand = &cli.Command{
		Name:      "run",
		Usage:     "Executes an op script against a fresh list",
		ArgsUsage: "<script|->",
		Action:    runScript,
		Flags: []cli.Flag{
			CapacityFlag,
			ValidationFlag,
			DumpEachFlag,
			TextDumpFlag,
			HTMLLogFlag,
			GraphDirFlag,
			KeepGoingFlag,
			StepFlag,
			ArchiveFlag,
		},
	}
	inspectCommand = &cli.Command{
		Name:      "inspect",
		Usage:     "Renders archived dumps",
		ArgsUsage: "[session]",
		Action:    inspect,
		Flags: []cli.Flag{
			ArchiveFlag,
			FormatFlag,
			OutDirFlag,
			LimitFlag,
		},
	}
	dumpConfigCommand = &cli.Command{
		Name:   "dumpconfig",
		Usage:  "Prints the effective configuration as TOML",
		Action: dumpConfig,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "slotlist",
		Usage: "slot-array doubly linked list harness",
		Flags: []cli.Flag{
			ConfigFlag,
			VerbosityFlag,
			LogFormatFlag,
		},
		Commands: []*cli.Command{
			runCommand,
			inspectCommand,
			dumpConfigCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and applies the global flag overrides.
func setup(ctx *cli.Context) (Config, *slotlist.Logger, error) {
	cfg, err := loadConfig(ctx.String(ConfigFlag.Name))
	if err != nil {
		return cfg, nil, err
	}
	if ctx.IsSet(VerbosityFlag.Name) {
		cfg.Log.Level = ctx.String(VerbosityFlag.Name)
	}
	if ctx.IsSet(LogFormatFlag.Name) {
		cfg.Log.Format = ctx.String(LogFormatFlag.Name)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func newLogger(cfg LogConfig) (*slotlist.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slotlist.NewLogger(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slotlist.NewLogger(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
}

func dumpConfig(ctx *cli.Context) error {
	cfg, _, err := setup(ctx)
	if err != nil {
		return err
	}
	return encodeConfig(ctx.App.Writer, cfg)
}
