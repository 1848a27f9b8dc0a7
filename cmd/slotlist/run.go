package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/archive"
	"github.com/hupe1980/slotlist/dump"
	"github.com/urfave/cli/v2"
)

var (
	CapacityFlag = &cli.IntFlag{
		Name:  "capacity",
		Usage: "initial capacity including the sentinel slot",
	}
	ValidationFlag = &cli.StringFlag{
		Name:  "validation",
		Usage: "validation level (weak|medium|strong)",
	}
	DumpEachFlag = &cli.BoolFlag{
		Name:  "dump-each",
		Usage: "dump the list after every step",
	}
	TextDumpFlag = &cli.BoolFlag{
		Name:  "text",
		Usage: "write a text dump to stderr on every list report",
	}
	HTMLLogFlag = &cli.StringFlag{
		Name:  "html",
		Usage: "append an HTML log of every list report to this file",
	}
	GraphDirFlag = &cli.StringFlag{
		Name:  "graphs",
		Usage: "with --html, write a Graphviz file per report into this directory and render it",
	}
	KeepGoingFlag = &cli.BoolFlag{
		Name:  "keep-going",
		Usage: "continue after a failing step",
	}
	StepFlag = &cli.BoolFlag{
		Name:  "step",
		Usage: "wait for enter on the terminal between steps",
	}
	ArchiveFlag = &cli.StringFlag{
		Name:  "archive",
		Usage: "archive backend (local|s3|minio), overrides the config file",
	}
)

func runScript(ctx *cli.Context) error {
	cfg, logger, err := setup(ctx)
	if err != nil {
		return err
	}
	applyRunFlags(ctx, &cfg)
	if err := cfg.validate(); err != nil {
		return err
	}

	steps, err := readScript(ctx.Args().First(), ctx.App.Reader)
	if err != nil {
		return err
	}

	var (
		reporters slotlist.MultiReporter[int]
		closers   []io.Closer
	)
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	out, tty := dump.Stdout()
	errOut, errTTY := dump.Stderr()
	textOpts := []dump.Option{dump.WithColor(useColor(cfg.Dump.Color, errTTY))}

	if cfg.Dump.Text {
		reporters = append(reporters, dump.NewTextReporter[int](errOut, textOpts...).WithLogger(logger))
	}
	if cfg.Dump.HTML.Filename != "" {
		f := dump.OpenLogFile(cfg.Dump.HTML)
		closers = append(closers, f)
		reporters = append(reporters, dump.NewHTMLLog[int](f).
			WithGraphs(cfg.Dump.GraphDir, cfg.Dump.RenderPNG).
			WithLogger(logger))
	}

	var arch *archive.Archiver[int]
	store, err := openStore(ctx.Context, cfg.Archive)
	if err != nil {
		return err
	}
	if store != nil {
		opts, err := archiveOptions(cfg.Archive)
		if err != nil {
			return err
		}
		arch = archive.New[int](store, append(opts, archive.WithLogger(logger))...)
		reporters = append(reporters, arch)
		logger.Info("archiving reports", "backend", cfg.Archive.Backend, "session", arch.Session())
	}

	opts := append(cfg.listOptions(), slotlist.WithLogger(logger))
	if len(reporters) > 0 {
		opts = append(opts, slotlist.WithReporter[int](reporters))
	}
	l, err := slotlist.New[int](cfg.List.Capacity, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = l.Destroy() }()

	runner := &Runner{
		List:      l,
		Out:       out,
		DumpEach:  ctx.Bool(DumpEachFlag.Name),
		KeepGoing: ctx.Bool(KeepGoingFlag.Name),
		Dump: func(reason string, snap *slotlist.Snapshot[int]) error {
			if err := dump.Text(out, reason, snap, dump.WithColor(useColor(cfg.Dump.Color, tty))); err != nil {
				return err
			}
			if arch != nil {
				_, err := arch.Save(ctx.Context, reason, snap)
				return err
			}
			return nil
		},
	}
	if ctx.Bool(StepFlag.Name) {
		runner.Pause = pauser(ctx.App.ErrWriter)
	}

	runErr := runner.Run(steps)
	if err := dump.Print(out, l.Snapshot()); err != nil {
		return err
	}

	if arch != nil {
		if err := arch.Flush(ctx.Context); err != nil {
			return fmt.Errorf("flush archive: %w", err)
		}
	}
	return runErr
}

func applyRunFlags(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet(CapacityFlag.Name) {
		cfg.List.Capacity = ctx.Int(CapacityFlag.Name)
	}
	if ctx.IsSet(ValidationFlag.Name) {
		cfg.List.Validation = ctx.String(ValidationFlag.Name)
	}
	if ctx.Bool(TextDumpFlag.Name) {
		cfg.Dump.Text = true
	}
	if ctx.IsSet(HTMLLogFlag.Name) {
		cfg.Dump.HTML.Filename = ctx.String(HTMLLogFlag.Name)
	}
	if ctx.IsSet(GraphDirFlag.Name) {
		cfg.Dump.GraphDir = ctx.String(GraphDirFlag.Name)
		cfg.Dump.RenderPNG = true
	}
	if ctx.IsSet(ArchiveFlag.Name) {
		cfg.Archive.Backend = ctx.String(ArchiveFlag.Name)
	}
}

func readScript(name string, stdin io.Reader) ([]Step, error) {
	if name == "" || name == "-" {
		return ParseScript(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseScript(f)
}

func useColor(mode string, tty bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return tty
	}
}

// pauser waits for a line on the controlling terminal between steps.
func pauser(w io.Writer) func(Step) error {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil
	}
	in := bufio.NewReader(tty)
	return func(next Step) error {
		fmt.Fprintf(w, "next: %s (press enter to continue)...", next)
		_, err := in.ReadString('\n')
		return err
	}
}
