package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hupe1980/slotlist/archive"
	"github.com/hupe1980/slotlist/blobstore"
	"github.com/hupe1980/slotlist/codec"
	"github.com/hupe1980/slotlist/dump"
	"github.com/urfave/cli/v2"
)

var (
	FormatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "output format (text|dot|print|json)",
		Value: "text",
	}
	OutDirFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "write one file per entry into this directory instead of stdout",
	}
	LimitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "render only the last n entries (0 renders all)",
	}
)

func inspect(ctx *cli.Context) error {
	cfg, logger, err := setup(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet(ArchiveFlag.Name) {
		cfg.Archive.Backend = ctx.String(ArchiveFlag.Name)
	}
	if cfg.Archive.Backend == "" {
		cfg.Archive.Backend = "local"
	}

	remote, err := openStore(ctx.Context, cfg.Archive)
	if err != nil {
		return err
	}
	store := blobstore.NewCachingStore(remote, blobstore.NewMemoryStore())

	names, err := archive.List(ctx.Context, store, ctx.Args().First())
	if err != nil {
		return err
	}
	if n := ctx.Int(LimitFlag.Name); n > 0 && len(names) > n {
		names = names[len(names)-n:]
	}
	if len(names) == 0 {
		logger.Info("no archived entries", "backend", cfg.Archive.Backend, "session", ctx.Args().First())
		return nil
	}

	if err := store.Prefetch(ctx.Context, names, cfg.Archive.Parallelism); err != nil {
		return err
	}
	entries, err := archive.LoadAll[int](ctx.Context, store, names, cfg.Archive.Parallelism)
	if err != nil {
		return err
	}

	format := ctx.String(FormatFlag.Name)
	outDir := ctx.String(OutDirFlag.Name)
	out, tty := dump.Stdout()

	for i, e := range entries {
		reason := fmt.Sprintf("%s #%d: %s", e.Session, e.Seq, e.Reason)

		if outDir == "" {
			if err := render(out, format, reason, e, useColor(cfg.Dump.Color, tty)); err != nil {
				return err
			}
			continue
		}

		file := filepath.Join(outDir, strings.TrimSuffix(path.Clean(names[i]), archive.Suffix)+"."+format)
		if err := writeEntry(file, format, reason, e); err != nil {
			return err
		}
		logger.Info("rendered entry", "file", file)
	}
	return nil
}

func render(w io.Writer, format, reason string, e *archive.Entry[int], color bool) error {
	switch format {
	case "text":
		return dump.Text(w, reason, e.Snapshot, dump.WithColor(color), dump.WithClock(e.Time.Local))
	case "dot":
		return dump.Dot(w, e.Snapshot)
	case "print":
		if _, err := fmt.Fprintf(w, "%s: ", reason); err != nil {
			return err
		}
		return dump.Print(w, e.Snapshot)
	case "json":
		b, err := codec.GoJSON{}.MarshalIndent(e)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeEntry(file, format, reason string, e *archive.Entry[int]) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	err = render(f, format, reason, e, false)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
