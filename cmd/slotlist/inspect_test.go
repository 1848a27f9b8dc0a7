package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/archive"
	"github.com/hupe1980/slotlist/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	l, err := slotlist.New[int](4)
	require.NoError(t, err)
	_, err = l.PushBack(7)
	require.NoError(t, err)
	e := &archive.Entry[int]{Session: "s", Seq: 1, Reason: "manual", Time: time.Unix(0, 0), Snapshot: l.Snapshot()}

	t.Run("Print", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, "print", "r", e, false))
		assert.Equal(t, "r: [   7 ]\n", buf.String())
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, "json", "r", e, false))
		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "manual", got["reason"])
	})

	t.Run("Dot", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, "dot", "r", e, false))
		assert.Contains(t, buf.String(), "digraph")
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Error(t, render(io.Discard, "svg", "r", e, false))
	})
}

func TestRunAndInspect(t *testing.T) {
	dir := t.TempDir()
	archiveDir := filepath.Join(dir, "archive")

	script := filepath.Join(dir, "ops.txt")
	require.NoError(t, os.WriteFile(script, []byte("push_back 1\npush_back 2\npop_back\ndump\nget 7\n"), 0o644))

	cfgPath := filepath.Join(dir, "slotlist.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[list]
capacity = 2

[dump]
color = "never"

[archive]
backend = "local"
dir = "`+filepath.ToSlash(archiveDir)+`"
compression = "lz4"
`), 0o644))

	newQuietApp := func() interface{ Run([]string) error } {
		app := newApp()
		app.Writer = io.Discard
		app.ErrWriter = io.Discard
		return app
	}

	err := newQuietApp().Run([]string{"slotlist", "--config", cfgPath, "--log.level", "error", "run", "--keep-going", script})
	require.ErrorIs(t, err, slotlist.ErrBadLogicalIndex)

	// Growth on the second push, the explicit dump and the failed get.
	names, err := archive.List(context.Background(), blobstore.NewLocalStore(archiveDir), "")
	require.NoError(t, err)
	require.Len(t, names, 3)

	outDir := filepath.Join(dir, "out")
	require.NoError(t, newQuietApp().Run([]string{"slotlist", "--config", cfgPath, "--log.level", "error", "inspect", "--format", "json", "--out", outDir}))

	files, err := filepath.Glob(filepath.Join(outDir, "*", "*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 3)

	require.NoError(t, newQuietApp().Run([]string{"slotlist", "--config", cfgPath, "--log.level", "error", "inspect", "--limit", "1", "--format", "print", "--out", outDir}))
	files, err = filepath.Glob(filepath.Join(outDir, "*", "*.print"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
