package dump

import (
	"context"
	"fmt"
	"html"
	"io"
	"os/exec"
	"strings"

	"github.com/hupe1980/slotlist"
)

// DotBinary is the Graphviz executable used by RenderPNG.
var DotBinary = "dot"

// Dot writes snap as a Graphviz digraph: one record node per cell with its
// value and links, edges along next and prev, and component nodes for the
// bookkeeping fields. Out-of-range fields are drawn red.
func Dot[T any](w io.Writer, snap *slotlist.Snapshot[T]) error {
	if snap == nil {
		return fmt.Errorf("dump: nil snapshot")
	}
	capacity := snap.Capacity
	inRange := func(s slotlist.SlotID) bool { return s >= 0 && int(s) < capacity }
	pick := func(ok bool, good string) string {
		if ok {
			return good
		}
		return "red"
	}

	var b strings.Builder
	b.WriteString("digraph structs {\n")
	b.WriteString("    rankdir=LR\n\n")

	fmt.Fprintf(&b, "    cell_head [ shape=component label=\"head | %d\" color=\"%s\" ]\n", snap.Head, pick(inRange(snap.Head), "blue"))
	fmt.Fprintf(&b, "    cell_tail [ shape=component label=\"tail | %d\" color=\"%s\" ]\n", snap.Tail, pick(inRange(snap.Tail), "green"))
	fmt.Fprintf(&b, "    cell_capacity [ shape=component label=\"capacity | %d\" color=\"%s\" ]\n", capacity, pick(capacity > 0, "black"))
	b.WriteString("    cell_head -> cell_tail -> cell_capacity [arrowhead=\"none\"]\n\n")

	for _, c := range snap.Cells {
		value, valueColor := valueLabel(c)
		next, nextColor := linkLabel(c.State, c.Next)
		prev, prevColor := linkLabel(c.State, c.Prev)

		frame := "black"
		switch {
		case c.Slot == snap.Head && c.Slot == snap.Tail && snap.Len > 0:
			frame = "purple"
		case c.Slot == snap.Head && snap.Len > 0:
			frame = "blue"
		case c.Slot == snap.Tail && snap.Len > 0:
			frame = "green"
		}

		fmt.Fprintf(&b, "    cell_%d [ shape=record, label=< %d<br/><br/>"+
			" value =<font color=\"%s\">%s</font><br/>"+
			"  next =<font color=\"%s\">%s</font><br/>"+
			"  prev =<font color=\"%s\">%s</font>"+
			"> color=\"%s\" ]\n",
			c.Slot, c.Slot, valueColor, value, nextColor, next, prevColor, prev, frame)

		if c.Slot == slotlist.Sentinel {
			continue
		}
		if c.Next > 0 && int(c.Next) < len(snap.Cells) {
			style := ""
			if c.State != slotlist.CellLive {
				style = " [style=dashed color=gray]"
			}
			fmt.Fprintf(&b, "    cell_%d -> cell_%d%s\n", c.Slot, c.Next, style)
		}
		if c.State == slotlist.CellLive && c.Prev >= 0 && int(c.Prev) < len(snap.Cells) {
			fmt.Fprintf(&b, "    cell_%d -> cell_%d [color=gray]\n", c.Slot, c.Prev)
		}
	}

	sorted := "no"
	if snap.Sorted {
		sorted = "yes"
	}
	state := "green"
	if snap.Code != slotlist.OK {
		state = "red"
	}
	fmt.Fprintf(&b, "\n    cell_free [ shape=component label=\"first free | %d\" color=\"%s\" ]\n", snap.FirstFree, pick(inRange(snap.FirstFree), "black"))
	fmt.Fprintf(&b, "    cell_is_sorted [ shape=component label=\"is_sorted | %s\" color=\"%s\" ]\n", sorted, pick(snap.SortFlag >= 0 && snap.SortFlag <= 1, "black"))
	fmt.Fprintf(&b, "    cell_state [ shape=component label=\"state | %d (%s)\" color=\"%s\" ]\n", snap.Code, html.EscapeString(snap.Code.String()), state)
	b.WriteString("    cell_state -> cell_is_sorted [arrowhead=\"none\"]\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func valueLabel[T any](c slotlist.Cell[T]) (string, string) {
	switch c.State {
	case slotlist.CellLive:
		return html.EscapeString(fmt.Sprint(c.Value)), "black"
	case slotlist.CellSentinel:
		return "--", "black"
	case slotlist.CellFreed:
		return "fr", "red"
	default:
		return "un", "blue"
	}
}

func linkLabel(state slotlist.CellState, s slotlist.SlotID) (string, string) {
	if s >= 0 {
		return s.String(), "black"
	}
	if state == slotlist.CellFreed {
		return "fr", "red"
	}
	return "un", "orange"
}

// RenderPNG runs Graphviz on dotPath and writes the image to pngPath.
func RenderPNG(ctx context.Context, dotPath, pngPath string) error {
	cmd := exec.CommandContext(ctx, DotBinary, "-Tpng", dotPath, "-o", pngPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("dump: render %s: %w: %s", dotPath, err, strings.TrimSpace(string(out)))
	}
	return nil
}
