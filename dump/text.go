package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/hupe1980/slotlist"
	"github.com/olekukonko/tablewriter"
)

const (
	banner = "|-------------------------          List  Dump          -------------------------|"
	footer = "|------------------------- %s -------------------------|"
)

// Option configures the text renderer.
type Option func(*textOptions)

type textOptions struct {
	color bool
	now   func() time.Time
}

// WithColor enables ANSI colors.
func WithColor(enabled bool) Option {
	return func(o *textOptions) { o.color = enabled }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *textOptions) { o.now = now }
}

type palette struct {
	banner, reason, good, bad, head, tail, both, unused, freed *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		banner: mk(color.FgHiYellow),
		reason: mk(color.FgBlue),
		good:   mk(color.FgGreen),
		bad:    mk(color.FgRed, color.Bold),
		head:   mk(color.FgBlue),
		tail:   mk(color.FgGreen),
		both:   mk(color.FgMagenta),
		unused: mk(color.FgCyan),
		freed:  mk(color.FgRed),
	}
}

// Text writes a full dump of snap: the validation state, the bookkeeping
// fields (marked BAD when out of range), a table of every cell and the
// free list.
func Text[T any](w io.Writer, reason string, snap *slotlist.Snapshot[T], opts ...Option) error {
	o := textOptions{now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	p := newPalette(o.color)

	if snap == nil {
		_, err := fmt.Fprintln(w, p.bad.Sprint("nil snapshot"))
		return err
	}

	var b strings.Builder
	b.WriteString(p.banner.Sprint(banner) + "\n")
	b.WriteString(p.reason.Sprint(reason) + "\n")

	state := p.good
	if snap.Code != slotlist.OK {
		state = p.bad
	}
	fmt.Fprintf(&b, "    List state: %d %s\n\n", snap.Code, state.Sprintf("(%s)", snap.Code.Description()))

	capacity := snap.Capacity
	inRange := func(s slotlist.SlotID) bool { return s >= 0 && int(s) < capacity }
	badIf := func(cond bool) string {
		if cond {
			return p.bad.Sprint("(BAD)")
		}
		return ""
	}

	sorted := p.head.Sprint("yes")
	if !snap.Sorted {
		sorted = p.both.Sprint("no")
	}
	if snap.SortFlag < 0 || snap.SortFlag > 1 {
		sorted = strconv.Itoa(int(snap.SortFlag))
	}
	fmt.Fprintf(&b, "    Is_sorted: %s %s\n", sorted, badIf(snap.SortFlag < 0 || snap.SortFlag > 1))
	fmt.Fprintf(&b, "         Head: %d %s\n", snap.Head, badIf(!inRange(snap.Head)))
	fmt.Fprintf(&b, "         Tail: %d %s\n", snap.Tail, badIf(!inRange(snap.Tail)))
	fmt.Fprintf(&b, "     Capacity: %d %s\n", capacity, badIf(capacity <= 0))
	fmt.Fprintf(&b, "       Length: %d\n\n", snap.Len)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if len(snap.Cells) > 0 {
		if err := cellTable(w, snap, p); err != nil {
			return err
		}
	}

	b.Reset()
	fmt.Fprintf(&b, "\n    First_free: %d %s\n", snap.FirstFree, badIf(!inRange(snap.FirstFree)))
	fmt.Fprintf(&b, "    Free list: %v\n", snap.FreeSlots())
	b.WriteString(p.banner.Sprintf(footer, o.now().Format(time.RFC3339)) + "\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func cellTable[T any](w io.Writer, snap *slotlist.Snapshot[T], p palette) error {
	n := len(snap.Cells)
	header := make([]string, 0, n+1)
	marks := make([]string, 0, n+1)
	values := make([]string, 0, n+1)
	nexts := make([]string, 0, n+1)
	prevs := make([]string, 0, n+1)

	header = append(header, "slot")
	marks = append(marks, "")
	values = append(values, "value")
	nexts = append(nexts, "next")
	prevs = append(prevs, "prev")

	for _, c := range snap.Cells {
		header = append(header, strconv.Itoa(int(c.Slot)))

		switch {
		case c.Slot == snap.Head && c.Slot == snap.Tail:
			marks = append(marks, p.both.Sprint("B"))
		case c.Slot == snap.Head:
			marks = append(marks, p.head.Sprint("H"))
		case c.Slot == snap.Tail:
			marks = append(marks, p.tail.Sprint("T"))
		default:
			marks = append(marks, "")
		}

		switch c.State {
		case slotlist.CellLive:
			values = append(values, fmt.Sprint(c.Value))
			nexts = append(nexts, c.Next.String())
			prevs = append(prevs, c.Prev.String())
		case slotlist.CellSentinel:
			values = append(values, "--")
			nexts = append(nexts, c.Next.String())
			prevs = append(prevs, c.Prev.String())
		case slotlist.CellFreed:
			values = append(values, p.freed.Sprint("fr"))
			nexts = append(nexts, link(c.Next, p.freed.Sprint("fr")))
			prevs = append(prevs, link(c.Prev, p.freed.Sprint("fr")))
		default:
			values = append(values, p.unused.Sprint("un"))
			nexts = append(nexts, link(c.Next, p.unused.Sprint("un")))
			prevs = append(prevs, link(c.Prev, p.unused.Sprint("un")))
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append(marks)
	table.Append(values)
	table.Append(nexts)
	table.Append(prevs)
	table.Render()
	return nil
}

// link renders a link field, falling back to marker when it points nowhere.
func link(s slotlist.SlotID, marker string) string {
	if s < 0 {
		return marker
	}
	return s.String()
}
