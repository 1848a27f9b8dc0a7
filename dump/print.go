package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/slotlist"
)

// Print writes the values of snap in logical order on one line.
func Print[T any](w io.Writer, snap *slotlist.Snapshot[T]) error {
	return PrintSep(w, snap, ", ", "\n")
}

// PrintSep is Print with a custom separator and line end.
func PrintSep[T any](w io.Writer, snap *slotlist.Snapshot[T], sep, end string) error {
	values := snap.Values()
	if len(values) == 0 {
		_, err := io.WriteString(w, "[  ]"+end)
		return err
	}

	var b strings.Builder
	b.WriteString("[ ")
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%3v", v)
	}
	b.WriteString(" ]")
	b.WriteString(end)

	_, err := io.WriteString(w, b.String())
	return err
}
