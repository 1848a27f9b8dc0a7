// Package dump renders list snapshots for humans.
//
// Every renderer consumes a *slotlist.Snapshot and never touches the list
// itself:
//
//   - Print writes the values in logical order: [  5,  10,  20 ]
//   - Text writes the full state: bookkeeping fields, a cell table with
//     head/tail markers and the free list, colored on terminals
//   - Dot writes a Graphviz digraph; RenderPNG turns it into an image
//
// TextReporter and HTMLLog adapt the renderers to slotlist.Reporter, so a
// list can dump itself whenever an operation fails or the storage grows:
//
//	f := dump.OpenLogFile(dump.LogFileConfig{Filename: "logs/list.html"})
//	defer f.Close()
//	l, _ := slotlist.New[int](16, slotlist.WithReporter[int](dump.NewHTMLLog[int](f)))
package dump
