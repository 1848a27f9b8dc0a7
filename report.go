package slotlist

// Reporter receives diagnostics from a List.
//
// The list calls Report with a human readable reason and a snapshot taken
// at the moment of the event. Implementations render or persist the
// snapshot; they must not retain the list itself.
type Reporter[T any] interface {
	Report(reason string, snap *Snapshot[T])
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc[T any] func(reason string, snap *Snapshot[T])

// Report implements Reporter.
func (f ReporterFunc[T]) Report(reason string, snap *Snapshot[T]) { f(reason, snap) }

// MultiReporter fans a report out to several reporters in order.
type MultiReporter[T any] []Reporter[T]

// Report implements Reporter.
func (m MultiReporter[T]) Report(reason string, snap *Snapshot[T]) {
	for _, r := range m {
		if r != nil {
			r.Report(reason, snap)
		}
	}
}
