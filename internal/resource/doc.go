// Package resource implements the resource controller shared by slot lists.
//
// The controller governs two things:
//
//   - Memory: slot storage reservations (non-blocking, fail-fast). A list
//     reserves capacity*cellSize bytes on creation, reserves the difference
//     on growth and a full second block while compacting. A refused
//     reservation surfaces as an OutOfMemory error and leaves the list as
//     it was.
//   - Advisories: a token bucket that throttles the "capacity increased"
//     warning so a list that keeps growing does not flood the log.
//
// # Memory Management
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(1024); err != nil {
//	    // ErrMemoryLimitExceeded - the caller decides what to do
//	}
//	defer rc.ReleaseMemory(1024)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one controller can
// be shared as a budget by many lists.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
