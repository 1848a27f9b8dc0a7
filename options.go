package slotlist

import (
	"math"
	"time"
)

// DefaultCapacity is the capacity used by NewDefault.
const DefaultCapacity = 10

// MaxCapacity bounds the number of slots a list may hold.
const MaxCapacity = math.MaxInt32

// ValidationLevel selects how much checking surrounds every operation.
//
// The field checks of Validate run before and after every mutating
// operation at every level; higher levels only add work on top.
type ValidationLevel int

const (
	// ValidateWeak runs the field checks only.
	ValidateWeak ValidationLevel = iota + 1
	// ValidateMedium additionally poisons every cell on Destroy.
	ValidateMedium
	// ValidateStrong additionally walks the live chain and the free list
	// after every mutation (see Check).
	ValidateStrong
)

// String implements fmt.Stringer.
func (v ValidationLevel) String() string {
	switch v {
	case ValidateWeak:
		return "weak"
	case ValidateMedium:
		return "medium"
	case ValidateStrong:
		return "strong"
	default:
		return "unknown"
	}
}

// ParseValidationLevel parses "weak", "medium" or "strong".
func ParseValidationLevel(s string) (ValidationLevel, bool) {
	switch s {
	case "weak":
		return ValidateWeak, true
	case "medium":
		return ValidateMedium, true
	case "strong":
		return ValidateStrong, true
	default:
		return 0, false
	}
}

// MemoryBudget is an interface for reserving slot storage.
// A budget can be shared by many lists.
type MemoryBudget interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	reporter         any
	validation       ValidationLevel
	memoryLimit      int64
	budget           MemoryBudget
	advisoryInterval time.Duration
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		validation:       ValidateMedium,
	}
}

// Option configures a List.
type Option func(*options)

// WithLogger configures structured logging.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &slotlist.BasicMetricsCollector{}
//	l, _ := slotlist.New[int](16, slotlist.WithMetricsCollector(metrics))
//	// ... use the list ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithReporter configures the diagnostics hook. The reporter receives a
// read-only snapshot whenever an operation fails and whenever the list
// grows. Its element type must match the list's element type.
func WithReporter[T any](r Reporter[T]) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithValidation sets the validation level (default ValidateMedium).
func WithValidation(level ValidationLevel) Option {
	return func(o *options) {
		o.validation = level
	}
}

// WithMemoryLimit caps the bytes of slot storage this list may reserve.
// Growth or compaction beyond the cap fails with OutOfMemory.
// Ignored when WithMemoryBudget is also given.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMemoryBudget makes the list reserve its storage from a shared budget.
func WithMemoryBudget(b MemoryBudget) Option {
	return func(o *options) {
		o.budget = b
	}
}

// WithGrowthAdvisoryInterval throttles the growth warning to at most one
// per interval. Zero (the default) warns on every growth.
func WithGrowthAdvisoryInterval(d time.Duration) Option {
	return func(o *options) {
		o.advisoryInterval = d
	}
}
