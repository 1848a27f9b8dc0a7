package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/dump"
)

// Step is one line of an op script.
type Step struct {
	Line int
	Op   string
	Args []int
}

// String renders the step the way it is written in a script.
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op)
	for _, a := range s.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}

var opArity = map[string]int{
	"push_back":    1,
	"push_front":   1,
	"pop_back":     0,
	"pop_front":    0,
	"insert_after": 2, // insert_after <slot> <value>
	"remove":       1, // remove <slot>
	"get":          1, // get <index>
	"compact":      0,
	"grow":         1, // grow <capacity>
	"check":        0,
	"print":        0,
	"dump":         0,
}

// ParseScript reads one op per line. Blank lines and lines starting with
// '#' are skipped.
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		op := strings.ToLower(fields[0])
		arity, ok := opArity[op]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown op %q", line, fields[0])
		}
		if len(fields)-1 != arity {
			return nil, fmt.Errorf("line %d: %s takes %d argument(s), got %d", line, op, arity, len(fields)-1)
		}

		step := Step{Line: line, Op: op}
		for _, f := range fields[1:] {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: bad argument %q", line, op, f)
			}
			step.Args = append(step.Args, n)
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

// Runner executes steps against a list and reports each result on Out.
type Runner struct {
	List *slotlist.List[int]
	Out  io.Writer

	// Dump renders the current list state. Used by the dump op and, when
	// DumpEach is set, after every step.
	Dump     func(reason string, snap *slotlist.Snapshot[int]) error
	DumpEach bool

	// KeepGoing continues after a failing step.
	KeepGoing bool

	// Pause is called between steps when set.
	Pause func(step Step) error
}

// Run executes steps in order. It returns the first step error unless
// KeepGoing is set, in which case it returns all step errors joined.
func (r *Runner) Run(steps []Step) error {
	var errs []error
	for i, s := range steps {
		if i > 0 && r.Pause != nil {
			if err := r.Pause(s); err != nil {
				return err
			}
		}

		err := r.Exec(s)
		if err != nil {
			fmt.Fprintf(r.Out, "%s: error: %v\n", s, err)
			if !r.KeepGoing {
				return fmt.Errorf("line %d: %w", s.Line, err)
			}
			errs = append(errs, fmt.Errorf("line %d: %w", s.Line, err))
		}

		if r.DumpEach && s.Op != "dump" {
			if derr := r.dump(fmt.Sprintf("After %s (line %d)", s, s.Line)); derr != nil {
				return derr
			}
		}
	}
	return errors.Join(errs...)
}

// Exec executes a single step.
func (r *Runner) Exec(s Step) error {
	l := r.List
	switch s.Op {
	case "push_back":
		slot, err := l.PushBack(s.Args[0])
		return r.result(s, err, "slot %d", slot)
	case "push_front":
		slot, err := l.PushFront(s.Args[0])
		return r.result(s, err, "slot %d", slot)
	case "insert_after":
		slot, err := l.InsertAfter(s.Args[1], slotlist.SlotID(s.Args[0]))
		return r.result(s, err, "slot %d", slot)
	case "pop_back":
		v, err := l.PopBack()
		return r.result(s, err, "%d", v)
	case "pop_front":
		v, err := l.PopFront()
		return r.result(s, err, "%d", v)
	case "remove":
		v, err := l.RemoveAt(slotlist.SlotID(s.Args[0]))
		return r.result(s, err, "%d", v)
	case "get":
		v, err := l.Get(s.Args[0])
		return r.result(s, err, "%d", v)
	case "compact":
		return r.result(s, l.Compact(), "ok")
	case "grow":
		c, err := l.Grow(s.Args[0])
		return r.result(s, err, "capacity %d", c)
	case "check":
		return r.result(s, l.Check(), "ok")
	case "print":
		return dump.Print(r.Out, l.Snapshot())
	case "dump":
		return r.dump(fmt.Sprintf("Dump (line %d)", s.Line))
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
}

func (r *Runner) result(s Step, err error, format string, args ...any) error {
	if err != nil {
		return err
	}
	_, werr := fmt.Fprintf(r.Out, "%s -> %s\n", s, fmt.Sprintf(format, args...))
	return werr
}

func (r *Runner) dump(reason string) error {
	if r.Dump == nil {
		return nil
	}
	return r.Dump(reason, r.List.Snapshot())
}
