package dump

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is a terminal that understands colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Stdout returns a writer for colored output on stdout and whether colors
// should be used with it. On Windows the writer translates escape codes.
func Stdout() (io.Writer, bool) {
	if IsTerminal(os.Stdout) {
		return colorable.NewColorableStdout(), true
	}
	return os.Stdout, false
}

// Stderr is Stdout for stderr.
func Stderr() (io.Writer, bool) {
	if IsTerminal(os.Stderr) {
		return colorable.NewColorableStderr(), true
	}
	return os.Stderr, false
}
