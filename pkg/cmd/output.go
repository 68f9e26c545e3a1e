package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgGreen, color.Bold)
	stepColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	hintColor    = color.New(color.FgCyan)
)

func heading(w io.Writer, format string, args ...any) {
	_, _ = headingColor.Fprintf(w, format+"\n", args...)
}

func step(w io.Writer, format string, args ...any) {
	_, _ = stepColor.Fprintf(w, "→ "+format+"\n", args...)
}

func success(w io.Writer, format string, args ...any) {
	_, _ = successColor.Fprintf(w, "✓ "+format+"\n", args...)
}

func warn(w io.Writer, format string, args ...any) {
	_, _ = warnColor.Fprintf(w, "! "+format+"\n", args...)
}

func hint(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, hintColor.Sprintf(format, args...))
}
