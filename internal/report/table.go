// Package report renders audit reports for terminals and machine
// consumers. The aggregator only produces ordered result triples;
// everything presentational lives here.
package report

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/cmdshadow/cmdshadow/internal/audit"
	"github.com/cmdshadow/cmdshadow/internal/classify"
)

const (
	red    = "\033[0;31m"
	green  = "\033[0;32m"
	cyan   = "\033[0;36m"
	yellow = "\033[1;33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

// UseColor decides whether to emit ANSI colors for the given color mode
// ("auto", "always", "never"). Auto means: only when stdout is a
// terminal.
func UseColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func statusColor(s classify.Status) string {
	switch s {
	case classify.StatusBuiltin:
		return green
	case classify.StatusFunction:
		return yellow
	case classify.StatusAlias:
		return red
	case classify.StatusExternal:
		return cyan
	case classify.StatusWhitelisted:
		return green
	default:
		return dim
	}
}

// WriteTable renders the report as column-aligned text, one row per
// result in report order.
func WriteTable(w io.Writer, rep audit.Report, colorize bool) {
	cmdWidth, statusWidth := len("COMMAND"), len("STATUS")
	for _, res := range rep.Results {
		if n := len(res.Command); n > cmdWidth {
			cmdWidth = n
		}
		if n := len(res.Status.String()); n > statusWidth {
			statusWidth = n
		}
	}

	fmt.Fprintf(w, "%-*s  %-*s  %s\n", cmdWidth, "COMMAND", statusWidth, "STATUS", "DETAIL")
	for _, res := range rep.Results {
		label := res.Status.String()
		if colorize {
			// Pad before coloring so escape codes don't skew alignment.
			label = fmt.Sprintf("%s%-*s%s", statusColor(res.Status), statusWidth, label, reset)
			fmt.Fprintf(w, "%-*s  %s  %s\n", cmdWidth, res.Command, label, res.Detail)
			continue
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", cmdWidth, res.Command, statusWidth, label, res.Detail)
	}

	fmt.Fprintf(w, "\nworst: %s (%d)\n", rep.Worst, int(rep.Worst))
}
