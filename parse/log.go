package parse

import (
	"io"
	"log"
)

// diagLog is the single diagnostic channel spec.md §6/§7 allows: shift/
// reduce conflict warnings and table-construction trace lines. Silenced
// by default; SetDiagnosticLog redirects it. Grounded on cmd/tqserver's
// bare log.Printf with a level-prefix string convention ("WARN  ...",
// "DEBUG ...") rather than a structured logging library, since no such
// library appears anywhere in the teacher's non-test code.
var diagLog = log.New(io.Discard, "", 0)

// SetDiagnosticLog redirects the diagnostic channel to w. Passing nil
// silences it again.
func SetDiagnosticLog(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	diagLog.SetOutput(w)
}

func logDebug(format string, args ...any) {
	diagLog.Printf("DEBUG "+format, args...)
}

func logWarn(format string, args ...any) {
	diagLog.Printf("WARN  "+format, args...)
}
