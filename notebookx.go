// Package notebookx implements the core of the NotebookX note-taking
// application: a notebook made of ordered pages with bounded plain-text
// content, a human-readable text format to persist it, and the overflow
// logic that splits long content across pages.
//
// The package holds no global state. A Notebook is owned by a single
// editing session and mutated only through its methods; persistence goes
// through a Storage implementation supplied by the caller.
package notebookx

import (
	"strings"

	"github.com/notebookx/notebookx/internal/logging"
)

// SetLogLevel sets the log level to one of
// "debug", "info", "warning" or "error".
// Any other value disables logging completely.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
