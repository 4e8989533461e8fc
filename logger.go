package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var logger = newLogger(os.Stderr)

func logPrefix() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#0A6CF5")).
		Bold(true).
		Padding(0, 1).
		Render("infinity")
}

// newLogger builds the stderr logger. Results go to stdout separately so the
// printed command can be piped.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          logPrefix(),
	})
}
