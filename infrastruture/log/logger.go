// Package log provides the named, leveled loggers used by the long-lived components.
package log

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	ErrEmptyName = errors.New("logger name is required")
	ErrNilWriter = errors.New("logger writer is required")
)

// Logger tags every line with a timestamp, a level and a colored component name.
type Logger struct {
	*log.Logger
}

// New creates a logger for the component name writing to w. color is a lipgloss color,
// an ANSI palette index or a hex value.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	l := log.NewWithOptions(w, log.Options{
		Prefix:          name,
		ReportTimestamp: true,
	})
	styles := log.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	l.SetStyles(styles)

	return &Logger{Logger: l}, nil
}

func (l *Logger) Info(msg string) {
	l.Logger.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.Logger.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.Logger.Error(msg)
}
