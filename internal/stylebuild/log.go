package isb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mitchellh/colorstring"
	"github.com/rs/zerolog"
)

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type consoleLogger struct {
	zl zerolog.Logger
}

// NewConsoleLogger returns a Logger that prints colored, labeled lines to w.
// Debug lines are dropped unless debug is true.
func NewConsoleLogger(label string, w io.Writer, debug bool) Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(NewConsoleWriter(w)).Level(level).With().Str("task", label).Logger()
	return &consoleLogger{zl: zl}
}

func (l *consoleLogger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

func (l *consoleLogger) Infof(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

func (l *consoleLogger) Warningf(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

func (l *consoleLogger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

var Log Logger = NewConsoleLogger("stylebuild", os.Stderr, false)

// NopLogger discards everything.
var NopLogger Logger = &consoleLogger{zl: zerolog.Nop()}

// ConsoleWriter turns zerolog's JSON events back into colored text.
type ConsoleWriter struct {
	out    io.Writer
	buffer strings.Builder
	lock   sync.Mutex
}

func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

func (w *ConsoleWriter) Write(p []byte) (n int, err error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	var evt map[string]interface{}
	d := json.NewDecoder(bytes.NewReader(p))
	d.UseNumber()
	if err := d.Decode(&evt); err != nil {
		return 0, fmt.Errorf("cannot decode event %q: %w", p, err)
	}

	w.buffer.Reset()
	switch evt["level"] {
	case "fatal", "error":
		w.buffer.WriteString("[red]")
	case "warn":
		w.buffer.WriteString("[yellow]")
	case "debug", "trace":
		w.buffer.WriteString("[blue]")
	default:
		w.buffer.WriteString("[green]")
	}

	if task, ok := evt["task"].(string); ok {
		w.buffer.WriteString(task + ": ")
	}

	if evt["level"] == "error" {
		w.buffer.WriteString("Error: ")
	}

	if msg, ok := evt["message"].(string); ok {
		w.buffer.WriteString(msg)
	}

	w.buffer.WriteString("[reset]\n")
	if _, err := colorstring.Fprint(w.out, w.buffer.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}
