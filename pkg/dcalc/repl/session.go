package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	perrors "github.com/sambeau/dcalc/pkg/dcalc/errors"
	"github.com/sambeau/dcalc/pkg/dcalc/evaluator"
	"github.com/sambeau/dcalc/pkg/dcalc/format"
	"github.com/sambeau/dcalc/pkg/dcalc/settings"
	"github.com/sambeau/dcalc/pkg/logging"
)

// ErrQuit is returned by Execute for exit and quit.
var ErrQuit = errors.New("quit")

// Session holds the settings of one interactive session. Settings change
// only between lines: by a command, or by a reload queued with Reconfigure.
type Session struct {
	settings settings.Settings
	log      *logging.Logger

	// Ask reads a follow-up answer, such as the number of roots to list.
	// A nil Ask takes the configured default.
	Ask func(prompt string) (string, error)

	mu      sync.Mutex
	pending *settings.Settings
}

// NewSession starts a session with the given settings
func NewSession(s settings.Settings, log *logging.Logger) *Session {
	if log == nil {
		log = logging.Discard()
	}
	return &Session{settings: s, log: log}
}

// Settings returns the settings in force
func (s *Session) Settings() settings.Settings {
	return s.settings
}

// Reconfigure queues new settings, applied before the next line. The
// session's Ans is kept. Safe to call from another goroutine.
func (s *Session) Reconfigure(next settings.Settings) {
	s.mu.Lock()
	s.pending = &next
	s.mu.Unlock()
}

func (s *Session) applyPending() {
	s.mu.Lock()
	next := s.pending
	s.pending = nil
	s.mu.Unlock()

	if next != nil {
		s.settings = next.WithAns(s.settings.Ans)
		s.log.Info("settings reloaded", "precision", s.settings.Precision,
			"input", s.settings.ComplexInput, "output", s.settings.ComplexOutput)
	}
}

// Execute runs one complete input line: an expression, a :command, or
// exit/quit. Results go to out; failures are returned.
func (s *Session) Execute(line string, out io.Writer) error {
	s.applyPending()

	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "exit" || trimmed == "quit":
		return ErrQuit
	case strings.HasPrefix(trimmed, ":"):
		fields := strings.Fields(trimmed)
		return s.command(fields[0], fields[1:], out)
	}
	return s.evaluate(trimmed, out)
}

func (s *Session) evaluate(line string, out io.Writer) error {
	res, err := evaluator.Calculate(line, s.settings)
	if err != nil {
		s.log.Debug("rejected", "input", line, "error", err)
		return err
	}

	text := format.Number(res.Value, s.settings)
	s.log.Debug("evaluated", "input", line, "normalized", res.Normalized.Text, "result", text)

	fmt.Fprintln(out, text)
	for _, note := range res.Normalized.Rewrites.Notes() {
		fmt.Fprintf(out, "  (%s)\n", note)
	}

	if !res.IsUndefined() {
		s.settings = s.settings.WithAns(res.Value)
	}
	return nil
}

// PrintError writes a failure the way the session shows it
func PrintError(out io.Writer, err error) {
	var ce *perrors.CalcError
	if errors.As(err, &ce) {
		io.WriteString(out, ce.PrettyString())
		io.WriteString(out, "\n")
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}
