// Package logging implements the leveled text and JSON-lines logger used by
// the dcalc binary. The calculator core never logs.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level orders log severities
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel accepts debug, info, warn and error
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelWarn, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
}

// Entry is one JSON log line
type Entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Logger writes leveled entries to an output
type Logger struct {
	mu     sync.Mutex
	output io.Writer
	format string // "json" or "text"
	level  Level
	now    func() time.Time
}

// New creates a logger. An empty format means text.
func New(output io.Writer, level Level, format string) *Logger {
	if format == "" {
		format = "text"
	}
	return &Logger{
		output: output,
		format: format,
		level:  level,
		now:    time.Now,
	}
}

// Discard returns a logger that writes nothing
func Discard() *Logger {
	return New(io.Discard, LevelError+1, "text")
}

// Open resolves an output target: stderr, stdout or a file path opened for
// appending. The returned close function is a no-op for the standard streams.
func Open(target string, stdout, stderr io.Writer) (io.Writer, func() error, error) {
	switch target {
	case "", "stderr":
		return stderr, func() error { return nil }, nil
	case "stdout":
		return stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}

// Level returns the minimum level written
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel changes the minimum level written
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

func (l *Logger) Debug(msg string, kv ...any) { l.log(LevelDebug, msg, kv) }
func (l *Logger) Info(msg string, kv ...any)  { l.log(LevelInfo, msg, kv) }
func (l *Logger) Warn(msg string, kv ...any)  { l.log(LevelWarn, msg, kv) }
func (l *Logger) Error(msg string, kv ...any) { l.log(LevelError, msg, kv) }

func (l *Logger) log(level Level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	entry := Entry{
		Timestamp: l.now().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Fields:    fields(kv),
	}

	if l.format == "json" {
		l.writeJSON(entry)
	} else {
		l.writeText(entry)
	}
}

// fields pairs up key/value arguments; a dangling key gets the value "MISSING".
func fields(kv []any) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	out := make(map[string]any, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 < len(kv) {
			out[key] = kv[i+1]
		} else {
			out[key] = "MISSING"
		}
	}
	return out
}

func (l *Logger) writeJSON(entry Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	fmt.Fprintf(l.output, "%s\n", data)
}

func (l *Logger) writeText(entry Entry) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s", entry.Timestamp, entry.Level, entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := fmt.Sprint(entry.Fields[k])
		if strings.ContainsAny(v, " \t\"=") || v == "" {
			v = fmt.Sprintf("%q", v)
		}
		fmt.Fprintf(&sb, " %s=%s", k, v)
	}
	sb.WriteByte('\n')
	io.WriteString(l.output, sb.String())
}
