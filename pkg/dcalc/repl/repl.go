// Package repl runs the interactive dcalc session: line editing, history,
// tab completion and the ':' commands.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/sambeau/dcalc/pkg/dcalc/help"
	"github.com/sambeau/dcalc/pkg/dcalc/lexer"
)

const PROMPT = ">> "

const LOGO = `
█▀▄ █▀▀ ▄▀█ █░░ █▀▀
█▄▀ █▄▄ █▀█ █▄▄ █▄▄ `

// DefaultHistoryFile is used when no history path is configured
func DefaultHistoryFile() string {
	return filepath.Join(os.TempDir(), ".dcalc_history")
}

// completionWords returns every name and command for tab completion
func completionWords() []string {
	words := lexer.Names()
	for _, c := range help.Commands {
		words = append(words, c.Name)
	}
	return append(words, "quit")
}

// Start runs the session with line editing until exit, quit or Ctrl+D
func Start(sess *Session, out io.Writer, version, historyFile string) {
	line := liner.NewLiner()
	defer line.Close()

	// Enable Ctrl+C to abort current line
	line.SetCtrlCAborts(true)

	words := completionWords()
	line.SetCompleter(func(line string) []string {
		return filterCompletions(line, words)
	})

	if historyFile == "" {
		historyFile = DefaultHistoryFile()
	}
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	// Save history on exit
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	sess.Ask = line.Prompt

	fmt.Fprintf(out, "%s", LOGO)
	fmt.Fprintln(out, "v", version)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit")
	fmt.Fprintln(out, "Use Tab for completion, ↑↓ for history")
	fmt.Fprintln(out, "Type ':help' for commands")
	fmt.Fprintln(out, "")

	for {
		input, err := line.Prompt(PROMPT)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		if err := sess.Execute(input, out); err != nil {
			if errors.Is(err, ErrQuit) {
				fmt.Fprintln(out, "Goodbye!")
				return
			}
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				continue
			}
			PrintError(out, err)
		}
	}
}

// filterCompletions returns completion suggestions based on current input
func filterCompletions(line string, words []string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	// Don't complete if line ends with whitespace
	if line[len(line)-1] == ' ' || line[len(line)-1] == '\t' {
		return nil
	}

	// Complete the trailing run of letters (or a leading ':command')
	start := len(line)
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	if start > 0 && line[start-1] == ':' {
		start--
	}
	prefix, last := line[:start], line[start:]
	if last == "" {
		return nil
	}

	var matches []string
	for _, word := range words {
		if strings.HasPrefix(word, last) {
			matches = append(matches, prefix+word)
		}
	}
	return matches
}

func isWordChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
