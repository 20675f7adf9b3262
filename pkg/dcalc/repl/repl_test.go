package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	perrors "github.com/sambeau/dcalc/pkg/dcalc/errors"
	"github.com/sambeau/dcalc/pkg/dcalc/settings"
)

// run executes lines in order and returns the output of the last one
func run(t *testing.T, sess *Session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	for _, line := range lines {
		out.Reset()
		if err := sess.Execute(line, &out); err != nil {
			t.Fatalf("Execute(%q) error: %v", line, err)
		}
	}
	return out.String()
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2*3", "7\n"},
		{"2^10", "1024\n  (a^b read as pow(a,b))\n"},
		{"arcsin(2)", "Math ERROR\n"},
		{"5C2", "10\n  (aCb read as comb(a,b))\n"},
		{" 2+2", "4\n"},
		{"2*3\t", "6\n"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := run(t, NewSession(settings.Defaults(), nil), tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriteNotesPrinted(t *testing.T) {
	got := run(t, NewSession(settings.Defaults(), nil), "2sin3")
	if !strings.HasPrefix(got, "0.282\n") || !strings.Contains(got, "  (") {
		t.Errorf("got %q, want result then a rewrite note", got)
	}
}

func TestAnsTracksLastFiniteResult(t *testing.T) {
	sess := NewSession(settings.Defaults(), nil)
	run(t, sess, "6*7")
	if sess.Settings().Ans != 42 {
		t.Fatalf("Ans = %g, want 42", sess.Settings().Ans)
	}

	run(t, sess, "ln0")
	if sess.Settings().Ans != 42 {
		t.Errorf("undefined result replaced Ans: %g", sess.Settings().Ans)
	}

	if got := run(t, sess, "Ans/2"); got != "21\n" {
		t.Errorf("Ans/2 = %q", got)
	}
}

func TestFailuresReturned(t *testing.T) {
	tests := []struct {
		input string
		code  string
	}{
		{"sec3", "NAME-0001"},
		{"1/0", "EVAL-0001"},
		{":solve 1", "ARG-0001"},
		{":solve 0 1", "ARG-0002"},
		{":precision x", "ARG-0003"},
		{":ipow 1 1 2.5", "ARG-0003"},
		{":add 1 2 3", "ARG-0001"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := NewSession(settings.Defaults(), nil).Execute(tt.input, &bytes.Buffer{})
			var ce *perrors.CalcError
			if !errors.As(err, &ce) || ce.Code != tt.code {
				t.Errorf("Execute(%q) error = %v, want %s", tt.input, err, tt.code)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	sess := NewSession(settings.Defaults(), nil)
	for _, line := range []string{"exit", " quit "} {
		if err := sess.Execute(line, &bytes.Buffer{}); !errors.Is(err, ErrQuit) {
			t.Errorf("Execute(%q) = %v, want ErrQuit", line, err)
		}
	}
}

func TestSettingsCommands(t *testing.T) {
	sess := NewSession(settings.Defaults(), nil)

	run(t, sess, ":precision 5")
	if got := run(t, sess, "2/3"); got != "0.66667\n" {
		t.Errorf("2/3 at precision 5 = %q", got)
	}

	if err := sess.Execute(":precision 10", &bytes.Buffer{}); err == nil {
		t.Error("expected error for precision 10")
	}

	run(t, sess, ":output polar", ":input polar", ":roots hide")
	s := sess.Settings()
	if s.ComplexOutput != settings.Polar || s.ComplexInput != settings.Polar || s.ShowComplexRoots {
		t.Errorf("settings = %+v", s)
	}

	out := run(t, sess, ":settings")
	for _, want := range []string{"precision:  5", "input:      polar", "roots:      hide"} {
		if !strings.Contains(out, want) {
			t.Errorf(":settings missing %q:\n%s", want, out)
		}
	}

	if err := sess.Execute(":bogus", &bytes.Buffer{}); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf(":bogus error = %v", err)
	}
}

func TestHelpAndDescribe(t *testing.T) {
	sess := NewSession(settings.Defaults(), nil)
	if out := run(t, sess, ":help"); !strings.Contains(out, ":solve a b [c [d [f]]]") {
		t.Errorf(":help output:\n%s", out)
	}
	if out := run(t, sess, ":describe log"); !strings.Contains(out, "Function: log(base, x)") {
		t.Errorf(":describe log output:\n%s", out)
	}
	if err := sess.Execute(":describe sine", &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestSolveCommand(t *testing.T) {
	out := run(t, NewSession(settings.Defaults(), nil), ":solve 1 -3 2")
	for _, want := range []string{"y=f(x)=x^2-3x+2", "Roots of f(x)=0: x=2 ∨ x=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}

	// arguments are expressions
	out = run(t, NewSession(settings.Defaults(), nil), ":solve 2^1 -2*2")
	if !strings.Contains(out, "x=2") {
		t.Errorf("expression coefficients:\n%s", out)
	}
}

func TestComplexCommands(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{":add 1 2 3 4", "4+6i\n"},
		{":sub 1 2 3 4", "-2-2i\n"},
		{":mul 0 1 0 1", "-1\n"},
		{":div 1 0 0 1", "-i\n"},
		{":ipow 1 1 2", "2i\n"},
		{":convert 0 2", "2∠1.571\n"},
		{":root 4 0 2", "Z(1)=2\nZ(2)=-2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := run(t, NewSession(settings.Defaults(), nil), tt.line)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("got %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestPolarInput(t *testing.T) {
	sess := NewSession(settings.Defaults(), nil)
	run(t, sess, ":input polar")
	if got := run(t, sess, ":convert 2 pi/2"); got != "2i\n" {
		t.Errorf(":convert 2 pi/2 in polar input = %q", got)
	}
}

func TestPowPrintsFamily(t *testing.T) {
	out := run(t, NewSession(settings.Defaults(), nil), ":pow -1 0 0.5 0")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "i" || !strings.HasPrefix(lines[1], "Z(K)=") {
		t.Errorf("got %q", out)
	}
}

func TestRootCountPrompt(t *testing.T) {
	sess := NewSession(settings.Defaults(), nil)
	var asked string
	sess.Ask = func(prompt string) (string, error) {
		asked = prompt
		return "3", nil
	}
	out := run(t, sess, ":root 1 0 200")
	if !strings.Contains(asked, "200 roots") {
		t.Errorf("prompt = %q", asked)
	}
	if strings.Count(out, "Z(") != 4 || !strings.Contains(out, "(3 of 200 roots listed)") {
		t.Errorf("got:\n%s", out)
	}

	sess.Ask = func(string) (string, error) { return "none", nil }
	err := sess.Execute(":root 1 0 200", &bytes.Buffer{})
	var ce *perrors.CalcError
	if !errors.As(err, &ce) || ce.Code != "ARG-0003" {
		t.Errorf("bad answer error = %v", err)
	}
}

func TestRootCountWithoutPromptUsesLimit(t *testing.T) {
	s := settings.Defaults()
	s.RootLimit = 2
	out := run(t, NewSession(s, nil), ":root 1 0 150")
	if !strings.Contains(out, "(2 of 150 roots listed)") {
		t.Errorf("got:\n%s", out)
	}
}

func TestReconfigureAppliedBetweenLines(t *testing.T) {
	sess := NewSession(settings.Defaults(), nil)
	run(t, sess, "5")

	next := settings.Defaults()
	next.Precision = 1
	sess.Reconfigure(next)
	if sess.Settings().Precision != 3 {
		t.Error("reconfigure should wait for the next line")
	}

	if got := run(t, sess, "2/3"); got != "0.7\n" {
		t.Errorf("2/3 after reload = %q", got)
	}
	if sess.Settings().Ans == 5 {
		t.Error("Ans should follow the new result")
	}
}

func TestReconfigureKeepsAns(t *testing.T) {
	sess := NewSession(settings.Defaults(), nil)
	run(t, sess, "8")
	sess.Reconfigure(settings.Defaults())
	if got := run(t, sess, "Ans"); got != "8\n" {
		t.Errorf("Ans after reload = %q", got)
	}
}

func TestFilterCompletions(t *testing.T) {
	words := completionWords()
	tests := []struct {
		line string
		want []string
	}{
		{"2ar", []string{"2arccos", "2arcosh", "2arcsin", "2arctan", "2arsinh", "2artanh"}},
		{":so", []string{":solve"}},
		{"", nil},
		{"sin ", nil},
		{"2+", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := filterCompletions(tt.line, words)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("filterCompletions(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	PrintError(&out, perrors.NewAt("EVAL-0001", 2, nil))
	if !strings.HasPrefix(out.String(), "Evaluation error: column 2") {
		t.Errorf("got %q", out.String())
	}

	out.Reset()
	PrintError(&out, errors.New("boom"))
	if out.String() != "Error: boom\n" {
		t.Errorf("got %q", out.String())
	}
}
