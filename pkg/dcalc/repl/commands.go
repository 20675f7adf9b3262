package repl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sambeau/dcalc/pkg/dcalc/cplx"
	perrors "github.com/sambeau/dcalc/pkg/dcalc/errors"
	"github.com/sambeau/dcalc/pkg/dcalc/evaluator"
	"github.com/sambeau/dcalc/pkg/dcalc/format"
	"github.com/sambeau/dcalc/pkg/dcalc/help"
	"github.com/sambeau/dcalc/pkg/dcalc/numeric"
	"github.com/sambeau/dcalc/pkg/dcalc/poly"
	"github.com/sambeau/dcalc/pkg/dcalc/settings"
)

// command handles REPL meta-commands that start with ':'
func (s *Session) command(cmd string, args []string, out io.Writer) error {
	switch cmd {
	case ":help", ":h", ":?":
		result, _ := help.DescribeTopic("commands")
		io.WriteString(out, help.FormatText(result))
		return nil

	case ":describe", ":d":
		if len(args) == 0 {
			args = []string{"functions"}
		}
		result, err := help.DescribeTopic(strings.Join(args, " "))
		if err != nil {
			return err
		}
		io.WriteString(out, help.FormatText(result))
		return nil

	case ":settings":
		printSettings(out, s.settings)
		return nil

	case ":precision":
		if len(args) != 1 {
			return argCountError(cmd, "1 argument", len(args))
		}
		p, err := strconv.Atoi(args[0])
		if err != nil {
			return perrors.New("ARG-0003", map[string]any{"Name": "precision", "Got": args[0]})
		}
		next, err := s.settings.WithPrecision(p)
		if err != nil {
			return err
		}
		s.settings = next
		fmt.Fprintf(out, "precision: %d\n", p)
		return nil

	case ":input", ":output":
		if len(args) != 1 {
			return argCountError(cmd, "1 argument", len(args))
		}
		form, err := settings.ParseForm(args[0])
		if err != nil {
			return err
		}
		if cmd == ":input" {
			s.settings.ComplexInput = form
		} else {
			s.settings.ComplexOutput = form
		}
		fmt.Fprintf(out, "%s: %s\n", cmd[1:], form)
		return nil

	case ":roots":
		if len(args) != 1 || (args[0] != "show" && args[0] != "hide") {
			return argCountError(cmd, "show or hide", len(args))
		}
		s.settings.ShowComplexRoots = args[0] == "show"
		fmt.Fprintf(out, "complex roots: %s\n", args[0])
		return nil

	case ":solve":
		return s.solve(args, out)

	case ":convert", ":add", ":sub", ":mul", ":div", ":ipow", ":pow", ":root":
		return s.complexCommand(cmd, args, out)
	}

	return fmt.Errorf("unknown command: %s (type :help for commands)", cmd)
}

func usage(cmd string) string {
	for _, c := range help.Commands {
		if c.Name == cmd {
			return "usage: " + c.Usage
		}
	}
	return "type :help for commands"
}

func argCountError(cmd, want string, got int) error {
	return perrors.New("ARG-0001", map[string]any{
		"Command": cmd,
		"Want":    want,
		"Got":     got,
		"Usage":   usage(cmd),
	})
}

// values evaluates each argument as an expression
func (s *Session) values(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		res, err := evaluator.Calculate(a, s.settings)
		if err != nil {
			return nil, err
		}
		out[i] = res.Value
	}
	return out, nil
}

func integer(name string, x float64) (int, error) {
	if !numeric.IsWhole(x) || numeric.Abs(x) > 1e9 {
		return 0, perrors.New("ARG-0003", map[string]any{"Name": name, "Got": strconv.FormatFloat(x, 'g', -1, 64)})
	}
	return int(numeric.Round(x, 0)), nil
}

// operand reads a pair of values in the configured input form
func (s *Session) operand(x, y float64) cplx.Value {
	if s.settings.ComplexInput == settings.Polar {
		return cplx.Polar{R: x, Theta: y}
	}
	return cplx.Rect{Re: x, Im: y}
}

func (s *Session) solve(args []string, out io.Writer) error {
	if len(args) < 2 || len(args) > 5 {
		return argCountError(":solve", "2 to 5 coefficients", len(args))
	}
	coeffs, err := s.values(args)
	if err != nil {
		return err
	}
	sol, err := poly.Solve(coeffs...)
	if err != nil {
		return err
	}
	s.log.Debug("solved", "coefficients", strings.Join(args, " "), "degree", sol.Degree())
	fmt.Fprintln(out, format.Solution(sol, s.settings))
	return nil
}

var complexArity = map[string]int{
	":convert": 2,
	":add":     4,
	":sub":     4,
	":mul":     4,
	":div":     4,
	":ipow":    3,
	":pow":     4,
	":root":    3,
}

func (s *Session) complexCommand(cmd string, args []string, out io.Writer) error {
	want := complexArity[cmd]
	if len(args) != want {
		return argCountError(cmd, fmt.Sprintf("%d arguments", want), len(args))
	}
	v, err := s.values(args)
	if err != nil {
		return err
	}
	z := s.operand(v[0], v[1])

	switch cmd {
	case ":convert":
		// show the other form from the one read
		if s.settings.ComplexInput == settings.Polar {
			fmt.Fprintln(out, format.Rect(z.Rect(), s.settings))
		} else {
			fmt.Fprintln(out, format.Polar(z.Polar(), s.settings))
		}

	case ":add", ":sub", ":mul", ":div":
		w := s.operand(v[2], v[3])
		ops := map[string]func(x, y cplx.Value) cplx.Rect{
			":add": cplx.Add,
			":sub": cplx.Sub,
			":mul": cplx.Mul,
			":div": cplx.Div,
		}
		fmt.Fprintln(out, format.Complex(ops[cmd](z, w), s.settings))

	case ":ipow":
		n, err := integer("n", v[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, format.Complex(cplx.IntPow(z, n), s.settings))

	case ":pow":
		res := cplx.Pow(z, s.operand(v[2], v[3]))
		fmt.Fprintln(out, format.Complex(res.Principal, s.settings))
		if res.Family != nil {
			fmt.Fprintln(out, format.Family(res.Family, s.settings))
		}

	case ":root":
		n, err := integer("n", v[2])
		if err != nil {
			return err
		}
		count, err := s.rootCount(n)
		if err != nil {
			return err
		}
		printRoots(out, cplx.Roots(z, n, count), s.settings)
	}
	return nil
}

// rootCount asks how many of a large root set to list
func (s *Session) rootCount(n int) (int, error) {
	if n < 0 {
		n = -n
	}
	if n <= settings.RootDisplayThreshold {
		return 0, nil
	}
	limit := s.settings.RootLimit
	if s.Ask == nil {
		return limit, nil
	}
	answer, err := s.Ask(fmt.Sprintf("%d roots; how many to list [%d]? ", n, limit))
	if err != nil {
		return 0, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return limit, nil
	}
	count, err := strconv.Atoi(answer)
	if err != nil || count < 1 {
		return 0, perrors.New("ARG-0003", map[string]any{"Name": "root count", "Got": answer})
	}
	return count, nil
}

func printRoots(out io.Writer, set cplx.RootSet, s settings.Settings) {
	if set.IsUndefined() {
		fmt.Fprintln(out, format.MathError)
		return
	}
	for k, z := range set.Roots {
		fmt.Fprintf(out, "Z(%d)=%s\n", k+1, format.Complex(z, s))
	}
	if form := format.RootForm(set, s); form != "" {
		fmt.Fprintln(out, form)
	}
	if set.Truncated() && set.Modulus != 0 {
		fmt.Fprintf(out, "(%d of %d roots listed)\n", len(set.Roots), set.N)
	}
}

func printSettings(out io.Writer, s settings.Settings) {
	roots := "hide"
	if s.ShowComplexRoots {
		roots = "show"
	}
	fmt.Fprintf(out, "  precision:  %d\n", s.Precision)
	fmt.Fprintf(out, "  input:      %s\n", s.ComplexInput)
	fmt.Fprintf(out, "  output:     %s\n", s.ComplexOutput)
	fmt.Fprintf(out, "  roots:      %s\n", roots)
	fmt.Fprintf(out, "  grouping:   %t (%s)\n", s.Grouping, s.Locale)
	fmt.Fprintf(out, "  root limit: %d\n", s.RootLimit)
	fmt.Fprintf(out, "  Ans:        %s\n", format.Number(s.Ans, s))
}
