// Package help provides topic-based reference for dcalc functions,
// constants, operators and REPL commands, shared by `dcalc describe` and
// the REPL's `:describe`.
package help

import (
	"fmt"
	"sort"
	"strings"

	perrors "github.com/sambeau/dcalc/pkg/dcalc/errors"
	"github.com/sambeau/dcalc/pkg/dcalc/lexer"
)

// TopicResult represents the help output for a topic
type TopicResult struct {
	Kind        string         `json:"kind"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Params      []string       `json:"params,omitempty"`
	Arity       int            `json:"arity,omitempty"`
	Category    string         `json:"category,omitempty"`
	Domain      string         `json:"domain,omitempty"`
	Example     string         `json:"example,omitempty"`
	Functions   []EntryInfo    `json:"functions,omitempty"`
	Constants   []EntryInfo    `json:"constants,omitempty"`
	Operators   []OperatorInfo `json:"operators,omitempty"`
	Commands    []CommandInfo  `json:"commands,omitempty"`
}

// EntryInfo describes one recognized function or constant
type EntryInfo struct {
	Name        string   `json:"name"`
	Params      []string `json:"params,omitempty"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Domain      string   `json:"domain,omitempty"`
	Example     string   `json:"example,omitempty"`
}

// OperatorInfo describes an operator symbol
type OperatorInfo struct {
	Symbol      string `json:"symbol"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Rewrite     string `json:"rewrite,omitempty"`
}

// CommandInfo describes a REPL command
type CommandInfo struct {
	Name        string `json:"name"`
	Usage       string `json:"usage"`
	Description string `json:"description"`
}

var entries = map[string]EntryInfo{
	"sin":    {"sin", []string{"x"}, "trigonometric", "sine of x radians", "|x| ≤ 10^10", "sin(pi/2)"},
	"cos":    {"cos", []string{"x"}, "trigonometric", "cosine of x radians", "|x| ≤ 10^10", "cos0"},
	"tan":    {"tan", []string{"x"}, "trigonometric", "tangent of x radians", "cos(x) ≠ 0", "tan(pi/4)"},
	"arcsin": {"arcsin", []string{"x"}, "trigonometric", "inverse sine, result in [-pi/2, pi/2]", "-1 ≤ x ≤ 1", "arcsin1"},
	"arccos": {"arccos", []string{"x"}, "trigonometric", "inverse cosine, result in [0, pi]", "-1 ≤ x ≤ 1", "arccos0"},
	"arctan": {"arctan", []string{"x"}, "trigonometric", "inverse tangent, result in (-pi/2, pi/2)", "", "arctan1"},
	"sinh":   {"sinh", []string{"x"}, "hyperbolic", "hyperbolic sine", "", "sinh1"},
	"cosh":   {"cosh", []string{"x"}, "hyperbolic", "hyperbolic cosine", "", "cosh1"},
	"tanh":   {"tanh", []string{"x"}, "hyperbolic", "hyperbolic tangent", "", "tanh1"},
	"arsinh": {"arsinh", []string{"x"}, "hyperbolic", "inverse hyperbolic sine", "", "arsinh1"},
	"arcosh": {"arcosh", []string{"x"}, "hyperbolic", "inverse hyperbolic cosine", "x ≥ 1", "arcosh2"},
	"artanh": {"artanh", []string{"x"}, "hyperbolic", "inverse hyperbolic tangent", "-1 < x < 1", "artanh0.5"},
	"log":    {"log", []string{"base", "x"}, "logarithmic", "logarithm of x to the given base", "base > 0, base ≠ 1, x > 0", "log2,8"},
	"lg":     {"lg", []string{"x"}, "logarithmic", "base-10 logarithm", "x > 0", "lg100"},
	"ln":     {"ln", []string{"x"}, "logarithmic", "natural logarithm", "x > 0", "lne"},
	"pow":    {"pow", []string{"x", "n"}, "power", "x raised to n; negative bases allowed for odd-denominator rational n", "", "2^10"},
	"fact":   {"fact", []string{"n"}, "combinatorial", "factorial", "n a whole number, n ≥ 0", "5!"},
	"comb":   {"comb", []string{"n", "k"}, "combinatorial", "combinations of k from n", "whole numbers, 0 ≤ k ≤ n", "5C2"},
	"perm":   {"perm", []string{"n", "k"}, "combinatorial", "permutations of k from n", "whole numbers, 0 ≤ k ≤ n", "5P2"},
	"abs":    {"abs", []string{"x"}, "general", "absolute value", "", "abs(-3)"},
	"sgn":    {"sgn", []string{"x"}, "general", "sign of x: -1, 0 or 1", "", "sgn(-2)"},
	"pi":     {"pi", nil, "constant", "ratio of a circle's circumference to its diameter", "", "2pi"},
	"e":      {"e", nil, "constant", "base of the natural logarithm", "", "lne"},
	"Ans":    {"Ans", nil, "constant", "last finite real result of the session, 0 at start", "", "Ans*2"},
}

var operators = []OperatorInfo{
	{"+", "arithmetic", "addition, or unary plus", ""},
	{"-", "arithmetic", "subtraction, or unary minus", ""},
	{"*", "arithmetic", "multiplication; implied between adjacent operands", "2sin3 → 2*sin(3)"},
	{"/", "arithmetic", "division", ""},
	{"^", "postfix", "power, right associative", "a^b → pow(a,b)"},
	{"!", "postfix", "factorial", "x! → fact(x)"},
	{"C", "postfix", "combinations", "nCk → comb(n,k)"},
	{"P", "postfix", "permutations", "nPk → perm(n,k)"},
	{"( )", "grouping", "grouping and call brackets; unbalanced brackets are closed", ""},
	{",", "grouping", "separates the arguments of log, pow, comb and perm", ""},
}

// Commands lists the REPL commands, in the order :help shows them.
var Commands = []CommandInfo{
	{":help", ":help", "show this command list"},
	{":describe", ":describe <topic>", "describe a function, constant or topic (functions, constants, operators, commands)"},
	{":settings", ":settings", "show the current settings"},
	{":precision", ":precision <1-9>", "set the number of decimal places"},
	{":input", ":input rect|polar", "read complex operands as a+bi or r∠θ"},
	{":output", ":output rect|polar", "show complex results as a+bi or r∠θ"},
	{":roots", ":roots show|hide", "list or hide complex polynomial roots"},
	{":solve", ":solve a b [c [d [f]]]", "solve a polynomial of degree 1 to 4 and describe its shape"},
	{":convert", ":convert x y", "convert a complex number between rectangular and polar form"},
	{":add", ":add x1 y1 x2 y2", "add two complex numbers"},
	{":sub", ":sub x1 y1 x2 y2", "subtract two complex numbers"},
	{":mul", ":mul x1 y1 x2 y2", "multiply two complex numbers"},
	{":div", ":div x1 y1 x2 y2", "divide two complex numbers"},
	{":ipow", ":ipow x y n", "raise a complex number to an integer power"},
	{":pow", ":pow x1 y1 x2 y2", "raise a complex number to a complex power"},
	{":root", ":root x y n", "list the nth roots of a complex number"},
	{"exit", "exit | quit", "leave the session"},
}

// DescribeTopic returns help information for the given topic.
// Topics can be function or constant names (sin, pi), operator symbols
// (^, C), command names (:solve) or the keywords functions, constants,
// operators and commands.
func DescribeTopic(topic string) (*TopicResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("no topic specified (try: functions, constants, operators, commands)")
	}

	switch topic {
	case "functions":
		return describeEntries("function-list", "functions", lexer.FunctionNames()), nil
	case "constants":
		return describeEntries("constant-list", "constants", constantNames()), nil
	case "operators":
		return &TopicResult{Kind: "operator-list", Name: "operators", Operators: operators}, nil
	case "commands":
		return &TopicResult{Kind: "command-list", Name: "commands", Commands: Commands}, nil
	}

	if result := describeName(topic); result != nil {
		return result, nil
	}
	if result := describeOperator(topic); result != nil {
		return result, nil
	}
	if result := describeCommand(topic); result != nil {
		return result, nil
	}

	return nil, unknownTopicError(topic)
}

func constantNames() []string {
	var out []string
	for _, name := range lexer.Names() {
		if n, _ := lexer.LookupName(name); n.Kind == lexer.ConstantName {
			out = append(out, name)
		}
	}
	return out
}

func describeEntries(kind, name string, names []string) *TopicResult {
	list := make([]EntryInfo, 0, len(names))
	for _, n := range names {
		if info, ok := entries[n]; ok {
			list = append(list, info)
		}
	}

	// Sort by category, then by name
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Category != list[j].Category {
			return list[i].Category < list[j].Category
		}
		return list[i].Name < list[j].Name
	})

	result := &TopicResult{Kind: kind, Name: name}
	if kind == "constant-list" {
		result.Constants = list
	} else {
		result.Functions = list
	}
	return result
}

// describeName returns help for a function or constant, or nil if not found
func describeName(topic string) *TopicResult {
	n, ok := lexer.LookupName(topic)
	if !ok {
		return nil
	}
	info := entries[n.Name]

	kind := "function"
	if n.Kind == lexer.ConstantName {
		kind = "constant"
	}
	return &TopicResult{
		Kind:        kind,
		Name:        n.Name,
		Description: info.Description,
		Params:      info.Params,
		Arity:       n.Arity,
		Category:    info.Category,
		Domain:      info.Domain,
		Example:     info.Example,
	}
}

func describeOperator(topic string) *TopicResult {
	for _, op := range operators {
		if op.Symbol == topic || (op.Symbol == "( )" && (topic == "(" || topic == ")")) {
			return &TopicResult{
				Kind:        "operator",
				Name:        op.Symbol,
				Description: op.Description,
				Category:    op.Category,
				Example:     op.Rewrite,
			}
		}
	}
	return nil
}

func describeCommand(topic string) *TopicResult {
	if topic == "quit" {
		topic = "exit"
	}
	for _, c := range Commands {
		if c.Name == topic || c.Name == ":"+topic && topic != "exit" {
			return &TopicResult{
				Kind:        "command",
				Name:        c.Name,
				Description: c.Description,
				Example:     c.Usage,
			}
		}
	}
	return nil
}

// unknownTopicError generates a helpful error for unknown topics
func unknownTopicError(topic string) error {
	candidates := append(lexer.Names(), "functions", "constants", "operators", "commands")
	for _, c := range Commands {
		candidates = append(candidates, c.Name)
	}

	if suggestions := perrors.FindTopMatches(topic, candidates, 3); len(suggestions) > 0 {
		return fmt.Errorf("unknown topic: %s\nDid you mean: %s?", topic, strings.Join(suggestions, ", "))
	}

	return fmt.Errorf("unknown topic: %s\nTry: functions, constants, operators, commands, sin, ^", topic)
}
