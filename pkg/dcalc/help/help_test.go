package help

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sambeau/dcalc/pkg/dcalc/lexer"
)

func TestDescribeName(t *testing.T) {
	tests := []struct {
		topic    string
		wantKind string
		arity    int
		category string
	}{
		{"sin", "function", 1, "trigonometric"},
		{"log", "function", 2, "logarithmic"},
		{"comb", "function", 2, "combinatorial"},
		{"artanh", "function", 1, "hyperbolic"},
		{"pi", "constant", 0, "constant"},
		{"Ans", "constant", 0, "constant"},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			result, err := DescribeTopic(tt.topic)
			if err != nil {
				t.Fatalf("DescribeTopic(%q) returned error: %v", tt.topic, err)
			}
			if result.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", result.Kind, tt.wantKind)
			}
			if result.Arity != tt.arity {
				t.Errorf("Arity = %d, want %d", result.Arity, tt.arity)
			}
			if result.Category != tt.category {
				t.Errorf("Category = %q, want %q", result.Category, tt.category)
			}
			if result.Description == "" {
				t.Errorf("expected a description for %q", tt.topic)
			}
		})
	}
}

// Every name the normalizer accepts must be documented.
func TestEveryNameDocumented(t *testing.T) {
	for _, name := range lexer.Names() {
		info, ok := entries[name]
		if !ok {
			t.Errorf("no help entry for %q", name)
			continue
		}
		n, _ := lexer.LookupName(name)
		if len(info.Params) != n.Arity {
			t.Errorf("%s: %d params documented, arity is %d", name, len(info.Params), n.Arity)
		}
	}
}

func TestDescribeLists(t *testing.T) {
	tests := []struct {
		topic    string
		wantKind string
		count    func(*TopicResult) int
		want     int
	}{
		{"functions", "function-list", func(r *TopicResult) int { return len(r.Functions) }, len(lexer.FunctionNames())},
		{"constants", "constant-list", func(r *TopicResult) int { return len(r.Constants) }, 3},
		{"operators", "operator-list", func(r *TopicResult) int { return len(r.Operators) }, len(operators)},
		{"commands", "command-list", func(r *TopicResult) int { return len(r.Commands) }, len(Commands)},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			result, err := DescribeTopic(tt.topic)
			if err != nil {
				t.Fatal(err)
			}
			if result.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", result.Kind, tt.wantKind)
			}
			if got := tt.count(result); got != tt.want {
				t.Errorf("got %d entries, want %d", got, tt.want)
			}
		})
	}
}

func TestFunctionListSortedByCategory(t *testing.T) {
	result, _ := DescribeTopic("functions")
	for i := 1; i < len(result.Functions); i++ {
		a, b := result.Functions[i-1], result.Functions[i]
		if a.Category > b.Category || (a.Category == b.Category && a.Name > b.Name) {
			t.Errorf("%s/%s sorted before %s/%s", a.Category, a.Name, b.Category, b.Name)
		}
	}
}

func TestDescribeOperatorAndCommand(t *testing.T) {
	tests := []struct {
		topic    string
		wantKind string
		wantName string
	}{
		{"^", "operator", "^"},
		{"C", "operator", "C"},
		{"(", "operator", "( )"},
		{":solve", "command", ":solve"},
		{"solve", "command", ":solve"},
		{"quit", "command", "exit"},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			result, err := DescribeTopic(tt.topic)
			if err != nil {
				t.Fatal(err)
			}
			if result.Kind != tt.wantKind || result.Name != tt.wantName {
				t.Errorf("got %s %q, want %s %q", result.Kind, result.Name, tt.wantKind, tt.wantName)
			}
		})
	}
}

func TestDescribeTopicErrors(t *testing.T) {
	if _, err := DescribeTopic("  "); err == nil {
		t.Error("expected error for empty topic")
	}

	_, err := DescribeTopic("sine")
	if err == nil {
		t.Fatal("expected error for unknown topic")
	}
	if !strings.Contains(err.Error(), "Did you mean") || !strings.Contains(err.Error(), "sin") {
		t.Errorf("error = %q, want a suggestion for sin", err)
	}

	_, err = DescribeTopic("qqqqqqqqqqqq")
	if err == nil || !strings.Contains(err.Error(), "Try:") {
		t.Errorf("error = %v, want the fallback hint", err)
	}
}

func TestFormatText(t *testing.T) {
	tests := []struct {
		topic string
		want  []string
	}{
		{"log", []string{"Function: log(base, x)", "Domain: base > 0", "Example: log2,8"}},
		{"e", []string{"Constant: e"}},
		{"!", []string{"Operator: !", "Read as: x! → fact(x)"}},
		{"functions", []string{"Functions:", "Trigonometric", "arcsin(x)"}},
		{"commands", []string{":precision <1-9>", "exit | quit"}},
		{"operators", []string{"nCk → comb(n,k)"}},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			result, err := DescribeTopic(tt.topic)
			if err != nil {
				t.Fatal(err)
			}
			text := FormatText(result)
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("output missing %q:\n%s", w, text)
				}
			}
		})
	}
}

func TestFormatJSON(t *testing.T) {
	result, _ := DescribeTopic("perm")
	data, err := FormatJSON(result)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["kind"] != "function" || decoded["name"] != "perm" {
		t.Errorf("decoded = %v", decoded)
	}
	if _, ok := decoded["operators"]; ok {
		t.Error("empty lists should be omitted")
	}
}
