package errors

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCalcError_String(t *testing.T) {
	tests := []struct {
		name     string
		err      *CalcError
		expected string
	}{
		{
			name:     "message only",
			err:      &CalcError{Message: "empty input"},
			expected: "empty input",
		},
		{
			name:     "with column",
			err:      &CalcError{Message: "invalid character 'x'", Column: 4},
			expected: "column 4: invalid character 'x'",
		},
		{
			name: "with hints",
			err: &CalcError{
				Message: "unknown function name 'sni'",
				Column:  1,
				Hints:   []string{"Did you mean `sin`?"},
			},
			expected: "column 1: unknown function name 'sni'\n  Did you mean `sin`?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCalcError_PrettyString(t *testing.T) {
	tests := []struct {
		name     string
		err      *CalcError
		contains []string
	}{
		{
			name:     "input error",
			err:      NewAt("INPUT-0003", 3, map[string]any{"Char": "x"}),
			contains: []string{"Input error", "column 3", "invalid character 'x'"},
		},
		{
			name:     "evaluation error",
			err:      New("EVAL-0001", nil),
			contains: []string{"Evaluation error", "division by zero"},
		},
		{
			name:     "domain error",
			err:      New("DOMAIN-0001", map[string]any{"What": "ln(0)"}),
			contains: []string{"Math error", "ln(0) is undefined"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.PrettyString()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("PrettyString() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestNewFromCatalog(t *testing.T) {
	tests := []struct {
		code    string
		data    map[string]any
		message string
		kind    Kind
	}{
		{"INPUT-0001", nil, "empty input", EmptyInput},
		{"INPUT-0002", map[string]any{"Length": 500, "Limit": 485}, "input is 500 characters long, the limit is 485", OversizeInput},
		{"NAME-0001", map[string]any{"Name": "foo"}, "unknown function name 'foo'", UnknownFunctionName},
		{"SYNTAX-0001", map[string]any{"Operator": "**"}, "repeated operator '**'", UnbalancedSyntax},
		{"EVAL-0002", map[string]any{"Function": "log", "Want": 2, "Got": 1}, "`log` expects 2 argument(s), got 1", EvaluationFailure},
		{"DOMAIN-0001", map[string]any{"What": "x"}, "x is undefined", DomainError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, tt.data)
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
			if err.Message != tt.message {
				t.Errorf("Message = %q, want %q", err.Message, tt.message)
			}
			if err.Kind() != tt.kind {
				t.Errorf("Kind() = %q, want %q", err.Kind(), tt.kind)
			}
		})
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("CUSTOM-9999", map[string]any{"message": "custom problem"})
	if err.Message != "custom problem" {
		t.Errorf("Message = %q, want custom problem", err.Message)
	}
	if err.Kind() != EvaluationFailure {
		t.Errorf("Kind() = %q, want EvaluationFailure", err.Kind())
	}
}

func TestMissingHintValueIsDropped(t *testing.T) {
	err := New("ARG-0001", map[string]any{"Command": ":solve", "Want": "2-5 coefficients", "Got": 1})
	if len(err.Hints) != 0 {
		t.Errorf("Hints = %v, want none", err.Hints)
	}

	err = New("ARG-0001", map[string]any{"Command": ":solve", "Want": "2-5 coefficients", "Got": 1, "Usage": ":solve a b [c [d [f]]]"})
	if len(err.Hints) != 1 || err.Hints[0] != ":solve a b [c [d [f]]]" {
		t.Errorf("Hints = %v", err.Hints)
	}
}

func TestIsStructural(t *testing.T) {
	if !New("INPUT-0003", map[string]any{"Char": "#"}).IsStructural() {
		t.Error("invalid character should be structural")
	}
	if New("EVAL-0001", nil).IsStructural() {
		t.Error("division by zero should not be structural")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := NewAt("INPUT-0003", 2, map[string]any{"Char": "#"})
	b, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal: %v", jerr)
	}
	var decoded map[string]any
	if jerr := json.Unmarshal(b, &decoded); jerr != nil {
		t.Fatalf("Unmarshal: %v", jerr)
	}
	if decoded["code"] != "INPUT-0003" || decoded["column"] != float64(2) {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestFindClosestMatch(t *testing.T) {
	names := []string{"sin", "cos", "tan", "sinh", "arcsin", "log", "ln", "lg"}

	tests := []struct {
		input string
		want  string
	}{
		{"coz", "cos"},
		{"arcsn", "arcsin"},
		{"xyzzy", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FindClosestMatch(tt.input, names); got != tt.want {
				t.Errorf("FindClosestMatch(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewUnknownName(t *testing.T) {
	err := NewUnknownName("coss", 2, []string{"sin", "cos", "tan"})
	if err.Column != 2 {
		t.Errorf("Column = %d, want 2", err.Column)
	}
	if len(err.Hints) != 1 || err.Hints[0] != "Did you mean `cos`?" {
		t.Errorf("Hints = %v", err.Hints)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "abc", 3},
		{"sin", "sin", 0},
		{"sin", "sinh", 1},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
