// Package errors provides structured error types for the dcalc calculator.
//
// CalcError carries a catalogue code, a rendered message, optional hints and
// the column in the raw input that triggered it. Domain errors are not
// reported here: they travel as NaN values through the numeric layers.
package errors

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

// ErrorClass categorizes errors for filtering and templating.
type ErrorClass string

const (
	ClassInput    ErrorClass = "input"    // Raw input rejected before transduction
	ClassName     ErrorClass = "name"     // Unrecognized function name
	ClassSyntax   ErrorClass = "syntax"   // Structural problems
	ClassEval     ErrorClass = "eval"     // Evaluation failures
	ClassDomain   ErrorClass = "domain"   // Mathematically undefined input
	ClassArgument ErrorClass = "argument" // Command argument problems
)

// Kind is the failure taxonomy the calculator reports to callers.
type Kind string

const (
	EmptyInput          Kind = "EmptyInput"
	OversizeInput       Kind = "OversizeInput"
	InvalidCharacter    Kind = "InvalidCharacter"
	UnknownFunctionName Kind = "UnknownFunctionName"
	UnbalancedSyntax    Kind = "UnbalancedSyntax"
	DomainError         Kind = "DomainError"
	EvaluationFailure   Kind = "EvaluationFailure"
)

// CalcError represents any structural or evaluation failure.
type CalcError struct {
	Class   ErrorClass     `json:"class"`            // Error category
	Code    string         `json:"code"`             // Error code (e.g., "INPUT-0003")
	Message string         `json:"message"`          // Human-readable message
	Hints   []string       `json:"hints,omitempty"`  // Suggestions for fixing
	Column  int            `json:"column,omitempty"` // 1-based column in the raw input (0 if unknown)
	Data    map[string]any `json:"data,omitempty"`   // Template variables
}

// Error implements the error interface.
func (e *CalcError) Error() string {
	return e.String()
}

// String returns a formatted string representation of the error.
func (e *CalcError) String() string {
	var sb strings.Builder

	if e.Column > 0 {
		sb.WriteString(fmt.Sprintf("column %d: ", e.Column))
	}
	sb.WriteString(e.Message)

	for _, hint := range e.Hints {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}

	return sb.String()
}

// PrettyString returns a multi-line formatted string for display.
func (e *CalcError) PrettyString() string {
	var sb strings.Builder

	switch e.Class {
	case ClassInput, ClassName, ClassSyntax:
		sb.WriteString("Input error")
	case ClassDomain:
		sb.WriteString("Math error")
	default:
		sb.WriteString("Evaluation error")
	}

	if e.Column > 0 {
		sb.WriteString(fmt.Sprintf(": column %d\n  ", e.Column))
	} else {
		sb.WriteString(":\n  ")
	}

	sb.WriteString(e.Message)

	for _, hint := range e.Hints {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}

	return sb.String()
}

// Kind maps the error code onto the reported failure taxonomy.
func (e *CalcError) Kind() Kind {
	if def, ok := ErrorCatalog[e.Code]; ok {
		return def.Kind
	}
	switch e.Class {
	case ClassInput:
		return InvalidCharacter
	case ClassName:
		return UnknownFunctionName
	case ClassSyntax:
		return UnbalancedSyntax
	case ClassDomain:
		return DomainError
	}
	return EvaluationFailure
}

// IsStructural reports whether the error rejects the input before evaluation.
func (e *CalcError) IsStructural() bool {
	switch e.Kind() {
	case EvaluationFailure, DomainError:
		return false
	}
	return true
}

// ErrorDef defines an error in the catalog.
type ErrorDef struct {
	Class    ErrorClass // Error category
	Kind     Kind       // Reported taxonomy
	Template string     // Message template with {{.placeholders}}
	Hints    []string   // Hint templates (may use {{.placeholders}})
}

// ErrorCatalog maps error codes to their definitions.
var ErrorCatalog = map[string]ErrorDef{
	// ========================================
	// Input errors (INPUT-0xxx)
	// ========================================
	"INPUT-0001": {
		Class:    ClassInput,
		Kind:     EmptyInput,
		Template: "empty input",
	},
	"INPUT-0002": {
		Class:    ClassInput,
		Kind:     OversizeInput,
		Template: "input is {{.Length}} characters long, the limit is {{.Limit}}",
	},
	"INPUT-0003": {
		Class:    ClassInput,
		Kind:     InvalidCharacter,
		Template: "invalid character '{{.Char}}'",
		Hints:    []string{"expressions may use digits, + - * / ^ ! C P ( ) . , function names, pi, e and Ans"},
	},

	// ========================================
	// Name errors (NAME-0xxx)
	// ========================================
	"NAME-0001": {
		Class:    ClassName,
		Kind:     UnknownFunctionName,
		Template: "unknown function name '{{.Name}}'",
		// Hint "Did you mean `X`?" added dynamically by fuzzy matching
	},

	// ========================================
	// Syntax errors (SYNTAX-0xxx)
	// ========================================
	"SYNTAX-0001": {
		Class:    ClassSyntax,
		Kind:     UnbalancedSyntax,
		Template: "repeated operator '{{.Operator}}'",
		Hints:    []string{"use ^ for powers"},
	},
	"SYNTAX-0002": {
		Class:    ClassSyntax,
		Kind:     UnbalancedSyntax,
		Template: "operator '{{.Operator}}' has no left operand",
	},
	"SYNTAX-0003": {
		Class:    ClassSyntax,
		Kind:     UnbalancedSyntax,
		Template: "unexpected '{{.Token}}'",
	},
	"SYNTAX-0004": {
		Class:    ClassSyntax,
		Kind:     UnbalancedSyntax,
		Template: "expected {{.Expected}}, got '{{.Got}}'",
	},

	// ========================================
	// Evaluation errors (EVAL-0xxx)
	// ========================================
	"EVAL-0001": {
		Class:    ClassEval,
		Kind:     EvaluationFailure,
		Template: "division by zero",
	},
	"EVAL-0002": {
		Class:    ClassEval,
		Kind:     EvaluationFailure,
		Template: "`{{.Function}}` expects {{.Want}} argument(s), got {{.Got}}",
	},
	"EVAL-0003": {
		Class:    ClassEval,
		Kind:     EvaluationFailure,
		Template: "identifier not found: {{.Name}}",
	},
	"EVAL-0004": {
		Class:    ClassEval,
		Kind:     EvaluationFailure,
		Template: "invalid number literal: {{.Literal}}",
	},

	// ========================================
	// Domain errors (DOMAIN-0xxx)
	// ========================================
	"DOMAIN-0001": {
		Class:    ClassDomain,
		Kind:     DomainError,
		Template: "{{.What}} is undefined",
	},

	// ========================================
	// Argument errors (ARG-0xxx)
	// ========================================
	"ARG-0001": {
		Class:    ClassArgument,
		Kind:     EvaluationFailure,
		Template: "{{.Command}} expects {{.Want}}, got {{.Got}}",
		Hints:    []string{"{{.Usage}}"},
	},
	"ARG-0002": {
		Class:    ClassArgument,
		Kind:     EvaluationFailure,
		Template: "the leading coefficient of a degree {{.Degree}} polynomial must not be 0",
	},
	"ARG-0003": {
		Class:    ClassArgument,
		Kind:     EvaluationFailure,
		Template: "{{.Name}} must be an integer, got {{.Got}}",
	},
}

// New creates a CalcError from the catalog.
// If the code is not found, creates a generic evaluation error with the message.
func New(code string, data map[string]any) *CalcError {
	def, ok := ErrorCatalog[code]
	if !ok {
		msg := code
		if data != nil {
			if m, ok := data["message"].(string); ok {
				msg = m
			}
		}
		return &CalcError{
			Class:   ClassEval,
			Code:    code,
			Message: msg,
			Data:    data,
		}
	}

	msg := renderTemplate(def.Template, data)

	var hints []string
	for _, hintTmpl := range def.Hints {
		rendered := renderTemplate(hintTmpl, data)
		if rendered != "" && rendered != "<no value>" {
			hints = append(hints, rendered)
		}
	}

	return &CalcError{
		Class:   def.Class,
		Code:    code,
		Message: msg,
		Hints:   hints,
		Data:    data,
	}
}

// NewAt creates a CalcError anchored at a 1-based input column.
func NewAt(code string, column int, data map[string]any) *CalcError {
	err := New(code, data)
	err.Column = column
	return err
}

// renderTemplate renders a Go template with the given data.
func renderTemplate(tmplStr string, data map[string]any) string {
	if data == nil {
		return tmplStr
	}

	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return tmplStr
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return tmplStr
	}

	return buf.String()
}

// ============================================================================
// Fuzzy Matching - "Did you mean?" suggestions
// ============================================================================

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(b)]
}

// suggestionThreshold is the largest edit distance worth suggesting.
// Short words (1-3): 1 edit, medium (4-6): 2 edits, longer: 3 edits.
func suggestionThreshold(input string) int {
	switch {
	case len(input) >= 7:
		return 3
	case len(input) >= 4:
		return 2
	}
	return 1
}

// FindClosestMatch finds the closest candidate within the edit threshold.
// Returns the empty string when nothing is close enough or input is exact.
func FindClosestMatch(input string, candidates []string) string {
	matches := FindTopMatches(input, candidates, 1)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// FindTopMatches returns up to n candidates closest to input, nearest first.
func FindTopMatches(input string, candidates []string, n int) []string {
	if len(input) == 0 || len(candidates) == 0 || n <= 0 {
		return nil
	}

	type match struct {
		value    string
		distance int
	}

	var matches []match
	for _, candidate := range candidates {
		dist := levenshteinDistance(input, candidate)
		if dist > 0 {
			matches = append(matches, match{candidate, dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	threshold := suggestionThreshold(input)
	var result []string
	for i := 0; i < len(matches) && len(result) < n; i++ {
		if matches[i].distance <= threshold {
			result = append(result, matches[i].value)
		}
	}

	return result
}

// NewUnknownName creates an unknown function name error with optional fuzzy matching.
func NewUnknownName(name string, column int, known []string) *CalcError {
	err := NewAt("NAME-0001", column, map[string]any{"Name": name})

	if suggestion := FindClosestMatch(name, known); suggestion != "" {
		err.Hints = append(err.Hints, "Did you mean `"+suggestion+"`?")
	}

	return err
}
