package lexer

import "sort"

// NameKind distinguishes callable names from constants.
type NameKind int

const (
	FunctionName NameKind = iota
	ConstantName
)

// Name is one entry of the recognized-name table.
type Name struct {
	Name  string
	Kind  NameKind
	Arity int // argument count for functions, 0 for constants
}

// names holds every letter run the normalizer accepts. fact, pow, comb
// and perm are the targets of postfix rewriting; accepting them keeps
// normalization idempotent.
var names = map[string]Name{
	"sin":    {"sin", FunctionName, 1},
	"cos":    {"cos", FunctionName, 1},
	"tan":    {"tan", FunctionName, 1},
	"sinh":   {"sinh", FunctionName, 1},
	"cosh":   {"cosh", FunctionName, 1},
	"tanh":   {"tanh", FunctionName, 1},
	"arcsin": {"arcsin", FunctionName, 1},
	"arccos": {"arccos", FunctionName, 1},
	"arctan": {"arctan", FunctionName, 1},
	"arsinh": {"arsinh", FunctionName, 1},
	"arcosh": {"arcosh", FunctionName, 1},
	"artanh": {"artanh", FunctionName, 1},
	"log":    {"log", FunctionName, 2},
	"lg":     {"lg", FunctionName, 1},
	"ln":     {"ln", FunctionName, 1},
	"sgn":    {"sgn", FunctionName, 1},
	"abs":    {"abs", FunctionName, 1},
	"fact":   {"fact", FunctionName, 1},
	"pow":    {"pow", FunctionName, 2},
	"comb":   {"comb", FunctionName, 2},
	"perm":   {"perm", FunctionName, 2},
	"pi":     {"pi", ConstantName, 0},
	"e":      {"e", ConstantName, 0},
	"Ans":    {"Ans", ConstantName, 0},
}

// longestName bounds the greedy prefix match.
var longestName = func() int {
	n := 0
	for k := range names {
		n = max(n, len(k))
	}
	return n
}()

// nameLetters is the set of letters that may appear in a name.
var nameLetters = func() [128]bool {
	var set [128]bool
	for k := range names {
		for i := 0; i < len(k); i++ {
			set[k[i]] = true
		}
	}
	return set
}()

// LookupName returns the table entry for an exact name.
func LookupName(s string) (Name, bool) {
	n, ok := names[s]
	return n, ok
}

// Names returns every recognized name in sorted order.
func Names() []string {
	out := make([]string, 0, len(names))
	for k := range names {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FunctionNames returns the recognized function names in sorted order.
func FunctionNames() []string {
	var out []string
	for k, n := range names {
		if n.Kind == FunctionName {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func isNameLetter(ch byte) bool {
	return ch < 128 && nameLetters[ch]
}

// splitNames segments a letter run into names, longest prefix first.
// It returns false when some part of the run matches no name.
func splitNames(run string) ([]Name, bool) {
	var out []Name
	for len(run) > 0 {
		matched := false
		for n := min(longestName, len(run)); n > 0; n-- {
			if name, ok := names[run[:n]]; ok {
				out = append(out, name)
				run = run[n:]
				matched = true
				break
			}
		}
		if !matched {
			return nil, false
		}
	}
	return out, true
}
