package lexer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	perrors "github.com/sambeau/dcalc/pkg/dcalc/errors"
)

// MaxInputLength is the longest raw input accepted, in characters.
const MaxInputLength = 485

const symbols = "().,^+-*/!CP"

// Rewrite records which transformations Normalize applied.
type Rewrite uint8

const (
	RewriteImplicitMultiplication Rewrite = 1 << iota
	RewriteCallClosing
	RewriteFactorial
	RewritePower
	RewriteCombination
	RewritePermutation
	RewriteBalance
)

var rewriteNotes = []struct {
	flag Rewrite
	note string
}{
	{RewriteImplicitMultiplication, "implicit multiplication made explicit"},
	{RewriteCallClosing, "function arguments bracketed"},
	{RewriteFactorial, "x! read as fact(x)"},
	{RewritePower, "a^b read as pow(a,b)"},
	{RewriteCombination, "aCb read as comb(a,b)"},
	{RewritePermutation, "aPb read as perm(a,b)"},
	{RewriteBalance, "unbalanced parentheses completed"},
}

// Has reports whether every flag in f is set.
func (r Rewrite) Has(f Rewrite) bool {
	return r&f == f
}

// Notes returns a short description of each applied rewrite.
func (r Rewrite) Notes() []string {
	var out []string
	for _, n := range rewriteNotes {
		if r.Has(n.flag) {
			out = append(out, n.note)
		}
	}
	return out
}

// Normalized is a fully explicit, parenthesized expression.
type Normalized struct {
	Text     string
	Rewrites Rewrite
}

func (n Normalized) String() string {
	return n.Text
}

// Normalize turns raw calculator input into an explicit expression:
// implicit products get a '*', bare function names get their argument
// bracketed, the postfix and infix operators ! ^ C P become fact, pow,
// comb and perm calls, and unbalanced parentheses are completed.
func Normalize(raw string) (Normalized, error) {
	input := width.Narrow.String(raw)
	if input == "" {
		return Normalized{}, perrors.New("INPUT-0001", nil)
	}
	if n := utf8.RuneCountInString(input); n > MaxInputLength {
		return Normalized{}, perrors.New("INPUT-0002", map[string]any{
			"Length": n,
			"Limit":  MaxInputLength,
		})
	}
	if err := validate(input); err != nil {
		return Normalized{}, err
	}

	toks, err := scanRaw(input)
	if err != nil {
		return Normalized{}, err
	}

	t := &transducer{out: make([]byte, 0, 2*len(input))}
	for i, tok := range toks {
		var next *rawToken
		if i+1 < len(toks) {
			next = &toks[i+1]
		}
		if err := t.step(tok, next); err != nil {
			return Normalized{}, err
		}
	}
	t.finish()

	return Normalized{Text: string(t.out), Rewrites: t.rewrites}, nil
}

// validate rejects the first character outside the alphabet.
func validate(input string) error {
	col := 0
	for _, r := range input {
		col++
		if r < utf8.RuneSelf {
			ch := byte(r)
			if isDigit(ch) || isNameLetter(ch) || strings.IndexByte(symbols, ch) >= 0 {
				continue
			}
		}
		return perrors.NewAt("INPUT-0003", col, map[string]any{"Char": string(r)})
	}
	return nil
}

type rawKind int

const (
	rawNumber rawKind = iota
	rawName
	rawSymbol
)

type rawToken struct {
	kind   rawKind
	text   string
	name   Name
	column int
}

// scanRaw splits validated ASCII input into numbers, names and symbols.
func scanRaw(input string) ([]rawToken, error) {
	var toks []rawToken
	for i := 0; i < len(input); {
		ch := input[i]
		switch {
		case isDigit(ch) || ch == '.':
			j := i
			for j < len(input) && (isDigit(input[j]) || input[j] == '.') {
				j++
			}
			toks = append(toks, rawToken{kind: rawNumber, text: input[i:j], column: i + 1})
			i = j

		case isNameLetter(ch):
			j := i
			for j < len(input) && isNameLetter(input[j]) {
				j++
			}
			run := input[i:j]
			parts, ok := splitNames(run)
			if !ok {
				return nil, perrors.NewUnknownName(run, i+1, Names())
			}
			col := i + 1
			for _, p := range parts {
				toks = append(toks, rawToken{kind: rawName, text: p.Name, name: p, column: col})
				col += len(p.Name)
			}
			i = j

		default:
			if (ch == '*' || ch == '/') && i+1 < len(input) && input[i+1] == ch {
				return nil, perrors.NewAt("SYNTAX-0001", i+1, map[string]any{"Operator": input[i : i+2]})
			}
			toks = append(toks, rawToken{kind: rawSymbol, text: input[i : i+1], column: i + 1})
			i++
		}
	}
	return toks, nil
}

// state is the transducer's position in the operand/operator grammar.
type state int

const (
	expectOperand state = iota // start of input, after an operator, '(' or ','
	afterOperand               // after a number, constant, ')' or '!'
)

func (s state) String() string {
	if s == afterOperand {
		return "afterOperand"
	}
	return "expectOperand"
}

// pendingKind tags a bracket the transducer opened and must close itself.
type pendingKind int

const (
	pendingCall pendingKind = iota // name( written without its '('
	pendingPow                     // pow(a, awaiting the exponent
	pendingComb                    // comb(a,
	pendingPerm                    // perm(a,
)

type pending struct {
	kind   pendingKind
	depth  int // written paren depth the bracket was opened at
	commas int // separators a call still accepts
}

var infixRewrites = map[byte]struct {
	call    string
	kind    pendingKind
	rewrite Rewrite
}{
	'^': {"pow(", pendingPow, RewritePower},
	'C': {"comb(", pendingComb, RewriteCombination},
	'P': {"perm(", pendingPerm, RewritePermutation},
}

type transducer struct {
	out       []byte
	state     state
	depth     int
	pending   []pending
	rewrites  Rewrite
	lastDigit bool // the previous token was a number literal
}

func (t *transducer) step(tok rawToken, next *rawToken) error {
	afterNumber := t.lastDigit
	t.lastDigit = tok.kind == rawNumber

	switch tok.kind {
	case rawNumber:
		t.beginOperand(true)
		t.out = append(t.out, tok.text...)
		t.state = afterOperand
		return nil

	case rawName:
		// a constant right after a number joins the pending argument: sin2pi is sin(2*pi)
		constant := tok.name.Kind == ConstantName
		t.beginOperand(!(constant && afterNumber))
		t.out = append(t.out, tok.text...)
		if constant {
			t.state = afterOperand
			return nil
		}
		if next == nil || next.text != "(" {
			t.out = append(t.out, '(')
			t.pending = append(t.pending, pending{kind: pendingCall, depth: t.depth, commas: tok.name.Arity - 1})
			t.rewrites |= RewriteCallClosing
		}
		t.state = expectOperand
		return nil
	}

	op := tok.text[0]
	switch op {
	case '(':
		t.beginOperand(true)
		t.out = append(t.out, '(')
		t.depth++
		t.state = expectOperand

	case ')':
		t.closePending(')')
		if t.depth == 0 {
			t.out = append([]byte{'('}, t.out...)
			t.rewrites |= RewriteBalance
		} else {
			t.depth--
		}
		t.out = append(t.out, ')')
		t.state = afterOperand

	case ',':
		t.closePending(',')
		t.out = append(t.out, ',')
		t.state = expectOperand

	case '+', '-':
		if t.state == afterOperand {
			t.closePending(op)
		}
		t.out = append(t.out, op)
		t.state = expectOperand

	case '*', '/':
		if t.state == expectOperand {
			return perrors.NewAt("SYNTAX-0003", tok.column, map[string]any{"Token": tok.text})
		}
		t.closePending(op)
		t.out = append(t.out, op)
		t.state = expectOperand

	case '!':
		if t.state == expectOperand {
			return perrors.NewAt("SYNTAX-0002", tok.column, map[string]any{"Operator": tok.text})
		}
		start := OperandStart(t.out, len(t.out))
		t.out = wrap(t.out, start, "fact(", ")")
		t.rewrites |= RewriteFactorial

	default:
		rw, ok := infixRewrites[op]
		if !ok {
			return perrors.NewAt("INPUT-0003", tok.column, map[string]any{"Char": tok.text})
		}
		if t.state == expectOperand {
			return perrors.NewAt("SYNTAX-0002", tok.column, map[string]any{"Operator": tok.text})
		}
		t.closePending(op)
		start := OperandStart(t.out, len(t.out))
		t.out = wrap(t.out, start, rw.call, ",")
		t.pending = append(t.pending, pending{kind: rw.kind, depth: t.depth})
		t.rewrites |= rw.rewrite
		t.state = expectOperand
	}
	return nil
}

// beginOperand inserts the implicit '*' when an operand directly follows
// a complete one, closing the pending brackets first when closes is set.
func (t *transducer) beginOperand(closes bool) {
	if t.state != afterOperand {
		return
	}
	if closes {
		t.closePending('*')
	}
	t.out = append(t.out, '*')
	t.rewrites |= RewriteImplicitMultiplication
}

// closePending closes the transducer's own brackets at the current depth
// that end at op. '^' only ends bare calls, so exponents nest right. A ','
// is taken as the separator of the innermost two-argument call that still
// accepts one.
func (t *transducer) closePending(op byte) {
	for len(t.pending) > 0 {
		top := &t.pending[len(t.pending)-1]
		if top.depth != t.depth {
			return
		}
		switch op {
		case '^':
			if top.kind != pendingCall {
				return
			}
		case ',':
			if top.kind == pendingCall && top.commas > 0 {
				top.commas--
				return
			}
		}
		t.out = append(t.out, ')')
		t.pending = t.pending[:len(t.pending)-1]
	}
}

// finish closes every bracket still open at end of input.
func (t *transducer) finish() {
	for {
		t.closePending(0)
		if t.depth == 0 {
			return
		}
		t.out = append(t.out, ')')
		t.depth--
		t.rewrites |= RewriteBalance
	}
}

// wrap inserts prefix at start and appends suffix.
func wrap(out []byte, start int, prefix, suffix string) []byte {
	wrapped := make([]byte, 0, len(out)+len(prefix)+len(suffix))
	wrapped = append(wrapped, out[:start]...)
	wrapped = append(wrapped, prefix...)
	wrapped = append(wrapped, out[start:]...)
	return append(wrapped, suffix...)
}
