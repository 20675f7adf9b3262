// Package evaluator evaluates normalized calculator expressions against the
// elementary function library.
//
// Domain errors are not failures here: a NaN from the numeric layer flows
// through the remaining arithmetic and comes out as the result. Only
// structural problems and division by zero produce an Error object.
package evaluator

import (
	"math"

	"github.com/sambeau/dcalc/pkg/dcalc/ast"
	"github.com/sambeau/dcalc/pkg/dcalc/lexer"
	"github.com/sambeau/dcalc/pkg/dcalc/numeric"
	"github.com/sambeau/dcalc/pkg/dcalc/parser"
	"github.com/sambeau/dcalc/pkg/dcalc/settings"
)

// Environment holds the constant bindings of one evaluation
type Environment struct {
	store map[string]Object
}

// NewEnvironment binds pi, e and Ans from the given settings
func NewEnvironment(s settings.Settings) *Environment {
	return &Environment{store: map[string]Object{
		"pi":  &Number{Value: numeric.Pi},
		"e":   &Number{Value: numeric.E},
		"Ans": &Number{Value: s.Ans},
	}}
}

// Get retrieves a constant or builtin by name
func (e *Environment) Get(name string) (Object, bool) {
	if obj, ok := e.store[name]; ok {
		return obj, true
	}
	if b, ok := builtins[name]; ok {
		return b, true
	}
	return nil, false
}

// Eval evaluates a node
func Eval(node ast.Node, env *Environment) Object {
	switch node := node.(type) {
	case *ast.NumberLiteral:
		return &Number{Value: node.Value}

	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node, right)

	case *ast.InfixExpression:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node, left, right)

	case *ast.CallExpression:
		return evalCallExpression(node, env)
	}

	literal := ""
	if node != nil {
		literal = node.TokenLiteral()
	}
	return newError("SYNTAX-0003", 0, map[string]any{"Token": literal})
}

func evalIdentifier(node *ast.Identifier, env *Environment) Object {
	obj, ok := env.Get(node.Value)
	if !ok {
		return newError("EVAL-0003", node.Token.Column, map[string]any{"Name": node.Value})
	}
	if b, ok := obj.(*Builtin); ok {
		return newError("EVAL-0002", node.Token.Column, map[string]any{
			"Function": b.Name,
			"Want":     b.Arity,
			"Got":      0,
		})
	}
	return obj
}

func evalPrefixExpression(node *ast.PrefixExpression, right Object) Object {
	n, ok := right.(*Number)
	if !ok {
		return newError("SYNTAX-0003", node.Token.Column, map[string]any{"Token": node.Operator})
	}
	switch node.Operator {
	case "-":
		return &Number{Value: -n.Value}
	case "+":
		return n
	}
	return newError("SYNTAX-0003", node.Token.Column, map[string]any{"Token": node.Operator})
}

func evalInfixExpression(node *ast.InfixExpression, left, right Object) Object {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return newError("SYNTAX-0003", node.Token.Column, map[string]any{"Token": node.Operator})
	}

	switch node.Operator {
	case "+":
		return &Number{Value: l.Value + r.Value}
	case "-":
		return &Number{Value: l.Value - r.Value}
	case "*":
		return &Number{Value: l.Value * r.Value}
	case "/":
		if r.Value == 0 && !math.IsNaN(l.Value) {
			return newError("EVAL-0001", node.Token.Column, nil)
		}
		return &Number{Value: l.Value / r.Value}
	}
	return newError("SYNTAX-0003", node.Token.Column, map[string]any{"Token": node.Operator})
}

func evalCallExpression(node *ast.CallExpression, env *Environment) Object {
	name := node.Function.Value
	obj, ok := env.Get(name)
	if !ok {
		return newError("EVAL-0003", node.Function.Token.Column, map[string]any{"Name": name})
	}
	b, ok := obj.(*Builtin)
	if !ok {
		return newError("EVAL-0002", node.Function.Token.Column, map[string]any{
			"Function": name,
			"Want":     0,
			"Got":      len(node.Arguments),
		})
	}
	if len(node.Arguments) != b.Arity {
		return newError("EVAL-0002", node.Function.Token.Column, map[string]any{
			"Function": name,
			"Want":     b.Arity,
			"Got":      len(node.Arguments),
		})
	}

	args := make([]float64, len(node.Arguments))
	for i, a := range node.Arguments {
		v := Eval(a, env)
		if isError(v) {
			return v
		}
		args[i] = v.(*Number).Value
	}
	return &Number{Value: b.Fn(args...)}
}

// Evaluate parses and evaluates normalized text. A NaN result with a nil
// error is a domain error; overflow to infinity is reported the same way.
func Evaluate(expr string, s settings.Settings) (float64, error) {
	tree, err := parser.Parse(expr)
	if err != nil {
		return 0, err
	}
	obj := Eval(tree, NewEnvironment(s))
	if e, ok := obj.(*Error); ok {
		return 0, e.Err
	}
	v := obj.(*Number).Value
	if math.IsInf(v, 0) {
		return math.NaN(), nil
	}
	return v, nil
}

// Result is the outcome of evaluating one raw input line.
type Result struct {
	Input      string
	Normalized lexer.Normalized
	Value      float64
}

// IsUndefined reports whether the result is a domain error.
func (r Result) IsUndefined() bool {
	return numeric.IsUndefined(r.Value)
}

// Calculate normalizes raw input and evaluates it.
func Calculate(raw string, s settings.Settings) (Result, error) {
	norm, err := lexer.Normalize(raw)
	if err != nil {
		return Result{Input: raw}, err
	}
	v, err := Evaluate(norm.Text, s)
	if err != nil {
		return Result{Input: raw, Normalized: norm}, err
	}
	return Result{Input: raw, Normalized: norm, Value: v}, nil
}
