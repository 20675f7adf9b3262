package evaluator

import "github.com/sambeau/dcalc/pkg/dcalc/numeric"

func unary(name string, fn func(float64) float64) *Builtin {
	return &Builtin{Name: name, Arity: 1, Fn: func(args ...float64) float64 { return fn(args[0]) }}
}

func binary(name string, fn func(float64, float64) float64) *Builtin {
	return &Builtin{Name: name, Arity: 2, Fn: func(args ...float64) float64 { return fn(args[0], args[1]) }}
}

// builtins binds every callable name to the elementary function library.
var builtins = map[string]*Builtin{
	"sin":    unary("sin", numeric.Sin),
	"cos":    unary("cos", numeric.Cos),
	"tan":    unary("tan", numeric.Tan),
	"sinh":   unary("sinh", numeric.Sinh),
	"cosh":   unary("cosh", numeric.Cosh),
	"tanh":   unary("tanh", numeric.Tanh),
	"arcsin": unary("arcsin", numeric.Arcsin),
	"arccos": unary("arccos", numeric.Arccos),
	"arctan": unary("arctan", numeric.Arctan),
	"arsinh": unary("arsinh", numeric.Arsinh),
	"arcosh": unary("arcosh", numeric.Arcosh),
	"artanh": unary("artanh", numeric.Artanh),
	"lg":     unary("lg", numeric.Lg),
	"ln":     unary("ln", numeric.Ln),
	"sgn":    unary("sgn", numeric.Sgn),
	"abs":    unary("abs", numeric.Abs),
	"fact":   unary("fact", numeric.Factorial),
	"log":    binary("log", numeric.Log),
	"pow":    binary("pow", numeric.Pow),
	"comb":   binary("comb", numeric.Comb),
	"perm":   binary("perm", numeric.Perm),
}

