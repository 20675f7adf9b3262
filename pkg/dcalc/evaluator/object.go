package evaluator

import (
	"strconv"

	perrors "github.com/sambeau/dcalc/pkg/dcalc/errors"
)

// ObjectType represents the type of evaluated values
type ObjectType string

const (
	NUMBER_OBJ  = "NUMBER"
	ERROR_OBJ   = "ERROR"
	BUILTIN_OBJ = "BUILTIN"
)

// Object represents all evaluated values
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Number is a real value; NaN marks a domain error
type Number struct {
	Value float64
}

func (n *Number) Inspect() string  { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *Number) Type() ObjectType { return NUMBER_OBJ }

// Error carries a structural or evaluation failure
type Error struct {
	Err *perrors.CalcError
}

func (e *Error) Inspect() string  { return "ERROR: " + e.Err.Error() }
func (e *Error) Type() ObjectType { return ERROR_OBJ }

// BuiltinFunction is the signature of the numeric bindings
type BuiltinFunction func(args ...float64) float64

// Builtin represents built-in function objects
type Builtin struct {
	Name  string
	Arity int
	Fn    BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin function " + b.Name }

func newError(code string, column int, data map[string]any) *Error {
	return &Error{Err: perrors.NewAt(code, column, data)}
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}
