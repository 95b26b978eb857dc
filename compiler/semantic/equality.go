package semantic

import (
	"fmt"

	"github.com/deltalog/deltalog/compiler/ast"
)

// EqualityTable maps a variable's printed form to the constant it is
// equated to by an equality literal of its rule body.  Like the other
// per-rule table it is built fresh per rule and discarded after use.
type EqualityTable map[string]*ast.Constant

// BuildEqualityTable records the (variable, constant) pair of every
// literal, which must already have the shape variable = constant;
// anything else is a caller contract breach, since equalities reach
// here from an earlier, already-validated stage.  A variable equated
// more than once keeps the last binding.
func BuildEqualityTable(literals []ast.Literal) EqualityTable {
	t := make(EqualityTable, DefaultTableCap)
	for _, lit := range literals {
		eq, ok := lit.(*ast.Equality)
		if !ok {
			panic(fmt.Sprintf("system error: equality table built from %T literal", lit))
		}
		c, ok := eq.Expr.(*ast.Constant)
		if !ok {
			panic(fmt.Sprintf("system error: equality bound to %T, not a constant", eq.Expr))
		}
		switch eq.Var.(type) {
		case *ast.NamedVar, *ast.NumberedVar:
			t[ast.TermString(eq.Var)] = c
		default:
			panic(fmt.Sprintf("system error: equality on %T; aggregate-free equalities required", eq.Var))
		}
	}
	return t
}

// Extract looks up and removes the binding for name, so the caller
// consumes each equality exactly once when eliminating variables
// before join-condition generation.  A second extraction of the same
// name fails.
func (t EqualityTable) Extract(name string) (*ast.Constant, error) {
	c, ok := t[name]
	if !ok {
		return nil, &Error{
			Msg: fmt.Sprintf("no equality binding for variable %q", name),
			Pos: -1,
			End: -1,
		}
	}
	delete(t, name)
	return c, nil
}
