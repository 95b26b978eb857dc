package semantic

import (
	"fmt"

	"github.com/deltalog/deltalog/compiler/ast"
)

// ColumnRef identifies one column of one atom occurrence within a
// rule body: the predicate, its arity, the zero-based occurrence
// index of the atom in the body, and the column name.  It is kept
// structured here; only String renders the concatenated display form
// consumed by the code generator.
type ColumnRef struct {
	Pred       string
	Arity      int
	Occurrence int
	Column     string
}

// String renders the qualified reference, e.g. price_a2_0.amount for
// column amount of the first occurrence of price/2.
func (r ColumnRef) String() string {
	return fmt.Sprintf("%s_a%d_%d.%s", r.Pred, r.Arity, r.Occurrence, r.Column)
}

// VarOccurrences maps a variable's printed form to every qualified
// column reference where it occurs across a rule body, most recent
// first.  Two occurrences of the same variable are an equi-join
// between their references; three or more form a chain of pairwise
// joins.  The table is built fresh per rule and discarded after use.
type VarOccurrences map[string][]ColumnRef

// BuildVarOccurrences walks the body atoms in written order, giving
// each one the next occurrence index (repeats of the same predicate
// count separately), and records a reference for every variable
// argument.  Constants and anonymous variables do not participate in
// joins and are skipped.  An aggregate variable inside a body atom is
// a semantic error.
func BuildVarOccurrences(cols ColumnTable, body []ast.Literal) (VarOccurrences, error) {
	vt := make(VarOccurrences, DefaultTableCap)
	n := 0
	for _, lit := range body {
		var atom *ast.Atom
		switch lit := lit.(type) {
		case *ast.Rel:
			atom = lit.Atom
		case *ast.Not:
			atom = lit.Atom
		default:
			// Comparisons are not atoms and consume no index.
			continue
		}
		k := KeyOf(atom)
		names, ok := cols[k]
		if !ok || len(names) != atom.Arity() {
			panic(fmt.Sprintf("system error: no column entry for %s", k))
		}
		for i, arg := range atom.Args {
			switch arg.(type) {
			case *ast.NamedVar, *ast.NumberedVar:
				ref := ColumnRef{
					Pred:       atom.Name,
					Arity:      atom.Arity(),
					Occurrence: n,
					Column:     names[i],
				}
				name := ast.TermString(arg)
				vt[name] = append([]ColumnRef{ref}, vt[name]...)
			case *ast.AggVar:
				err := errorAt(arg, "aggregates are only valid in rule heads")
				err.Key = &k
				return nil, err
			}
		}
		n++
	}
	return vt, nil
}

// Vars returns the set of variables occurring in the table.
func (t VarOccurrences) Vars() *VarSet {
	s := NewVarSet()
	for name := range t {
		s.Add(&ast.NamedVar{Kind: "NamedVar", Name: name})
	}
	return s
}
