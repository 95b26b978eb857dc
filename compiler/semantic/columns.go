package semantic

import (
	"strconv"

	"github.com/deltalog/deltalog/compiler/ast"
)

// ColumnTable maps a predicate signature to its ordered list of
// column names, one per argument position.
type ColumnTable map[Key][]string

// BuildColumnTable derives column names for every signature defined
// in the two symbol tables.  For an extensional predicate the names
// are the argument variable names of its first declaration; a
// signature present only in the intensional table gets synthesized
// positional names col0..col(arity-1).  Extensional entries are never
// overwritten by the synthesized form.
func BuildColumnTable(ext, intn *SymbolTable) ColumnTable {
	cols := make(ColumnTable, ext.Len()+intn.Len())
	for _, k := range ext.Keys() {
		head := ext.Lookup(k)[0].Head
		names := make([]string, 0, len(head.Args))
		for _, arg := range head.Args {
			names = append(names, ast.TermString(arg))
		}
		cols[k] = names
	}
	for _, k := range intn.Keys() {
		if _, ok := cols[k]; ok {
			continue
		}
		names := make([]string, k.Arity)
		for i := range names {
			names[i] = "col" + strconv.Itoa(i)
		}
		cols[k] = names
	}
	return cols
}
