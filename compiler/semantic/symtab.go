package semantic

import (
	"fmt"
	"slices"

	"github.com/deltalog/deltalog/compiler/ast"
)

// DefaultTableCap is the initial capacity used for every table in
// this package when the caller passes no explicit size hint.
const DefaultTableCap = 16

// SymbolTable groups rule statements by the signature of their head,
// preserving program order within each group.  Repeated definitions
// of the same signature accumulate rather than overwrite.
type SymbolTable struct {
	rules map[Key][]*ast.Rule
}

func NewSymbolTable(capacity int) *SymbolTable {
	if capacity <= 0 {
		capacity = DefaultTableCap
	}
	return &SymbolTable{rules: make(map[Key][]*ast.Rule, capacity)}
}

// Insert adds a rule statement, appending to the existing group for
// its head signature or creating a new singleton group.  Handing it
// any other statement form is a caller contract breach.
func (t *SymbolTable) Insert(s ast.Statement) {
	rule, ok := s.(*ast.Rule)
	if !ok {
		panic(fmt.Sprintf("system error: symbol table insert of %T statement", s))
	}
	k := KeyOf(rule.Head)
	t.rules[k] = append(t.rules[k], rule)
}

// Lookup returns the rules whose heads carry signature k, in program
// order, or nil if k is undefined.
func (t *SymbolTable) Lookup(k Key) []*ast.Rule {
	return t.rules[k]
}

func (t *SymbolTable) Contains(k Key) bool {
	_, ok := t.rules[k]
	return ok
}

func (t *SymbolTable) Len() int { return len(t.rules) }

// Keys returns the defined signatures in signature order.
func (t *SymbolTable) Keys() []Key {
	keys := make([]Key, 0, len(t.rules))
	for k := range t.rules {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Key.Compare)
	return keys
}

// ExtractIntensional builds the table of derived predicates: rule
// statements with a non-delta head and a non-empty body.
func ExtractIntensional(prog ast.Program) *SymbolTable {
	t := NewSymbolTable(len(prog))
	for _, s := range prog {
		if rule, ok := s.(*ast.Rule); ok && rule.Head.Form == ast.Plain && len(rule.Body) > 0 {
			t.Insert(rule)
		}
	}
	return t
}

// ExtractExtensional builds the table of input predicates from Base
// declarations.  Each is normalized to a rule with an empty body so
// both tables share one lookup contract.
func ExtractExtensional(prog ast.Program) *SymbolTable {
	t := NewSymbolTable(len(prog))
	for _, s := range prog {
		if base, ok := s.(*ast.Base); ok {
			t.Insert(&ast.Rule{Kind: "Rule", Head: base.Atom, Loc: base.Loc})
		}
	}
	return t
}
