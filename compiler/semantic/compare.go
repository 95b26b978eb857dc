package semantic

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/deltalog/deltalog/compiler/ast"
)

// Key is a predicate signature: a predicate name paired with its
// arity.  Keys are the single notion of predicate identity used by
// every table in this package; two keys are the same predicate iff
// Compare returns zero.
type Key struct {
	Name  string
	Arity int
}

// KeyOf returns the signature of a.  Delta forms embed their tag in
// the name so that an insert and a delete on the same predicate
// remain distinct signatures.
func KeyOf(a *ast.Atom) Key {
	name := a.Name
	switch a.Form {
	case ast.DeltaInsert:
		name = "+" + name
	case ast.DeltaDelete:
		name = "-" + name
	}
	return Key{Name: name, Arity: a.Arity()}
}

// Compare orders keys by name, then by arity.
func (k Key) Compare(other Key) int {
	if c := strings.Compare(k.Name, other.Name); c != 0 {
		return c
	}
	return cmp.Compare(k.Arity, other.Arity)
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.Name, k.Arity)
}

// CompareVars orders variables by their printed form.
func CompareVars(a, b ast.Term) int {
	return strings.Compare(ast.TermString(a), ast.TermString(b))
}

// CompareAtoms orders atoms by the signature of the predicate they
// reference.
func CompareAtoms(a, b *ast.Atom) int {
	return KeyOf(a).Compare(KeyOf(b))
}

// KeySet is a deduplicating set of signatures.
type KeySet struct {
	keys map[Key]struct{}
}

func NewKeySet() *KeySet {
	return &KeySet{keys: make(map[Key]struct{})}
}

func (s *KeySet) Add(k Key) {
	s.keys[k] = struct{}{}
}

func (s *KeySet) Contains(k Key) bool {
	_, ok := s.keys[k]
	return ok
}

func (s *KeySet) Len() int { return len(s.keys) }

// Sorted returns the members in signature order.
func (s *KeySet) Sorted() []Key {
	keys := make([]Key, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Key.Compare)
	return keys
}

// VarSet is a deduplicating set of variables keyed by printed form.
type VarSet struct {
	vars map[string]ast.Term
}

func NewVarSet() *VarSet {
	return &VarSet{vars: make(map[string]ast.Term)}
}

func (s *VarSet) Add(t ast.Term) {
	name := ast.TermString(t)
	if _, ok := s.vars[name]; !ok {
		s.vars[name] = t
	}
}

func (s *VarSet) Contains(name string) bool {
	_, ok := s.vars[name]
	return ok
}

func (s *VarSet) Len() int { return len(s.vars) }

// Sorted returns the members ordered by printed form.
func (s *VarSet) Sorted() []ast.Term {
	vars := make([]ast.Term, 0, len(s.vars))
	for _, t := range s.vars {
		vars = append(vars, t)
	}
	slices.SortFunc(vars, CompareVars)
	return vars
}

// AtomSet is a deduplicating set of atoms keyed by signature.  The
// first atom added for a signature wins; later atoms with the same
// signature are dropped.
type AtomSet struct {
	atoms map[Key]*ast.Atom
}

func NewAtomSet() *AtomSet {
	return &AtomSet{atoms: make(map[Key]*ast.Atom)}
}

func (s *AtomSet) Add(a *ast.Atom) {
	k := KeyOf(a)
	if _, ok := s.atoms[k]; !ok {
		s.atoms[k] = a
	}
}

func (s *AtomSet) Len() int { return len(s.atoms) }

// Sorted returns the members in signature order, independent of
// insertion order.
func (s *AtomSet) Sorted() []*ast.Atom {
	atoms := make([]*ast.Atom, 0, len(s.atoms))
	for _, a := range s.atoms {
		atoms = append(atoms, a)
	}
	slices.SortFunc(atoms, CompareAtoms)
	return atoms
}
