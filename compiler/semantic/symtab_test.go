package semantic_test

import (
	"testing"

	"github.com/deltalog/deltalog/compiler/ast"
	"github.com/deltalog/deltalog/compiler/parser"
	"github.com/deltalog/deltalog/compiler/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) ast.Program {
	t.Helper()
	p, err := parser.ParseProgram(src)
	require.NoError(t, err)
	return p.Parsed()
}

const store = `
price(name, amount).
owner(name, person).

cheap(N) :- price(N, A), A < 10.
cheap(N) :- owner(N, P), P = 'charity'.
expensive(N) :- price(N, A), A >= 100.

+price(N, A) :- incoming(N, A), A > 5.

?- cheap(N).
`

func TestExtractPartition(t *testing.T) {
	prog := parse(t, store)
	ext := semantic.ExtractExtensional(prog)
	intn := semantic.ExtractIntensional(prog)

	assert.Equal(t, []semantic.Key{
		{Name: "owner", Arity: 2},
		{Name: "price", Arity: 2},
	}, ext.Keys())
	assert.Equal(t, []semantic.Key{
		{Name: "cheap", Arity: 1},
		{Name: "expensive", Arity: 1},
	}, intn.Keys())

	// Delta rules and the query end up in neither table.
	assert.False(t, intn.Contains(semantic.Key{Name: "+price", Arity: 2}))
	assert.False(t, ext.Contains(semantic.Key{Name: "+price", Arity: 2}))
}

func TestSymbolTableAccumulates(t *testing.T) {
	prog := parse(t, store)
	intn := semantic.ExtractIntensional(prog)
	rules := intn.Lookup(semantic.Key{Name: "cheap", Arity: 1})
	require.Len(t, rules, 2)
	// Program order is preserved within a group.
	assert.IsType(t, &ast.Rel{}, rules[0].Body[0])
	assert.Equal(t, "price", rules[0].Body[0].(*ast.Rel).Atom.Name)
	assert.Equal(t, "owner", rules[1].Body[0].(*ast.Rel).Atom.Name)
}

func TestExtensionalNormalizedToEmptyBody(t *testing.T) {
	prog := parse(t, store)
	ext := semantic.ExtractExtensional(prog)
	rules := ext.Lookup(semantic.Key{Name: "price", Arity: 2})
	require.Len(t, rules, 1)
	assert.Empty(t, rules[0].Body)
	assert.Equal(t, "price", rules[0].Head.Name)
}

func TestInsertNonRulePanics(t *testing.T) {
	prog := parse(t, "?- cheap(N).")
	table := semantic.NewSymbolTable(0)
	require.Panics(t, func() { table.Insert(prog[0]) })
}

func TestFactAndRuleForSameSignature(t *testing.T) {
	prog := parse(t, `
p(x, y).
p(A, B) :- q(A, B).
?- p(A, B).
`)
	ext := semantic.ExtractExtensional(prog)
	intn := semantic.ExtractIntensional(prog)
	k := semantic.Key{Name: "p", Arity: 2}
	// The same signature may be defined both ways; the entries stay
	// separate.
	assert.True(t, ext.Contains(k))
	assert.True(t, intn.Contains(k))
	assert.Len(t, ext.Lookup(k), 1)
	assert.Len(t, intn.Lookup(k), 1)
}
