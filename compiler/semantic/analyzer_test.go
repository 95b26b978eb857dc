package semantic_test

import (
	"testing"

	"github.com/deltalog/deltalog/compiler/parser"
	"github.com/deltalog/deltalog/compiler/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	p, err := parser.ParseProgram(`
price(name, amount).
cheap(N) :- price(N, A), A < 10.
+price(N, A) :- incoming(N, A), A > 5.
?- cheap(N).
`)
	require.NoError(t, err)
	a, err := semantic.Analyze(p)
	require.NoError(t, err)

	assert.Equal(t, []semantic.Key{{Name: "price", Arity: 2}}, a.Extensional.Keys())
	assert.Equal(t, []semantic.Key{{Name: "cheap", Arity: 1}}, a.Intensional.Keys())
	assert.Equal(t, []string{"name", "amount"}, a.Columns[semantic.Key{Name: "price", Arity: 2}])
	assert.Equal(t, []string{"col0"}, a.Columns[semantic.Key{Name: "cheap", Arity: 1}])
	assert.Equal(t, "cheap", a.Query.Atom.Name)
	require.Len(t, a.Deltas, 1)
	assert.Equal(t, "+price(COL0, COL1)", a.Deltas[0].String())
}

func TestAnalyzeNoUpdate(t *testing.T) {
	p, err := parser.ParseProgram(`
price(name, amount).
cheap(N) :- price(N, A), A < 10.
?- cheap(N).
`)
	require.NoError(t, err)
	_, err = semantic.Analyze(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no update")
}

func TestAnalyzeNoQuery(t *testing.T) {
	p, err := parser.ParseProgram(`
price(name, amount).
+price(N, A) :- incoming(N, A).
`)
	require.NoError(t, err)
	_, err = semantic.Analyze(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no query")
}

func TestAnalyzeAmbiguousQueryPosition(t *testing.T) {
	p, err := parser.ParseProgram(`price(name, amount).
+price(N, A) :- incoming(N, A).
?- price(N, A).
?- price(N, A).
`)
	require.NoError(t, err)
	_, err = semantic.Analyze(p)
	require.Error(t, err)
	// The error points at the second query statement.
	assert.Regexp(t, `File "", line 4, characters \d+-\d+: 'semantic error: .*more than one query.*'`, err.Error())
}
