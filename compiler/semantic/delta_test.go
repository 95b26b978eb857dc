package semantic_test

import (
	"testing"

	"github.com/deltalog/deltalog/compiler/ast"
	"github.com/deltalog/deltalog/compiler/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDeltaPredicates(t *testing.T) {
	prog := parse(t, `
price(name, amount).
+price(N, A) :- incoming(N, A), A > 5.
?- price(N, A).
`)
	deltas, err := semantic.ExtractDeltaPredicates(prog)
	require.NoError(t, err)
	require.Len(t, deltas, 1)
	head := deltas[0]
	assert.Equal(t, ast.DeltaInsert, head.Form)
	assert.Equal(t, "price", head.Name)
	assert.Equal(t, "+price(COL0, COL1)", head.String())
}

func TestDeltaCanonicalizationCollapses(t *testing.T) {
	// Two insert rules for the same predicate and arity with
	// differently named arguments are one update predicate.
	prog := parse(t, `
price(name, amount).
+price(N, A) :- incoming(N, A).
+price(X, Y) :- reissued(X, Y).
?- price(N, A).
`)
	deltas, err := semantic.ExtractDeltaPredicates(prog)
	require.NoError(t, err)
	require.Len(t, deltas, 1)
	assert.Equal(t, "+price(COL0, COL1)", deltas[0].String())
}

func TestDeltaInsertAndDeleteDistinct(t *testing.T) {
	prog := parse(t, `
price(name, amount).
+price(N, A) :- incoming(N, A).
-price(N, A) :- stale(N), price(N, A).
?- price(N, A).
`)
	deltas, err := semantic.ExtractDeltaPredicates(prog)
	require.NoError(t, err)
	require.Len(t, deltas, 2)
	// Signature order: "+price" sorts before "-price".
	assert.Equal(t, ast.DeltaInsert, deltas[0].Form)
	assert.Equal(t, ast.DeltaDelete, deltas[1].Form)
}

func TestDeltaOrderIndependent(t *testing.T) {
	a := parse(t, `
price(name, amount).
+price(N, A) :- incoming(N, A).
-owner(N, P) :- owner(N, P), gone(P).
?- price(N, A).
`)
	b := parse(t, `
-owner(X, Q) :- owner(X, Q), gone(Q).
price(name, amount).
+price(Z, W) :- incoming(Z, W).
?- price(N, A).
`)
	da, err := semantic.ExtractDeltaPredicates(a)
	require.NoError(t, err)
	db, err := semantic.ExtractDeltaPredicates(b)
	require.NoError(t, err)
	require.Len(t, da, 2)
	require.Len(t, db, 2)
	for i := range da {
		assert.Equal(t, da[i].String(), db[i].String())
		assert.Equal(t, da[i].Form, db[i].Form)
	}
}

func TestNoUpdateFails(t *testing.T) {
	prog := parse(t, `
price(name, amount).
cheap(N) :- price(N, A), A < 10.
?- cheap(N).
`)
	_, err := semantic.ExtractDeltaPredicates(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no update")
}
