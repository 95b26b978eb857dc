package semantic_test

import (
	"testing"

	"github.com/deltalog/deltalog/compiler/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuery(t *testing.T) {
	prog := parse(t, store)
	q, err := semantic.GetQuery(prog)
	require.NoError(t, err)
	assert.Equal(t, "cheap", q.Atom.Name)
	assert.Equal(t, 1, q.Atom.Arity())
}

func TestGetQueryMissing(t *testing.T) {
	prog := parse(t, "price(name, amount).")
	_, err := semantic.GetQuery(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no query")
}

func TestGetQueryAmbiguous(t *testing.T) {
	prog := parse(t, `
price(name, amount).
?- price(N, A).
?- price(N, A).
`)
	_, err := semantic.GetQuery(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one query")
}
