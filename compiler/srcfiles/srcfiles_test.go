package srcfiles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deltalog/deltalog/compiler/srcfiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormat(t *testing.T) {
	list, err := srcfiles.Concat(nil, "alpha\nbeta")
	require.NoError(t, err)
	list.AddError("boom", 6, 10)
	require.Error(t, list.Error())
	assert.Equal(t, `File "", line 2, characters 0-4: 'boom'`, list.Error().Error())
}

func TestErrorWithoutSpanEnd(t *testing.T) {
	list, err := srcfiles.Concat(nil, "alpha")
	require.NoError(t, err)
	list.AddError("boom", 2, -1)
	assert.Equal(t, `File "", line 1, characters 2-2: 'boom'`, list.Error().Error())
}

func TestConcatIncludeFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "base.dl")
	require.NoError(t, os.WriteFile(path, []byte("price(name, amount).\n"), 0o644))

	list, err := srcfiles.Concat([]string{path}, "?- price(N, A).")
	require.NoError(t, err)
	require.Len(t, list.Files, 2)

	// An error inside the include file names that file.
	list.AddError("boom", 6, 10)
	assert.Regexp(t, `File ".*base\.dl", line 1, characters 6-10: 'boom'`, list.Error().Error())
}

func TestErrorList(t *testing.T) {
	list, err := srcfiles.Concat(nil, "alpha\nbeta")
	require.NoError(t, err)
	require.NoError(t, list.Error())
	list.AddError("first", 0, 2)
	list.AddError("second", 6, 8)
	assert.Equal(t, "File \"\", line 1, characters 0-2: 'first'\nFile \"\", line 2, characters 0-2: 'second'", list.Error().Error())
}
