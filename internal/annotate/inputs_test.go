package annotate_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/gatb-devtools/internal/annotate"
)

func readAll(t *testing.T, readers []io.Reader) string {
	t.Helper()

	var sb strings.Builder
	for _, r := range readers {
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		sb.Write(data)
	}

	return sb.String()
}

func TestOpenInputsDefaultsToStdin(t *testing.T) {
	t.Parallel()

	readers, closeAll, err := annotate.OpenInputs(nil, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", readAll(t, readers))
	assert.NoError(t, closeAll())
}

func TestOpenInputsFilesAndStdin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	require.NoError(t, os.WriteFile(first, []byte("one\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("three\n"), 0o600))

	readers, closeAll, err := annotate.OpenInputs([]string{first, annotate.StdinName, second}, strings.NewReader("two\n"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", readAll(t, readers))
	assert.NoError(t, closeAll())
}

func TestOpenInputsMissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "build.log")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o600))

	_, _, err := annotate.OpenInputs([]string{existing, filepath.Join(dir, "missing.log")}, strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
