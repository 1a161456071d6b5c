package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/gatb-devtools/internal/mphftest"
)

func noEnv(string) (string, bool) {
	return "", false
}

type recordRunner struct {
	inputs []string
	fail   error
}

func (r *recordRunner) Run(_ context.Context, _, _ string, args ...string) error {
	r.inputs = append(r.inputs, args[0])

	return r.fail
}

func execute(t *testing.T, args []string, runner mphftest.Runner) (string, error) {
	t.Helper()

	stderr := &bytes.Buffer{}
	cmd := newRootCmd(noEnv,
		mphftest.WithRunner(runner),
		mphftest.WithRemover(func(string) error { return nil }),
	)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(testContext(t))

	return stderr.String(), err
}

func TestRootCmdDefaultInput(t *testing.T) {
	t.Parallel()

	runner := &recordRunner{}
	stderr, err := execute(t, []string{}, runner)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stderr, "Using default file /usr/share/dict/words\nTo use another file: mphftest <filename>\n"))
	assert.Equal(t, 4, strings.Count(stderr, "==== Testing "))
	require.Len(t, runner.inputs, 8)
	for _, input := range runner.inputs {
		assert.Equal(t, mphftest.DefaultInput, input)
	}
}

func TestRootCmdGivenInput(t *testing.T) {
	t.Parallel()

	runner := &recordRunner{}
	stderr, err := execute(t, []string{"words.txt"}, runner)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stderr, "Using file words.txt\n\n==== Testing compute_mphf_seq "))
	assert.Equal(t, "words.txt", runner.inputs[0])
}

func TestRootCmdTooManyArgs(t *testing.T) {
	t.Parallel()

	runner := &recordRunner{}
	_, err := execute(t, []string{"a", "b"}, runner)
	require.Error(t, err)
	assert.Equal(t, 1, mphftest.ExitCode(err))
	assert.Empty(t, runner.inputs)
}

type exitStatus int

func (e exitStatus) Error() string { return "exit status" }
func (e exitStatus) ExitCode() int { return int(e) }

func TestRootCmdPropagatesExitCode(t *testing.T) {
	t.Parallel()

	runner := &recordRunner{fail: exitStatus(42)}
	_, err := execute(t, []string{"words.txt"}, runner)
	require.Error(t, err)
	assert.Equal(t, 42, mphftest.ExitCode(err))
	assert.Len(t, runner.inputs, 1)
}
