package annotate_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/askiada/gatb-devtools/internal/annotate"
	"github.com/askiada/gatb-devtools/pkg/pipeline/measure"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, assert.AnError
}

func TestAnnotatorRun(t *testing.T) {
	t.Parallel()

	input := "Graph.cpp: In function 'void f()':\n" +
		"plain line\n" +
		"\n" +
		"foo.o:(.text.bar+0x10): undefined reference to `" + nodeFast + "'\n" +
		"no newline at the end"

	out := &bytes.Buffer{}
	err := annotate.New(annotate.DefaultRules()).Run(testContext(t), out, strings.NewReader(input))
	require.NoError(t, err)

	expected := "Graph.cpp: " + annotate.StyleWarning.Wrap("In function") + " 'void f()':\n" +
		"plain line\n" +
		"\n" +
		annotate.StyleGreen.Wrap("foo.o:(..)") + ": " + annotate.StyleFail.Wrap("undefined reference to ") + "`" + blue("NodeFast<1>") + "'\n" +
		"no newline at the end"
	assert.Equal(t, expected, out.String())
}

func TestAnnotatorRunSeveralInputs(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := annotate.New(annotate.DefaultRules()).Run(testContext(t), out,
		strings.NewReader("first\nsecond"),
		strings.NewReader(""),
		strings.NewReader("third\n"),
	)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecondthird\n", out.String())
}

func TestAnnotatorRunLongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat(nodeFast+" ", 2000) + "\n"
	require.Greater(t, len(long), 64*1024)

	out := &bytes.Buffer{}
	err := annotate.New(annotate.DefaultRules()).Run(testContext(t), out, strings.NewReader(long))
	require.NoError(t, err)
	assert.Equal(t, 2000, strings.Count(out.String(), blue("NodeFast<1>")))
	assert.NotContains(t, out.String(), nodeFast)
}

func TestAnnotatorRunWriteError(t *testing.T) {
	t.Parallel()

	err := annotate.New(annotate.DefaultRules()).Run(testContext(t), failingWriter{}, strings.NewReader("a\nb\nc\n"))
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "write lines")
}

func TestAnnotatorRunReadError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := annotate.New(annotate.DefaultRules()).Run(testContext(t), out, strings.NewReader("a\n"), failingReader{})
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "read lines")
}

func TestAnnotatorRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	err := annotate.New(annotate.DefaultRules()).Run(ctx, io.Discard, strings.NewReader("a\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnnotatorRunLogsAndMeasures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	msr := measure.NewDefaultMeasure()
	ann := annotate.New(annotate.DefaultRules(),
		annotate.WithLogger(zap.New(core)),
		annotate.WithPipelineOptions(measure.PipelineMeasure(msr)),
	)

	err := ann.Run(testContext(t), io.Discard, strings.NewReader("a\nb\n"))
	require.NoError(t, err)

	entries := logs.FilterMessage("input done").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["lines"])

	assert.Contains(t, msr.AllMetrics(), "annotate")
	assert.Contains(t, msr.AllMetrics(), "write lines")
}

func TestAnnotatorLine(t *testing.T) {
	t.Parallel()

	ann := annotate.New(annotate.Rules{annotate.LiteralRule("long::name", annotate.StyleBold, "n")})
	assert.Equal(t, "f("+annotate.StyleBold.Wrap("n")+")", ann.Line("f(long::name)"))
	assert.Equal(t, "untouched", ann.Line("untouched"))
}
