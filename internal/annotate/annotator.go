package annotate

import (
	"bufio"
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/gatb-devtools/pkg/pipeline"
	"github.com/askiada/gatb-devtools/pkg/pipeline/model"
)

// Annotator streams lines through a fixed set of rules.
type Annotator struct {
	rules    Rules
	logger   *zap.Logger
	pipeOpts []model.PipelineOption
}

// Option configures an Annotator.
type Option func(a *Annotator)

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Annotator) {
		a.logger = logger
	}
}

// WithPipelineOptions registers options on the pipeline built by Run.
func WithPipelineOptions(opts ...model.PipelineOption) Option {
	return func(a *Annotator) {
		a.pipeOpts = append(a.pipeOpts, opts...)
	}
}

// New creates an annotator applying rules in order.
func New(rules Rules, opts ...Option) *Annotator {
	a := &Annotator{
		rules:  rules,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Line rewrites a single line. Text matching no rule is returned unchanged.
func (a *Annotator) Line(line string) string {
	return a.rules.Apply(line)
}

// Run reads every input in turn and writes each rewritten line to w as soon as it is read.
// Line terminators are kept as they are, including a missing one at the end of an input.
func (a *Annotator) Run(ctx context.Context, w io.Writer, inputs ...io.Reader) error {
	pipe, err := pipeline.New(ctx, a.pipeOpts...)
	if err != nil {
		return errors.Wrap(err, "unable to create pipeline")
	}

	lines, err := pipeline.AddRootStep(pipe, "read lines", func(ctx context.Context, rootChan chan<- string) error {
		for i, input := range inputs {
			err := a.readLines(ctx, i, input, rootChan)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "unable to add read step")
	}

	annotated, err := pipeline.AddStepOneToOne(pipe, "annotate", lines, func(_ context.Context, line string) (string, error) {
		return a.Line(line), nil
	})
	if err != nil {
		return errors.Wrap(err, "unable to add annotate step")
	}

	err = pipeline.AddSink(pipe, "write lines", annotated, func(_ context.Context, line string) error {
		_, err := io.WriteString(w, line)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "unable to add write step")
	}

	return pipe.Run()
}

func (a *Annotator) readLines(ctx context.Context, idx int, input io.Reader, rootChan chan<- string) error {
	reader := bufio.NewReader(input)
	total := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- line:
				total++
			}
		}
		if errors.Is(err, io.EOF) {
			a.logger.Debug("input done", zap.Int("input", idx), zap.Int("lines", total))

			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "unable to read input %d", idx)
		}
	}
}
