package mphftest

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/gatb-devtools/pkg/pipeline"
	"github.com/askiada/gatb-devtools/pkg/pipeline/model"
)

// Driver runs the stages one after the other.
type Driver struct {
	input    string
	dir      string
	artifact string
	stages   []Stage
	runner   Runner
	remove   func(name string) error
	diag     io.Writer
	logger   *zap.Logger
	pipeOpts []model.PipelineOption
}

// Option configures a Driver.
type Option func(d *Driver)

// WithDir sets the directory holding the programs. Programs run from it and the artifact is written in it.
func WithDir(dir string) Option {
	return func(d *Driver) {
		d.dir = dir
	}
}

// WithStages replaces DefaultStages.
func WithStages(stages ...Stage) Option {
	return func(d *Driver) {
		d.stages = stages
	}
}

// WithArtifact replaces DefaultArtifact.
func WithArtifact(name string) Option {
	return func(d *Driver) {
		d.artifact = name
	}
}

// WithRunner replaces the ExecRunner writing to stdout and stderr.
func WithRunner(runner Runner) Option {
	return func(d *Driver) {
		d.runner = runner
	}
}

// WithRemover replaces os.Remove for the artifact cleanup.
func WithRemover(remove func(name string) error) Option {
	return func(d *Driver) {
		d.remove = remove
	}
}

// WithDiagnostics sets where the stage separators are written. Defaults to stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(d *Driver) {
		d.diag = w
	}
}

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithPipelineOptions registers options on the pipeline built by Run.
func WithPipelineOptions(opts ...model.PipelineOption) Option {
	return func(d *Driver) {
		d.pipeOpts = append(d.pipeOpts, opts...)
	}
}

// New creates a driver checking every stage against the word list input.
func New(input string, opts ...Option) *Driver {
	d := &Driver{
		input:    input,
		dir:      ".",
		artifact: DefaultArtifact,
		stages:   DefaultStages(),
		runner:   ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr},
		remove:   os.Remove,
		diag:     os.Stderr,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run executes the stages in order and stops at the first failure.
// No stage starts before the previous one removed its artifact.
func (d *Driver) Run(ctx context.Context) error {
	pipe, err := pipeline.New(ctx, d.pipeOpts...)
	if err != nil {
		return errors.Wrap(err, "unable to create pipeline")
	}

	stages, err := pipeline.AddRootStep(pipe, "stages", func(ctx context.Context, rootChan chan<- Stage) error {
		for _, stage := range d.stages {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- stage:
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "unable to add stages step")
	}

	err = pipeline.AddSink(pipe, "run stage", stages, d.runStage)
	if err != nil {
		return errors.Wrap(err, "unable to add run stage step")
	}

	return pipe.Run()
}

func (d *Driver) runStage(ctx context.Context, stage Stage) error {
	fmt.Fprintf(d.diag, "\n==== Testing %s %s\n", stage.Builder, strings.Repeat("=", 40))

	err := d.exec(ctx, stage.Builder, d.input, d.artifact)
	if err != nil {
		return &StageError{Stage: stage, Step: StepBuild, Err: err}
	}

	err = d.exec(ctx, stage.Checker, d.input, d.artifact, CheckFlag)
	if err != nil {
		return &StageError{Stage: stage, Step: StepCheck, Err: err}
	}

	err = d.cleanup()
	if err != nil {
		return &StageError{Stage: stage, Step: StepCleanup, Err: err}
	}

	return nil
}

func (d *Driver) exec(ctx context.Context, program string, args ...string) error {
	name := "." + string(filepath.Separator) + program
	d.logger.Debug("running program", zap.String("dir", d.dir), zap.String("program", name), zap.Strings("args", args))

	return d.runner.Run(ctx, d.dir, name, args...)
}

// cleanup removes the artifact. An artifact that is already gone, for instance
// because the checker removed it, is only worth a warning.
func (d *Driver) cleanup() error {
	path := filepath.Join(d.dir, d.artifact)

	err := d.remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		d.logger.Warn("artifact already removed", zap.String("artifact", path))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "unable to remove artifact")
	}

	return nil
}

// Advise writes which word list is used to w and returns it.
// args are the positional arguments of prog: none for DefaultInput, or one path.
func Advise(w io.Writer, prog string, args []string) (string, error) {
	switch len(args) {
	case 0:
		fmt.Fprintf(w, "Using default file %s\n", DefaultInput)
		fmt.Fprintf(w, "To use another file: %s <filename>\n", prog)

		return DefaultInput, nil
	case 1:
		fmt.Fprintf(w, "Using file %s\n", args[0])

		return args[0], nil
	default:
		return "", errors.Wrapf(ErrTooManyArgs, "expected at most one word list, got %d", len(args))
	}
}
