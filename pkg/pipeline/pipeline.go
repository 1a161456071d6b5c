package pipeline

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/gatb-devtools/pkg/pipeline/model"
)

// Pipeline is a pipeline of steps.
type Pipeline struct {
	ctx       context.Context
	cancel    context.CancelFunc
	errcList  *errorChans
	opts      []model.PipelineOption
	startTime time.Time
	goFn      []func(ctx context.Context)
	started   atomic.Bool
}

// New creates a new pipeline. Every step stops as soon as ctx is done.
func New(ctx context.Context, opts ...model.PipelineOption) (*Pipeline, error) {
	dCtx, cancel := context.WithCancel(ctx)
	pipe := &Pipeline{
		ctx:       dCtx,
		cancel:    cancel,
		errcList:  &errorChans{},
		startTime: time.Now(),
		opts:      opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			cancel()

			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// waitForPipeline waits for results from all error channels.
// The first error cancels the pipeline, the following ones are drained and dropped.
func waitForPipeline(cancel context.CancelFunc, errs ...*errorChan) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}

	return first
}

// Run starts every step and waits for the pipeline to finish.
// It returns the first error raised by a step.
func (p *Pipeline) Run() error {
	if !p.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer p.cancel()

	if err := p.ctx.Err(); err != nil {
		return errors.Wrap(err, "pipeline context done")
	}

	p.startTime = time.Now()
	for _, fn := range p.goFn {
		go fn(p.ctx)
	}

	err := waitForPipeline(p.cancel, p.errcList.list...)
	if err != nil {
		return err
	}

	return p.finishRun()
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}

// schedule registers a step goroutine. The goroutine closes errC once fn returns.
func (p *Pipeline) schedule(name string, fn func(ctx context.Context) error, onDone func()) {
	errC := make(chan error, 1)
	p.errcList.add(newErrorChan(name, errC))
	p.goFn = append(p.goFn, func(ctx context.Context) {
		defer func() {
			if onDone != nil {
				onDone()
			}
			close(errC)
		}()
		err := fn(ctx)
		if err != nil {
			errC <- err
		}
	})
}
