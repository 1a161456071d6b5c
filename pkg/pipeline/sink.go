package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/gatb-devtools/pkg/pipeline/model"
)

func prepareSink[I any](p *Pipeline, name string, input *model.Step[I]) (*model.StepInfo, error) {
	details := &model.StepInfo{
		Type:       model.SinkStepType,
		Name:       name,
		Concurrent: 1,
	}
	for _, opt := range p.opts {
		err := opt.PrepareSink(input.Details, details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before sink function")
		}
	}

	return details, nil
}

func runSink[I any](ctx context.Context, p *Pipeline, input *model.Step[I], details *model.StepInfo, sinkFn func(ctx context.Context, input I) error) error {
	for {
		startInputChan := time.Now()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-input.Output:
			if !ok {
				return nil
			}
			startFn := time.Now()
			err := sinkFn(ctx, in)
			if err != nil {
				return err
			}
			endFn := time.Since(startFn)
			for _, opt := range p.opts {
				err := opt.OnSinkOutput(input.Details, details, time.Since(startInputChan), endFn)
				if err != nil {
					return errors.Wrap(err, "unable to run on sink output function")
				}
			}
		}
	}
}

// AddSink adds the last step of the pipeline. sinkFn is called once per element, one element at a time.
func AddSink[I any](p *Pipeline, name string, input *model.Step[I], sinkFn func(ctx context.Context, input I) error) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}
	if input == nil {
		return ErrInputMustBeSet
	}
	details, err := prepareSink(p, name, input)
	if err != nil {
		return err
	}

	p.schedule(name, func(ctx context.Context) error {
		err := runSink(ctx, p, input, details, sinkFn)
		if err != nil {
			return err
		}
		for _, opt := range p.opts {
			err := opt.AfterSink(details, time.Since(p.startTime))
			if err != nil {
				return errors.Wrap(err, "unable to run after sink function")
			}
		}

		return nil
	}, nil)

	return nil
}
