package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/gatb-devtools/pkg/pipeline/model"
)

// AddRootStep adds the step feeding the pipeline. stepFn must stop sending to rootChan once ctx is done.
func AddRootStep[O any](p *Pipeline, name string, stepFn func(ctx context.Context, rootChan chan<- O) error) (*model.Step[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	step := &model.Step[O]{
		Details: &model.StepInfo{
			Type:       model.RootStepType,
			Name:       name,
			Concurrent: 1,
		},
		Output: make(chan O),
	}
	for _, opt := range p.opts {
		err := opt.PrepareStep(model.StartStep.Details, step.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before step function")
		}
	}

	p.schedule(name, func(ctx context.Context) error {
		return stepFn(ctx, step.Output)
	}, func() { close(step.Output) })

	return step, nil
}
