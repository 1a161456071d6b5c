package pipeline

import "github.com/askiada/gatb-devtools/pkg/pipeline/model"

type StepOption[O any] func(s *model.Step[O])

// StepConcurrency runs the step function with concurrent goroutines.
// The order of the elements is not preserved when concurrent is greater than one.
func StepConcurrency[O any](concurrent int) StepOption[O] {
	return func(s *model.Step[O]) {
		s.Details.Concurrent = concurrent
	}
}
