package mphftest

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrTooManyArgs = errors.New("too many arguments")

// StageError reports the stage and the step that stopped a run.
type StageError struct {
	Stage Stage
	Step  StageStep
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s step of %s failed: %v", e.Step, e.Stage.Builder, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type exitCoder interface {
	ExitCode() int
}

// ExitCode maps the error returned by Driver.Run to a process exit status.
// A program exiting with a non-zero status hands its status over, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var coder exitCoder
	if errors.As(err, &coder) && coder.ExitCode() > 0 {
		return coder.ExitCode()
	}

	return 1
}
