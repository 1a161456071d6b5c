package mphftest

import (
	"context"
	"io"
	"os/exec"
)

// Runner starts a program and waits for it.
type Runner interface {
	// Run executes name with args from dir. A non-zero exit status is an error.
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs programs as child processes sharing the given outputs.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	return cmd.Run()
}

var _ Runner = ExecRunner{}
