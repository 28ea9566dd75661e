package model

import (
	"io"
	"time"
)

// BuildResult is the outcome of one collaborator process that launched.
type BuildResult int

const (
	// Success means the process exited with status 0.
	Success BuildResult = iota
	// Failure means the process exited with a nonzero status.
	Failure
)

// Succeeded reports whether the result is Success.
func (r BuildResult) Succeeded() bool {
	return r == Success
}

// String returns a readable label.
func (r BuildResult) String() string {
	if r == Success {
		return "success"
	}

	return "failure"
}

// Command describes one collaborator invocation.
type Command struct {
	Name string
	Args []string
	Dir  Path
	// Env holds extra KEY=VALUE entries appended to the parent environment.
	Env []string
	// Output receives stdout and stderr merged. Nil discards output.
	Output io.Writer
}

// IterationStatus is the terse outcome of one campaign iteration.
type IterationStatus string

const (
	// StatusPass means the batch validated and was committed.
	StatusPass IterationStatus = "PASS"
	// StatusFail means validation failed and the batch was reverted.
	StatusFail IterationStatus = "FAIL"
	// StatusError means a collaborator could not run and the batch was reverted.
	StatusError IterationStatus = "ERROR"
)

// Iteration records what happened in one campaign iteration.
type Iteration struct {
	Number   int
	Batch    []Mutation
	Status   IterationStatus
	Duration time.Duration
}
