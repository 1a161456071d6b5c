// Package pipeline provides a pipeline for processing data.
//
// The pipeline package offers a convenient way to process data using a series of steps. A root step emits
// elements, intermediate steps transform them and a sink consumes them. Each step runs in its own goroutine and
// steps are connected by unbuffered channels, so with the default concurrency of one every element flows
// through the pipeline in the order the root step emitted it.
//
// The pipeline stops on the first encountered error: the shared context is cancelled, every step returns, and
// Run reports the error decorated with the name of the step that failed.
//
// Options implementing model.PipelineOption observe the lifecycle of the pipeline. The measure and drawer
// sub-packages use these hooks to time every step and to render the pipeline as a graph.
package pipeline
