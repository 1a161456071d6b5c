// Package model provides the data structures shared by the pipeline package and its options.
// It defines the steps of a pipeline, their details, and the hooks an option can implement.
package model
