// Package mphftest runs the end to end checks of the minimal perfect hash function tools.
//
// Every stage builds an MPHF from a word list with one of the construction programs, verifies it with the
// matching test program and removes the artifact before the next stage writes it again. The first failure
// stops the run.
package mphftest
