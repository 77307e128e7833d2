// Package pipeline drives the per-file rename loop: context building,
// template expansion, time formatting, destination resolution, collision
// checking, and the move itself, with batch accounting for the exit code.
package pipeline
