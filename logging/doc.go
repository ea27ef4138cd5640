// Package logging builds the structured logger used across the module.
//
// The logging API is github.com/go-logr/logr. Solvers accept a
// logr.Logger and log at three verbosities: 0 (run summaries), DEBUG
// (incumbent improvements, seeding) and TRACE (per-state events). New
// returns a zap-backed implementation via zapr; callers embedding the
// solver elsewhere may pass any logr.Logger instead.
package logging
