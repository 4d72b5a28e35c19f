// Package timetable implements the weekly scheduling engine: a 7x48
// occupancy grid, an immutable constraint-descriptor model with pure
// penalty kernels, an indexed constraint store with weighted random
// selection, and the hill-climbing search that drives a grid from
// empty toward a low-penalty assignment.
//
// The package is single-threaded by design: a Grid, a ConstraintStore,
// and the Climber that drives them are meant to live on one goroutine
// for the lifetime of one search. Nothing here blocks or yields.
package timetable
