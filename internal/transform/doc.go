// Package transform implements in-place pixel-grid transformations.
//
// Every function mutates the grid(s) it is handed and never allocates,
// resizes or retains a grid. Operations fall into five families:
//   - Channel operations: ZeroBlue, KeepOnlyBlue, Negate, Grayscale and the
//     per-channel generalizations ZeroChannel and KeepOnlyChannel.
//   - Mirrors: one-directional reflective copies across the vertical,
//     horizontal or main-diagonal axis, plus caller-bounded region mirrors.
//   - Copy and composition: truncating copies of one grid into another and
//     ordered placement sequences (Compose, Collage).
//   - Edge detection: threshold classification against the right and lower
//     neighbours.
//   - Region statistics: per-channel min, max and mean.
//
// # Mirrors Are Not Swaps
//
// A mirror copies one half onto the other. The source half is the only half
// ever read, so no cell is read after it has been overwritten in the same
// pass.
//
// # Bounds
//
// Whole-grid operations never leave the grid. Operations taking caller
// coordinates validate them before writing anything and return a
// *grid.BoundsError on failure. Copies that run off the edge of the
// destination are truncated, which is not an error.
//
// # Concurrency
//
// Channel operations split rows across goroutines; everything else runs on
// the calling goroutine. Callers must not run two operations on the same
// grid at once.
package transform
