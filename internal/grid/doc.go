// Package grid defines the pixel-grid contract shared by every transform.
//
// A Grid is a fixed-size, row-major, zero-indexed arrangement of RGB
// colors. Rows run from 0 (top) to Height()-1 and columns from 0 (left)
// to Width()-1. Dimensions never change after construction.
//
// # Bounds
//
// Accessing a cell outside the grid is a programming error: At and Set
// panic with a *BoundsError, the same way an out-of-range slice index
// panics. Functions that accept caller-supplied coordinates validate them
// up front and return the *BoundsError instead.
//
// # Colors
//
// Channels are 8-bit, so every Color is in range by construction. Code
// operating on grids never needs to clamp.
package grid
