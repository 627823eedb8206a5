// Package picture owns pixel storage for the transform engine.
//
// A Picture wraps an *image.NRGBA and implements grid.Grid, so every
// transform can run directly on a decoded file. Pictures are created from
// files, from any image.Image, or as a blank canvas, and are written back
// with Save or as a base64-encoded PNG.
//
// # Coordinate System
//
// Grid coordinates are (row, col) with (0,0) at the top-left pixel. Row maps
// to image Y and col to image X. Pictures always start at image origin
// (0,0) regardless of the bounds of the image they were built from.
//
// # Alpha
//
// Transforms only see RGB. Writing a color leaves the alpha of the target
// pixel unchanged.
//
// # Thread Safety
//
// Cache is safe for concurrent use and hands out independent copies, so a
// transform never mutates the cached image. A single Picture must not be
// transformed by two goroutines at once, except where the transform
// itself splits disjoint rows.
package picture
