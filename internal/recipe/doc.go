// Package recipe applies sequences of grid transforms described in TOML.
//
// A recipe names a base picture (an input file or a blank canvas), optional
// collage layers copied onto it in order, and a list of steps. Each step is
// one transform operation with its parameters, so image-specific
// coordinates such as the bounds of a mirrored feature live in the recipe
// rather than in code.
//
//	input = "snowman.jpg"
//	output = "snowman-four-arms.png"
//
//	[[steps]]
//	op = "mirror_region_horizontal"
//	col_start = 103
//	col_end = 170
//	row_start = 158
//	mirror_point = 200
//
// Step is also the dispatch table used by the MCP server, so every
// operation available to a recipe is available as a tool and vice versa.
package recipe
