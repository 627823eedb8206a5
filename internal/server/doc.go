// Package server implements the MCP (Model Context Protocol) server for the
// pixel-grid transforms.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Diagnostics go to the injected logger, never to stdout.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at (row, col)
//   - image_region_stats: Per-channel min, max and mean over a region
//   - image_grid_overlay: Draw labeled row/col grid lines for reading coordinates
//
// Transforms:
//   - image_channel: zero_blue, keep_only_blue, negate, grayscale and friends
//   - image_mirror: Whole-image mirrors
//   - image_mirror_region: Mirror a rectangle across a column or row
//   - image_copy: Copy another image onto this one
//   - image_edge_detect: Threshold edge detection
//   - image_transform: Run a list of operations
//
// Composition:
//   - image_collage: Place layers on a base or canvas, then mirror
//   - image_apply_recipe: Run a TOML recipe file
//
// Transform tools write the result to "output" when it is given and return
// it as base64 PNG otherwise. The source file is never modified unless it
// is also the output.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process. Every
// call works on its own copy, so a transform never leaks into the next call.
// Writing an output evicts that path from the cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
