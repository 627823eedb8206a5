package server

import "github.com/ironsheep/pixelgrid-mcp/internal/recipe"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var outputProperty = map[string]interface{}{
	"type":        "string",
	"description": "Path to write the result to. The format follows the extension. When omitted the result is returned as base64-encoded PNG.",
}

func intProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file size. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width (columns) and height (rows) of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color of the pixel at (row, col). Returns hex, RGB and HSL values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"row":  intProperty("Row index (0-based, from the top)"),
					"col":  intProperty("Column index (0-based, from the left)"),
				},
				"required": []string{"path", "row", "col"},
			},
		},
		{
			Name:        "image_region_stats",
			Description: "Per-channel minimum, maximum and mean over a rectangular region. The whole image is used when no region is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Half-open rectangle [row_start, row_end) x [col_start, col_end)",
						"properties": map[string]interface{}{
							"row_start": intProperty("First row"),
							"row_end":   intProperty("Row after the last"),
							"col_start": intProperty("First column"),
							"col_end":   intProperty("Column after the last"),
						},
					},
				},
				"required": []string{"path"},
			},
		},

		{
			Name:        "image_grid_overlay",
			Description: "Draw a grid with row,col labels over a copy of the image. Use it to read off coordinates for image_mirror_region, image_copy and recipes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels between grid lines",
						"default":     50,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label each intersection with row,col",
						"default":     true,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color of the grid lines",
						"default":     "#FF0000",
					},
					"output": outputProperty,
				},
				"required": []string{"path"},
			},
		},

		// Transforms
		{
			Name:        "image_channel",
			Description: "Apply a per-pixel channel operation to the whole image: zero or keep a single channel, negate, or grayscale.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"zero_blue", "keep_only_blue", "negate", "grayscale", "zero_channel", "keep_only_channel"},
						"description": "Channel operation to apply",
					},
					"channel": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"red", "green", "blue"},
						"description": "Channel for zero_channel and keep_only_channel",
					},
					"output": outputProperty,
				},
				"required": []string{"path", "operation"},
			},
		},
		{
			Name:        "image_mirror",
			Description: "Mirror one half of the image onto the other. vertical copies the left half onto the right; horizontal copies the top half onto the bottom; diagonal copies the upper triangle of the top-left square onto the lower.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"vertical", "vertical_right_to_left", "horizontal", "horizontal_bottom_to_top", "diagonal"},
						"description": "Mirror direction (default: vertical)",
					},
					"output": outputProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_mirror_region",
			Description: "Mirror a rectangle across an axis. With the vertical axis, columns [col_start, mirror_point) of rows [row_start, row_end) are reflected to the right of mirror_point. With the horizontal axis, rows [row_start, mirror_point) of columns [col_start, col_end) are reflected below it. Targets outside the image are skipped; the result reports how many pixels were written.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"axis": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"vertical", "horizontal"},
						"description": "Mirror axis (default: vertical)",
					},
					"row_start":    intProperty("First source row"),
					"row_end":      intProperty("Row after the last source row (vertical axis)"),
					"col_start":    intProperty("First source column"),
					"col_end":      intProperty("Column after the last source column (horizontal axis)"),
					"mirror_point": intProperty("Column (vertical axis) or row (horizontal axis) of the mirror line"),
					"output":       outputProperty,
				},
				"required": []string{"path", "mirror_point"},
			},
		},
		{
			Name:        "image_copy",
			Description: "Copy a source image onto the target with its top-left corner at (row, col). The copy is truncated at the target's edges. When row_end and col_end are given the copy is confined to the rectangle [row, row_end) x [col, col_end); giving only one of them is an error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image to copy from",
					},
					"row":     intProperty("Target row of the source's top-left pixel"),
					"col":     intProperty("Target column of the source's top-left pixel"),
					"row_end": intProperty("Optional: row after the last target row (requires col_end)"),
					"col_end": intProperty("Optional: column after the last target column (requires row_end)"),
					"output":  outputProperty,
				},
				"required": []string{"path", "source"},
			},
		},
		{
			Name:        "image_edge_detect",
			Description: "Threshold edge detection. A pixel is an edge when its color distance to the right neighbor or the neighbor below exceeds the threshold. Edges become black and everything else white (inverted when dark_edges is false). The last row and column are left unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Color distance above which a pixel is an edge (default: 50)",
					},
					"dark_edges": map[string]interface{}{
						"type":        "boolean",
						"description": "Paint edges black on white (default: true)",
					},
					"output": outputProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_transform",
			Description: "Run a sequence of operations on an image, in order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"steps": map[string]interface{}{
						"type":        "array",
						"description": "Operations to apply. Each step has an op and the parameters that op uses.",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"op": map[string]interface{}{
									"type": "string",
									"enum": recipe.Ops(),
								},
								"channel":      map[string]interface{}{"type": "string"},
								"row_start":    map[string]interface{}{"type": "integer"},
								"row_end":      map[string]interface{}{"type": "integer"},
								"col_start":    map[string]interface{}{"type": "integer"},
								"col_end":      map[string]interface{}{"type": "integer"},
								"mirror_point": map[string]interface{}{"type": "integer"},
								"source":       map[string]interface{}{"type": "string"},
								"row":          map[string]interface{}{"type": "integer"},
								"col":          map[string]interface{}{"type": "integer"},
								"threshold":    map[string]interface{}{"type": "number"},
								"dark_edges":   map[string]interface{}{"type": "boolean"},
							},
							"required": []string{"op"},
						},
					},
					"output": outputProperty,
				},
				"required": []string{"path", "steps"},
			},
		},

		// Composition
		{
			Name:        "image_collage",
			Description: "Place layer images onto a base image or a blank canvas in order (later layers win), then mirror the result left to right. Each layer may first have parameterless operations applied to it, e.g. zero_blue.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Base image. Omit and give canvas for a blank base.",
					},
					"canvas": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"width":  intProperty("Canvas width in pixels"),
							"height": intProperty("Canvas height in pixels"),
							"background": map[string]interface{}{
								"type":        "string",
								"description": "Hex background color (default: #FFFFFF)",
							},
						},
						"required": []string{"width", "height"},
					},
					"layers": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"path": pathProperty,
								"row":  intProperty("Target row of the layer's top-left pixel"),
								"col":  intProperty("Target column of the layer's top-left pixel"),
								"ops": map[string]interface{}{
									"type":  "array",
									"items": map[string]interface{}{"type": "string"},
								},
							},
							"required": []string{"path"},
						},
					},
					"mirror": map[string]interface{}{
						"type":        "boolean",
						"description": "Mirror the composed result left to right (default: true)",
					},
					"output": outputProperty,
				},
				"required": []string{"layers"},
			},
		},
		{
			Name:        "image_apply_recipe",
			Description: "Run a TOML recipe file describing a base image, collage layers and a sequence of operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"recipe_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the recipe file",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Overrides the recipe's output path",
					},
				},
				"required": []string{"recipe_path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
