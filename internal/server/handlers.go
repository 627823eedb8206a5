package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
	"github.com/ironsheep/pixelgrid-mcp/internal/picture"
	"github.com/ironsheep/pixelgrid-mcp/internal/recipe"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_mirror").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// TransformResult is returned by every tool that modifies an image.
//
// When the call names an output path the image is written there and
// Image is omitted; otherwise the result carries the image as base64 PNG.
type TransformResult struct {
	Width  int                   `json:"width"`
	Height int                   `json:"height"`
	Output string                `json:"output,omitempty"`
	Steps  []recipe.StepResult   `json:"steps"`
	Image  *picture.EncodedImage `json:"image,omitempty"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Builds recipe steps for the requested operation
//  4. Runs them on a fresh copy of the cached image
//  5. Saves or encodes the result
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_region_stats":
		return s.handleImageRegionStats(args)
	case "image_grid_overlay":
		return s.handleImageGridOverlay(args)

	// Transforms
	case "image_channel":
		return s.handleImageChannel(args)
	case "image_mirror":
		return s.handleImageMirror(args)
	case "image_mirror_region":
		return s.handleImageMirrorRegion(args)
	case "image_copy":
		return s.handleImageCopy(args)
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)
	case "image_transform":
		return s.handleImageTransform(args)

	// Composition
	case "image_collage":
		return s.handleImageCollage(args)
	case "image_apply_recipe":
		return s.handleImageApplyRecipe(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// runSteps applies steps to a copy of the image at path and finishes the
// result.
func (s *Server) runSteps(path, output string, steps []recipe.Step) (*TransformResult, error) {
	pic, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}

	results := make([]recipe.StepResult, 0, len(steps))
	for i := range steps {
		res, err := steps[i].Apply(pic, s.cache)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return s.finish(pic, output, results)
}

// finish writes pic to output, or encodes it when output is empty.
func (s *Server) finish(pic *picture.Picture, output string, steps []recipe.StepResult) (*TransformResult, error) {
	result := &TransformResult{
		Width:  pic.Width(),
		Height: pic.Height(),
		Output: output,
		Steps:  steps,
	}

	if output != "" {
		if err := pic.Save(output); err != nil {
			return nil, err
		}
		// a later call reading output must see the new file
		s.cache.Evict(output)
		s.logger.Debug("image written", "path", output)
		return result, nil
	}

	enc, err := pic.Encode()
	if err != nil {
		return nil, err
	}
	result.Image = enc
	return result, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.cache.LoadInfo(a.Path)
}

// DimensionsResult contains the size of an image in grid terms.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	info, err := s.cache.LoadInfo(a.Path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{Width: info.Width, Height: info.Height}, nil
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return picture.SampleColor(pic, a.Row, a.Col)
}

type imageRegionStatsArgs struct {
	Path   string       `json:"path"`
	Region *grid.Region `json:"region,omitempty"`
}

func (s *Server) handleImageRegionStats(args json.RawMessage) (interface{}, error) {
	var a imageRegionStatsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	step := recipe.Step{Op: "stats"}
	if a.Region != nil {
		step.RowStart, step.RowEnd = a.Region.RowStart, a.Region.RowEnd
		step.ColStart, step.ColEnd = a.Region.ColStart, a.Region.ColEnd
	}

	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res, err := step.Apply(pic, nil)
	if err != nil {
		return nil, err
	}
	return res.Stats, nil
}

type imageGridOverlayArgs struct {
	Path            string `json:"path"`
	GridSpacing     int    `json:"grid_spacing"`
	ShowCoordinates *bool  `json:"show_coordinates"`
	GridColor       string `json:"grid_color"`
	Output          string `json:"output"`
}

func (s *Server) handleImageGridOverlay(args json.RawMessage) (interface{}, error) {
	var a imageGridOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	// Apply defaults
	if a.GridSpacing == 0 {
		a.GridSpacing = 50
	}
	labeled := true
	if a.ShowCoordinates != nil {
		labeled = *a.ShowCoordinates
	}
	if a.GridColor == "" {
		a.GridColor = "#FF0000"
	}
	line, err := picture.ParseColor(a.GridColor)
	if err != nil {
		return nil, err
	}

	pic, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	n, err := picture.Overlay(pic, a.GridSpacing, labeled, line)
	if err != nil {
		return nil, err
	}
	return s.finish(pic, a.Output, []recipe.StepResult{{Op: "grid_overlay", Count: n}})
}

// === Transform Handlers ===

type imageChannelArgs struct {
	Path      string `json:"path"`
	Operation string `json:"operation"`
	Channel   string `json:"channel"`
	Output    string `json:"output"`
}

func (s *Server) handleImageChannel(args json.RawMessage) (interface{}, error) {
	var a imageChannelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	switch a.Operation {
	case "zero_blue", "keep_only_blue", "negate", "grayscale", "zero_channel", "keep_only_channel":
	default:
		return nil, fmt.Errorf("unknown channel operation: %s", a.Operation)
	}
	return s.runSteps(a.Path, a.Output, []recipe.Step{{Op: a.Operation, Channel: a.Channel}})
}

type imageMirrorArgs struct {
	Path      string `json:"path"`
	Direction string `json:"direction"`
	Output    string `json:"output"`
}

func (s *Server) handleImageMirror(args json.RawMessage) (interface{}, error) {
	var a imageMirrorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Direction == "" {
		a.Direction = "vertical"
	}
	switch a.Direction {
	case "vertical", "vertical_right_to_left", "horizontal", "horizontal_bottom_to_top", "diagonal":
	default:
		return nil, fmt.Errorf("unknown mirror direction: %s", a.Direction)
	}
	return s.runSteps(a.Path, a.Output, []recipe.Step{{Op: "mirror_" + a.Direction}})
}

type imageMirrorRegionArgs struct {
	Path        string `json:"path"`
	Axis        string `json:"axis"`
	RowStart    int    `json:"row_start"`
	RowEnd      int    `json:"row_end"`
	ColStart    int    `json:"col_start"`
	ColEnd      int    `json:"col_end"`
	MirrorPoint int    `json:"mirror_point"`
	Output      string `json:"output"`
}

func (s *Server) handleImageMirrorRegion(args json.RawMessage) (interface{}, error) {
	var a imageMirrorRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	step := recipe.Step{
		RowStart:    a.RowStart,
		RowEnd:      a.RowEnd,
		ColStart:    a.ColStart,
		ColEnd:      a.ColEnd,
		MirrorPoint: a.MirrorPoint,
	}
	switch a.Axis {
	case "", "vertical":
		step.Op = "mirror_region"
	case "horizontal":
		step.Op = "mirror_region_horizontal"
	default:
		return nil, fmt.Errorf("unknown mirror axis: %s", a.Axis)
	}
	return s.runSteps(a.Path, a.Output, []recipe.Step{step})
}

type imageCopyArgs struct {
	Path   string `json:"path"`
	Source string `json:"source"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	RowEnd int    `json:"row_end"`
	ColEnd int    `json:"col_end"`
	Output string `json:"output"`
}

func (s *Server) handleImageCopy(args json.RawMessage) (interface{}, error) {
	var a imageCopyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	step := recipe.Step{Op: "copy", Source: a.Source, Row: a.Row, Col: a.Col}
	if (a.RowEnd > 0) != (a.ColEnd > 0) {
		missing := "row_end"
		if a.RowEnd > 0 {
			missing = "col_end"
		}
		return nil, fmt.Errorf("image_copy: %s is required when the other end of the rectangle is given", missing)
	}
	if a.RowEnd > 0 {
		step = recipe.Step{
			Op:       "copy_region",
			Source:   a.Source,
			RowStart: a.Row,
			RowEnd:   a.RowEnd,
			ColStart: a.Col,
			ColEnd:   a.ColEnd,
		}
	}
	return s.runSteps(a.Path, a.Output, []recipe.Step{step})
}

type imageEdgeDetectArgs struct {
	Path      string   `json:"path"`
	Threshold *float64 `json:"threshold"`
	DarkEdges *bool    `json:"dark_edges"`
	Output    string   `json:"output"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a imageEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	step := recipe.Step{Op: "edge_detect", Threshold: a.Threshold, DarkEdges: a.DarkEdges}
	return s.runSteps(a.Path, a.Output, []recipe.Step{step})
}

type imageTransformArgs struct {
	Path   string        `json:"path"`
	Steps  []recipe.Step `json:"steps"`
	Output string        `json:"output"`
}

func (s *Server) handleImageTransform(args json.RawMessage) (interface{}, error) {
	var a imageTransformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	for i := range a.Steps {
		if err := a.Steps[i].Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return s.runSteps(a.Path, a.Output, a.Steps)
}

// === Composition Handlers ===

type imageCollageArgs struct {
	Path   string `json:"path"`
	Canvas *struct {
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		Background string `json:"background"`
	} `json:"canvas,omitempty"`
	Layers []struct {
		Path string   `json:"path"`
		Row  int      `json:"row"`
		Col  int      `json:"col"`
		Ops  []string `json:"ops"`
	} `json:"layers"`
	Mirror *bool  `json:"mirror"`
	Output string `json:"output"`
}

func (s *Server) handleImageCollage(args json.RawMessage) (interface{}, error) {
	var a imageCollageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	r := &recipe.Recipe{Input: a.Path, Output: a.Output, Collage: true}
	if a.Mirror != nil {
		r.Collage = *a.Mirror
	}
	if a.Canvas != nil {
		r.Canvas = &recipe.Canvas{Width: a.Canvas.Width, Height: a.Canvas.Height, Background: a.Canvas.Background}
	}
	for _, l := range a.Layers {
		r.Layers = append(r.Layers, recipe.Layer{Path: l.Path, Row: l.Row, Col: l.Col, Ops: l.Ops})
	}

	return s.runRecipe(r)
}

type imageApplyRecipeArgs struct {
	RecipePath string `json:"recipe_path"`
	Output     string `json:"output"`
}

func (s *Server) handleImageApplyRecipe(args json.RawMessage) (interface{}, error) {
	var a imageApplyRecipeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	r, err := recipe.Load(a.RecipePath)
	if err != nil {
		return nil, err
	}
	if a.Output != "" {
		r.Output = a.Output
	}
	return s.runRecipe(r)
}

func (s *Server) runRecipe(r *recipe.Recipe) (*TransformResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	res, err := r.Run(context.Background(), s.cache, s.logger)
	if err != nil {
		return nil, err
	}
	return s.finish(res.Picture, r.Output, res.Steps)
}
