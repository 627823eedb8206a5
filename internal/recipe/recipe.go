package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
	"github.com/ironsheep/pixelgrid-mcp/internal/picture"
	"github.com/ironsheep/pixelgrid-mcp/internal/transform"
)

// Recipe describes a base picture and the transforms applied to it.
type Recipe struct {
	// Input is the base image. Exactly one of Input and Canvas is set.
	Input  string  `toml:"input"`
	Canvas *Canvas `toml:"canvas"`

	// Output is where the result is written. Empty means the caller decides.
	Output string `toml:"output"`

	// Layers are copied onto the base in order before any step runs.
	Layers []Layer `toml:"layers"`

	// Collage mirrors the composed layers left to right.
	Collage bool `toml:"collage"`

	Steps []Step `toml:"steps"`
}

// Canvas is a blank base picture.
type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"` // hex, defaults to white
}

// Layer places an image on the base with its top-left corner at (Row, Col).
// Ops are channel operations applied to a copy of the layer image first.
type Layer struct {
	Path string   `toml:"path"`
	Row  int      `toml:"row"`
	Col  int      `toml:"col"`
	Ops  []string `toml:"ops"`
}

// Result is the outcome of Run.
type Result struct {
	Picture *picture.Picture `json:"-"`
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	Output  string           `json:"output,omitempty"`
	Layered int              `json:"layered"` // cells written by layers
	Steps   []StepResult     `json:"steps"`
}

// Parse decodes a TOML recipe and validates it. Unknown keys are rejected
// so that a misspelled coordinate does not silently default to 0.
func Parse(data string) (*Recipe, error) {
	var r Recipe
	md, err := toml.Decode(data, &r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown recipe keys: %s", strings.Join(keys, ", "))
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Load reads and parses the recipe file at path.
func Load(path string) (*Recipe, error) {
	var r Recipe
	md, err := toml.DecodeFile(path, &r)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("recipe %s: unknown key %s", path, undecoded[0])
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("recipe %s: %w", path, err)
	}
	return &r, nil
}

// Validate checks the recipe without touching any file.
func (r *Recipe) Validate() error {
	switch {
	case r.Input == "" && r.Canvas == nil:
		return fmt.Errorf("recipe needs either input or [canvas]")
	case r.Input != "" && r.Canvas != nil:
		return fmt.Errorf("recipe cannot have both input and [canvas]")
	}

	if c := r.Canvas; c != nil {
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("canvas must have positive size, got %dx%d", c.Width, c.Height)
		}
		if c.Background != "" {
			if _, err := picture.ParseColor(c.Background); err != nil {
				return fmt.Errorf("canvas background: %w", err)
			}
		}
	}

	for i, l := range r.Layers {
		if l.Path == "" {
			return fmt.Errorf("layer %d: path is required", i)
		}
		for _, op := range l.Ops {
			if !layerOp(op) {
				return fmt.Errorf("layer %d: unsupported op %q", i, op)
			}
		}
	}

	for i := range r.Steps {
		if err := r.Steps[i].Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// layerOp reports whether op may be applied to a layer: only operations
// that need no parameters and no other picture.
func layerOp(op string) bool {
	switch op {
	case "zero_blue", "keep_only_blue", "negate", "grayscale",
		"mirror_vertical", "mirror_vertical_right_to_left",
		"mirror_horizontal", "mirror_horizontal_bottom_to_top", "mirror_diagonal":
		return true
	}
	return false
}

// Run builds the base picture, applies layers and steps in order, and
// returns the result. It does not write Output; see Result.Picture.
//
// Run stops at the first failing step. A clipped layer is not an error and
// is reported at warn level.
func (r *Recipe) Run(ctx context.Context, l Loader, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}

	base, err := r.base(l)
	if err != nil {
		return nil, err
	}
	logger.Debug("base picture ready", "height", base.Height(), "width", base.Width())

	res := &Result{Picture: base, Output: r.Output, Width: base.Width(), Height: base.Height()}

	if len(r.Layers) > 0 {
		placements := make([]transform.Placement, 0, len(r.Layers))
		for i, layer := range r.Layers {
			src, err := r.layer(layer, l)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
			if layer.Row+src.Height() > base.Height() || layer.Col+src.Width() > base.Width() {
				logger.Warn("layer clipped to base", "layer", i, "path", layer.Path,
					"row", layer.Row, "col", layer.Col, "height", src.Height(), "width", src.Width())
			}
			placements = append(placements, transform.Placement{Source: src, Row: layer.Row, Col: layer.Col})
		}

		compose := transform.Compose
		if r.Collage {
			compose = transform.Collage
		}
		n, err := compose(base, placements)
		if err != nil {
			return nil, fmt.Errorf("layers: %w", err)
		}
		res.Layered = n
		logger.Debug("layers applied", "count", len(placements), "cells", n)
	}

	for i := range r.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		step := &r.Steps[i]
		sr, err := step.Apply(base, l)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		logger.Debug("step applied", "index", i, "op", sr.Op, "count", sr.Count)
		res.Steps = append(res.Steps, *sr)
	}

	return res, nil
}

func (r *Recipe) base(l Loader) (*picture.Picture, error) {
	if r.Canvas != nil {
		bg := grid.White
		if r.Canvas.Background != "" {
			c, err := picture.ParseColor(r.Canvas.Background)
			if err != nil {
				return nil, err
			}
			bg = c
		}
		return picture.New(r.Canvas.Height, r.Canvas.Width, bg), nil
	}
	if l == nil {
		return nil, fmt.Errorf("no loader available for input %s", r.Input)
	}
	return l.Load(r.Input)
}

func (r *Recipe) layer(layer Layer, l Loader) (*picture.Picture, error) {
	if l == nil {
		return nil, fmt.Errorf("no loader available for layer %s", layer.Path)
	}
	src, err := l.Load(layer.Path)
	if err != nil {
		return nil, err
	}
	for _, op := range layer.Ops {
		s := Step{Op: op}
		if _, err := s.Apply(src, nil); err != nil {
			return nil, err
		}
	}
	return src, nil
}
