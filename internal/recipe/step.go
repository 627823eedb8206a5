package recipe

import (
	"fmt"
	"sort"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
	"github.com/ironsheep/pixelgrid-mcp/internal/picture"
	"github.com/ironsheep/pixelgrid-mcp/internal/transform"
)

// Loader supplies source pictures for copy steps and collage layers. Load
// must return a picture the caller is free to modify. *picture.Cache
// satisfies it.
type Loader interface {
	Load(path string) (*picture.Picture, error)
}

// Step is one transform operation and its parameters. Only the fields the
// operation uses are read.
type Step struct {
	Op string `toml:"op" json:"op"`

	// zero_channel, keep_only_channel
	Channel string `toml:"channel" json:"channel,omitempty"`

	// mirror_region, mirror_region_horizontal, copy_region, stats
	RowStart    int `toml:"row_start" json:"row_start,omitempty"`
	RowEnd      int `toml:"row_end" json:"row_end,omitempty"`
	ColStart    int `toml:"col_start" json:"col_start,omitempty"`
	ColEnd      int `toml:"col_end" json:"col_end,omitempty"`
	MirrorPoint int `toml:"mirror_point" json:"mirror_point,omitempty"`

	// copy, copy_region
	Source string `toml:"source" json:"source,omitempty"`
	Row    int    `toml:"row" json:"row,omitempty"`
	Col    int    `toml:"col" json:"col,omitempty"`

	// edge_detect. Threshold defaults to DefaultEdgeThreshold when absent.
	Threshold *float64 `toml:"threshold" json:"threshold,omitempty"`
	DarkEdges *bool   `toml:"dark_edges" json:"dark_edges,omitempty"`
}

// StepResult reports what a step did. Count is the number of cells written,
// except for edge_detect where it is the number of edge cells.
type StepResult struct {
	Op    string                 `json:"op"`
	Count int                    `json:"count"`
	Stats *transform.RegionStats `json:"stats,omitempty"`
}

// DefaultEdgeThreshold is the edge_detect threshold used when a step
// does not set one.
const DefaultEdgeThreshold = 50.0

func (s *Step) threshold() float64 {
	if s.Threshold == nil {
		return DefaultEdgeThreshold
	}
	return *s.Threshold
}

type opFunc func(s *Step, g grid.Grid, l Loader) (*StepResult, error)

// wholeGrid adapts a parameterless transform whose write count is a
// function of the grid size.
func wholeGrid(fn func(grid.Grid), written func(h, w int) int) opFunc {
	return func(s *Step, g grid.Grid, _ Loader) (*StepResult, error) {
		fn(g)
		return &StepResult{Count: written(g.Height(), g.Width())}, nil
	}
}

func allCells(h, w int) int { return h * w }

var ops = map[string]opFunc{
	"zero_blue":      wholeGrid(transform.ZeroBlue, allCells),
	"keep_only_blue": wholeGrid(transform.KeepOnlyBlue, allCells),
	"negate":         wholeGrid(transform.Negate, allCells),
	"grayscale":      wholeGrid(transform.Grayscale, allCells),
	"zero_channel": func(s *Step, g grid.Grid, _ Loader) (*StepResult, error) {
		ch, err := transform.ParseChannel(s.Channel)
		if err != nil {
			return nil, err
		}
		transform.ZeroChannel(g, ch)
		return &StepResult{Count: g.Height() * g.Width()}, nil
	},
	"keep_only_channel": func(s *Step, g grid.Grid, _ Loader) (*StepResult, error) {
		ch, err := transform.ParseChannel(s.Channel)
		if err != nil {
			return nil, err
		}
		transform.KeepOnlyChannel(g, ch)
		return &StepResult{Count: g.Height() * g.Width()}, nil
	},

	"mirror_vertical":               wholeGrid(transform.MirrorVertical, func(h, w int) int { return h * (w / 2) }),
	"mirror_vertical_right_to_left": wholeGrid(transform.MirrorVerticalRightToLeft, func(h, w int) int { return h * (w / 2) }),
	"mirror_horizontal":             wholeGrid(transform.MirrorHorizontal, func(h, w int) int { return (h / 2) * w }),
	"mirror_horizontal_bottom_to_top": wholeGrid(transform.MirrorHorizontalBottomToTop, func(h, w int) int {
		return (h / 2) * w
	}),
	"mirror_diagonal": wholeGrid(transform.MirrorDiagonal, func(h, w int) int {
		n := min(h, w)
		return n * (n + 1) / 2
	}),
	"mirror_region": func(s *Step, g grid.Grid, _ Loader) (*StepResult, error) {
		n, err := transform.MirrorRegion(g, s.RowStart, s.RowEnd, s.ColStart, s.MirrorPoint)
		return &StepResult{Count: n}, err
	},
	"mirror_region_horizontal": func(s *Step, g grid.Grid, _ Loader) (*StepResult, error) {
		n, err := transform.MirrorRegionHorizontal(g, s.ColStart, s.ColEnd, s.RowStart, s.MirrorPoint)
		return &StepResult{Count: n}, err
	},

	"copy": func(s *Step, g grid.Grid, l Loader) (*StepResult, error) {
		src, err := loadSource(s, l)
		if err != nil {
			return nil, err
		}
		n, err := transform.Copy(g, src, s.Row, s.Col)
		return &StepResult{Count: n}, err
	},
	"copy_region": func(s *Step, g grid.Grid, l Loader) (*StepResult, error) {
		src, err := loadSource(s, l)
		if err != nil {
			return nil, err
		}
		n, err := transform.CopyRegion(g, src, s.RowStart, s.RowEnd, s.ColStart, s.ColEnd)
		return &StepResult{Count: n}, err
	},

	"edge_detect": func(s *Step, g grid.Grid, _ Loader) (*StepResult, error) {
		dark := true
		if s.DarkEdges != nil {
			dark = *s.DarkEdges
		}
		return &StepResult{Count: transform.DetectEdges(g, s.threshold(), dark)}, nil
	},

	"stats": func(s *Step, g grid.Grid, _ Loader) (*StepResult, error) {
		r := grid.Region{RowStart: s.RowStart, RowEnd: s.RowEnd, ColStart: s.ColStart, ColEnd: s.ColEnd}
		if r == (grid.Region{}) {
			r = grid.Full(g)
		}
		stats, err := transform.Stats(g, r)
		if err != nil {
			return nil, err
		}
		return &StepResult{Stats: stats}, nil
	},
}

// Ops returns the names of all supported operations, sorted.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that the operation exists and has the parameters it
// cannot run without.
func (s *Step) Validate() error {
	if _, ok := ops[s.Op]; !ok {
		return fmt.Errorf("unknown operation: %q", s.Op)
	}
	switch s.Op {
	case "copy", "copy_region":
		if s.Source == "" {
			return fmt.Errorf("%s: source is required", s.Op)
		}
	case "zero_channel", "keep_only_channel":
		if _, err := transform.ParseChannel(s.Channel); err != nil {
			return fmt.Errorf("%s: %w", s.Op, err)
		}
	case "edge_detect":
		if s.Threshold != nil && *s.Threshold < 0 {
			return fmt.Errorf("edge_detect: threshold must be non-negative, got %v", *s.Threshold)
		}
	}
	return nil
}

// Apply runs the step on g. l is only consulted by copy steps and may be
// nil otherwise.
func (s *Step) Apply(g grid.Grid, l Loader) (*StepResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	res, err := ops[s.Op](s, g, l)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Op, err)
	}
	res.Op = s.Op
	return res, nil
}

func loadSource(s *Step, l Loader) (*picture.Picture, error) {
	if l == nil {
		return nil, fmt.Errorf("no loader available for source %s", s.Source)
	}
	return l.Load(s.Source)
}
