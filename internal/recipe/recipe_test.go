package recipe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
	"github.com/ironsheep/pixelgrid-mcp/internal/picture"
)

// createTestPicture saves a solid picture under dir and returns its path.
func createTestPicture(t *testing.T, dir, name string, height, width int, c grid.Color) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := picture.New(height, width, c).Save(path); err != nil {
		t.Fatalf("failed to save %s: %v", name, err)
	}
	return path
}

func quietLogger() *log.Logger {
	var sb strings.Builder
	return log.NewWithOptions(&sb, log.Options{Level: log.ErrorLevel})
}

func TestParse(t *testing.T) {
	r, err := Parse(`
input = "temple.jpg"
output = "temple-fixed.png"

[[steps]]
op = "mirror_region"
row_start = 27
row_end = 97
col_start = 13
mirror_point = 276

[[steps]]
op = "edge_detect"
threshold = 20
dark_edges = false
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if r.Input != "temple.jpg" || r.Output != "temple-fixed.png" {
		t.Errorf("input/output: got %q/%q", r.Input, r.Output)
	}
	if len(r.Steps) != 2 {
		t.Fatalf("steps: got %d, want 2", len(r.Steps))
	}
	s := r.Steps[0]
	if s.Op != "mirror_region" || s.RowStart != 27 || s.RowEnd != 97 || s.ColStart != 13 || s.MirrorPoint != 276 {
		t.Errorf("step 0: got %+v", s)
	}
	if e := r.Steps[1]; e.DarkEdges == nil || *e.DarkEdges || e.Threshold == nil || *e.Threshold != 20 {
		t.Errorf("step 1: got %+v", e)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"no base", `output = "x.png"`, "either input or [canvas]"},
		{"both bases", "input = \"a.png\"\n[canvas]\nwidth = 1\nheight = 1", "both input and [canvas]"},
		{"bad canvas", "[canvas]\nwidth = 0\nheight = 3", "positive size"},
		{"bad background", "[canvas]\nwidth = 2\nheight = 3\nbackground = \"#XYZ\"", "background"},
		{"unknown key", "input = \"a.png\"\nmirror_pont = 3", "unknown recipe keys"},
		{"unknown op", "input = \"a.png\"\n[[steps]]\nop = \"blur\"", "unknown operation"},
		{"copy without source", "input = \"a.png\"\n[[steps]]\nop = \"copy\"", "source is required"},
		{"bad channel", "input = \"a.png\"\n[[steps]]\nop = \"zero_channel\"\nchannel = \"alpha\"", "unknown channel"},
		{"bad layer op", "input = \"a.png\"\n[[layers]]\npath = \"b.png\"\nops = [\"copy\"]", "unsupported op"},
		{"invalid toml", "input = ", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.toml)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.toml")
	content := "input = \"beach.jpg\"\n[[steps]]\nop = \"zero_blue\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write recipe: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(r.Steps) != 1 || r.Steps[0].Op != "zero_blue" {
		t.Errorf("steps: got %+v", r.Steps)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing recipe")
	}
}

func TestRun_InputWithSteps(t *testing.T) {
	dir := t.TempDir()
	in := createTestPicture(t, dir, "in.png", 4, 6, grid.Color{R: 10, G: 20, B: 30})

	r, err := Parse(fmt.Sprintf(`
input = %q

[[steps]]
op = "negate"

[[steps]]
op = "zero_blue"

[[steps]]
op = "stats"
`, in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	res, err := r.Run(context.Background(), picture.NewCache(), quietLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := res.Picture.At(3, 5); got != (grid.Color{R: 245, G: 235, B: 0}) {
		t.Errorf("At(3,5): got %v, want (245,235,0)", got)
	}
	if len(res.Steps) != 3 {
		t.Fatalf("step results: got %d, want 3", len(res.Steps))
	}
	if res.Steps[0].Count != 24 {
		t.Errorf("negate count: got %d, want 24", res.Steps[0].Count)
	}
	stats := res.Steps[2].Stats
	if stats == nil || stats.Pixels != 24 || stats.Blue.Max != 0 {
		t.Errorf("stats: got %+v", stats)
	}
}

func TestRun_Collage(t *testing.T) {
	dir := t.TempDir()
	flower1 := createTestPicture(t, dir, "flower1.png", 2, 2, grid.Color{R: 200, G: 100, B: 50})
	flower2 := createTestPicture(t, dir, "flower2.png", 2, 2, grid.Color{R: 10, G: 20, B: 30})

	r, err := Parse(fmt.Sprintf(`
collage = true

[canvas]
width = 6
height = 4
background = "#000000"

[[layers]]
path = %q
row = 0
col = 0

[[layers]]
path = %q
row = 2
col = 0
ops = ["zero_blue"]
`, flower1, flower2))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	res, err := r.Run(context.Background(), picture.NewCache(), quietLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Layered != 8 {
		t.Errorf("Layered: got %d, want 8", res.Layered)
	}

	p := res.Picture
	tests := []struct {
		row, col int
		want     grid.Color
	}{
		{0, 0, grid.Color{R: 200, G: 100, B: 50}},
		{0, 5, grid.Color{R: 200, G: 100, B: 50}},
		{3, 1, grid.Color{R: 10, G: 20, B: 0}},
		{3, 4, grid.Color{R: 10, G: 20, B: 0}},
		{1, 2, grid.Black},
	}
	for _, tt := range tests {
		if got := p.At(tt.row, tt.col); got != tt.want {
			t.Errorf("(%d,%d): got %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestRun_CopyStep(t *testing.T) {
	dir := t.TempDir()
	src := createTestPicture(t, dir, "src.png", 3, 3, grid.Color{G: 255})

	r := &Recipe{
		Canvas: &Canvas{Width: 4, Height: 4},
		Steps:  []Step{{Op: "copy", Source: src, Row: 2, Col: 2}},
	}
	res, err := r.Run(context.Background(), picture.NewCache(), quietLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Steps[0].Count != 4 {
		t.Errorf("copy count: got %d, want 4", res.Steps[0].Count)
	}
	if got := res.Picture.At(1, 1); got != grid.White {
		t.Errorf("At(1,1): got %v, want white", got)
	}
	if got := res.Picture.At(3, 3); got != (grid.Color{G: 255}) {
		t.Errorf("At(3,3): got %v, want green", got)
	}
}

func TestRun_StepOutOfBounds(t *testing.T) {
	r := &Recipe{
		Canvas: &Canvas{Width: 4, Height: 4},
		Steps:  []Step{{Op: "mirror_region", RowStart: 0, RowEnd: 10, ColStart: 0, MirrorPoint: 2}},
	}

	_, err := r.Run(context.Background(), nil, quietLogger())
	if !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("expected bounds error, got %v", err)
	}
}

func TestRun_Canceled(t *testing.T) {
	r := &Recipe{
		Canvas: &Canvas{Width: 2, Height: 2},
		Steps:  []Step{{Op: "negate"}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Run(ctx, nil, quietLogger()); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
