package picture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// Picture is an image-backed grid.Grid.
type Picture struct {
	img *image.NRGBA
}

// New creates a blank height x width picture filled with bg.
func New(height, width int, bg grid.Color) *Picture {
	return &Picture{img: imaging.New(width, height, color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})}
}

// FromImage copies img into a new picture. Later changes to either do not
// affect the other.
func FromImage(img image.Image) *Picture {
	return &Picture{img: imaging.Clone(img)}
}

// Open decodes the image file at path.
func Open(path string) (*Picture, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return FromImage(img), nil
}

// Height returns the number of pixel rows.
func (p *Picture) Height() int { return p.img.Rect.Dy() }

// Width returns the number of pixel columns.
func (p *Picture) Width() int { return p.img.Rect.Dx() }

// At returns the RGB color at (row, col).
func (p *Picture) At(row, col int) grid.Color {
	i := p.offset(row, col)
	pix := p.img.Pix[i : i+3 : i+3]
	return grid.Color{R: pix[0], G: pix[1], B: pix[2]}
}

// Set stores the RGB components of c at (row, col).
func (p *Picture) Set(row, col int, c grid.Color) {
	i := p.offset(row, col)
	pix := p.img.Pix[i : i+3 : i+3]
	pix[0] = c.R
	pix[1] = c.G
	pix[2] = c.B
}

func (p *Picture) offset(row, col int) int {
	h, w := p.Height(), p.Width()
	if row < 0 || row >= h || col < 0 || col >= w {
		panic(&grid.BoundsError{Row: row, Col: col, Height: h, Width: w})
	}
	return p.img.PixOffset(p.img.Rect.Min.X+col, p.img.Rect.Min.Y+row)
}

// Image returns the underlying image. It shares pixels with p.
func (p *Picture) Image() *image.NRGBA {
	return p.img
}

// Clone returns an independent copy of p.
func (p *Picture) Clone() *Picture {
	return FromImage(p.img)
}

// Save encodes p to path; the format is chosen from the file extension.
func (p *Picture) Save(path string) error {
	if err := imaging.Save(p.img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodedImage is a picture encoded as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Encode returns p as a base64 PNG.
func (p *Picture) Encode() (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, p.img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       p.Width(),
		Height:      p.Height(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func (p *Picture) String() string {
	return fmt.Sprintf("Picture height %d width %d", p.Height(), p.Width())
}
