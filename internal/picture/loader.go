package picture

import (
	"fmt"
	"image"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// Cache provides thread-safe caching of decoded images to avoid redundant
// disk reads.
//
// Decoded images are keyed by the exact path string. Load always returns a
// fresh Picture copied from the cached image, so transforms applied to the
// result never leak back into the cache.
//
// # Memory Management
//
// Cached images remain in memory until removed via Evict or Clear. Evict a
// path after writing a new version of it so the next Load reads the file
// again.
//
// # Example Usage
//
//	cache := picture.NewCache()
//	pic, err := cache.Load("/path/to/beach.jpg")
//	if err != nil {
//	    return err
//	}
//	transform.ZeroBlue(pic)
//	err = pic.Save("/path/to/beach-noblue.png")
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		images: make(map[string]image.Image),
	}
}

// Load returns a mutable copy of the image at path, decoding it on first
// use.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     those of github.com/disintegration/imaging: PNG, JPEG, GIF, BMP and TIFF.
//
// Returns:
//   - *Picture: A fresh copy of the decoded image. Changes to it are not seen
//     by later Load calls.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The image is cached using the exact path string provided. Different paths to
// the same file (e.g., relative vs absolute) will result in separate cache
// entries.
func (c *Cache) Load(path string) (*Picture, error) {
	img, err := c.image(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

func (c *Cache) image(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes the image cached for path, if any.
//
// Parameters:
//   - path: The exact path string used when the image was loaded.
//
// If the path is not in the cache, this method does nothing.
// After eviction, the next Load() call for this path will read from disk.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Info contains metadata about an image file.
type Info struct {
	// Width is the image width in pixels (grid columns).
	Width int `json:"width"`

	// Height is the image height in pixels (grid rows).
	Height int `json:"height"`

	// Format is detected from the file extension: "png", "jpeg", "gif",
	// "bmp", "tiff" or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo loads path into the cache and describes it.
//
// Parameters:
//   - path: Path to the image file.
//
// Returns:
//   - *Info: Dimensions, format and on-disk size of the image.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
//
// # Format Detection
//
// The format is determined by file extension, not by the decoded content.
// An extension imaging does not recognize reports "unknown".
func (c *Cache) LoadInfo(path string) (*Info, error) {
	img, err := c.image(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
