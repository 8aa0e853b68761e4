package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// TextureRegion describes an image uploaded elsewhere; only its size matters for quad building.
type TextureRegion struct {
	Path   string
	Width  float32
	Height float32

	// Scale is applied to display sizes, 2 for @2x assets.
	Scale float32
}

func NewRegion(width, height float32) *TextureRegion {
	return &TextureRegion{Width: width, Height: height, Scale: 1}
}

func LoadRegion(path string) (*TextureRegion, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}

	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	region := NewRegion(float32(cfg.Width), float32(cfg.Height))
	region.Path = path

	if strings.HasSuffix(strings.TrimSuffix(path, filepath.Ext(path)), "@2x") {
		region.Scale = 2
	}

	return region, nil
}

func (t *TextureRegion) DisplayWidth() float32 {
	return t.Width / t.scale()
}

func (t *TextureRegion) DisplayHeight() float32 {
	return t.Height / t.scale()
}

func (t *TextureRegion) scale() float32 {
	if t.Scale <= 0 {
		return 1
	}

	return t.Scale
}
