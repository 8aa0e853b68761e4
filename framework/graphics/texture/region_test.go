package texture

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	defer file.Close()

	if err = png.Encode(file, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestLoadRegion(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "star.png")
	writePNG(t, path, 32, 16)

	region, err := LoadRegion(path)
	if err != nil {
		t.Fatalf("LoadRegion() error = %v", err)
	}

	if region.DisplayWidth() != 32 || region.DisplayHeight() != 16 {
		t.Errorf("display size = %vx%v, expected 32x16", region.DisplayWidth(), region.DisplayHeight())
	}

	path2x := filepath.Join(dir, "star@2x.png")
	writePNG(t, path2x, 64, 32)

	region, err = LoadRegion(path2x)
	if err != nil {
		t.Fatalf("LoadRegion() error = %v", err)
	}

	if region.DisplayWidth() != 32 || region.DisplayHeight() != 16 {
		t.Errorf("@2x display size = %vx%v, expected 32x16", region.DisplayWidth(), region.DisplayHeight())
	}
}

func TestLoadRegionMissing(t *testing.T) {
	if _, err := LoadRegion(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing texture")
	}
}
