package sprite

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "hero.png", 16, 8)

	payload, err := NewLoader(dir).Load("hero.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	sheet, ok := payload.(*Sheet)
	if !ok {
		t.Fatalf("payload is %T, want *Sheet", payload)
	}
	if sheet.Width() != 16 || sheet.Height() != 8 {
		t.Errorf("sheet is %dx%d, want 16x8", sheet.Width(), sheet.Height())
	}
}

func TestLoaderMissingFile(t *testing.T) {
	if _, err := NewLoader(t.TempDir()).Load("ghost.png"); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestLoaderRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(dir).Load("bad.png"); err == nil {
		t.Error("Load of garbage bytes should fail")
	}
}
