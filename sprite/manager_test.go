package sprite

import (
	"image"
	"testing"
)

func newSheet(w, h int) *Sheet {
	return &Sheet{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func TestManagerAddGet(t *testing.T) {
	m := NewManager()
	sheet := newSheet(8, 8)

	if err := m.Add("image:hero", sheet); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	got, ok := m.Get("image:hero")
	if !ok || got != sheet {
		t.Errorf("Get returned (%v, %v)", got, ok)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestManagerAddRejectsWrongPayload(t *testing.T) {
	m := NewManager()
	if err := m.Add("image:hero", "not a sheet"); err == nil {
		t.Error("Add accepted a non-sheet payload")
	}
	if m.Len() != 0 {
		t.Error("bad payload was stored")
	}
}

func TestManagerRemove(t *testing.T) {
	m := NewManager()
	sheet := newSheet(8, 8)
	if err := m.Add("image:hero", sheet); err != nil {
		t.Fatal(err)
	}

	m.Remove("image:hero", true)
	if _, ok := m.Get("image:hero"); ok {
		t.Error("sheet still retrievable after Remove")
	}
	if sheet.Img != nil {
		t.Error("evicting Remove kept the pixel data alive")
	}

	// Unknown key is a no-op
	m.Remove("image:ghost", true)
}

func TestManagerCleanUp(t *testing.T) {
	m := NewManager()
	for _, key := range []string{"image:a", "image:b"} {
		if err := m.Add(key, newSheet(2, 2)); err != nil {
			t.Fatal(err)
		}
	}
	m.CleanUp()
	if m.Len() != 0 {
		t.Errorf("Len() = %d after CleanUp", m.Len())
	}
}

func TestSheetSub(t *testing.T) {
	sheet := newSheet(8, 4)

	cells := sheet.Sub(4, 2)
	if len(cells) != 8 {
		t.Fatalf("Sub(4,2) returned %d cells, want 8", len(cells))
	}
	for i, c := range cells {
		b := c.Bounds()
		if b.Dx() != 2 || b.Dy() != 2 {
			t.Errorf("cell %d is %dx%d, want 2x2", i, b.Dx(), b.Dy())
		}
	}

	if cells := sheet.Sub(0, 2); cells != nil {
		t.Errorf("Sub(0,2) = %v, want nil", cells)
	}
}

func TestSheetCellOutOfBounds(t *testing.T) {
	sheet := newSheet(4, 4)
	if _, ok := sheet.Cell(2, 0, 2, 2); ok {
		t.Error("cell past the right edge should not resolve")
	}
	if _, ok := sheet.Cell(1, 1, 2, 2); !ok {
		t.Error("last cell should resolve")
	}
}
