package font

import (
	"image"

	"github.com/lixenwraith/loadstone/sprite"
)

// DefaultName is the reserved name for the engine's fallback font. The
// registry serves it through DefaultFont without callers knowing the name.
const DefaultName = "$default"

// Face is a decoded glyph sheet: a pixel sheet plus the grid cell each
// rune maps to.
type Face struct {
	Sheet *sprite.Sheet
	CellW int
	CellH int

	// glyph rune -> bounds on the sheet
	glyphs map[rune]image.Rectangle
}

// NewFace builds a face over sheet with the given cell size and rune map.
func NewFace(sheet *sprite.Sheet, cellW, cellH int, glyphs map[rune]image.Rectangle) *Face {
	return &Face{
		Sheet:  sheet,
		CellW:  cellW,
		CellH:  cellH,
		glyphs: glyphs,
	}
}

// Glyph returns the cropped glyph image for r.
func (f *Face) Glyph(r rune) (image.Image, bool) {
	rect, ok := f.glyphs[r]
	if !ok {
		return nil, false
	}
	si, ok := f.Sheet.Img.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return nil, false
	}
	return si.SubImage(rect), true
}

// Has reports whether the face carries a glyph for r.
func (f *Face) Has(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// Len returns the number of glyphs on the face.
func (f *Face) Len() int {
	return len(f.glyphs)
}
