package sprite

import (
	"image"
)

// Sheet is a decoded pixel sheet. Single sprites are a 1x1 grid; larger
// sheets are sliced into uniform cells with Sub.
type Sheet struct {
	Img image.Image
}

// Width returns the sheet width in pixels.
func (s *Sheet) Width() int { return s.Img.Bounds().Dx() }

// Height returns the sheet height in pixels.
func (s *Sheet) Height() int { return s.Img.Bounds().Dy() }

// subImager is implemented by every decoded stdlib image type.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Cell crops the cell at grid position (col, row) for a grid of uniform
// cellW x cellH cells. Returns false when the cell falls outside the sheet.
func (s *Sheet) Cell(col, row, cellW, cellH int) (image.Image, bool) {
	if cellW <= 0 || cellH <= 0 {
		return nil, false
	}
	b := s.Img.Bounds()
	r := image.Rect(
		b.Min.X+col*cellW,
		b.Min.Y+row*cellH,
		b.Min.X+(col+1)*cellW,
		b.Min.Y+(row+1)*cellH,
	)
	if !r.In(b) {
		return nil, false
	}
	si, ok := s.Img.(subImager)
	if !ok {
		return nil, false
	}
	return si.SubImage(r), true
}

// Sub slices the sheet into a row-major grid of cols x rows cells.
// Cells that fall outside the sheet are skipped.
func (s *Sheet) Sub(cols, rows int) []image.Image {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cellW := s.Width() / cols
	cellH := s.Height() / rows
	cells := make([]image.Image, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if c, ok := s.Cell(col, row, cellW, cellH); ok {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
