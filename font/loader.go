package font

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lixenwraith/loadstone/sprite"
)

// Loader decodes glyph sheets: a PNG sheet plus a JSON descriptor sitting
// next to it (same name, .json extension) mapping runes to grid cells.
//
// Descriptor shape:
//
//	{
//	  "cell":    {"width": 8, "height": 12},
//	  "columns": 16,
//	  "glyphs":  " !\"#$%&'()*+,-./0123456789..."
//	}
//
// Glyph order is row-major across the sheet, columns per row.
type Loader struct {
	// Root is prepended to asset file names.
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// Load decodes the glyph sheet at fileName under the loader root.
func (l *Loader) Load(fileName string) (any, error) {
	sheetPayload, err := sprite.NewLoader(l.Root).Load(fileName)
	if err != nil {
		return nil, err
	}
	sheet := sheetPayload.(*sprite.Sheet)

	descPath := filepath.Join(l.Root, descriptorName(fileName))
	data, err := os.ReadFile(descPath)
	if err != nil {
		return nil, fmt.Errorf("read font descriptor %s: %w", descPath, err)
	}
	return parseFace(sheet, data, descPath)
}

// descriptorName swaps the sheet extension for .json.
func descriptorName(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".json"
}

// parseFace builds a Face from a sheet and its JSON descriptor.
func parseFace(sheet *sprite.Sheet, desc []byte, path string) (*Face, error) {
	if !gjson.ValidBytes(desc) {
		return nil, fmt.Errorf("font descriptor %s: invalid JSON", path)
	}

	cellW := int(gjson.GetBytes(desc, "cell.width").Int())
	cellH := int(gjson.GetBytes(desc, "cell.height").Int())
	columns := int(gjson.GetBytes(desc, "columns").Int())
	glyphs := gjson.GetBytes(desc, "glyphs").String()

	switch {
	case cellW <= 0 || cellH <= 0:
		return nil, fmt.Errorf("font descriptor %s: bad cell size %dx%d", path, cellW, cellH)
	case columns <= 0:
		return nil, fmt.Errorf("font descriptor %s: bad column count %d", path, columns)
	case glyphs == "":
		return nil, fmt.Errorf("font descriptor %s: no glyphs", path)
	}

	bounds := sheet.Img.Bounds()
	table := make(map[rune]image.Rectangle, len(glyphs))
	for i, r := range []rune(glyphs) {
		col := i % columns
		row := i / columns
		rect := image.Rect(
			bounds.Min.X+col*cellW,
			bounds.Min.Y+row*cellH,
			bounds.Min.X+(col+1)*cellW,
			bounds.Min.Y+(row+1)*cellH,
		)
		if !rect.In(bounds) {
			return nil, fmt.Errorf("font descriptor %s: glyph %q falls outside the sheet", path, r)
		}
		table[r] = rect
	}
	return NewFace(sheet, cellW, cellH, table), nil
}
