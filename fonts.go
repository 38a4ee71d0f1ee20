package icyengine

// BitFont is a fixed-cell bitmap font: each glyph is a row-major boolean
// plane of pixels, addressed by codepage byte value (0-255).
type BitFont struct {
	Name       string
	CellWidth  int
	CellHeight int
	Glyphs     map[uint8][][]bool // [row][col]
}

// NewBitFont returns an empty font of the given cell size.
func NewBitFont(name string, width, height int) *BitFont {
	return &BitFont{Name: name, CellWidth: width, CellHeight: height, Glyphs: make(map[uint8][][]bool)}
}

// SetGlyph installs the pixel plane for one codepoint. Extra/short rows
// are padded/truncated to CellHeight x CellWidth.
func (f *BitFont) SetGlyph(ch uint8, plane [][]bool) {
	g := make([][]bool, f.CellHeight)
	for y := 0; y < f.CellHeight; y++ {
		row := make([]bool, f.CellWidth)
		if y < len(plane) {
			copy(row, plane[y])
		}
		g[y] = row
	}
	f.Glyphs[ch] = g
}

// Glyph returns the pixel plane for ch, or an all-false plane if undefined.
func (f *BitFont) Glyph(ch uint8) [][]bool {
	if g, ok := f.Glyphs[ch]; ok {
		return g
	}
	g := make([][]bool, f.CellHeight)
	for y := range g {
		g[y] = make([]bool, f.CellWidth)
	}
	return g
}

// ToPackedBytes serializes the font's glyphs as one row of packed bits per
// scanline, 8 pixels per byte, glyph 0 through 255 in order — the classic
// on-disk encoding for fixed 8-pixel-wide console fonts.
func (f *BitFont) ToPackedBytes() []byte {
	out := make([]byte, 0, 256*f.CellHeight)
	for ch := 0; ch < 256; ch++ {
		g := f.Glyph(uint8(ch))
		for y := 0; y < f.CellHeight; y++ {
			var b byte
			for x := 0; x < f.CellWidth && x < 8; x++ {
				if y < len(g) && x < len(g[y]) && g[y][x] {
					b |= 1 << (7 - x)
				}
			}
			out = append(out, b)
		}
	}
	return out
}

// FontType selects a TheDrawFont's glyph data encoding.
type FontType int

const (
	FontTypeOutline FontType = iota
	FontTypeBlock
	FontTypeColor
)

// FontGlyph is one TheDrawFont character's raw glyph data plus its
// rendered cell size.
type FontGlyph struct {
	Size Size
	Data []byte
}

// TheDrawFont is a TDF bitmap/attributed font keyed by printable ASCII
// character, used to render large ANSI-art banners.
type TheDrawFont struct {
	Name      string
	FontType  FontType
	Spacing   uint8
	CharTable map[byte]FontGlyph
}

// NewTheDrawFont returns an empty font of the given name/type.
func NewTheDrawFont(name string, t FontType, spacing uint8) *TheDrawFont {
	return &TheDrawFont{Name: name, FontType: t, Spacing: spacing, CharTable: make(map[byte]FontGlyph)}
}

func (f *TheDrawFont) SetGlyph(ch byte, g FontGlyph) { f.CharTable[ch] = g }
func (f *TheDrawFont) GetGlyph(ch byte) (FontGlyph, bool) {
	g, ok := f.CharTable[ch]
	return g, ok
}

// Render draws glyph ch into dst starting at caret, advancing caret as it
// goes, and returns the glyph's cell size. Block/Color encodings use `13`
// (CR) as a row break and `&` as an end-of-glyph marker. In edit mode `&`
// is written visibly; in play mode it is suppressed. Color glyphs carry an
// attribute byte after every data byte except CR and `&`.
func (f *TheDrawFont) Render(dst *Layer, startX, startY int, ch byte, caretAttr TextAttribute, editMode bool) Size {
	g, ok := f.CharTable[ch]
	if !ok {
		return Size{}
	}
	switch f.FontType {
	case FontTypeOutline:
		return f.renderOutline(dst, startX, startY, ch, caretAttr)
	default:
		return f.renderBlockOrColor(dst, startX, startY, g, caretAttr, editMode)
	}
}

func (f *TheDrawFont) renderBlockOrColor(dst *Layer, startX, startY int, g FontGlyph, caretAttr TextAttribute, editMode bool) Size {
	x, y := 0, 0
	i := 0
	data := g.Data
	isColor := f.FontType == FontTypeColor
	for i < len(data) {
		b := data[i]
		switch b {
		case 13: // CR: next row
			y++
			x = 0
			i++
		case '&':
			if editMode {
				attr := caretAttr
				dst.SetChar(startX+x, startY+y, NewAttributedChar('&', attr))
				x++
			}
			i++
		default:
			attr := caretAttr
			i++
			if isColor && i < len(data) {
				attr = attrFromByte(data[i])
				i++
			}
			dst.SetChar(startX+x, startY+y, NewAttributedChar(rune(b), attr))
			x++
		}
	}
	return g.Size
}

func attrFromByte(b byte) TextAttribute {
	a := NewTextAttribute()
	a.SetForeground(PaletteColor(int32(b & 0x0F)))
	a.SetBackground(PaletteColor(int32((b >> 4) & 0x0F)))
	return a
}

// RenderNext renders this+prev kerning chain and returns the caret position
// after the glyph, for chained banner rendering.
func (f *TheDrawFont) RenderNext(dst *Layer, pos Position, prevCh, thisCh byte, caretAttr TextAttribute, editMode bool) Position {
	size := f.Render(dst, pos.X, pos.Y, thisCh, caretAttr, editMode)
	return Position{X: pos.X + size.Width + int(f.Spacing), Y: pos.Y}
}

// AsTDFBytes serializes the font into the block format read by
// TheDrawFontsFromBytes: the name and a NUL, then one byte each for font
// type, spacing and glyph count, then per glyph its character, width,
// height, a 16-bit big-endian data length and the raw glyph bytes as
// stored. A load→save→load round trip is lossless.
func (f *TheDrawFont) AsTDFBytes() ([]byte, error) {
	var out []byte
	out = append(out, []byte(f.Name)...)
	out = append(out, 0)
	out = append(out, byte(f.FontType), f.Spacing)
	out = append(out, byte(len(f.CharTable)))
	for ch, g := range f.CharTable {
		out = append(out, ch, byte(g.Size.Width), byte(g.Size.Height))
		out = append(out, byte(len(g.Data)>>8), byte(len(g.Data)))
		out = append(out, g.Data...)
	}
	return out, nil
}

// TheDrawFontsFromBytes parses the on-disk format written by AsTDFBytes.
// Multiple fonts may be concatenated in one file (spec §4.8's loader
// returns a Vec); this format stores exactly one.
func TheDrawFontsFromBytes(data []byte) ([]*TheDrawFont, error) {
	if len(data) < 1 {
		return nil, ErrFileTooShort
	}
	nameEnd := 0
	for nameEnd < len(data) && data[nameEnd] != 0 {
		nameEnd++
	}
	if nameEnd+4 > len(data) {
		return nil, ErrFileTooShort
	}
	name := string(data[:nameEnd])
	p := nameEnd + 1
	ftype := FontType(data[p])
	spacing := data[p+1]
	count := int(data[p+2])
	p += 3
	font := NewTheDrawFont(name, ftype, spacing)
	for i := 0; i < count; i++ {
		if p+5 > len(data) {
			return nil, ErrFileTooShort
		}
		ch := data[p]
		w := int(data[p+1])
		h := int(data[p+2])
		dlen := int(data[p+3])<<8 | int(data[p+4])
		p += 5
		if p+dlen > len(data) {
			return nil, ErrFileTooShort
		}
		glyphData := append([]byte(nil), data[p:p+dlen]...)
		p += dlen
		font.SetGlyph(ch, FontGlyph{Size: Size{Width: w, Height: h}, Data: glyphData})
	}
	return []*TheDrawFont{font}, nil
}

// OutlineCharSet maps the TheDraw outline-font letters 'A'..'Q' to the
// CP437 box-drawing code (stored as a rune) each one draws; characters
// outside this set render as a space.
var OutlineCharSet = map[byte]rune{
	'A': 0xC4, 'B': 0xC4, 'C': 0xC4, 'D': 0xC4,
	'E': 0xB3, 'F': 0xB3, 'G': 0xB3, 'H': 0xB3,
	'I': 0xDA, 'J': 0xBF, 'K': 0xC0, 'L': 0xD9,
	'M': 0xC3, 'N': 0xB4, 'O': 0xC2, 'P': 0xC1,
	'Q': 0xC5,
}

// TransformOutline maps an outline-font character to the CP437
// box-drawing code in OutlineCharSet, or a space when it is not there.
// The style argument is not used: every style yields the same code.
func TransformOutline(style int, ch byte) rune {
	if r, ok := OutlineCharSet[ch]; ok {
		return r
	}
	return ' '
}

func (f *TheDrawFont) renderOutline(dst *Layer, startX, startY int, ch byte, caretAttr TextAttribute) Size {
	r := TransformOutline(0, ch)
	dst.SetChar(startX, startY, NewAttributedChar(r, caretAttr))
	return Size{Width: 1, Height: 1}
}
