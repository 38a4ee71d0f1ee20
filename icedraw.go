package icyengine

import (
	"bytes"
	"image/color"
)

const (
	iceDrawHeaderSize  = 4 + 4*2
	iceDrawFontSize    = 4096
	iceDrawPaletteSize = 3 * 16
)

var iceDrawV13Header = []byte("\x041.3")
var iceDrawV14Header = []byte("\x041.4")

// IceDrawFormat implements OutputFormat for the ICEDraw (.idf) format: a
// fixed 8x16-font, 16-color, ice-colors-only format with an optional
// run-length repeat-char encoding.
type IceDrawFormat struct{}

func (IceDrawFormat) FileExtension() string { return "idf" }
func (IceDrawFormat) Name() string          { return "IceDraw" }

// ToBytes requires IceMode == IceModeIce, a single font table of 8x16
// cells, a height of at most 200 rows, and a 16-color palette.
func (IceDrawFormat) ToBytes(buf *Buffer, opts SaveOptions) ([]byte, error) {
	if buf.IceMode != IceModeIce {
		return nil, ErrIceModeRequired
	}
	if buf.Height() > 200 {
		return nil, ErrHeightLimitExceeded
	}
	font := buf.Font(0)
	if font == nil {
		return nil, ErrNoFontFound
	}
	if font.CellWidth != 8 || font.CellHeight != 16 {
		return nil, ErrOnly8x16Fonts
	}
	if len(buf.Palette().Colors) != 16 {
		return nil, ErrPaletteSizeMismatch
	}

	out := append([]byte(nil), iceDrawV14Header...)
	out = append(out, 0, 0, 0, 0) // x1, y1
	w := uint16(buf.Width() - 1)
	h := uint16(buf.Height() - 1)
	out = append(out, byte(w), byte(w>>8), byte(h), byte(h>>8))

	layer := buf.PrimaryLayer()
	for y := 0; y < buf.Height(); y++ {
		x := 0
		for x < buf.Width() {
			ch := layer.GetChar(x, y)
			if ch.Ch > 255 {
				return nil, ErrOnly8BitChars
			}
			count := 1
			if opts.Compress {
				for x+count < buf.Width() && count < 0xffff {
					if layer.GetChar(x+count, y) != ch {
						break
					}
					count++
				}
				if count > 3 || ch.Ch == 1 {
					out = append(out, 1, 0, byte(count), byte(count>>8))
				} else {
					count = 1
				}
			}
			attr := ch.Attr.AsU8(buf.IceMode)
			// A literal 0x01 char with no real repeat run would otherwise be
			// mistaken for a repeat-marker on load; disambiguate it with an
			// explicit repeat-count-of-1 marker.
			if !opts.Compress && ch.Ch == 1 && attr == 0 && count == 1 {
				out = append(out, 1, 0, 1, 0)
			}
			out = append(out, byte(ch.Ch), attr)
			x += count
		}
	}

	out = append(out, font.ToPackedBytes()...)
	out = append(out, palette16ToBytes(buf.Palette())...)

	return maybeAppendSauce(out, buf, opts, 5 /* BinaryText */, 0), nil
}

// LoadBuffer parses an IceDraw stream, restoring character cells, the
// single 8x16 font table, and the 16-color palette.
func (IceDrawFormat) LoadBuffer(path string, data []byte, hint *LoadData) (*Buffer, error) {
	data = maybeStripSauceScratch(data)
	if len(data) < iceDrawHeaderSize+iceDrawFontSize+iceDrawPaletteSize {
		return nil, ErrFileTooShort
	}
	if !bytes.Equal(data[0:4], iceDrawV13Header) && !bytes.Equal(data[0:4], iceDrawV14Header) {
		return nil, ErrIDMismatch
	}

	o := 4
	x1 := int(le16(data[o : o+2]))
	o += 2
	y1 := int(le16(data[o : o+2]))
	o += 2
	x2 := int(le16(data[o : o+2]))
	o += 2
	o += 2 // y2 unused

	if x2 < x1 {
		return nil, ErrWidthMismatch
	}

	width := x2 - x1 + 1
	buf := NewBuffer(width, 1)
	buf.IceMode = IceModeIce

	dataSize := len(data) - iceDrawFontSize - iceDrawPaletteSize
	px, py := x1, y1
	layer := buf.PrimaryLayer()

	for o+1 < dataSize {
		count := 1
		charCode := data[o]
		o++
		attr := data[o]
		o++

		if charCode == 1 && attr == 0 && o+1 < dataSize {
			count = int(le16(data[o : o+2]))
			o += 2
			if o+1 >= dataSize {
				break
			}
			charCode = data[o]
			o++
			attr = data[o]
			o++
		}
		for count > 0 {
			if py+1 > buf.height {
				buf.height = py + 1
			}
			textAttr := attrFromU8(attr, buf.IceMode)
			layer.SetChar(px, py, NewAttributedChar(rune(charCode), textAttr))
			px++
			if px > x2 {
				px = x1
				py++
			}
			count--
		}
	}
	buf.height = applyLoadHint(buf.height, hint)

	font := NewBitFont("", 8, 16)
	fontFromPackedBytes(font, data[o:o+iceDrawFontSize])
	o += iceDrawFontSize
	buf.SetFont(0, font)

	buf.SetPalette(paletteFrom16Bytes(data[o : o+iceDrawPaletteSize]))

	return buf, nil
}

// palette16ToBytes encodes a 16-color palette as 3 bytes (6-bit VGA DAC
// values, 0-63) per entry, the classic on-disk IceDraw palette encoding.
func palette16ToBytes(p *Palette) []byte {
	out := make([]byte, 0, 16*3)
	for i := 0; i < 16; i++ {
		c := p.At(int32(i))
		out = append(out, to6bit(c.R), to6bit(c.G), to6bit(c.B))
	}
	return out
}

func paletteFrom16Bytes(data []byte) *Palette {
	cols := make([]color.RGBA, 16)
	for i := 0; i < 16; i++ {
		cols[i] = color.RGBA{
			R: from6bit(data[i*3]),
			G: from6bit(data[i*3+1]),
			B: from6bit(data[i*3+2]),
			A: 255,
		}
	}
	return &Palette{Mode: PaletteModeFree, Title: "IceDraw", Colors: cols}
}

func to6bit(v uint8) byte   { return byte(v) >> 2 }
func from6bit(v byte) uint8 { return uint8(v) << 2 }

func attrFromU8(b uint8, mode IceMode) TextAttribute {
	a := NewTextAttribute()
	a.SetForeground(PaletteColor(int32(b & 0x0F)))
	bg := int32((b >> 4) & 0x07)
	a.SetBackground(PaletteColor(bg))
	switch mode {
	case IceModeBlink:
		if b&0x80 != 0 {
			a.SetFlag(AttrBlink)
		}
	case IceModeIce, IceModeUnlimited:
		if b&0x80 != 0 {
			a.SetBackground(PaletteColor(bg + 8))
		}
	}
	return a
}

func fontFromPackedBytes(f *BitFont, data []byte) {
	for ch := 0; ch < 256; ch++ {
		plane := make([][]bool, f.CellHeight)
		for y := 0; y < f.CellHeight; y++ {
			row := make([]bool, f.CellWidth)
			b := data[ch*f.CellHeight+y]
			for x := 0; x < f.CellWidth && x < 8; x++ {
				row[x] = b&(1<<(7-x)) != 0
			}
			plane[y] = row
		}
		f.SetGlyph(uint8(ch), plane)
	}
}

// maybeStripSauceScratch strips a trailing SAUCE record without needing a
// live Buffer to attach it to, used by loaders that build the Buffer only
// after the codec-specific payload has been isolated.
func maybeStripSauceScratch(data []byte) []byte {
	if _, cutoff, ok := ReadSauce(data); ok {
		return data[:cutoff]
	}
	return data
}

var _ OutputFormat = IceDrawFormat{}
