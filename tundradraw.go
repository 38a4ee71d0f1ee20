package icyengine

import (
	"bytes"
	stdcolor "image/color"
)

const tundraVersion = 24

var tundraHeader = []byte("TUNDRA24")

const (
	tundraPosition         = 1
	tundraColorForeground  = 2
	tundraColorBackground  = 4
)

// TundraDrawFormat implements OutputFormat for TundraDraw (.tnd): a
// direct-RGB streaming format that emits a color-change command only when
// a cell's resolved foreground/background differs from the previous
// cell's, plus a fixed-width 80-column layout.
type TundraDrawFormat struct{}

func (TundraDrawFormat) FileExtension() string { return "tnd" }
func (TundraDrawFormat) Name() string          { return "Tundra Draw" }

func (TundraDrawFormat) ToBytes(buf *Buffer, opts SaveOptions) ([]byte, error) {
	out := append([]byte{tundraVersion}, tundraHeader...)

	pal := buf.Palette()
	layer := buf.PrimaryLayer()
	lastFg := pal.Resolve(PaletteColor(7))
	lastBg := pal.Resolve(PaletteColor(0))

	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			ch := layer.GetChar(x, y)
			if ch.Ch > 255 {
				return nil, ErrOnly8BitChars
			}
			fg := pal.Resolve(ch.Attr.Foreground())
			bg := pal.Resolve(ch.Attr.Background())

			if ch.Ch >= 1 && ch.Ch <= 6 {
				out = append(out, tundraColorForeground, byte(ch.Ch), 0, fg.R, fg.G, fg.B)
				continue
			}

			var cmd byte
			if fg != lastFg {
				cmd |= tundraColorForeground
			}
			if bg != lastBg {
				cmd |= tundraColorBackground
			}
			if cmd == 0 {
				out = append(out, byte(ch.Ch))
				continue
			}
			out = append(out, cmd, byte(ch.Ch))
			if cmd&tundraColorForeground != 0 {
				out = append(out, 0, fg.R, fg.G, fg.B)
				lastFg = fg
			}
			if cmd&tundraColorBackground != 0 {
				out = append(out, 0, bg.R, bg.G, bg.B)
				lastBg = bg
			}
		}
	}

	return maybeAppendSauce(out, buf, opts, 1 /* Character */, 0), nil
}

func (TundraDrawFormat) LoadBuffer(path string, data []byte, hint *LoadData) (*Buffer, error) {
	data = maybeStripSauceScratch(data)
	if len(data) < 1+len(tundraHeader) {
		return nil, ErrFileTooShort
	}
	if !bytes.Equal(data[1:1+len(tundraHeader)], tundraHeader) {
		return nil, ErrIDMismatch
	}
	o := 1 + len(tundraHeader)

	const width = 80
	buf := NewBuffer(width, 1)
	buf.IceMode = IceModeIce
	buf.SetPalette(&Palette{Mode: PaletteModeFree, Title: "Tundra", Colors: []stdcolor.RGBA{{A: 255}}})

	layer := buf.PrimaryLayer()
	attr := NewTextAttribute()
	x, y := 0, 0

	insertColor := func(r, g, b byte) int32 {
		rgb := stdcolor.RGBA{R: r, G: g, B: b, A: 255}
		for i, c := range buf.Palette().Colors {
			if c == rgb {
				return int32(i)
			}
		}
		buf.Palette().Colors = append(buf.Palette().Colors, rgb)
		return int32(len(buf.Palette().Colors) - 1)
	}

	for o < len(data) {
		if hint != nil && hint.MaxHeight > 0 && y >= hint.MaxHeight {
			break
		}
		cmd := data[o]
		o++

		if cmd == tundraPosition {
			if o+8 > len(data) {
				break
			}
			y = beInt32(data[o : o+4])
			o += 4
			x = beInt32(data[o : o+4])
			o += 4
			if hint != nil && hint.MaxHeight > 0 && y >= hint.MaxHeight {
				break
			}
			continue
		}

		var ch byte
		if cmd > 1 && cmd <= 6 {
			if o >= len(data) {
				break
			}
			ch = data[o]
			o++
			if cmd&tundraColorForeground != 0 {
				if o+4 > len(data) {
					break
				}
				o++ // reserved byte
				attr.SetForeground(PaletteColor(insertColor(data[o], data[o+1], data[o+2])))
				o += 3
			}
			if cmd&tundraColorBackground != 0 {
				if o+4 > len(data) {
					break
				}
				o++
				attr.SetBackground(PaletteColor(insertColor(data[o], data[o+1], data[o+2])))
				o += 3
			}
		} else {
			ch = cmd
		}

		if y+1 > buf.height {
			buf.height = y + 1
		}
		layer.SetChar(x, y, NewAttributedChar(rune(ch), attr))
		x++
		if x >= width {
			x = 0
			y++
		}
	}
	buf.height = applyLoadHint(buf.height, hint)

	return buf, nil
}

func beInt32(b []byte) int {
	return int(b[3]) | int(b[2])<<8 | int(b[1])<<16 | int(b[0])<<24
}

var _ OutputFormat = TundraDrawFormat{}
