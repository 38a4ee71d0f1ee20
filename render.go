package icyengine

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RenderOptions controls how a Buffer is rasterized to an RGBA image by
// RenderToRGBA, the Screen.render_to_rgba operation.
type RenderOptions struct {
	// Font face to draw glyphs with. Defaults to basicfont.Face7x13.
	Font font.Face

	// CellWidth/CellHeight override the cell dimensions derived from the
	// font's metrics.
	CellWidth, CellHeight int

	// ShowCursor controls whether the caret is rendered. The zero value
	// (false) hides it.
	ShowCursor bool
	// BlinkOn is the current blink phase, supplied by the host's wall
	// clock (spec §5: the core never reads a clock itself).
	BlinkOn bool
}

// LoadFontFromBytes parses a TrueType/OpenType font file for use as a
// RenderOptions.Font.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// RenderToRGBA rasterizes buf's primary layer (composited) to an RGBA
// image using opts, resolving colors against buf's palette.
func RenderToRGBA(buf *Buffer, caret *Caret, opts RenderOptions) *image.RGBA {
	face := opts.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth, cellHeight := opts.CellWidth, opts.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	palette := buf.Palette()
	width, height := buf.Width(), buf.Height()
	imgWidth, imgHeight := width*cellWidth, height*cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	defaultBG := palette.Resolve(PaletteColor(0))
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			img.Set(x, y, defaultBG)
		}
	}

	metrics := face.Metrics()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := buf.GetChar(col, row)
			x, y := col*cellWidth, row*cellHeight

			fg := palette.Resolve(ch.Attr.Foreground())
			bg := palette.Resolve(ch.Attr.Background())
			if ch.Attr.HasFlag(AttrReverse) {
				fg, bg = bg, fg
			}
			if ch.Attr.HasFlag(AttrFaint) {
				fg = dim(fg)
			}
			blinkHidden := ch.Attr.HasFlag(AttrBlink) && !opts.BlinkOn && buf.BufferType != BufferTypeUnicode

			for py := 0; py < cellHeight; py++ {
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, y+py, bg)
				}
			}

			if ch.IsInvisible() || ch.Ch == ' ' || blinkHidden {
				continue
			}

			baseline := y + metrics.Ascent.Ceil()
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(string(ch.Ch))

			if ch.Attr.HasFlag(AttrUnderline) || ch.Attr.HasFlag(AttrDoubleUnderline) {
				underlineY := baseline + 2
				for px := 0; px < cellWidth; px++ {
					if underlineY < imgHeight {
						img.Set(x+px, underlineY, fg)
					}
				}
			}
			if ch.Attr.HasFlag(AttrCrossedOut) {
				strikeY := y + cellHeight/2
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, strikeY, fg)
				}
			}
		}
	}

	if opts.ShowCursor && caret != nil && caret.Visible {
		cx, cy := caret.Position.X*cellWidth, caret.Position.Y*cellHeight
		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				x, y := cx+px, cy+py
				if x < imgWidth && y < imgHeight {
					existing := img.RGBAAt(x, y)
					img.Set(x, y, invert(existing))
				}
			}
		}
	}

	return img
}

func dim(c stdcolor.RGBA) stdcolor.RGBA {
	return stdcolor.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: c.A,
	}
}

func invert(c stdcolor.RGBA) stdcolor.RGBA {
	return stdcolor.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: 255}
}
