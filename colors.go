package icyengine

import "image/color"

// ColorMode distinguishes how a Color value should be interpreted.
type ColorMode uint8

const (
	// ColorModePalette is an 8-bit index into the active Palette (0-15 legacy, 0-255 extended).
	ColorModePalette ColorMode = iota
	// ColorModeExtended is a 256-entry extended palette index (SGR 38/48;5;n).
	ColorModeExtended
	// ColorModeRGB is a direct 24-bit RGB value (SGR 38/48;2;r;g;b).
	ColorModeRGB
)

// TransparentColor is the sentinel index marking "no color" / absence of a
// cell's side, per spec §3.
const TransparentColor int32 = -1 << 31

// Color is a tagged color value: a palette index, an extended (256-color)
// index, or a direct RGB triple.
type Color struct {
	Mode    ColorMode
	Index   int32 // meaningful when Mode is ColorModePalette or ColorModeExtended
	R, G, B uint8 // meaningful when Mode is ColorModeRGB
}

// PaletteColor builds a legacy palette-indexed Color.
func PaletteColor(index int32) Color { return Color{Mode: ColorModePalette, Index: index} }

// ExtendedColor builds a 256-color extended-index Color.
func ExtendedColor(index int32) Color { return Color{Mode: ColorModeExtended, Index: index} }

// RGBColor builds a direct 24-bit RGB Color.
func RGBColor(r, g, b uint8) Color { return Color{Mode: ColorModeRGB, R: r, G: g, B: b} }

// TransparentColorValue is a Color whose Index marks transparency (no content).
func TransparentColorValue() Color { return Color{Mode: ColorModePalette, Index: TransparentColor} }

// IsTransparent reports whether c is the transparency sentinel.
func (c Color) IsTransparent() bool {
	return c.Mode != ColorModeRGB && c.Index == TransparentColor
}

// PaletteMode selects the fixed color space a Palette represents.
type PaletteMode int

const (
	// PaletteModeFixedDOS is the 16-color CGA/EGA/VGA DOS palette.
	PaletteModeFixedDOS PaletteMode = iota
	// PaletteModeFixedC64 is the 16-color Commodore 64 VIC-II palette.
	PaletteModeFixedC64
	// PaletteModeFixedAtari is the Atari 8-bit GTIA palette.
	PaletteModeFixedAtari
	// PaletteModeFixedViewdata is the 8-color CEPT/Viewdata palette.
	PaletteModeFixedViewdata
	// PaletteModeFree is an arbitrary, user-editable RGB palette.
	PaletteModeFree
)

// Palette is an ordered list of RGB entries plus the mode that produced them.
type Palette struct {
	Mode   PaletteMode
	Title  string
	Colors []color.RGBA
}

// DOSPalette is the classic 16-color CGA/EGA/VGA palette, ordered 0-15.
var DOSPalette = []color.RGBA{
	{0x00, 0x00, 0x00, 255}, {0xAA, 0x00, 0x00, 255}, {0x00, 0xAA, 0x00, 255}, {0xAA, 0x55, 0x00, 255},
	{0x00, 0x00, 0xAA, 255}, {0xAA, 0x00, 0xAA, 255}, {0x00, 0xAA, 0xAA, 255}, {0xAA, 0xAA, 0xAA, 255},
	{0x55, 0x55, 0x55, 255}, {0xFF, 0x55, 0x55, 255}, {0x55, 0xFF, 0x55, 255}, {0xFF, 0xFF, 0x55, 255},
	{0x55, 0x55, 0xFF, 255}, {0xFF, 0x55, 0xFF, 255}, {0x55, 0xFF, 0xFF, 255}, {0xFF, 0xFF, 0xFF, 255},
}

// C64Palette is the 16-color Commodore 64 VIC-II palette.
var C64Palette = []color.RGBA{
	{0x00, 0x00, 0x00, 255}, {0xFF, 0xFF, 0xFF, 255}, {0x68, 0x37, 0x2B, 255}, {0x70, 0xA4, 0xB2, 255},
	{0x6F, 0x3D, 0x86, 255}, {0x58, 0x8D, 0x43, 255}, {0x35, 0x28, 0x79, 255}, {0xB8, 0xC7, 0x6F, 255},
	{0x6F, 0x4F, 0x25, 255}, {0x43, 0x39, 0x00, 255}, {0x9A, 0x67, 0x59, 255}, {0x44, 0x44, 0x44, 255},
	{0x6C, 0x6C, 0x6C, 255}, {0x9A, 0xD2, 0x84, 255}, {0x6C, 0x5E, 0xB5, 255}, {0x95, 0x95, 0x95, 255},
}

// AtariPalette is a representative 16-entry slice of the 256-color Atari
// 8-bit GTIA palette, covering the hues most ATASCII art relies on.
var AtariPalette = []color.RGBA{
	{0x00, 0x00, 0x00, 255}, {0x40, 0x40, 0x40, 255}, {0x6C, 0x6C, 0x6C, 255}, {0x90, 0x90, 0x90, 255},
	{0xB0, 0xB0, 0xB0, 255}, {0xC8, 0xC8, 0xC8, 255}, {0xE0, 0xE0, 0xE0, 255}, {0xF4, 0xF4, 0xF4, 255},
	{0x4E, 0x3C, 0x00, 255}, {0x70, 0x58, 0x00, 255}, {0x8C, 0x72, 0x00, 255}, {0xA9, 0x89, 0x00, 255},
	{0x98, 0x34, 0x00, 255}, {0xB8, 0x50, 0x00, 255}, {0xD8, 0x6C, 0x00, 255}, {0xF4, 0x88, 0x00, 255},
}

// ViewdataPalette is the 8-color CEPT/Prestel palette (black, red, green,
// yellow, blue, magenta, cyan, white).
var ViewdataPalette = []color.RGBA{
	{0x00, 0x00, 0x00, 255}, {0xFF, 0x00, 0x00, 255}, {0x00, 0xFF, 0x00, 255}, {0xFF, 0xFF, 0x00, 255},
	{0x00, 0x00, 0xFF, 255}, {0xFF, 0x00, 0xFF, 255}, {0x00, 0xFF, 0xFF, 255}, {0xFF, 0xFF, 0xFF, 255},
}

// DefaultPalette is the standard 256-color palette: 16 DOS colors, a 216
// color cube, and a 24-step grayscale ramp, as the xterm 256-color model
// defines it.
var DefaultPalette [256]color.RGBA

func init() {
	copy(DefaultPalette[0:16], DOSPalette)

	i := 16
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{R: steps[r], G: steps[g], B: steps[b], A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

// NewDOSPalette returns a free-standing 16-color fixed-DOS Palette.
func NewDOSPalette() *Palette {
	cols := make([]color.RGBA, len(DOSPalette))
	copy(cols, DOSPalette)
	return &Palette{Mode: PaletteModeFixedDOS, Title: "IBM VGA", Colors: cols}
}

// NewExtendedPalette returns a free-standing 256-color xterm-style Palette.
func NewExtendedPalette() *Palette {
	cols := make([]color.RGBA, 256)
	copy(cols, DefaultPalette[:])
	return &Palette{Mode: PaletteModeFree, Title: "xterm-256", Colors: cols}
}

// NewC64Palette returns the fixed Commodore 64 Palette.
func NewC64Palette() *Palette {
	cols := make([]color.RGBA, len(C64Palette))
	copy(cols, C64Palette)
	return &Palette{Mode: PaletteModeFixedC64, Title: "C64", Colors: cols}
}

// NewAtariPalette returns the fixed Atari 8-bit Palette.
func NewAtariPalette() *Palette {
	cols := make([]color.RGBA, len(AtariPalette))
	copy(cols, AtariPalette)
	return &Palette{Mode: PaletteModeFixedAtari, Title: "Atari", Colors: cols}
}

// NewViewdataPalette returns the fixed CEPT/Viewdata Palette.
func NewViewdataPalette() *Palette {
	cols := make([]color.RGBA, len(ViewdataPalette))
	copy(cols, ViewdataPalette)
	return &Palette{Mode: PaletteModeFixedViewdata, Title: "Viewdata", Colors: cols}
}

// At returns the RGBA value for index i, clamped to the palette's bounds.
// Returns black if the palette is empty.
func (p *Palette) At(i int32) color.RGBA {
	if p == nil || len(p.Colors) == 0 {
		return color.RGBA{A: 255}
	}
	if i < 0 {
		i = 0
	}
	if int(i) >= len(p.Colors) {
		i = int32(len(p.Colors) - 1)
	}
	return p.Colors[i]
}

// Resolve converts a Color into a concrete RGBA value against this palette.
// Direct-RGB colors bypass the palette entirely.
func (p *Palette) Resolve(c Color) color.RGBA {
	if c.Mode == ColorModeRGB {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	return p.At(c.Index)
}
