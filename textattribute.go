package icyengine

// AttributeFlag is a bitmask of SGR-style rendering attributes.
type AttributeFlag uint16

const (
	AttrBold AttributeFlag = 1 << iota
	AttrFaint
	AttrItalic
	AttrBlink
	AttrUnderline
	AttrDoubleUnderline
	AttrConceal
	AttrCrossedOut
	AttrDoubleHeight
	AttrOverline
	AttrInvisible
	AttrReverse
	// attrShortData is an internal flag used only by on-disk codecs to mark
	// a cell whose attribute byte was abbreviated (e.g. XBin/iCE short form).
	attrShortData
)

// colorSideFlags tracks which representation (palette/extended/RGB) a
// color side currently holds, so setting one clears the others.
type colorSideFlags uint8

const (
	sideRGB colorSideFlags = 1 << iota
	sideExt
)

// TextAttribute is the fg/bg color pair plus rendering flags and font page
// applied to one AttributedChar.
type TextAttribute struct {
	fg      Color
	bg      Color
	fgFlags colorSideFlags
	bgFlags colorSideFlags

	Attr     AttributeFlag
	FontPage uint8
}

// NewTextAttribute returns the default attribute: palette colors 7/0, no
// flags, font page 0.
func NewTextAttribute() TextAttribute {
	return TextAttribute{fg: PaletteColor(7), bg: PaletteColor(0)}
}

// Foreground returns the current foreground color.
func (a TextAttribute) Foreground() Color { return a.fg }

// Background returns the current background color.
func (a TextAttribute) Background() Color { return a.bg }

// SetForeground sets the foreground side, clearing any prior RGB/extended
// flags for that side per the invariant in spec §3.
func (a *TextAttribute) SetForeground(c Color) {
	a.fg = c
	a.fgFlags = sideFlagsFor(c)
}

// SetBackground sets the background side, with the same clearing behavior
// as SetForeground.
func (a *TextAttribute) SetBackground(c Color) {
	a.bg = c
	a.bgFlags = sideFlagsFor(c)
}

func sideFlagsFor(c Color) colorSideFlags {
	switch c.Mode {
	case ColorModeRGB:
		return sideRGB
	case ColorModeExtended:
		return sideExt
	default:
		return 0
	}
}

// HasFlag reports whether the given attribute flag is set.
func (a TextAttribute) HasFlag(f AttributeFlag) bool { return a.Attr&f != 0 }

// SetFlag enables the given attribute flag without affecting others.
func (a *TextAttribute) SetFlag(f AttributeFlag) { a.Attr |= f }

// ClearFlag disables the given attribute flag without affecting others.
func (a *TextAttribute) ClearFlag(f AttributeFlag) { a.Attr &^= f }

// IceMode selects how the legacy 8-bit attribute byte's top background bit
// is interpreted.
type IceMode int

const (
	// IceModeBlink reuses bit 7 of the background nibble as the blink flag.
	IceModeBlink IceMode = iota
	// IceModeIce reuses bit 7 as a high-background-intensity bit (no blink).
	IceModeIce
	// IceModeUnlimited behaves like IceModeIce but permits a full 256-color background.
	IceModeUnlimited
)

// AsU8 packs this attribute into a legacy 8-bit DOS attribute byte. In
// IceModeBlink, bit 7 is the blink flag; in IceModeIce/IceModeUnlimited,
// bit 7 is the high-background-intensity bit. Only the low 4 bits of each
// color side are consulted; callers needing 256-color fidelity must use
// the structured TextAttribute instead.
func (a TextAttribute) AsU8(mode IceMode) uint8 {
	fg := uint8(a.fg.Index) & 0x0F
	bg := uint8(a.bg.Index) & 0x0F
	b := fg | (bg << 4)
	switch mode {
	case IceModeBlink:
		if a.HasFlag(AttrBlink) {
			b |= 0x80
		}
	case IceModeIce, IceModeUnlimited:
		if a.bg.Index&0x08 != 0 {
			b |= 0x80
		}
	}
	return b
}

// Reset clears flags and colors back to the default attribute, preserving
// the font page (per spec §4.6, SGR Reset preserves font page).
func (a *TextAttribute) Reset() {
	page := a.FontPage
	*a = NewTextAttribute()
	a.FontPage = page
}
