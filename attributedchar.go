package icyengine

// AttributedChar is one Unicode scalar plus the TextAttribute it is
// rendered with.
type AttributedChar struct {
	Ch   rune
	Attr TextAttribute
}

// NewAttributedChar builds an AttributedChar with the given rune and
// attribute.
func NewAttributedChar(ch rune, attr TextAttribute) AttributedChar {
	return AttributedChar{Ch: ch, Attr: attr}
}

// InvisibleChar returns a space character carrying the Invisible attribute
// flag, used to mark "this cell has no content" in alpha-aware layers.
func InvisibleChar() AttributedChar {
	a := NewTextAttribute()
	a.SetFlag(AttrInvisible)
	return AttributedChar{Ch: ' ', Attr: a}
}

// IsInvisible reports whether this cell is marked as having no content.
func (c AttributedChar) IsInvisible() bool {
	return c.Attr.HasFlag(AttrInvisible)
}

// IsTransparent reports whether this cell should be treated as empty for
// compositing: either explicitly invisible, or a plain space on default
// colors with no attribute flags set.
func (c AttributedChar) IsTransparent() bool {
	if c.IsInvisible() {
		return true
	}
	return c.Ch == ' ' && c.Attr.Attr == 0 &&
		c.Attr.Foreground() == PaletteColor(7) && c.Attr.Background() == PaletteColor(0)
}
