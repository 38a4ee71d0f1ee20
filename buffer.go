package icyengine

// BufferType selects the character-set/blink semantics of a Buffer's
// content; it governs blink cadence and is consulted by font lookup.
type BufferType int

const (
	BufferTypeCP437 BufferType = iota
	BufferTypeUnicode
	BufferTypePetscii
	BufferTypeAtascii
	BufferTypeViewdata
)

// BlinkRate returns the millisecond period a renderer should use to
// alternate blinking cells for this buffer type.
func (t BufferType) BlinkRate() int {
	switch t {
	case BufferTypePetscii, BufferTypeAtascii:
		return 400
	default:
		return 466
	}
}

// LayerMode selects what a layer's writes affect.
type LayerMode int

const (
	LayerModeNormal LayerMode = iota
	LayerModeChars
	LayerModeAttributes
)

// LayerRole distinguishes ordinary content layers from transient
// editor-owned overlays.
type LayerRole int

const (
	LayerRoleNormal LayerRole = iota
	LayerRolePastePreview
	LayerRolePasteImage
	LayerRoleImage
)

// RGBAQuad is a raw pixel quad, used by Sixel's decoded pixel store.
type RGBAQuad struct {
	R, G, B, A uint8
}

// Sixel is a raster image anchored at a cell position in a Layer, owning
// its own decoded pixel data.
type Sixel struct {
	Position Position
	Width    int
	Height   int
	Pixels   []RGBAQuad
}

// HyperLink anchors a clickable URL to a rectangular cell range within a
// layer.
type HyperLink struct {
	URL  string
	Area Rectangle
}

// LayerProperties holds the editor-facing metadata of a Layer that is not
// itself cell content.
type LayerProperties struct {
	Title              string
	Tint               Color
	Visible            bool
	Locked             bool
	PositionLocked     bool
	AlphaChannel       bool
	AlphaChannelLocked bool
	Mode               LayerMode
	Offset             Position
}

// NewLayerProperties returns visible, unlocked, Normal-mode properties at
// the origin.
func NewLayerProperties(title string) LayerProperties {
	return LayerProperties{
		Title:   title,
		Visible: true,
		Mode:    LayerModeNormal,
	}
}

// Layer owns a dense grid of Lines plus any sixel and hyperlink overlays
// anchored within it. Layers have no back-pointer to their owning Buffer;
// identity from outside is (layer index, position).
type Layer struct {
	Properties      LayerProperties
	size            Size
	lines           []Line
	sixels          []Sixel
	hyperlinks      []HyperLink
	Transparency    uint8
	Role            LayerRole
	DefaultFontPage uint8
}

// NewLayer returns an empty layer of the given size.
func NewLayer(title string, size Size) *Layer {
	return &Layer{
		Properties: NewLayerProperties(title),
		size:       size,
	}
}

func (l *Layer) Size() Size { return l.size }

func (l *Layer) lineAt(y int) *Line {
	for y >= len(l.lines) {
		l.lines = append(l.lines, NewLine())
	}
	return &l.lines[y]
}

// GetChar reads the cell at (x,y). Positions outside the layer's lines
// (including negative y) return an invisible char; reads never write.
func (l *Layer) GetChar(x, y int) AttributedChar {
	if y < 0 || y >= len(l.lines) || x < 0 {
		return InvisibleChar()
	}
	return l.lines[y].GetChar(x)
}

// SetChar writes ch at (x,y). A no-op if the layer is locked or invisible.
// When alpha_channel and alpha_channel_locked are both set, writes to a
// cell that was previously invisible are refused (spec §3 Layer).
func (l *Layer) SetChar(x, y int, ch AttributedChar) {
	if l.Properties.Locked || !l.Properties.Visible {
		return
	}
	if x < 0 || y < 0 {
		return
	}
	if l.Properties.AlphaChannel && l.Properties.AlphaChannelLocked {
		if l.GetChar(x, y).IsInvisible() {
			return
		}
	}
	line := l.lineAt(y)
	line.SetChar(x, ch)
}

func (l *Layer) ClearLine(y int) {
	if l.Properties.Locked || !l.Properties.Visible {
		return
	}
	if y < 0 || y >= len(l.lines) {
		return
	}
	l.lines[y].Clear()
}

func (l *Layer) Sixels() []Sixel          { return l.sixels }
func (l *Layer) AddSixel(s Sixel)         { l.sixels = append(l.sixels, s) }
func (l *Layer) Hyperlinks() []HyperLink  { return l.hyperlinks }
func (l *Layer) AddHyperlink(h HyperLink) { l.hyperlinks = append(l.hyperlinks, h) }

func (l *Layer) blankLine(fill AttributedChar) Line {
	blank := NewLine()
	for x := 0; x < l.size.Width; x++ {
		blank.SetChar(x, fill)
	}
	return blank
}

// InsertLineAt inserts a blank line at row y, shifting rows [y,bottom) down
// by one; the row scrolled past bottom-1 is dropped.
func (l *Layer) InsertLineAt(y, top, bottom int, fill AttributedChar) {
	if y < top || y >= bottom {
		return
	}
	l.lineAt(bottom - 1)
	for row := bottom - 1; row > y; row-- {
		l.lines[row] = *l.lineAt(row - 1)
	}
	l.lines[y] = l.blankLine(fill)
}

// DeleteLineAt removes the line at row y, shifting rows (y,bottom) up by
// one, filling the newly exposed bottom row with fill.
func (l *Layer) DeleteLineAt(y, top, bottom int, fill AttributedChar) {
	if y < top || y >= bottom {
		return
	}
	for row := y; row < bottom-1; row++ {
		l.lines[row] = *l.lineAt(row + 1)
	}
	if bottom-1 >= 0 {
		l.lineAt(bottom - 1)
		l.lines[bottom-1] = l.blankLine(fill)
	}
}

// Clone deep-copies the layer, including its line grid.
func (l *Layer) Clone() *Layer {
	n := &Layer{
		Properties:      l.Properties,
		size:            l.size,
		Transparency:    l.Transparency,
		Role:            l.Role,
		DefaultFontPage: l.DefaultFontPage,
	}
	n.lines = make([]Line, len(l.lines))
	for i := range l.lines {
		n.lines[i] = l.lines[i].Clone()
	}
	n.sixels = append([]Sixel(nil), l.sixels...)
	n.hyperlinks = append([]HyperLink(nil), l.hyperlinks...)
	return n
}

// Buffer is the top-level text/graphics document: an ordered stack of
// Layers sharing one palette, font table, and terminal state.
type Buffer struct {
	layers        []Layer
	palette       *Palette
	fonts         map[uint8]*BitFont
	BufferType    BufferType
	IceMode       IceMode
	TerminalState *TerminalState
	width         int
	height        int
	Sauce         *SauceRecord
}

// NewBuffer returns a single-layer CP437 buffer of the given size, a
// default DOS palette, and fresh terminal state.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		palette:       NewDOSPalette(),
		fonts:         make(map[uint8]*BitFont),
		BufferType:    BufferTypeCP437,
		TerminalState: NewTerminalState(width, height),
		width:         width,
		height:        height,
	}
	b.layers = []Layer{*NewLayer("Background", NewSize(width, height))}
	return b
}

func (b *Buffer) Width() int            { return b.width }
func (b *Buffer) Height() int           { return b.height }
func (b *Buffer) Palette() *Palette     { return b.palette }
func (b *Buffer) SetPalette(p *Palette) { b.palette = p }

func (b *Buffer) Layers() []Layer { return b.layers }
func (b *Buffer) Layer(i int) *Layer {
	if i < 0 || i >= len(b.layers) {
		return nil
	}
	return &b.layers[i]
}
func (b *Buffer) AddLayer(l Layer) { b.layers = append(b.layers, l) }

// PrimaryLayer returns the first (bottommost/background) layer, which the
// buffer executor writes to by default.
func (b *Buffer) PrimaryLayer() *Layer {
	if len(b.layers) == 0 {
		b.layers = append(b.layers, *NewLayer("Background", NewSize(b.width, b.height)))
	}
	return &b.layers[0]
}

func (b *Buffer) Font(slot uint8) *BitFont        { return b.fonts[slot] }
func (b *Buffer) SetFont(slot uint8, f *BitFont)  { b.fonts[slot] = f }

// GetChar reads the composited cell at (x,y) across visible layers,
// topmost non-transparent cell wins.
func (b *Buffer) GetChar(x, y int) AttributedChar {
	for i := len(b.layers) - 1; i >= 0; i-- {
		l := &b.layers[i]
		if !l.Properties.Visible {
			continue
		}
		ch := l.GetChar(x-l.Properties.Offset.X, y-l.Properties.Offset.Y)
		if !ch.IsTransparent() {
			return ch
		}
	}
	return InvisibleChar()
}

// UpdateSixelThreads is the cooperative checkpoint a host calls
// periodically while a long sixel decode runs in the background; the core
// itself has no threads of its own, so this is a no-op placeholder for
// hosts that drive decode work out-of-band.
func (b *Buffer) UpdateSixelThreads() {}
