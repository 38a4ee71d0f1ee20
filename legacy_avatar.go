package icyengine

import "golang.org/x/text/encoding/charmap"

// AvatarParser decodes the AVATAR/0+ BBS control dialect: CP437 text with a
// single escape byte (0x16) introducing a handful of cursor and color
// commands. Unlike ANSI, AVATAR has no CSI grammar: every control sequence
// is a fixed-length run of bytes following 0x16.
type AvatarParser struct {
	state   avatarState
	pending []byte
}

type avatarState int

const (
	avatarDefault avatarState = iota
	avatarGotEscape
	avatarColorAttr
	avatarRepeatChar
	avatarRepeatCount
	avatarCursorRow
	avatarCursorCol
)

// NewAvatarParser returns a ready-to-use AvatarParser.
func NewAvatarParser() *AvatarParser { return &AvatarParser{} }

// Parse implements CommandParser.
func (p *AvatarParser) Parse(b []byte, sink CommandSink) {
	dec := charmap.CodePage437.NewDecoder()
	var run string
	flush := func() {
		if run != "" {
			sink.Emit(Printable{Text: run})
			run = ""
		}
	}
	defer flush()
	for _, c := range b {
		switch p.state {
		case avatarDefault:
			if c == 0x16 {
				flush()
				p.state = avatarGotEscape
				continue
			}
			r, err := dec.Bytes([]byte{c})
			if err != nil || len(r) == 0 {
				continue
			}
			run += string(r)
		case avatarGotEscape:
			p.handleEscape(c, sink)
		case avatarColorAttr:
			p.emitColorAttr(c, sink)
			p.state = avatarDefault
		case avatarRepeatChar:
			p.pending = []byte{c}
			p.state = avatarRepeatCount
		case avatarRepeatCount:
			p.emitRepeat(int(c), sink)
			p.state = avatarDefault
		case avatarCursorRow:
			p.pending = []byte{c}
			p.state = avatarCursorCol
		case avatarCursorCol:
			sink.Emit(CursorPosition{Row: int(p.pending[0]), Col: int(c)})
			p.state = avatarDefault
		}
	}
}

// handleEscape dispatches on the byte following 0x16.
func (p *AvatarParser) handleEscape(c byte, sink CommandSink) {
	switch c {
	case 1: // Attribute byte follows
		p.state = avatarColorAttr
	case 2: // Clear screen, home cursor
		sink.Emit(EraseInDisplay{Mode: EraseAll})
		sink.Emit(CursorPosition{Row: 1, Col: 1})
		p.state = avatarDefault
	case 3: // Cursor up
		sink.Emit(CursorUp{N: 1})
		p.state = avatarDefault
	case 4: // Cursor down
		sink.Emit(CursorDown{N: 1})
		p.state = avatarDefault
	case 5: // Cursor right
		sink.Emit(CursorForward{N: 1})
		p.state = avatarDefault
	case 6: // Cursor left
		sink.Emit(CursorBack{N: 1})
		p.state = avatarDefault
	case 7: // Repeat next character N times
		p.state = avatarRepeatChar
	case 8: // Cursor position follows (row, col)
		p.state = avatarCursorRow
	default:
		p.state = avatarDefault
	}
}

// emitColorAttr decodes AVATAR's packed fg/bg attribute byte (same nibble
// layout as the legacy DOS attribute byte) into an SGR command.
func (p *AvatarParser) emitColorAttr(b byte, sink CommandSink) {
	fg := PaletteColor(int32(b & 0x0F))
	bg := PaletteColor(int32((b >> 4) & 0x07))
	attrs := []SgrAttribute{
		{Kind: SgrForeground, Color: fg},
		{Kind: SgrBackground, Color: bg},
	}
	if b&0x80 != 0 {
		attrs = append(attrs, SgrAttribute{Kind: SgrBlink})
	}
	sink.Emit(SelectGraphicRendition{Attrs: attrs})
}

func (p *AvatarParser) emitRepeat(count int, sink CommandSink) {
	if len(p.pending) == 0 || count <= 0 {
		return
	}
	dec := charmap.CodePage437.NewDecoder()
	r, err := dec.Bytes(p.pending)
	if err != nil || len(r) == 0 {
		return
	}
	text := ""
	for i := 0; i < count; i++ {
		text += string(r)
	}
	sink.Emit(Printable{Text: text})
}

var _ CommandParser = (*AvatarParser)(nil)
