package icyengine

// PetsciiParser decodes the Commodore 64 PETSCII control set: color codes,
// reverse-video toggle (RVS ON/OFF), cursor motion, clear/home, and the
// shifted/unshifted character-set swap bytes. Character-set swapping only
// affects how codes 0xC1-0xDA (shifted-mode letters) are mapped; this
// parser tracks it but renders everything as its unshifted rune, since the
// buffer model has no separate PETSCII glyph table.
type PetsciiParser struct {
	shifted bool
	reverse bool
}

// NewPetsciiParser returns a ready-to-use PetsciiParser.
func NewPetsciiParser() *PetsciiParser { return &PetsciiParser{} }

var petsciiColor = map[byte]int32{
	0x05: 1, // white
	0x1c: 2, // red
	0x1e: 5, // green
	0x1f: 6, // blue
	0x81: 8, // orange
	0x90: 0, // black
	0x95: 9, // brown
	0x96: 10, // light red
	0x97: 11, // dark grey
	0x98: 12, // grey
	0x99: 13, // light green
	0x9a: 14, // light blue
	0x9b: 15, // light grey
	0x9c: 4, // purple
	0x9e: 7, // yellow
	0x9f: 3, // cyan
}

// Parse implements CommandParser.
func (p *PetsciiParser) Parse(b []byte, sink CommandSink) {
	for _, c := range b {
		if color, ok := petsciiColor[c]; ok {
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrForeground, Color: PaletteColor(color)}}})
			continue
		}
		switch c {
		case 0x12: // RVS ON
			p.reverse = true
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrReverse}}})
		case 0x92: // RVS OFF
			p.reverse = false
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrNotReverse}}})
		case 0x0e: // switch to lower-case/upper-case (shifted) charset
			p.shifted = true
		case 0x8e: // switch to upper-case/graphics (unshifted) charset
			p.shifted = false
		case 0x93: // clear screen
			sink.Emit(EraseInDisplay{Mode: EraseAll})
			sink.Emit(CursorPosition{Row: 1, Col: 1})
		case 0x13: // home
			sink.Emit(CursorPosition{Row: 1, Col: 1})
		case 0x11: // cursor down
			sink.Emit(CursorDown{N: 1})
		case 0x91: // cursor up
			sink.Emit(CursorUp{N: 1})
		case 0x1d: // cursor right
			sink.Emit(CursorForward{N: 1})
		case 0x9d: // cursor left
			sink.Emit(CursorBack{N: 1})
		case 0x14: // delete
			sink.Emit(Backspace{})
		case 0x0d: // CR
			sink.Emit(CarriageReturn{})
			sink.Emit(LineFeed{})
		default:
			sink.Emit(Printable{Text: string(rune(c))})
		}
	}
}

var _ CommandParser = (*PetsciiParser)(nil)
