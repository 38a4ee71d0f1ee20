package icyengine

// Vt52Parser decodes the VT52 escape-letter dialect (plus the TosWin2
// extensions 'b'/'c'/'d' for foreground/background/clear-to-bottom), used
// standalone and co-hosted inside IgsParser for mixed IGS/VT52 streams.
type Vt52Parser struct {
	state  vt52State
	pend   int
	params []byte
}

type vt52State int

const (
	vt52Default vt52State = iota
	vt52GotEsc
	vt52CursorRow
	vt52CursorCol
	vt52OneByteArg
)

// NewVt52Parser returns a ready-to-use Vt52Parser.
func NewVt52Parser() *Vt52Parser { return &Vt52Parser{} }

// Parse implements CommandParser.
func (p *Vt52Parser) Parse(b []byte, sink CommandSink) {
	for _, c := range b {
		switch p.state {
		case vt52Default:
			switch c {
			case 0x1b:
				p.state = vt52GotEsc
			case '\r':
				sink.Emit(CarriageReturn{})
			case '\n':
				sink.Emit(LineFeed{})
			case 0x08:
				sink.Emit(Backspace{})
			default:
				sink.Emit(Printable{Text: string(rune(c))})
			}
		case vt52GotEsc:
			p.handleEsc(c, sink)
		case vt52CursorRow:
			p.pend = int(c) - 31 // VT52 direct cursor addressing is offset by ' '+1
			p.state = vt52CursorCol
		case vt52CursorCol:
			sink.Emit(CursorPosition{Row: p.pend, Col: int(c) - 31})
			p.state = vt52Default
		case vt52OneByteArg:
			p.dispatchOneByteArg(c, sink)
			p.state = vt52Default
		}
	}
}

func (p *Vt52Parser) handleEsc(c byte, sink CommandSink) {
	p.state = vt52Default
	switch c {
	case 'A':
		sink.Emit(CursorUp{N: 1})
	case 'B':
		sink.Emit(CursorDown{N: 1})
	case 'C':
		sink.Emit(CursorForward{N: 1})
	case 'D':
		sink.Emit(CursorBack{N: 1})
	case 'H':
		sink.Emit(CursorPosition{Row: 1, Col: 1})
	case 'I':
		sink.Emit(ReverseIndex{})
	case 'J':
		sink.Emit(EraseInDisplay{Mode: EraseToEnd})
	case 'K':
		sink.Emit(EraseInLine{Mode: EraseToEnd})
	case 'Y':
		p.state = vt52CursorRow
	case 'b': // TosWin2: set foreground, one arg byte follows
		p.params = []byte{'b'}
		p.state = vt52OneByteArg
	case 'c': // TosWin2: set background, one arg byte follows
		p.params = []byte{'c'}
		p.state = vt52OneByteArg
	case 'd': // TosWin2: erase from start of screen to cursor
		sink.Emit(EraseInDisplay{Mode: EraseToStart})
	case 'E':
		sink.Emit(EraseInDisplay{Mode: EraseAll})
		sink.Emit(CursorPosition{Row: 1, Col: 1})
	default:
		sink.Emit(ParseError{Kind: ParseErrorKind{Command: "VT52 ESC " + string(c)}, Level: ErrorLevelWarning})
	}
}

func (p *Vt52Parser) dispatchOneByteArg(c byte, sink CommandSink) {
	idx := int32(c - 32)
	switch p.params[0] {
	case 'b':
		sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrForeground, Color: PaletteColor(idx)}}})
	case 'c':
		sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrBackground, Color: PaletteColor(idx)}}})
	}
}

var _ CommandParser = (*Vt52Parser)(nil)
