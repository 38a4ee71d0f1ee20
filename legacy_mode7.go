package icyengine

// Mode7Parser decodes BBC Micro/teletext Mode 7 control codes: bytes
// 128-159 select alpha/graphics colors and text attributes, plus a small
// set of VDU codes for cursor positioning, screen clearing and echoing a
// literal control byte.
type Mode7Parser struct {
	vduState mode7VduState
	tabX     int
}

type mode7VduState int

const (
	mode7Default mode7VduState = iota
	mode7VduCode
	mode7TabX
	mode7TabY
	mode7Literal
)

// NewMode7Parser returns a ready-to-use Mode7Parser.
func NewMode7Parser() *Mode7Parser { return &Mode7Parser{} }

var mode7AlphaColor = map[byte]int32{
	129: 1, 130: 2, 131: 3, 132: 4, 133: 5, 134: 6, 135: 7, // red..white
}

var mode7GraphicsColor = map[byte]int32{
	145: 1, 146: 2, 147: 3, 148: 4, 149: 5, 150: 6, 151: 7,
}

// Parse implements CommandParser.
func (p *Mode7Parser) Parse(b []byte, sink CommandSink) {
	for _, c := range b {
		switch p.vduState {
		case mode7TabX:
			p.tabX = int(c)
			p.vduState = mode7TabY
			continue
		case mode7TabY:
			sink.Emit(CursorPosition{Row: int(c) + 1, Col: p.tabX + 1})
			p.vduState = mode7Default
			continue
		case mode7Literal:
			sink.Emit(Printable{Text: string(rune(c))})
			p.vduState = mode7Default
			continue
		}

		switch {
		case c == 128: // black text / alpha black
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrForeground, Color: PaletteColor(0)}}})
		case c >= 129 && c <= 135:
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrForeground, Color: PaletteColor(mode7AlphaColor[c])}}})
		case c == 136: // flash
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrBlink}}})
		case c == 137: // steady
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrNotBlink}}})
		case c == 140: // normal height
		case c == 141: // double height
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrDoubleHeight}}})
		case c >= 145 && c <= 151:
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrForeground, Color: PaletteColor(mode7GraphicsColor[c])}}})
		case c == 156: // new background (black)
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrBackground, Color: PaletteColor(0)}}})
		case c == 157: // new background (current fg color)
		case c == 158: // conceal
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrConceal}}})
		case c == 20: // VDU 20: default colours
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrReset}}})
		case c == 31: // VDU 31: TAB x,y
			p.vduState = mode7TabX
		case c == 27: // VDU 27: literal byte follows
			p.vduState = mode7Literal
		case c == 30: // VDU 30: home
			sink.Emit(CursorPosition{Row: 1, Col: 1})
		case c == 12: // VDU 12: clear
			sink.Emit(EraseInDisplay{Mode: EraseAll})
		case c == 13:
			sink.Emit(CarriageReturn{})
		case c == 7:
			sink.Emit(Bell{})
		case c == 127: // destructive backspace
			sink.Emit(Backspace{})
			sink.Emit(Printable{Text: " "})
			sink.Emit(Backspace{})
		default:
			sink.Emit(Printable{Text: string(rune(c))})
		}
	}
}

var _ CommandParser = (*Mode7Parser)(nil)
