package icyengine

import "golang.org/x/text/encoding/charmap"

// PcBoardParser decodes PCBoard's @-code dialect: CP437 text punctuated by
// `@X<fg><bg>` (single hex-digit color pairs), `@CLS@` (clear screen) and
// `@POS:<n>@` (absolute column move on the current row).
type PcBoardParser struct {
	state pcboardState
	tok   []byte
}

type pcboardState int

const (
	pcboardDefault pcboardState = iota
	pcboardGotAt
	pcboardXFg
	pcboardXBg
	pcboardToken // accumulating CLS or POS: until '@'
)

// NewPcBoardParser returns a ready-to-use PcBoardParser.
func NewPcBoardParser() *PcBoardParser { return &PcBoardParser{} }

// Parse implements CommandParser.
func (p *PcBoardParser) Parse(b []byte, sink CommandSink) {
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
		case pcboardDefault:
			if c == '@' {
				flush()
				p.state = pcboardGotAt
				continue
			}
			r, err := dec.Bytes([]byte{c})
			if err != nil || len(r) == 0 {
				continue
			}
			run += string(r)
		case pcboardGotAt:
			switch c {
			case 'X', 'x':
				p.state = pcboardXFg
			default:
				p.tok = []byte{c}
				p.state = pcboardToken
			}
		case pcboardXFg:
			p.tok = []byte{c}
			p.state = pcboardXBg
		case pcboardXBg:
			fg := hexDigit(p.tok[0])
			bg := hexDigit(c)
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{
				{Kind: SgrForeground, Color: PaletteColor(int32(fg))},
				{Kind: SgrBackground, Color: PaletteColor(int32(bg))},
			}})
			p.state = pcboardDefault
		case pcboardToken:
			if c == '@' {
				p.dispatchToken(sink)
				p.state = pcboardDefault
				continue
			}
			p.tok = append(p.tok, c)
		}
	}
}

func (p *PcBoardParser) dispatchToken(sink CommandSink) {
	tok := string(p.tok)
	switch {
	case tok == "CLS":
		sink.Emit(EraseInDisplay{Mode: EraseAll})
		sink.Emit(CursorPosition{Row: 1, Col: 1})
	case len(tok) > 4 && tok[:4] == "POS:":
		col := atoiSafe(tok[4:])
		sink.Emit(CursorHorizontalAbs{Col: col})
	}
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return 0
	}
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}

var _ CommandParser = (*PcBoardParser)(nil)
