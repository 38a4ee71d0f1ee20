package icyengine

import "golang.org/x/text/encoding/charmap"

// CtrlAParser decodes the Mystic/Ctrl-A BBS dialect: CP437 text with
// control bytes 0x01 ('^A') introducing a single following code byte, and
// 0x02 ('^B') issued bare as a screen-pause marker (no-op for rendering).
type CtrlAParser struct {
	gotCtrlA bool
}

// NewCtrlAParser returns a ready-to-use CtrlAParser.
func NewCtrlAParser() *CtrlAParser { return &CtrlAParser{} }

var ctrlAColorCodes = map[byte]int32{
	'K': 0, 'B': 1, 'G': 2, 'C': 3, 'R': 4, 'M': 5, 'Y': 6, 'W': 7,
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7,
}

// Parse implements CommandParser.
func (p *CtrlAParser) Parse(b []byte, sink CommandSink) {
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
		if p.gotCtrlA {
			p.gotCtrlA = false
			p.handleCode(c, sink)
			continue
		}
		switch c {
		case 0x01:
			flush()
			p.gotCtrlA = true
		case 0x02:
			// pause marker, no terminal effect
		default:
			r, err := dec.Bytes([]byte{c})
			if err != nil || len(r) == 0 {
				continue
			}
			run += string(r)
		}
	}
}

func (p *CtrlAParser) handleCode(c byte, sink CommandSink) {
	switch c {
	case 'C', 'c':
		sink.Emit(EraseInDisplay{Mode: EraseAll})
		sink.Emit(CursorPosition{Row: 1, Col: 1})
	case 'H', 'h':
		sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrBold}}})
	case 'N', 'n':
		sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrReset}}})
	default:
		if idx, ok := ctrlAColorCodes[c]; ok {
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{
				{Kind: SgrForeground, Color: PaletteColor(idx)},
			}})
		}
	}
}

var _ CommandParser = (*CtrlAParser)(nil)
