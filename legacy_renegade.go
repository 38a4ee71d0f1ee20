package icyengine

import "golang.org/x/text/encoding/charmap"

// RenegadeParser decodes the Renegade BBS pipe-code dialect: CP437 text
// with `|` introducing a two-digit decimal color code (00-23). Codes 00-15
// select one of the 16 foreground colors; 16-23 select one of the 8
// background colors.
type RenegadeParser struct {
	state renegadeState
	digit byte
}

type renegadeState int

const (
	renegadeDefault renegadeState = iota
	renegadeGotPipe
	renegadeFirstDigit
)

// NewRenegadeParser returns a ready-to-use RenegadeParser.
func NewRenegadeParser() *RenegadeParser { return &RenegadeParser{} }

// Parse implements CommandParser.
func (p *RenegadeParser) Parse(b []byte, sink CommandSink) {
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
		case renegadeDefault:
			if c == '|' {
				flush()
				p.state = renegadeGotPipe
				continue
			}
			r, err := dec.Bytes([]byte{c})
			if err != nil || len(r) == 0 {
				continue
			}
			run += string(r)
		case renegadeGotPipe:
			if c < '0' || c > '9' {
				// Not a valid code: emit the pipe and this byte literally.
				sink.Emit(Printable{Text: "|"})
				p.state = renegadeDefault
				r, err := dec.Bytes([]byte{c})
				if err == nil && len(r) > 0 {
					sink.Emit(Printable{Text: string(r)})
				}
				continue
			}
			p.digit = c
			p.state = renegadeFirstDigit
		case renegadeFirstDigit:
			if c < '0' || c > '9' {
				// Not a valid code: emit the pipe, the digit and this byte literally.
				sink.Emit(Printable{Text: "|" + string(p.digit)})
				p.state = renegadeDefault
				if c == '|' {
					p.state = renegadeGotPipe
					continue
				}
				r, err := dec.Bytes([]byte{c})
				if err == nil && len(r) > 0 {
					sink.Emit(Printable{Text: string(r)})
				}
				continue
			}
			code := int(p.digit-'0')*10 + int(c-'0')
			p.emitCode(code, sink)
			p.state = renegadeDefault
		}
	}
}

func (p *RenegadeParser) emitCode(code int, sink CommandSink) {
	switch {
	case code >= 0 && code <= 15:
		sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{
			{Kind: SgrForeground, Color: PaletteColor(int32(code))},
		}})
	case code >= 16 && code <= 23:
		sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{
			{Kind: SgrBackground, Color: PaletteColor(int32(code - 16))},
		}})
	default:
		// Out-of-range code: pass it through as literal text.
		sink.Emit(Printable{Text: "|" + string([]byte{byte('0' + code/10), byte('0' + code%10)})})
	}
}

var _ CommandParser = (*RenegadeParser)(nil)
