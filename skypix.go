package icyengine

// SkypixParser decodes SkyPix's `CSI <n>;<args…> !` extension: an ANSI CSI
// sequence whose intermediate byte is '!' instead of an ECMA-48 final
// byte, which is what distinguishes it from an ordinary CSI sequence.
// Anything that isn't a SkyPix CSI falls through to a co-hosted AnsiParser.
type SkypixParser struct {
	ansi *AnsiParser

	state  skypixState
	params []int
	cur    int
	curSet bool
}

type skypixState int

const (
	skypixOuter skypixState = iota
	skypixGotEsc
	skypixGotBracket
	skypixParams
)

// NewSkypixParser returns a ready-to-use SkypixParser.
func NewSkypixParser() *SkypixParser {
	return &SkypixParser{ansi: NewAnsiParser()}
}

// Parse implements CommandParser.
func (p *SkypixParser) Parse(b []byte, sink CommandSink) {
	var passBuf []byte
	flush := func() {
		if len(passBuf) > 0 {
			p.ansi.Parse(passBuf, sink)
			passBuf = nil
		}
	}

	for _, c := range b {
		switch p.state {
		case skypixOuter:
			if c == 0x1b {
				flush()
				p.state = skypixGotEsc
				continue
			}
			passBuf = append(passBuf, c)
		case skypixGotEsc:
			if c == '[' {
				p.state = skypixGotBracket
				continue
			}
			passBuf = append(passBuf, 0x1b, c)
			p.state = skypixOuter
		case skypixGotBracket:
			if c >= '0' && c <= '9' {
				p.params = nil
				p.cur = int(c - '0')
				p.curSet = true
				p.state = skypixParams
				continue
			}
			// Not a SkyPix sequence: replay as an ordinary CSI to the ANSI parser.
			passBuf = append(passBuf, 0x1b, '[', c)
			p.state = skypixOuter
		case skypixParams:
			switch {
			case c >= '0' && c <= '9':
				p.cur = p.cur*10 + int(c-'0')
				p.curSet = true
			case c == ';':
				p.pushParam()
			case c == '!':
				p.pushParam()
				p.dispatch(sink)
				p.state = skypixOuter
			default:
				// Not SkyPix's '!' terminator: replay the sequence as an
				// ordinary CSI to the ANSI parser.
				p.pushParam()
				passBuf = append(passBuf, 0x1b, '[')
				for i, v := range p.params {
					if i > 0 {
						passBuf = append(passBuf, ';')
					}
					passBuf = append(passBuf, itoa(v)...)
				}
				passBuf = append(passBuf, c)
				p.state = skypixOuter
			}
		}
	}
	flush()
}

func (p *SkypixParser) pushParam() {
	if p.curSet {
		p.params = append(p.params, p.cur)
	}
	p.cur = 0
	p.curSet = false
}

func (p *SkypixParser) param(i int) int {
	if i < 0 || i >= len(p.params) {
		return 0
	}
	return p.params[i]
}

// dispatch maps the leading parameter (the command selector `n`) onto a
// SkypixCommand variant built from the remaining args.
func (p *SkypixParser) dispatch(sink CommandSink) {
	if len(p.params) == 0 {
		return
	}
	n := p.params[0]
	args := p.params[1:]
	arg := func(i int) int {
		if i < 0 || i >= len(args) {
			return 0
		}
		return args[i]
	}
	need := func(count int) bool {
		if len(args) < count {
			sink.Emit(ParseError{Kind: ParseErrorKind{Command: "SkyPix"}, Level: ErrorLevelWarning})
			return false
		}
		return true
	}
	switch n {
	case 1: // set pen: pen,color
		if need(2) {
			sink.EmitSkypix(SkypixSetPen{Pen: arg(0), Color: arg(1)})
		}
	case 2: // move to: x,y
		if need(2) {
			sink.EmitSkypix(SkypixMoveTo{X: arg(0), Y: arg(1)})
		}
	case 3: // line to: x,y
		if need(2) {
			sink.EmitSkypix(SkypixLineTo{X: arg(0), Y: arg(1)})
		}
	case 4: // bar: x0,y0,x1,y1
		if need(4) {
			sink.EmitSkypix(SkypixBar{X0: arg(0), Y0: arg(1), X1: arg(2), Y1: arg(3)})
		}
	case 5: // ellipse: x,y,rx,ry
		if need(4) {
			sink.EmitSkypix(SkypixEllipse{X: arg(0), Y: arg(1), RX: arg(2), RY: arg(3)})
		}
	case 6: // filled ellipse: x,y,rx,ry
		if need(4) {
			sink.EmitSkypix(SkypixEllipse{X: arg(0), Y: arg(1), RX: arg(2), RY: arg(3), Filled: true})
		}
	case 7: // flood fill: x,y
		if need(2) {
			sink.EmitSkypix(SkypixFloodFill{X: arg(0), Y: arg(1)})
		}
	case 8: // grab brush: x0,y0,x1,y1,name-id (encoded as a numeric id)
		if need(4) {
			sink.EmitSkypix(SkypixGrabBrush{X0: arg(0), Y0: arg(1), X1: arg(2), Y1: arg(3), Name: itoa(arg(4))})
		}
	case 9: // use brush: x,y,name-id
		if need(2) {
			sink.EmitSkypix(SkypixUseBrush{X: arg(0), Y: arg(1), Name: itoa(arg(2))})
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

var _ CommandParser = (*SkypixParser)(nil)
