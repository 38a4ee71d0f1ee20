package icyengine

// RipParser decodes RIPscrip (`!|<level><cmd><base36-params>`) envelopes
// embedded in an otherwise-ANSI byte stream, co-hosting an AnsiParser for
// everything that isn't a RIP envelope. RIP recognition is toggled only
// through SetEnabled; an `ESC [ <n> !` sequence is not intercepted and
// reaches the co-hosted AnsiParser. While disabled, `!|` sequences pass
// through as ordinary printable text.
type RipParser struct {
	ansi    *AnsiParser
	enabled bool

	state   ripState
	bangs   int
	level   int
	cmd     byte
	params  []int64
	cur     int64
	curSet  bool
	escaped bool
}

type ripState int

const (
	ripOuter ripState = iota
	ripGotBang
	ripGotPipe
	ripCommand
	ripParams
)

// NewRipParser returns a RipParser with RIP recognition enabled.
func NewRipParser() *RipParser {
	return &RipParser{ansi: NewAnsiParser(), enabled: true}
}

// SetEnabled toggles RIP envelope recognition.
func (p *RipParser) SetEnabled(enabled bool) { p.enabled = enabled }

// Enabled reports whether RIP envelope recognition is active.
func (p *RipParser) Enabled() bool { return p.enabled }

// Parse implements CommandParser.
func (p *RipParser) Parse(b []byte, sink CommandSink) {
	var ansiBuf []byte
	flushAnsi := func() {
		if len(ansiBuf) > 0 {
			p.ansi.Parse(ansiBuf, sink)
			ansiBuf = nil
		}
	}

	for _, c := range b {
		if !p.enabled {
			ansiBuf = append(ansiBuf, c)
			continue
		}
		switch p.state {
		case ripOuter:
			if c == '!' {
				flushAnsi()
				p.state = ripGotBang
				p.bangs = 1
				continue
			}
			ansiBuf = append(ansiBuf, c)
		case ripGotBang:
			if c == '!' {
				p.bangs++
				continue
			}
			if c == '|' {
				p.state = ripGotPipe
				continue
			}
			// Not a RIP envelope: replay the bangs and this byte as text.
			for i := 0; i < p.bangs; i++ {
				ansiBuf = append(ansiBuf, '!')
			}
			ansiBuf = append(ansiBuf, c)
			p.state = ripOuter
		case ripGotPipe:
			if c == '#' {
				p.state = ripOuter // no-more-RIP marker
				continue
			}
			if c == '1' || c == '9' {
				p.level = int(c - '0')
				p.state = ripCommand
				continue
			}
			p.level = 0
			p.cmd = c
			p.params = nil
			p.cur = 0
			p.curSet = false
			p.state = ripParams
		case ripCommand:
			p.cmd = c
			p.params = nil
			p.cur = 0
			p.curSet = false
			p.state = ripParams
		case ripParams:
			p.consumeParamByte(c, sink)
		}
	}
	flushAnsi()
}

func (p *RipParser) consumeParamByte(c byte, sink CommandSink) {
	if p.escaped {
		p.escaped = false
		return
	}
	switch {
	case c == '\\':
		p.escaped = true
	case c == ',':
		p.pushParam()
	case isBase36(c):
		p.cur = p.cur*36 + base36Value(c)
		p.curSet = true
	case c == '\r' || c == '\n' || c == '!':
		p.pushParam()
		p.dispatch(sink)
		p.state = ripOuter
		if c == '!' {
			p.state = ripGotBang
			p.bangs = 1
		}
	default:
		p.pushParam()
		p.dispatch(sink)
		p.state = ripOuter
	}
}

func (p *RipParser) pushParam() {
	if p.curSet {
		p.params = append(p.params, p.cur)
	}
	p.cur = 0
	p.curSet = false
}

func isBase36(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func base36Value(c byte) int64 {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0')
	case c >= 'A' && c <= 'Z':
		return int64(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int64(c-'a') + 10
	default:
		return 0
	}
}

func (p *RipParser) param(i int) int {
	if i < 0 || i >= len(p.params) {
		return 0
	}
	return int(p.params[i])
}

// dispatch maps a single RIP command letter onto a RipCommand variant,
// reporting malformed parameter counts through sink.Emit(ParseError{...})
// rather than emitting a partial command.
func (p *RipParser) dispatch(sink CommandSink) {
	need := func(n int) bool {
		if len(p.params) < n {
			sink.Emit(ParseError{Kind: ParseErrorKind{Command: "RIP " + string(p.cmd)}, Level: ErrorLevelWarning})
			return false
		}
		return true
	}
	switch p.cmd {
	case 'X': // pixel: x,y
		if need(2) {
			sink.EmitRip(RipPixel{X: p.param(0), Y: p.param(1)})
		}
	case 'L': // line: x0,y0,x1,y1
		if need(4) {
			sink.EmitRip(RipLine{X0: p.param(0), Y0: p.param(1), X1: p.param(2), Y1: p.param(3)})
		}
	case 'R': // rectangle: x0,y0,x1,y1
		if need(4) {
			sink.EmitRip(RipRectangle{X0: p.param(0), Y0: p.param(1), X1: p.param(2), Y1: p.param(3)})
		}
	case 'B': // bar (filled rectangle): x0,y0,x1,y1
		if need(4) {
			sink.EmitRip(RipBar{X0: p.param(0), Y0: p.param(1), X1: p.param(2), Y1: p.param(3)})
		}
	case 'C': // circle: x,y,radius
		if need(3) {
			sink.EmitRip(RipCircle{X: p.param(0), Y: p.param(1), Radius: p.param(2)})
		}
	case 'O': // oval: x,y,xrad,yrad
		if need(4) {
			sink.EmitRip(RipOval{X: p.param(0), Y: p.param(1), XRadius: p.param(2), YRadius: p.param(3)})
		}
	case 'o': // filled oval: x,y,xrad,yrad
		if need(4) {
			sink.EmitRip(RipFilledOval{X: p.param(0), Y: p.param(1), XRadius: p.param(2), YRadius: p.param(3)})
		}
	case 'F': // flood fill: x,y,border-color
		if need(2) {
			sink.EmitRip(RipFill{X: p.param(0), Y: p.param(1), Border: p.param(2)})
		}
	case 'Z': // set color: index
		if need(1) {
			sink.EmitRip(RipColor{Index: p.param(0)})
		}
	case 'V': // viewport: x0,y0,x1,y1
		if need(4) {
			sink.EmitRip(RipViewport{X0: p.param(0), Y0: p.param(1), X1: p.param(2), Y1: p.param(3)})
		}
	case 'W': // write mode
		if need(1) {
			sink.EmitRip(RipWriteMode{Mode: p.param(0)})
		}
	}
}

var _ CommandParser = (*RipParser)(nil)
