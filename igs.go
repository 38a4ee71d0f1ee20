package icyengine

// IgsParser decodes IGS graphics sequences (`G#<cmd><params,...>:`)
// co-hosted with a VT52 sub-parser, per spec §4.4: any byte that doesn't
// start an IGS command is handed to the VT52 parser so mixed IGS/VT52
// streams are handled by a single Parse call.
type IgsParser struct {
	vt52 *Vt52Parser

	state  igsState
	cmd    byte
	params []int
	cur    int
	curSet bool
}

type igsState int

const (
	igsOuter igsState = iota
	igsGotG
	igsCommand
	igsParams
)

// NewIgsParser returns a ready-to-use IgsParser.
func NewIgsParser() *IgsParser {
	return &IgsParser{vt52: NewVt52Parser()}
}

// Parse implements CommandParser.
func (p *IgsParser) Parse(b []byte, sink CommandSink) {
	var passBuf []byte
	flush := func() {
		if len(passBuf) > 0 {
			p.vt52.Parse(passBuf, sink)
			passBuf = nil
		}
	}

	for _, c := range b {
		switch p.state {
		case igsOuter:
			if c == 'G' {
				flush()
				p.state = igsGotG
				continue
			}
			passBuf = append(passBuf, c)
		case igsGotG:
			if c == '#' {
				p.state = igsCommand
				continue
			}
			passBuf = append(passBuf, 'G', c)
			p.state = igsOuter
		case igsCommand:
			p.cmd = c
			p.params = nil
			p.cur = 0
			p.curSet = false
			p.state = igsParams
		case igsParams:
			switch {
			case c >= '0' && c <= '9':
				p.cur = p.cur*10 + int(c-'0')
				p.curSet = true
			case c == ',':
				p.pushParam()
			case c == ':':
				p.pushParam()
				p.dispatch(sink)
				p.state = igsOuter
			default:
				// Malformed terminator: abandon this command.
				sink.Emit(ParseError{Kind: ParseErrorKind{Command: "IGS " + string(p.cmd)}, Level: ErrorLevelWarning})
				p.state = igsOuter
			}
		}
	}
	flush()
}

func (p *IgsParser) pushParam() {
	if p.curSet {
		p.params = append(p.params, p.cur)
	}
	p.cur = 0
	p.curSet = false
}

func (p *IgsParser) param(i int) int {
	if i < 0 || i >= len(p.params) {
		return 0
	}
	return p.params[i]
}

func (p *IgsParser) dispatch(sink CommandSink) {
	need := func(n int) bool {
		if len(p.params) < n {
			sink.Emit(ParseError{Kind: ParseErrorKind{Command: "IGS " + string(p.cmd)}, Level: ErrorLevelWarning})
			return false
		}
		return true
	}
	switch p.cmd {
	case 'C': // set color: index
		if need(1) {
			sink.EmitIgs(IgsSetColor{Index: p.param(0)})
		}
	case 'L': // line: x0,y0,x1,y1
		if need(4) {
			sink.EmitIgs(IgsLine{X0: p.param(0), Y0: p.param(1), X1: p.param(2), Y1: p.param(3)})
		}
	case 'B': // box: x0,y0,x1,y1
		if need(4) {
			sink.EmitIgs(IgsBox{X0: p.param(0), Y0: p.param(1), X1: p.param(2), Y1: p.param(3)})
		}
	case 'F': // filled box: x0,y0,x1,y1
		if need(4) {
			sink.EmitIgs(IgsBox{X0: p.param(0), Y0: p.param(1), X1: p.param(2), Y1: p.param(3), Filled: true})
		}
	case 'K': // circle: x,y,radius
		if need(3) {
			sink.EmitIgs(IgsCircle{X: p.param(0), Y: p.param(1), Radius: p.param(2)})
		}
	case 'P': // plot: x,y
		if need(2) {
			sink.EmitIgs(IgsPlot{X: p.param(0), Y: p.param(1)})
		}
	case 'X': // extended sub-command: n,args...
		if need(1) {
			sink.EmitIgs(IgsExtended{SubCommand: p.param(0), Args: append([]int(nil), p.params[1:]...)})
		}
	}
}

var _ CommandParser = (*IgsParser)(nil)
