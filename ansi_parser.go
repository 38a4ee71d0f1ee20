package icyengine

import "strconv"

// ansiState is the ANSI/ECMA-48 parser's outer state (spec §4.2).
type ansiState int

const (
	stateDefault ansiState = iota
	stateGotEsc
	stateReadCSI
	stateReadDCS
	stateReadOSC
	stateReadAPC
	stateReadG0SCS
	stateReadG1SCS
	stateGotShiftOut // inside ANSI Music, collecting until 0x0E
)

// AnsiParser implements CommandParser for ANSI/ECMA-48, including its
// ANSI-Music sub-dialect. A zero AnsiParser is not usable; use
// NewAnsiParser. State is fully re-entrant across Parse calls (spec §4.1
// invariant #1).
type AnsiParser struct {
	state ansiState

	params    []int
	curParam  string
	private   byte // '?' / '>' / '=' prefix, or 0
	collected []byte

	stringBuf []byte // DCS/OSC/APC payload accumulator
	strKind   stringKind

	utf8Pending []byte

	MusicOption MusicOption
	musicBuf    []byte
}

// NewAnsiParser returns a parser in Default state with music arbitration
// disabled (MusicOff) unless configured otherwise.
func NewAnsiParser() *AnsiParser {
	return &AnsiParser{MusicOption: MusicOff}
}

const (
	escByte = 0x1B
	belByte = 0x07
	soByte  = 0x0E
)

// Parse consumes b, emitting commands to sink in byte-arrival order. It
// never panics.
func (p *AnsiParser) Parse(b []byte, sink CommandSink) {
	var textRun []byte
	flush := func() {
		if len(textRun) == 0 {
			return
		}
		decoded, pending := decodeUTF8WithPending(p.utf8Pending, textRun)
		p.utf8Pending = pending
		if decoded != "" {
			sink.Emit(Printable{Text: decoded})
		}
		textRun = textRun[:0]
	}

	for i := 0; i < len(b); i++ {
		c := b[i]

		if p.state == stateGotShiftOut {
			if c == soByte {
				p.finishMusic(sink)
				p.state = stateDefault
			} else {
				p.musicBuf = append(p.musicBuf, c)
			}
			continue
		}

		switch p.state {
		case stateDefault:
			switch {
			case c == escByte:
				flush()
				p.state = stateGotEsc
			case c == '\r':
				flush()
				sink.Emit(CarriageReturn{})
			case c == '\n':
				flush()
				sink.Emit(LineFeed{})
			case c == '\f':
				flush()
				sink.Emit(FormFeed{})
			case c == '\b':
				flush()
				sink.Emit(Backspace{})
			case c == '\t':
				flush()
				sink.Emit(Tab{})
			case c == belByte:
				flush()
				sink.Emit(Bell{})
			case c < 0x20:
				// other C0 controls: silently dropped, not printable.
				flush()
			default:
				textRun = append(textRun, c)
			}

		case stateGotEsc:
			p.handleEsc(c, sink)

		case stateReadCSI:
			p.handleCSIByte(c, sink)

		case stateReadDCS, stateReadOSC, stateReadAPC:
			p.handleStringByte(c, sink)

		case stateReadG0SCS, stateReadG1SCS:
			p.handleSCSByte(c, sink)
		}
	}
	flush()
}

func (p *AnsiParser) handleEsc(c byte, sink CommandSink) {
	switch c {
	case '[':
		p.params = p.params[:0]
		p.curParam = ""
		p.private = 0
		p.collected = p.collected[:0]
		p.state = stateReadCSI
	case 'P':
		p.stringBuf = p.stringBuf[:0]
		p.strKind = stringKindDCS
		p.state = stateReadDCS
	case ']':
		p.stringBuf = p.stringBuf[:0]
		p.strKind = stringKindOSC
		p.state = stateReadOSC
	case '_':
		p.stringBuf = p.stringBuf[:0]
		p.strKind = stringKindAPC
		p.state = stateReadAPC
	case '(':
		p.state = stateReadG0SCS
	case ')':
		p.state = stateReadG1SCS
	case '7':
		sink.Emit(SaveCursor{})
		p.state = stateDefault
	case '8':
		sink.Emit(RestoreCursor{})
		p.state = stateDefault
	case 'M':
		sink.Emit(ReverseIndex{})
		p.state = stateDefault
	case 'E':
		sink.Emit(NextLine{})
		p.state = stateDefault
	case 'D':
		sink.Emit(Index{})
		p.state = stateDefault
	case 'c':
		sink.Emit(ResetInitialState{})
		p.state = stateDefault
	default:
		sink.Emit(ParseError{Kind: ParseErrorKind{Command: "ESC " + string(c)}, Level: ErrorLevelWarning})
		p.state = stateDefault
	}
}

func (p *AnsiParser) handleSCSByte(c byte, sink CommandSink) {
	slot := 0
	if p.state == stateReadG1SCS {
		slot = 1
	}
	sink.Emit(SetCharset{Slot: slot, ID: c})
	p.state = stateDefault
}

func (p *AnsiParser) handleStringByte(c byte, sink CommandSink) {
	switch c {
	case belByte:
		p.dispatchString(sink)
		p.state = stateDefault
	case escByte:
		// Could be start of ST (ESC \); peephole: treat any ESC here as terminator.
		p.dispatchString(sink)
		p.state = stateDefault
	case '\\':
		p.dispatchString(sink)
		p.state = stateDefault
	default:
		p.stringBuf = append(p.stringBuf, c)
	}
}

func (p *AnsiParser) dispatchString(sink CommandSink) {
	payload := append([]byte(nil), p.stringBuf...)
	switch p.strKind {
	case stringKindDCS:
		sink.DeviceControl(payload)
	case stringKindOSC:
		sink.OperatingSystemCommand(payload)
	case stringKindAPC:
		sink.Aps(payload)
	}
}

// stringKind tracks which of DCS/OSC/APC is being accumulated, since
// the three share handleStringByte.
type stringKind int

const (
	stringKindDCS stringKind = iota
	stringKindOSC
	stringKindAPC
)

func (p *AnsiParser) handleCSIByte(c byte, sink CommandSink) {
	switch {
	case c >= '0' && c <= '9':
		p.curParam += string(c)
	case c == ';':
		p.pushParam()
	case c == '?' || c == '>' || c == '=' || c == ' ':
		p.private = c
	case c >= 0x40 && c <= 0x7E:
		p.pushParam()
		p.dispatchCSI(c, sink)
		p.state = stateDefault
	default:
		// Unexpected byte inside CSI; abort per spec §4.2 error policy.
		sink.Emit(ParseError{Kind: ParseErrorKind{Command: "CSI"}, Level: ErrorLevelWarning})
		p.state = stateDefault
	}
}

func (p *AnsiParser) pushParam() {
	if p.curParam == "" {
		p.params = append(p.params, -1) // -1 marks "default"
	} else {
		n, err := strconv.Atoi(p.curParam)
		if err != nil || n > 0xFFFF {
			n = 0xFFFF
		}
		p.params = append(p.params, n)
	}
	p.curParam = ""
}

func (p *AnsiParser) param(i, def int) int {
	if i >= len(p.params) || p.params[i] < 0 {
		return def
	}
	return p.params[i]
}

func (p *AnsiParser) dispatchCSI(final byte, sink CommandSink) {
	if p.private == '?' {
		p.dispatchDecPrivate(final, sink)
		return
	}

	if (final == 'M' || final == 'N') && entersMusic(p.MusicOption, final) {
		p.state = stateGotShiftOut
		p.musicBuf = p.musicBuf[:0]
		return
	}

	n := p.param(0, 1)
	switch final {
	case 'A':
		sink.Emit(CursorUp{N: n})
	case 'B':
		sink.Emit(CursorDown{N: n})
	case 'C':
		sink.Emit(CursorForward{N: n})
	case 'D':
		sink.Emit(CursorBack{N: n})
	case 'E':
		sink.Emit(CursorNextLine{N: n})
	case 'F':
		sink.Emit(CursorPreviousLine{N: n})
	case 'G':
		sink.Emit(CursorHorizontalAbs{Col: p.param(0, 1)})
	case 'H', 'f':
		sink.Emit(CursorPosition{Row: p.param(0, 1), Col: p.param(1, 1)})
	case 'J':
		sink.Emit(EraseInDisplay{Mode: eraseModeFrom(p.param(0, 0))})
	case 'K':
		sink.Emit(EraseInLine{Mode: eraseModeFrom(p.param(0, 0))})
	case 'L':
		sink.Emit(InsertLine{N: n})
	case 'M':
		sink.Emit(DeleteLine{N: n})
	case 'P':
		sink.Emit(DeleteChar{N: n})
	case 'S':
		sink.Emit(ScrollUp{N: n})
	case 'T':
		sink.Emit(ScrollDown{N: n})
	case 'X':
		sink.Emit(EraseChar{N: n})
	case 'Z':
		sink.Emit(CursorBackwardTab{N: n})
	case '`':
		sink.Emit(CursorHorizontalAbs{Col: p.param(0, 1)})
	case 'd':
		sink.Emit(CursorPosition{Row: p.param(0, 1), Col: -1})
	case 'b':
		sink.Emit(RepeatPrecedingChar{N: n})
	case '@':
		sink.Emit(InsertChar{N: n})
	case 'h':
		p.emitModes(sink, true)
	case 'l':
		p.emitModes(sink, false)
	case 'm':
		sink.Emit(SelectGraphicRendition{Attrs: p.decodeSGR()})
	case 'n':
		sink.Emit(DeviceStatusReport{N: p.param(0, 0)})
	case 'r':
		sink.Emit(SetTopBottomMargin{Top: p.param(0, 1), Bottom: p.param(1, 0)})
	case 's':
		if p.private == 0 {
			sink.Emit(SaveCursorPosition{})
		}
	case 'u':
		sink.Emit(RestoreCursorPosition{})
	case 'c':
		sink.Emit(RequestTerminalId{})
	case 'g':
		// Tab clear (TBC) is accepted and ignored: no command is emitted,
		// so tab stops are left unchanged.
	default:
		sink.Emit(ParseError{Kind: ParseErrorKind{Command: "CSI " + string(final)}, Level: ErrorLevelWarning})
	}
}

func eraseModeFrom(n int) EraseMode {
	switch n {
	case 1:
		return EraseToStart
	case 2:
		return EraseAll
	case 3:
		return EraseSavedLines
	default:
		return EraseToEnd
	}
}

func (p *AnsiParser) emitModes(sink CommandSink, set bool) {
	for _, n := range p.params {
		if n < 0 {
			continue
		}
		m := Mode(n)
		if set {
			sink.Emit(SetMode{Mode: m})
		} else {
			sink.Emit(ResetMode{Mode: m})
		}
	}
}

func (p *AnsiParser) dispatchDecPrivate(final byte, sink CommandSink) {
	switch final {
	case 'h', 'l':
		set := final == 'h'
		for _, n := range p.params {
			if n < 0 {
				continue
			}
			m := DecPrivateMode(n)
			if set {
				sink.Emit(DecPrivateModeSet{Mode: m})
			} else {
				sink.Emit(DecPrivateModeReset{Mode: m})
			}
		}
	case 's':
		sink.Emit(SetLeftRightMargin{Left: p.param(0, 1), Right: p.param(1, 0)})
	default:
		sink.Emit(ParseError{Kind: ParseErrorKind{Command: "CSI ? " + string(final)}, Level: ErrorLevelWarning})
	}
}

func (p *AnsiParser) decodeSGR() []SgrAttribute {
	if len(p.params) == 0 {
		return []SgrAttribute{{Kind: SgrReset}}
	}
	var out []SgrAttribute
	for i := 0; i < len(p.params); i++ {
		n := p.params[i]
		if n < 0 {
			n = 0
		}
		switch {
		case n == 0:
			out = append(out, SgrAttribute{Kind: SgrReset})
		case n == 1:
			out = append(out, SgrAttribute{Kind: SgrBold})
		case n == 2:
			out = append(out, SgrAttribute{Kind: SgrFaint})
		case n == 3:
			out = append(out, SgrAttribute{Kind: SgrItalic})
		case n == 4:
			out = append(out, SgrAttribute{Kind: SgrUnderline})
		case n == 5, n == 6:
			out = append(out, SgrAttribute{Kind: SgrBlink})
		case n == 7:
			out = append(out, SgrAttribute{Kind: SgrReverse})
		case n == 8:
			out = append(out, SgrAttribute{Kind: SgrConceal})
		case n == 9:
			out = append(out, SgrAttribute{Kind: SgrCrossedOut})
		case n == 21:
			out = append(out, SgrAttribute{Kind: SgrDoubleUnderline})
		case n == 22:
			out = append(out, SgrAttribute{Kind: SgrNotBoldFaint})
		case n == 23:
			out = append(out, SgrAttribute{Kind: SgrNotItalic})
		case n == 24:
			out = append(out, SgrAttribute{Kind: SgrNotUnderlined})
		case n == 25:
			out = append(out, SgrAttribute{Kind: SgrNotBlink})
		case n == 27:
			out = append(out, SgrAttribute{Kind: SgrNotReverse})
		case n == 28:
			out = append(out, SgrAttribute{Kind: SgrNotConceal})
		case n == 29:
			out = append(out, SgrAttribute{Kind: SgrNotCrossedOut})
		case n == 53:
			out = append(out, SgrAttribute{Kind: SgrOverline})
		case n == 55:
			out = append(out, SgrAttribute{Kind: SgrNotOverline})
		case n == 39:
			out = append(out, SgrAttribute{Kind: SgrDefaultForeground})
		case n == 49:
			out = append(out, SgrAttribute{Kind: SgrDefaultBackground})
		case n == 38 || n == 48:
			color, consumed := p.decodeExtendedColor(p.params[i+1:])
			kind := SgrForeground
			if n == 48 {
				kind = SgrBackground
			}
			out = append(out, SgrAttribute{Kind: kind, Color: color})
			i += consumed
		case n == 58:
			color, consumed := p.decodeExtendedColor(p.params[i+1:])
			out = append(out, SgrAttribute{Kind: SgrUnderlineColor, Color: color})
			i += consumed
		case n == 59:
			out = append(out, SgrAttribute{Kind: SgrDefaultUnderlineColor})
		case n >= 30 && n <= 37:
			out = append(out, SgrAttribute{Kind: SgrForeground, Color: PaletteColor(int32(n - 30))})
		case n >= 40 && n <= 47:
			out = append(out, SgrAttribute{Kind: SgrBackground, Color: PaletteColor(int32(n - 40))})
		case n >= 90 && n <= 97:
			out = append(out, SgrAttribute{Kind: SgrForeground, Color: PaletteColor(int32(n-90) + 8)})
		case n >= 100 && n <= 107:
			out = append(out, SgrAttribute{Kind: SgrBackground, Color: PaletteColor(int32(n-100) + 8)})
		}
	}
	return out
}

// finishMusic parses the accumulated ANSI Music buffer (the bytes between
// the entering CSI M/N and the terminating 0x0E) into an AnsiMusic value
// and emits it. Unrecognized tokens are skipped rather than aborting the
// whole sequence, matching the tolerant spirit of spec §9's legacy-format
// guidance.
func (p *AnsiParser) finishMusic(sink CommandSink) {
	music := AnsiMusic{}
	buf := p.musicBuf
	octave := 3
	noteLen := 4

	i := 0
	peekDigits := func() (int, bool) {
		start := i
		for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
			i++
		}
		if i == start {
			return 0, false
		}
		n := 0
		for _, d := range buf[start:i] {
			n = n*10 + int(d-'0')
		}
		return n, true
	}

	for i < len(buf) {
		c := buf[i]
		switch {
		case c == ' ':
			i++
		case c >= 'A' && c <= 'G':
			i++
			note := MusicNote{Name: c, Octave: octave, Length: noteLen}
			if i < len(buf) && (buf[i] == '#' || buf[i] == '+') {
				note.Sharp = true
				i++
			} else if i < len(buf) && buf[i] == '-' {
				note.Flat = true
				i++
			}
			if n, ok := peekDigits(); ok {
				note.Length = n
			}
			if i < len(buf) && buf[i] == '.' {
				note.Dotted = true
				i++
			}
			music.Actions = append(music.Actions, PlayNote{Note: note})
		case c == 'P' || c == 'p':
			i++
			length := noteLen
			if n, ok := peekDigits(); ok {
				length = n
			}
			music.Actions = append(music.Actions, PlayPause{Length: length})
		case c == 'O' || c == 'o':
			i++
			if n, ok := peekDigits(); ok {
				octave = n
				music.Actions = append(music.Actions, SetOctave{Octave: n})
			}
		case c == 'L' || c == 'l':
			i++
			if n, ok := peekDigits(); ok {
				noteLen = n
				music.Actions = append(music.Actions, SetNoteLength{Length: n})
			}
		case c == 'T' || c == 't':
			i++
			if n, ok := peekDigits(); ok {
				music.Actions = append(music.Actions, SetTempo{BeatsPerMinute: n})
			}
		case c == '<':
			i++
			if octave > 0 {
				octave--
			}
			music.Actions = append(music.Actions, SetOctave{Octave: octave})
		case c == '>':
			i++
			if octave < 6 {
				octave++
			}
			music.Actions = append(music.Actions, SetOctave{Octave: octave})
		case c == 'M' || c == 'm':
			i++
			if i < len(buf) {
				switch buf[i] {
				case 'L', 'l':
					music.Actions = append(music.Actions, SetMusicStyle{Style: MusicStyleLegato})
					i++
				case 'S', 's':
					music.Actions = append(music.Actions, SetMusicStyle{Style: MusicStyleStaccato})
					i++
				case 'N', 'n':
					music.Actions = append(music.Actions, SetMusicStyle{Style: MusicStyleNormal})
					i++
				case 'F', 'f':
					music.ForegroundAsVoice = true
					i++
				case 'B', 'b':
					music.ForegroundAsVoice = false
					i++
				}
			}
		default:
			i++
		}
	}

	sink.Emit(AnsiMusicCommand{Music: music})
}

// decodeExtendedColor reads the 5;n or 2;r;g;b subtype following an
// SGR 38/48/58 introducer, returning the color and how many extra params
// it consumed.
func (p *AnsiParser) decodeExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return Color{}, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) >= 2 {
			return ExtendedColor(int32(rest[1])), 2
		}
		return Color{}, 1
	case 2:
		if len(rest) >= 4 {
			return RGBColor(uint8(rest[1]), uint8(rest[2]), uint8(rest[3])), 4
		}
		return Color{}, len(rest)
	}
	return Color{}, 1
}
