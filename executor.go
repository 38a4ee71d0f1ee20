package icyengine

import (
	stdcolor "image/color"
	"sync"
)

func quadFromRGBA(c stdcolor.RGBA) RGBAQuad {
	return RGBAQuad{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Terminal is the buffer executor: it owns a Buffer, a Caret, and applies
// the TerminalCommand stream a CommandParser emits, implementing
// CommandSink itself so a parser can drive it directly. Terminal is safe
// for one writer and any number of concurrent readers (Buffer/Caret
// accessors take a read lock); Emit takes the write lock.
type Terminal struct {
	mu sync.RWMutex

	buffer *Buffer
	caret  *Caret
	saved  *SavedCursor

	musicOption MusicOption
	ripEnabled  bool

	errorHook        func(ParseErrorKind, ErrorLevel)
	musicHook        func(AnsiMusic)
	deviceStringHook func(DeviceString)
	ripHook          func(RipCommand)
	skypixHook       func(SkypixCommand)
	igsHook          func(IgsCommand)

	images *ImageStore
	paint  *SkyPaint
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithSize overrides the default 80x25 buffer size.
func WithSize(width, height int) Option {
	return func(t *Terminal) {
		t.buffer = NewBuffer(width, height)
	}
}

// WithMusicOption sets the ANSI Music arbitration policy.
func WithMusicOption(opt MusicOption) Option {
	return func(t *Terminal) { t.musicOption = opt }
}

// WithErrorHook installs a callback invoked for every ParseError command.
func WithErrorHook(fn func(ParseErrorKind, ErrorLevel)) Option {
	return func(t *Terminal) { t.errorHook = fn }
}

// WithMusicHook installs a callback invoked for every completed AnsiMusic
// sequence (the host's audio synthesis entry point; synthesis itself is
// out of scope for this package).
func WithMusicHook(fn func(AnsiMusic)) Option {
	return func(t *Terminal) { t.musicHook = fn }
}

// WithDeviceStringHook installs a callback invoked for every raw DCS/OSC/APC
// payload the parser did not recognize as a dedicated sub-protocol.
func WithDeviceStringHook(fn func(DeviceString)) Option {
	return func(t *Terminal) { t.deviceStringHook = fn }
}

// WithRipEnabled toggles whether the host should route `!|`-prefixed
// bytes to a RIPscrip parser (spec §8 S4: disabled RIP passes its bytes
// through as plain printable text instead).
func WithRipEnabled(enabled bool) Option {
	return func(t *Terminal) { t.ripEnabled = enabled }
}

// RipEnabled reports whether RIPscrip command recognition is active.
func (t *Terminal) RipEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ripEnabled
}

// AnsiParser returns a new AnsiParser configured with this Terminal's
// music arbitration option, ready to have bytes fed through Parse(b, t).
func (t *Terminal) AnsiParser() *AnsiParser {
	t.mu.RLock()
	opt := t.musicOption
	t.mu.RUnlock()
	p := NewAnsiParser()
	p.MusicOption = opt
	return p
}

// NewTerminal returns a Terminal over an 80x25 buffer unless overridden by
// WithSize.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{
		caret:      NewCaret(),
		ripEnabled: true,
	}
	for _, o := range opts {
		o(t)
	}
	if t.buffer == nil {
		t.buffer = NewBuffer(80, 25)
	}
	t.images = NewImageStore()
	t.paint = NewSkyPaint(NewPixelGrid(t.buffer.Width()*8, t.buffer.Height()*8))
	return t
}

// WithRipHook installs a callback invoked for every decoded RipCommand not
// otherwise applied directly to the graphics core (text window, mouse
// field, button style).
func WithRipHook(fn func(RipCommand)) Option {
	return func(t *Terminal) { t.ripHook = fn }
}

// WithSkypixHook installs a callback invoked for every decoded SkypixCommand.
func WithSkypixHook(fn func(SkypixCommand)) Option {
	return func(t *Terminal) { t.skypixHook = fn }
}

// WithIgsHook installs a callback invoked for every decoded IgsCommand not
// otherwise applied directly to the graphics core.
func WithIgsHook(fn func(IgsCommand)) Option {
	return func(t *Terminal) { t.igsHook = fn }
}

// Paint returns the pixel graphics core shared by RIP and SkyPix raster
// operations.
func (t *Terminal) Paint() *SkyPaint { return t.paint }

// Images returns the named-bitmap store backing RIP's GetImage/PutImage
// and SkyPix's GrabBrush/UseBrush.
func (t *Terminal) Images() *ImageStore { return t.images }

// EmitRip applies a decoded RIPscrip instruction to the graphics core,
// falling back to ripHook for commands with no direct buffer effect.
func (t *Terminal) EmitRip(cmd RipCommand) {
	switch c := cmd.(type) {
	case RipPixel:
		t.paint.PutPixel(c.X, c.Y)
	case RipLine:
		t.paint.Line(c.X0, c.Y0, c.X1, c.Y1)
	case RipRectangle:
		t.paint.Line(c.X0, c.Y0, c.X1, c.Y0)
		t.paint.Line(c.X1, c.Y0, c.X1, c.Y1)
		t.paint.Line(c.X1, c.Y1, c.X0, c.Y1)
		t.paint.Line(c.X0, c.Y1, c.X0, c.Y0)
	case RipBar:
		t.paint.Bar(c.X0, c.Y0, c.X1, c.Y1)
	case RipCircle:
		t.paint.Ellipse(c.X, c.Y, c.Radius, c.Radius)
	case RipOval:
		t.paint.Ellipse(c.X, c.Y, c.XRadius, c.YRadius)
	case RipFilledOval:
		t.paint.FillEllipse(c.X, c.Y, c.XRadius, c.YRadius)
	case RipFill:
		t.paint.FloodFill(c.X, c.Y, c.Border != 0)
	case RipColor:
		t.paint.PenA = quadFromRGBA(t.buffer.Palette().At(int32(c.Index)))
		t.paint.PenB = t.paint.PenA
	case RipViewport:
		t.paint.Viewport = RectFromPoints(Position{X: c.X0, Y: c.Y0}, Position{X: c.X1, Y: c.Y1})
	case RipGetImage:
		img := t.paint.GetImage(c.X0, c.Y0, c.X1, c.Y1)
		w := abs(c.X1-c.X0) + 1
		h := abs(c.Y1-c.Y0) + 1
		t.images.Put(c.Name, w, h, img)
	case RipPutImage:
		if img := t.images.Get(c.Name); img != nil {
			t.paint.PutImage2(c.X, c.Y, img.Width, img.Height, img.Pixels)
		}
	case RipEnable:
		t.ripEnabled = c.Level != 0
	default:
		if t.ripHook != nil {
			t.ripHook(cmd)
		}
	}
}

// EmitSkypix applies a decoded SkyPix instruction to the graphics core.
func (t *Terminal) EmitSkypix(cmd SkypixCommand) {
	switch c := cmd.(type) {
	case SkypixSetPen:
		col := quadFromRGBA(t.buffer.Palette().At(int32(c.Color)))
		if c.Pen == 0 {
			t.paint.PenA = col
		} else {
			t.paint.PenB = col
		}
	case SkypixMoveTo:
		t.paint.MovePen(c.X, c.Y)
	case SkypixLineTo:
		t.paint.LineTo(c.X, c.Y)
	case SkypixBar:
		t.paint.Bar(c.X0, c.Y0, c.X1, c.Y1)
	case SkypixEllipse:
		if c.Filled {
			t.paint.FillEllipse(c.X, c.Y, c.RX, c.RY)
		} else {
			t.paint.Ellipse(c.X, c.Y, c.RX, c.RY)
		}
	case SkypixFloodFill:
		t.paint.FloodFill(c.X, c.Y, false)
	case SkypixGrabBrush:
		img := t.paint.GetImage(c.X0, c.Y0, c.X1, c.Y1)
		w := abs(c.X1-c.X0) + 1
		h := abs(c.Y1-c.Y0) + 1
		t.images.Put(c.Name, w, h, img)
	case SkypixUseBrush:
		if img := t.images.Get(c.Name); img != nil {
			t.paint.PutImage2(c.X, c.Y, img.Width, img.Height, img.Pixels)
		}
	default:
		if t.skypixHook != nil {
			t.skypixHook(cmd)
		}
	}
}

// EmitIgs applies a decoded IGS instruction to the graphics core.
func (t *Terminal) EmitIgs(cmd IgsCommand) {
	switch c := cmd.(type) {
	case IgsSetColor:
		col := quadFromRGBA(t.buffer.Palette().At(int32(c.Index)))
		t.paint.PenA = col
		t.paint.PenB = col
	case IgsLine:
		t.paint.Line(c.X0, c.Y0, c.X1, c.Y1)
	case IgsBox:
		if c.Filled {
			t.paint.Bar(c.X0, c.Y0, c.X1, c.Y1)
		} else {
			t.paint.Line(c.X0, c.Y0, c.X1, c.Y0)
			t.paint.Line(c.X1, c.Y0, c.X1, c.Y1)
			t.paint.Line(c.X1, c.Y1, c.X0, c.Y1)
			t.paint.Line(c.X0, c.Y1, c.X0, c.Y0)
		}
	case IgsCircle:
		if c.Filled {
			t.paint.FillEllipse(c.X, c.Y, c.Radius, c.Radius)
		} else {
			t.paint.Ellipse(c.X, c.Y, c.Radius, c.Radius)
		}
	case IgsPlot:
		t.paint.PutPixel(c.X, c.Y)
	default:
		if t.igsHook != nil {
			t.igsHook(cmd)
		}
	}
}

// Buffer returns the underlying Buffer under a read lock. Callers that
// mutate Buffer directly (as codecs/loaders do) must not do so
// concurrently with Emit.
func (t *Terminal) Buffer() *Buffer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.buffer
}

func (t *Terminal) Caret() *Caret {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.caret
}

func (t *Terminal) state() *TerminalState { return t.buffer.TerminalState }

// activeArea returns the caret's currently effective scroll region bounds.
func (t *Terminal) activeArea() (top, bottom, left, right int) {
	s := t.state()
	top, bottom = s.ActiveRows()
	left, right = s.ActiveCols()
	return
}

// Emit implements CommandSink: it applies cmd to buffer+caret+state.
func (t *Terminal) Emit(cmd TerminalCommand) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch c := cmd.(type) {
	case Printable:
		t.print(c.Text)
	case CarriageReturn:
		t.carriageReturn()
	case LineFeed:
		t.lineFeed()
	case FormFeed:
		t.lineFeed()
	case Backspace:
		t.backspace()
	case Tab:
		t.caret.Position.X = t.state().NextTabStop(t.caret.Position.X)
	case Bell:
		// no-op: Terminal ignores Bell.

	case SaveCursor:
		t.saveCursor()
	case RestoreCursor:
		t.restoreCursor()
	case ReverseIndex:
		t.reverseIndex()
	case NextLine:
		t.carriageReturn()
		t.lineFeed()
	case Index:
		t.lineFeed()
	case ResetInitialState:
		t.reset()
	case SetCharset:
		// charset slot designation: tracked by FontSelection elsewhere.

	case CursorPosition:
		t.setCursorPosition(c.Row, c.Col)
	case CursorUp:
		t.moveCursor(DirUp, c.N)
	case CursorDown:
		t.moveCursor(DirDown, c.N)
	case CursorForward:
		t.moveCursor(DirForward, c.N)
	case CursorBack:
		t.moveCursor(DirBack, c.N)
	case CursorNextLine:
		t.moveCursor(DirDown, c.N)
		t.caret.Position.X = 0
	case CursorPreviousLine:
		t.moveCursor(DirUp, c.N)
		t.caret.Position.X = 0
	case CursorHorizontalAbs:
		t.caret.Position.X = clampInt(c.Col-1, 0, t.buffer.Width()-1)
	case HorizontalVerticalPos:
		t.setCursorPosition(c.Row, c.Col)
	case CursorBackwardTab:
		for i := 0; i < maxInt(c.N, 1); i++ {
			t.caret.Position.X = t.state().PreviousTabStop(t.caret.Position.X)
		}
	case SaveCursorPosition:
		t.saveCursor()
	case RestoreCursorPosition:
		t.restoreCursor()

	case EraseInDisplay:
		t.eraseInDisplay(c.Mode)
	case EraseInLine:
		t.eraseInLine(c.Mode)
	case InsertLine:
		t.insertLines(maxInt(c.N, 1))
	case DeleteLine:
		t.deleteLines(maxInt(c.N, 1))
	case InsertChar:
		t.insertChars(maxInt(c.N, 1))
	case DeleteChar:
		t.deleteChars(maxInt(c.N, 1))
	case ScrollUp:
		t.scrollUp(maxInt(c.N, 1))
	case ScrollDown:
		t.scrollDown(maxInt(c.N, 1))
	case EraseChar:
		t.eraseChars(maxInt(c.N, 1))
	case RepeatPrecedingChar:
		t.repeatPrecedingChar(maxInt(c.N, 1))

	case SelectGraphicRendition:
		t.sgr(c.Attrs)

	case SetMode:
		t.setMode(c.Mode, true)
	case ResetMode:
		t.setMode(c.Mode, false)
	case DecPrivateModeSet:
		t.setDecMode(c.Mode, true)
	case DecPrivateModeReset:
		t.setDecMode(c.Mode, false)

	case SetTopBottomMargin:
		t.state().SetTopBottomMargin(c.Top, c.Bottom)
	case SetLeftRightMargin:
		t.state().SetLeftRightMargin(c.Left, c.Right)

	case RequestTerminalId, DeviceStatusReport:
		// Terminal ignores these requests and writes no reply.

	case ParseError:
		if t.errorHook != nil {
			t.errorHook(c.Kind, c.Level)
		}

	case AnsiMusicCommand:
		if t.musicHook != nil {
			t.musicHook(c.Music)
		}

	case DeviceString:
		// Raw DCS/OSC/APC payloads never mutate the buffer directly; a host
		// observes them through deviceStringHook (e.g. OSC window-title).
		if t.deviceStringHook != nil {
			t.deviceStringHook(c)
		}
	}
}

// DeviceControl implements CommandSink for a raw DCS payload. A sixel body
// (params followed by 'q') is decoded and anchored into the active layer at
// the caret; anything else is forwarded as a DeviceString.
func (t *Terminal) DeviceControl(data []byte) {
	if params, body, ok := splitSixelIntroducer(data); ok {
		sx := ParseSixel(params, body)
		if sx.Width > 0 && sx.Height > 0 {
			sx.Position = t.caret.Position
			t.buffer.PrimaryLayer().AddSixel(*sx)
		}
		return
	}
	t.Emit(DeviceString{Kind: DeviceStringDCS, Data: data})
}

// splitSixelIntroducer recognizes a sixel DCS body: zero or more
// semicolon-separated decimal parameters followed by 'q'. Anything else is
// not sixel data.
func splitSixelIntroducer(data []byte) (params []int64, body []byte, ok bool) {
	i := 0
	for i < len(data) && (data[i] == ';' || (data[i] >= '0' && data[i] <= '9')) {
		i++
	}
	if i >= len(data) || data[i] != 'q' {
		return nil, nil, false
	}
	for _, field := range splitBytes(data[:i], ';') {
		var n int64
		for _, c := range field {
			if c < '0' || c > '9' {
				n = 0
				break
			}
			n = n*10 + int64(c-'0')
		}
		params = append(params, n)
	}
	return params, data[i+1:], true
}

func splitBytes(b []byte, sep byte) [][]byte {
	var out [][]byte
	start := 0
	for i, c := range b {
		if c == sep {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	out = append(out, b[start:])
	return out
}

// OperatingSystemCommand implements CommandSink for an OSC payload.
func (t *Terminal) OperatingSystemCommand(data []byte) {
	t.Emit(DeviceString{Kind: DeviceStringOSC, Data: data})
}

// Aps implements CommandSink for an APC payload.
func (t *Terminal) Aps(data []byte) {
	t.Emit(DeviceString{Kind: DeviceStringAPC, Data: data})
}

func (t *Terminal) print(text string) {
	s := t.state()
	for _, r := range text {
		if r == 0 {
			continue
		}
		w := runeWidth(r)
		if w == 0 {
			w = 1
		}
		top, bottom, left, right := t.activeArea()
		_ = top
		_ = bottom
		if t.caret.Position.X >= right && s.AutoWrapMode == AutoWrap {
			t.carriageReturn()
			t.lineFeed()
		}
		if t.caret.Position.X < left {
			t.caret.Position.X = left
		}
		ch := NewAttributedChar(r, t.caret.Attribute)
		t.buffer.PrimaryLayer().SetChar(t.caret.Position.X, t.caret.Position.Y, ch)
		t.caret.Position.X++
	}
}

func (t *Terminal) carriageReturn() {
	_, _, left, _ := t.activeArea()
	t.caret.Position.X = left
	if t.state().CRIsLF {
		t.lineFeed()
	}
}

func (t *Terminal) lineFeed() {
	top, bottom, _, _ := t.activeArea()
	if t.caret.Position.Y+1 >= bottom {
		t.scrollUp(1)
		t.caret.Position.Y = bottom - 1
	} else if t.caret.Position.Y+1 >= top {
		t.caret.Position.Y++
	} else {
		t.caret.Position.Y = top
	}
}

func (t *Terminal) reverseIndex() {
	top, bottom, _, _ := t.activeArea()
	if t.caret.Position.Y-1 < top {
		t.scrollDown(1)
		t.caret.Position.Y = top
	} else if t.caret.Position.Y-1 < bottom {
		t.caret.Position.Y--
	}
}

func (t *Terminal) backspace() {
	if t.caret.Position.X > 0 {
		t.caret.Position.X--
		return
	}
	if t.state().AutoWrapMode == AutoWrap && t.caret.Position.Y > 0 {
		t.caret.Position.Y--
		t.caret.Position.X = maxInt(t.buffer.Width()-1, 0)
	}
}

func (t *Terminal) moveCursor(dir CursorDirection, n int) {
	if n <= 0 {
		n = 1
	}
	top, bottom, left, right := t.activeArea()
	switch dir {
	case DirUp:
		t.caret.Position.Y = clampInt(t.caret.Position.Y-n, top, bottom-1)
	case DirDown:
		t.caret.Position.Y = clampInt(t.caret.Position.Y+n, top, bottom-1)
	case DirForward:
		t.caret.Position.X = clampInt(t.caret.Position.X+n, left, right-1)
	case DirBack:
		t.caret.Position.X = clampInt(t.caret.Position.X-n, left, right-1)
	}
}

// setCursorPosition moves the caret to the given 1-based row/col. A
// negative col (used by VPA, which addresses only the row) leaves the
// current column untouched.
func (t *Terminal) setCursorPosition(row, col int) {
	top, bottom, left, right := t.activeArea()
	y := top
	x := t.caret.Position.X
	if t.state().OriginMode == OriginWithinMargins {
		y = clampInt(top+row-1, top, bottom-1)
		if col >= 0 {
			x = clampInt(left+col-1, left, right-1)
		}
	} else {
		y = clampInt(row-1, 0, t.buffer.Height()-1)
		if col >= 0 {
			x = clampInt(col-1, 0, t.buffer.Width()-1)
		}
	}
	t.caret.Position = Position{X: x, Y: y}
}

func (t *Terminal) saveCursor() {
	sc := SavedCursor{Position: t.caret.Position, Attribute: t.caret.Attribute, OriginMode: t.state().OriginMode}
	t.saved = &sc
}

func (t *Terminal) restoreCursor() {
	if t.saved == nil {
		return
	}
	t.caret.Position = t.saved.Position
	t.caret.Attribute = t.saved.Attribute
	t.state().OriginMode = t.saved.OriginMode
}

func (t *Terminal) reset() {
	t.caret = NewCaret()
	t.saved = nil
	t.buffer.TerminalState = NewTerminalState(t.buffer.Width(), t.buffer.Height())
}

func (t *Terminal) eraseFill() AttributedChar {
	ch := NewAttributedChar(' ', t.caret.Attribute)
	return ch
}

func (t *Terminal) eraseInDisplay(mode EraseMode) {
	layer := t.buffer.PrimaryLayer()
	fill := t.eraseFill()
	h := t.buffer.Height()
	w := t.buffer.Width()
	eraseRow := func(y, x0, x1 int) {
		for x := x0; x < x1; x++ {
			layer.SetChar(x, y, fill)
		}
	}
	switch mode {
	case EraseToEnd:
		eraseRow(t.caret.Position.Y, t.caret.Position.X, w)
		for y := t.caret.Position.Y + 1; y < h; y++ {
			eraseRow(y, 0, w)
		}
	case EraseToStart:
		for y := 0; y < t.caret.Position.Y; y++ {
			eraseRow(y, 0, w)
		}
		eraseRow(t.caret.Position.Y, 0, t.caret.Position.X+1)
	case EraseAll, EraseSavedLines:
		for y := 0; y < h; y++ {
			eraseRow(y, 0, w)
		}
		t.state().ClearedScreen = true
	}
}

func (t *Terminal) eraseInLine(mode EraseMode) {
	layer := t.buffer.PrimaryLayer()
	fill := t.eraseFill()
	w := t.buffer.Width()
	y := t.caret.Position.Y
	switch mode {
	case EraseToEnd:
		for x := t.caret.Position.X; x < w; x++ {
			layer.SetChar(x, y, fill)
		}
	case EraseToStart:
		for x := 0; x <= t.caret.Position.X && x < w; x++ {
			layer.SetChar(x, y, fill)
		}
	case EraseAll, EraseSavedLines:
		for x := 0; x < w; x++ {
			layer.SetChar(x, y, fill)
		}
	}
}

func (t *Terminal) insertLines(n int) {
	top, bottom, _, _ := t.activeArea()
	fill := t.eraseFill()
	for i := 0; i < n; i++ {
		t.buffer.PrimaryLayer().InsertLineAt(t.caret.Position.Y, top, bottom, fill)
	}
}

func (t *Terminal) deleteLines(n int) {
	top, bottom, _, _ := t.activeArea()
	fill := t.eraseFill()
	for i := 0; i < n; i++ {
		t.buffer.PrimaryLayer().DeleteLineAt(t.caret.Position.Y, top, bottom, fill)
	}
}

func (t *Terminal) insertChars(n int) {
	_, _, _, right := t.activeArea()
	layer := t.buffer.PrimaryLayer()
	y := t.caret.Position.Y
	fill := t.eraseFill()
	for x := right - 1; x >= t.caret.Position.X+n; x-- {
		layer.SetChar(x, y, layer.GetChar(x-n, y))
	}
	for x := t.caret.Position.X; x < minInt(t.caret.Position.X+n, right); x++ {
		layer.SetChar(x, y, fill)
	}
}

func (t *Terminal) deleteChars(n int) {
	_, _, _, right := t.activeArea()
	layer := t.buffer.PrimaryLayer()
	y := t.caret.Position.Y
	fill := t.eraseFill()
	for x := t.caret.Position.X; x < right-n; x++ {
		layer.SetChar(x, y, layer.GetChar(x+n, y))
	}
	for x := maxInt(right-n, t.caret.Position.X); x < right; x++ {
		layer.SetChar(x, y, fill)
	}
}

func (t *Terminal) eraseChars(n int) {
	layer := t.buffer.PrimaryLayer()
	y := t.caret.Position.Y
	fill := t.eraseFill()
	w := t.buffer.Width()
	for x := t.caret.Position.X; x < minInt(t.caret.Position.X+n, w); x++ {
		layer.SetChar(x, y, fill)
	}
}

func (t *Terminal) repeatPrecedingChar(n int) {
	layer := t.buffer.PrimaryLayer()
	x, y := t.caret.Position.X, t.caret.Position.Y
	if x == 0 {
		return
	}
	prev := layer.GetChar(x-1, y)
	for i := 0; i < n; i++ {
		layer.SetChar(t.caret.Position.X, t.caret.Position.Y, prev)
		t.caret.Position.X++
	}
}

func (t *Terminal) scrollUp(n int) {
	top, bottom, left, right := t.activeArea()
	fill := t.eraseFill()
	layer := t.buffer.PrimaryLayer()
	for i := 0; i < n; i++ {
		layer.DeleteLineAt(top, top, bottom, fill)
		_ = left
		_ = right
	}
}

func (t *Terminal) scrollDown(n int) {
	top, bottom, _, _ := t.activeArea()
	fill := t.eraseFill()
	layer := t.buffer.PrimaryLayer()
	for i := 0; i < n; i++ {
		layer.InsertLineAt(top, top, bottom, fill)
	}
}

func (t *Terminal) sgr(attrs []SgrAttribute) {
	for _, a := range attrs {
		switch a.Kind {
		case SgrReset:
			t.caret.Attribute.Reset()
		case SgrBold:
			t.caret.Attribute.SetFlag(AttrBold)
		case SgrFaint:
			t.caret.Attribute.SetFlag(AttrFaint)
		case SgrItalic:
			t.caret.Attribute.SetFlag(AttrItalic)
		case SgrUnderline:
			t.caret.Attribute.SetFlag(AttrUnderline)
		case SgrDoubleUnderline:
			t.caret.Attribute.SetFlag(AttrDoubleUnderline)
		case SgrBlink:
			t.caret.Attribute.SetFlag(AttrBlink)
		case SgrConceal:
			t.caret.Attribute.SetFlag(AttrConceal)
		case SgrCrossedOut:
			t.caret.Attribute.SetFlag(AttrCrossedOut)
		case SgrOverline:
			t.caret.Attribute.SetFlag(AttrOverline)
		case SgrDoubleHeight:
			t.caret.Attribute.SetFlag(AttrDoubleHeight)
		case SgrNotBoldFaint:
			t.caret.Attribute.ClearFlag(AttrBold)
			t.caret.Attribute.ClearFlag(AttrFaint)
		case SgrNotItalic:
			t.caret.Attribute.ClearFlag(AttrItalic)
		case SgrNotUnderlined:
			t.caret.Attribute.ClearFlag(AttrUnderline)
			t.caret.Attribute.ClearFlag(AttrDoubleUnderline)
		case SgrNotBlink:
			t.caret.Attribute.ClearFlag(AttrBlink)
		case SgrNotCrossedOut:
			t.caret.Attribute.ClearFlag(AttrCrossedOut)
		case SgrNotOverline:
			t.caret.Attribute.ClearFlag(AttrOverline)
		case SgrReverse:
			t.caret.Attribute.SetFlag(AttrReverse)
		case SgrNotReverse:
			t.caret.Attribute.ClearFlag(AttrReverse)
		case SgrForeground:
			t.caret.Attribute.SetForeground(a.Color)
		case SgrBackground:
			t.caret.Attribute.SetBackground(a.Color)
		case SgrDefaultForeground:
			t.caret.Attribute.SetForeground(PaletteColor(7))
		case SgrDefaultBackground:
			t.caret.Attribute.SetBackground(PaletteColor(0))
		}
	}
}

func (t *Terminal) setMode(m Mode, on bool) {
	switch m {
	case ModeInsertReplace:
		t.caret.InsertMode = on
	}
}

func (t *Terminal) setDecMode(m DecPrivateMode, on bool) {
	s := t.state()
	switch m {
	case DecModeShowCursor:
		t.caret.Visible = on
	case DecModeAutoWrap:
		if on {
			s.AutoWrapMode = AutoWrap
		} else {
			s.AutoWrapMode = NoWrap
		}
	case DecModeOriginMode:
		if on {
			s.OriginMode = OriginWithinMargins
		} else {
			s.OriginMode = OriginUpperLeftCorner
		}
	case DecModeDECLRMM:
		s.SetDECLRMM(on)
	case DecModeMouseX10:
		s.MouseState.Mode = MouseX10
		if !on {
			s.MouseState.Mode = MouseOff
		}
	case DecModeMouseVT200:
		if on {
			s.MouseState.Mode = MouseVT200
		} else {
			s.MouseState.Mode = MouseOff
		}
	case DecModeMouseHighlight:
		if on {
			s.MouseState.Mode = MouseVT200Highlight
		} else {
			s.MouseState.Mode = MouseOff
		}
	case DecModeMouseButtonEvent:
		if on {
			s.MouseState.Mode = MouseButtonEvents
		} else {
			s.MouseState.Mode = MouseOff
		}
	case DecModeMouseAnyEvent:
		if on {
			s.MouseState.Mode = MouseAnyEvents
		} else {
			s.MouseState.Mode = MouseOff
		}
	case DecModeFocusReporting:
		s.MouseState.FocusOutEventEnabled = on
	case DecModeMouseExtUTF8:
		if on {
			s.MouseState.ExtendedMode = MouseExtendedUTF8
		} else {
			s.MouseState.ExtendedMode = MouseExtendedNone
		}
	case DecModeMouseExtSGR:
		if on {
			s.MouseState.ExtendedMode = MouseExtendedSGR
		} else {
			s.MouseState.ExtendedMode = MouseExtendedNone
		}
	case DecModeMouseExtURXVT:
		if on {
			s.MouseState.ExtendedMode = MouseExtendedURXVT
		} else {
			s.MouseState.ExtendedMode = MouseExtendedNone
		}
	case DecModeMouseExtPixel:
		if on {
			s.MouseState.ExtendedMode = MouseExtendedPixelPosition
		} else {
			s.MouseState.ExtendedMode = MouseExtendedNone
		}
	}
}
