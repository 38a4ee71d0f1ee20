package icyengine

import "io"

// ResponseProvider writes parser-generated responses (e.g. cursor position
// reports, RIP/SkyPix query replies) back to the host's transport.
type ResponseProvider = io.Writer

// NoopResponse discards all response data.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// --- Bell Provider ---

// BellProvider handles bell/beep events triggered by BEL (0x07).
type BellProvider interface {
	Ring()
}

// NoopBell ignores all bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// --- Title Provider ---

// TitleProvider handles window/session title changes requested via OSC 0/1/2.
type TitleProvider interface {
	SetTitle(title string)
	PushTitle()
	PopTitle()
}

// NoopTitle ignores all title operations.
type NoopTitle struct{}

func (NoopTitle) SetTitle(title string) {}
func (NoopTitle) PushTitle()            {}
func (NoopTitle) PopTitle()             {}

// --- Error Provider ---

// ErrorProvider is a host-side receiver for parse warnings, the
// ParseErrorKind and ErrorLevel a parser carries in a ParseError command.
type ErrorProvider interface {
	ReportError(kind ParseErrorKind, level ErrorLevel)
}

// NoopError discards all reported parse errors.
type NoopError struct{}

func (NoopError) ReportError(ParseErrorKind, ErrorLevel) {}

// --- Clipboard Provider ---

// ClipboardProvider handles clipboard read/write requests (OSC 52).
type ClipboardProvider interface {
	// Read returns content from the specified clipboard ('c' for clipboard, 'p' for primary selection).
	Read(clipboard byte) string
	// Write stores content to the specified clipboard.
	Write(clipboard byte, data []byte)
}

// NoopClipboard ignores all clipboard operations.
type NoopClipboard struct{}

func (NoopClipboard) Read(clipboard byte) string        { return "" }
func (NoopClipboard) Write(clipboard byte, data []byte) {}

var _ ResponseProvider = NoopResponse{}
var _ BellProvider = (*NoopBell)(nil)
var _ TitleProvider = (*NoopTitle)(nil)
var _ ErrorProvider = (*NoopError)(nil)
var _ ClipboardProvider = (*NoopClipboard)(nil)
