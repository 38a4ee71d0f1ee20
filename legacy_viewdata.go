package icyengine

// ViewdataParser decodes the CEPT/Prestel Viewdata control set over a
// fixed 40x24 page: the same color/attribute byte range as Mode7, plus
// Viewdata's own reset-on-row-change behavior (spec §3 TerminalState's
// vd_last_row) and reset-on-clear.
type ViewdataParser struct {
	inner  Mode7Parser
	lastRow int
}

// NewViewdataParser returns a ready-to-use ViewdataParser.
func NewViewdataParser() *ViewdataParser { return &ViewdataParser{lastRow: -1} }

// Parse implements CommandParser. Row changes and explicit clears reset
// the attribute state the same way a real Viewdata terminal resets
// colors/graphics mode at the start of each row.
func (p *ViewdataParser) Parse(b []byte, sink CommandSink) {
	wrapped := CommandSinkFunc(func(cmd TerminalCommand) {
		if cp, ok := cmd.(CursorPosition); ok && cp.Row != p.lastRow {
			p.lastRow = cp.Row
			sink.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{{Kind: SgrReset}}})
		}
		if _, ok := cmd.(EraseInDisplay); ok {
			p.lastRow = -1
		}
		sink.Emit(cmd)
	})
	p.inner.Parse(b, commandSinkAdapter{wrapped})
}

// commandSinkAdapter lets a CommandSinkFunc (Emit-only) stand in for the
// full CommandSink interface Mode7Parser requires, forwarding the
// DCS/OSC/APC/graphics methods to no-ops since Viewdata never emits them.
type commandSinkAdapter struct {
	CommandSinkFunc
}

func (commandSinkAdapter) DeviceControl([]byte)          {}
func (commandSinkAdapter) OperatingSystemCommand([]byte) {}
func (commandSinkAdapter) Aps([]byte)                    {}
func (commandSinkAdapter) EmitRip(RipCommand)             {}
func (commandSinkAdapter) EmitSkypix(SkypixCommand)       {}
func (commandSinkAdapter) EmitIgs(IgsCommand)             {}

var _ CommandParser = (*ViewdataParser)(nil)
var _ CommandSink = commandSinkAdapter{}
