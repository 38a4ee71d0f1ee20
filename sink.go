package icyengine

// CommandParser turns a chunk of raw protocol bytes into TerminalCommands,
// pushed to a CommandSink as they are recognized. Implementations must
// tolerate being called with arbitrarily small chunks: a multi-byte escape
// sequence split across two Parse calls must still yield the same commands
// as a single call with the concatenated bytes (spec §9, invariant #1).
type CommandParser interface {
	// Parse consumes b and emits zero or more commands to sink. It never
	// panics, even on malformed input. Depending on the parser, an
	// unrecognized sequence is either reported through
	// sink.Emit(ParseError{...}) or dropped without a report.
	Parse(b []byte, sink CommandSink)
}

// CommandSink receives the command stream produced by a CommandParser.
// Buffer (via Terminal) is the primary sink, but tests and middleware can
// implement it directly to observe or record the stream.
type CommandSink interface {
	Emit(cmd TerminalCommand)

	// DeviceControl receives a DCS string's payload (between DCS and ST),
	// excluding the sixel/ReGIS sub-protocols that the buffer executor
	// recognizes directly.
	DeviceControl(data []byte)
	// OperatingSystemCommand receives an OSC string's payload, e.g. a
	// window-title-set request (`0;title`).
	OperatingSystemCommand(data []byte)
	// Aps receives an APC string's payload.
	Aps(data []byte)

	// EmitRip receives one decoded RIPscrip drawing instruction.
	EmitRip(cmd RipCommand)
	// EmitSkypix receives one decoded SkyPix drawing instruction.
	EmitSkypix(cmd SkypixCommand)
	// EmitIgs receives one decoded IGS (or VT52-co-hosted) instruction.
	EmitIgs(cmd IgsCommand)
}

// CommandSinkFunc adapts a plain function to a CommandSink.
type CommandSinkFunc func(TerminalCommand)

func (f CommandSinkFunc) Emit(cmd TerminalCommand) { f(cmd) }

// CommandRecorder is a CommandSink that simply appends every command it
// receives, useful for tests asserting on the exact emitted sequence.
type CommandRecorder struct {
	Commands []TerminalCommand
}

func NewCommandRecorder() *CommandRecorder {
	return &CommandRecorder{}
}

func (r *CommandRecorder) Emit(cmd TerminalCommand) {
	r.Commands = append(r.Commands, cmd)
}

// DeviceControl, OperatingSystemCommand and Aps are recorded as
// DeviceString commands so tests can assert on them alongside everything
// else CommandRecorder captures.
func (r *CommandRecorder) DeviceControl(data []byte) {
	r.Commands = append(r.Commands, DeviceString{Kind: DeviceStringDCS, Data: append([]byte(nil), data...)})
}

func (r *CommandRecorder) OperatingSystemCommand(data []byte) {
	r.Commands = append(r.Commands, DeviceString{Kind: DeviceStringOSC, Data: append([]byte(nil), data...)})
}

func (r *CommandRecorder) Aps(data []byte) {
	r.Commands = append(r.Commands, DeviceString{Kind: DeviceStringAPC, Data: append([]byte(nil), data...)})
}

// EmitRip, EmitSkypix and EmitIgs append a RipCommandRecord, SkypixCommandRecord
// or IgsCommandRecord so tests can assert on the graphics sub-dialect
// command stream alongside everything else CommandRecorder captures.
func (r *CommandRecorder) EmitRip(cmd RipCommand) {
	r.Commands = append(r.Commands, RipCommandRecord{Command: cmd})
}

func (r *CommandRecorder) EmitSkypix(cmd SkypixCommand) {
	r.Commands = append(r.Commands, SkypixCommandRecord{Command: cmd})
}

func (r *CommandRecorder) EmitIgs(cmd IgsCommand) {
	r.Commands = append(r.Commands, IgsCommandRecord{Command: cmd})
}

func (r *CommandRecorder) Reset() {
	r.Commands = r.Commands[:0]
}
