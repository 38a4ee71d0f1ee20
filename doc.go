// Package icyengine is the core of a multi-format terminal-art processing
// toolkit: a family of byte-stream parsers that translate heterogeneous
// BBS-era and terminal protocols into a uniform stream of semantic terminal
// commands, together with the text/graphics buffer model those commands
// mutate.
//
// The package covers ANSI/ECMA-48 (with ANSI Music and RIP-trigger
// sub-dialects), AVATAR, PCBoard @X codes, CtrlA, Renegade pipe codes,
// VT52 (+ TosWin2), Mode7/teletext, Viewdata/Prestel, PETSCII, ATASCII,
// RIPscrip, IGS and SkyPix — plus the buffer/layer model, a small RGBA-pixel
// graphics core for Amiga-style SkyPix rendering, and TheDraw/Figlet font
// loaders.
//
// GUI widgets, file dialogs, networking clients, and GPU font-atlas
// rendering are explicitly out of scope: this package produces and
// consumes data structures, and stops at the edge of anything that needs
// a display.
//
// # Quick Start
//
// Parse a byte stream and apply the resulting commands to a buffer:
//
//	term := icyengine.NewTerminal(icyengine.WithSize(80, 25))
//	parser := icyengine.NewAnsiParser()
//	parser.Parse([]byte("\x1b[1;31mHello\x1b[0m"), term)
//
// # Architecture
//
//   - [CommandParser]: the shared streaming contract every format parser
//     implements. [CommandSink]: the receiver every parser emits into.
//   - [Buffer], [Layer], [Caret], [TerminalState]: the text/graphics model
//     a parser's commands mutate via [Terminal], the buffer executor.
//   - [TerminalCommand] and its protocol-specific peers ([RipCommand],
//     [SkypixCommand], [IgsCommand], [MusicAction]): the uniform command
//     vocabulary.
//   - [SkyPaint]: the graphics core backing SkyPix/RIP raster operations;
//     its pens and pixels are RGBAQuad values, not palette indices.
//   - [TheDrawFont], [FigletHeader]: bitmap/ASCII-art font loaders.
//
// # Re-entrancy
//
// Every [CommandParser.Parse] call is re-entrant across calls on the same
// parser value: mid-escape-sequence, mid-UTF-8, and mid-music state all
// survive a call boundary, so parsing a stream in arbitrarily small chunks
// produces the same command sequence as parsing it whole.
package icyengine
