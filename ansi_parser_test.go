package icyengine

import "testing"

func TestAnsiParserPrintable(t *testing.T) {
	p := NewAnsiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("Hi"), rec)

	if len(rec.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(rec.Commands))
	}
	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "Hi" {
		t.Fatalf("expected Printable(Hi), got %#v", rec.Commands[0])
	}
}

func TestAnsiParserCSICursorPosition(t *testing.T) {
	p := NewAnsiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("\x1b[5;10H"), rec)

	if len(rec.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(rec.Commands))
	}
	cp, ok := rec.Commands[0].(CursorPosition)
	if !ok || cp.Row != 5 || cp.Col != 10 {
		t.Fatalf("expected CursorPosition(5,10), got %#v", rec.Commands[0])
	}
}

func TestAnsiParserSplitAcrossCalls(t *testing.T) {
	p := NewAnsiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("\x1b["), rec)
	p.Parse([]byte("5;10H"), rec)

	if len(rec.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(rec.Commands))
	}
	if _, ok := rec.Commands[0].(CursorPosition); !ok {
		t.Fatalf("expected CursorPosition, got %#v", rec.Commands[0])
	}
}

func TestAnsiParserSGR(t *testing.T) {
	p := NewAnsiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("\x1b[1;31m"), rec)

	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok {
		t.Fatalf("expected SelectGraphicRendition, got %#v", rec.Commands[0])
	}
	if len(sgr.Attrs) != 2 || sgr.Attrs[0].Kind != SgrBold || sgr.Attrs[1].Kind != SgrForeground {
		t.Fatalf("unexpected SGR attrs: %#v", sgr.Attrs)
	}
	if sgr.Attrs[1].Color != PaletteColor(1) {
		t.Fatalf("expected palette color 1, got %#v", sgr.Attrs[1].Color)
	}
}

func TestAnsiParserExtendedColor256(t *testing.T) {
	p := NewAnsiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("\x1b[38;5;201m"), rec)

	sgr := rec.Commands[0].(SelectGraphicRendition)
	if sgr.Attrs[0].Color != ExtendedColor(201) {
		t.Fatalf("expected extended color 201, got %#v", sgr.Attrs[0].Color)
	}
}

func TestAnsiParserExtendedColorRGB(t *testing.T) {
	p := NewAnsiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("\x1b[48;2;10;20;30m"), rec)

	sgr := rec.Commands[0].(SelectGraphicRendition)
	if sgr.Attrs[0].Kind != SgrBackground || sgr.Attrs[0].Color != RGBColor(10, 20, 30) {
		t.Fatalf("expected RGB background, got %#v", sgr.Attrs[0])
	}
}

func TestAnsiParserDecPrivateMode(t *testing.T) {
	p := NewAnsiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("\x1b[?25h"), rec)
	p.Parse([]byte("\x1b[?25l"), rec)

	set, ok := rec.Commands[0].(DecPrivateModeSet)
	if !ok || set.Mode != DecModeShowCursor {
		t.Fatalf("expected DecPrivateModeSet(ShowCursor), got %#v", rec.Commands[0])
	}
	reset, ok := rec.Commands[1].(DecPrivateModeReset)
	if !ok || reset.Mode != DecModeShowCursor {
		t.Fatalf("expected DecPrivateModeReset(ShowCursor), got %#v", rec.Commands[1])
	}
}

func TestAnsiParserMusicConflictingEntersOnM(t *testing.T) {
	p := NewAnsiParser()
	p.MusicOption = MusicConflicting
	rec := NewCommandRecorder()
	p.Parse([]byte("\x1b[MT120 O3 CDE\x0e"), rec)

	if len(rec.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(rec.Commands))
	}
	music, ok := rec.Commands[0].(AnsiMusicCommand)
	if !ok {
		t.Fatalf("expected AnsiMusicCommand, got %#v", rec.Commands[0])
	}
	if len(music.Music.Actions) == 0 {
		t.Fatal("expected at least one parsed music action")
	}
	if tempo, ok := music.Music.Actions[0].(SetTempo); !ok || tempo.BeatsPerMinute != 120 {
		t.Fatalf("expected SetTempo(120) first, got %#v", music.Music.Actions[0])
	}
}

func TestAnsiParserMusicOffFallsBackToDeleteLine(t *testing.T) {
	p := NewAnsiParser()
	p.MusicOption = MusicOff
	rec := NewCommandRecorder()
	p.Parse([]byte("\x1b[2M"), rec)

	del, ok := rec.Commands[0].(DeleteLine)
	if !ok || del.N != 2 {
		t.Fatalf("expected DeleteLine(2) fallback, got %#v", rec.Commands[0])
	}
}

func TestAnsiParserOSCPayload(t *testing.T) {
	p := NewAnsiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("\x1b]0;my title\x07"), rec)

	ds, ok := rec.Commands[0].(DeviceString)
	if !ok || ds.Kind != DeviceStringOSC || string(ds.Data) != "0;my title" {
		t.Fatalf("expected OSC DeviceString, got %#v", rec.Commands[0])
	}
}

func TestAnsiParserUTF8SplitAcrossCalls(t *testing.T) {
	p := NewAnsiParser()
	rec := NewCommandRecorder()
	// U+00E9 'é' encoded as 0xC3 0xA9, split mid-sequence.
	p.Parse([]byte{0xC3}, rec)
	p.Parse([]byte{0xA9}, rec)

	if len(rec.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(rec.Commands))
	}
	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "é" {
		t.Fatalf("expected Printable(é), got %#v", rec.Commands[0])
	}
}
