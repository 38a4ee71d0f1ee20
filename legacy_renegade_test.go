package icyengine

import "testing"

func TestRenegadeParserPrintable(t *testing.T) {
	p := NewRenegadeParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("Hi"), rec)

	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "Hi" {
		t.Fatalf("expected Printable(Hi), got %#v", rec.Commands[0])
	}
}

func TestRenegadeParserForegroundCode(t *testing.T) {
	p := NewRenegadeParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("|04"), rec)

	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok || sgr.Attrs[0].Color != PaletteColor(4) {
		t.Fatalf("expected foreground 4, got %#v", rec.Commands[0])
	}
}

func TestRenegadeParserBackgroundCode(t *testing.T) {
	p := NewRenegadeParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("|17"), rec)

	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok || sgr.Attrs[0].Kind != SgrBackground || sgr.Attrs[0].Color != PaletteColor(1) {
		t.Fatalf("expected background 1, got %#v", rec.Commands[0])
	}
}

func TestRenegadeParserBadCodeFallsBackToLiteral(t *testing.T) {
	p := NewRenegadeParser()
	rec := NewCommandRecorder()
	// "|ab" is not a two-digit code: the pipe and following bytes are
	// passed through as ordinary text instead of being silently dropped.
	p.Parse([]byte("|ab"), rec)

	var text string
	for _, c := range rec.Commands {
		if pr, ok := c.(Printable); ok {
			text += pr.Text
		}
	}
	if text != "|ab" {
		t.Fatalf("expected literal passthrough \"|ab\", got %q", text)
	}
}

func TestRenegadeParserSplitAcrossCalls(t *testing.T) {
	p := NewRenegadeParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("|0"), rec)
	p.Parse([]byte("4"), rec)

	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok || sgr.Attrs[0].Color != PaletteColor(4) {
		t.Fatalf("expected foreground 4 across split call, got %#v", rec.Commands[0])
	}
}
