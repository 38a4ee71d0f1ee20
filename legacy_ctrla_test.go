package icyengine

import "testing"

func TestCtrlAParserPrintable(t *testing.T) {
	p := NewCtrlAParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("Hi"), rec)

	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "Hi" {
		t.Fatalf("expected Printable(Hi), got %#v", rec.Commands[0])
	}
}

func TestCtrlAParserColorCode(t *testing.T) {
	p := NewCtrlAParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0x01, 'R'}, rec)

	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok || sgr.Attrs[0].Color != PaletteColor(4) {
		t.Fatalf("expected red foreground, got %#v", rec.Commands[0])
	}
}

func TestCtrlAParserClearScreen(t *testing.T) {
	p := NewCtrlAParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0x01, 'C'}, rec)

	if _, ok := rec.Commands[0].(EraseInDisplay); !ok {
		t.Fatalf("expected EraseInDisplay, got %#v", rec.Commands[0])
	}
}

func TestCtrlAParserPauseMarkerIgnored(t *testing.T) {
	p := NewCtrlAParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0x02, 'x'}, rec)

	if len(rec.Commands) != 1 {
		t.Fatalf("expected pause marker to produce no command, got %#v", rec.Commands)
	}
}

func TestCtrlAParserSplitAcrossCalls(t *testing.T) {
	p := NewCtrlAParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0x01}, rec)
	p.Parse([]byte{'G'}, rec)

	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok || sgr.Attrs[0].Color != PaletteColor(2) {
		t.Fatalf("expected green foreground across split call, got %#v", rec.Commands[0])
	}
}
