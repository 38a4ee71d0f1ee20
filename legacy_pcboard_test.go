package icyengine

import "testing"

func TestPcBoardParserPrintable(t *testing.T) {
	p := NewPcBoardParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("Hi"), rec)

	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "Hi" {
		t.Fatalf("expected Printable(Hi), got %#v", rec.Commands[0])
	}
}

func TestPcBoardParserColorCode(t *testing.T) {
	p := NewPcBoardParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("@X1F"), rec)

	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok {
		t.Fatalf("expected SelectGraphicRendition, got %#v", rec.Commands[0])
	}
	if sgr.Attrs[0].Color != PaletteColor(1) || sgr.Attrs[1].Color != PaletteColor(15) {
		t.Fatalf("unexpected fg/bg: %#v", sgr.Attrs)
	}
}

func TestPcBoardParserClearScreen(t *testing.T) {
	p := NewPcBoardParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("@CLS@"), rec)

	if _, ok := rec.Commands[0].(EraseInDisplay); !ok {
		t.Fatalf("expected EraseInDisplay, got %#v", rec.Commands[0])
	}
}

func TestPcBoardParserPosition(t *testing.T) {
	p := NewPcBoardParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("@POS:42@"), rec)

	cp, ok := rec.Commands[0].(CursorHorizontalAbs)
	if !ok || cp.Col != 42 {
		t.Fatalf("expected CursorHorizontalAbs(42), got %#v", rec.Commands[0])
	}
}

func TestPcBoardParserSplitAcrossCalls(t *testing.T) {
	p := NewPcBoardParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("@PO"), rec)
	p.Parse([]byte("S:7@"), rec)

	cp, ok := rec.Commands[0].(CursorHorizontalAbs)
	if !ok || cp.Col != 7 {
		t.Fatalf("expected CursorHorizontalAbs(7), got %#v", rec.Commands[0])
	}
}
