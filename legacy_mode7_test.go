package icyengine

import "testing"

func TestMode7ParserPrintable(t *testing.T) {
	p := NewMode7Parser()
	rec := NewCommandRecorder()
	p.Parse([]byte("Hi"), rec)

	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "H" {
		t.Fatalf("expected Printable(H), got %#v", rec.Commands[0])
	}
}

func TestMode7ParserAlphaColor(t *testing.T) {
	p := NewMode7Parser()
	rec := NewCommandRecorder()
	p.Parse([]byte{131}, rec) // alpha yellow? index 3

	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok || sgr.Attrs[0].Color != PaletteColor(3) {
		t.Fatalf("expected foreground 3, got %#v", rec.Commands[0])
	}
}

func TestMode7ParserTab(t *testing.T) {
	p := NewMode7Parser()
	rec := NewCommandRecorder()
	p.Parse([]byte{31, 4, 9}, rec)

	cp, ok := rec.Commands[0].(CursorPosition)
	if !ok || cp.Row != 10 || cp.Col != 5 {
		t.Fatalf("expected CursorPosition(10,5), got %#v", rec.Commands[0])
	}
}

func TestMode7ParserClear(t *testing.T) {
	p := NewMode7Parser()
	rec := NewCommandRecorder()
	p.Parse([]byte{12}, rec)

	if _, ok := rec.Commands[0].(EraseInDisplay); !ok {
		t.Fatalf("expected EraseInDisplay, got %#v", rec.Commands[0])
	}
}
