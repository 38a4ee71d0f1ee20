package icyengine

import "testing"

func TestAtasciiParserPrintable(t *testing.T) {
	p := NewAtasciiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("Hi"), rec)

	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "H" {
		t.Fatalf("expected Printable(H), got %#v", rec.Commands[0])
	}
}

func TestAtasciiParserEOL(t *testing.T) {
	p := NewAtasciiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0x9b}, rec)

	if _, ok := rec.Commands[0].(CarriageReturn); !ok {
		t.Fatalf("expected CarriageReturn, got %#v", rec.Commands[0])
	}
	if _, ok := rec.Commands[1].(LineFeed); !ok {
		t.Fatalf("expected LineFeed, got %#v", rec.Commands[1])
	}
}

func TestAtasciiParserClearScreen(t *testing.T) {
	p := NewAtasciiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0x7d}, rec)

	if _, ok := rec.Commands[0].(EraseInDisplay); !ok {
		t.Fatalf("expected EraseInDisplay, got %#v", rec.Commands[0])
	}
}

func TestAtasciiParserBell(t *testing.T) {
	p := NewAtasciiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0xfd}, rec)

	if _, ok := rec.Commands[0].(Bell); !ok {
		t.Fatalf("expected Bell, got %#v", rec.Commands[0])
	}
}
