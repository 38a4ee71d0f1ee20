package icyengine

import "testing"

func TestPetsciiParserPrintable(t *testing.T) {
	p := NewPetsciiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("Hi"), rec)

	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "H" {
		t.Fatalf("expected Printable(H), got %#v", rec.Commands[0])
	}
}

func TestPetsciiParserColorCode(t *testing.T) {
	p := NewPetsciiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0x1c}, rec) // red

	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok || sgr.Attrs[0].Color != PaletteColor(2) {
		t.Fatalf("expected red foreground, got %#v", rec.Commands[0])
	}
}

func TestPetsciiParserReverseToggle(t *testing.T) {
	p := NewPetsciiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0x12}, rec)

	if !p.reverse {
		t.Fatalf("expected reverse state true after RVS ON")
	}
	sgr, ok := rec.Commands[0].(SelectGraphicRendition)
	if !ok || sgr.Attrs[0].Kind != SgrReverse {
		t.Fatalf("expected SgrReverse, got %#v", rec.Commands[0])
	}
}

func TestPetsciiParserClearScreen(t *testing.T) {
	p := NewPetsciiParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{0x93}, rec)

	if _, ok := rec.Commands[0].(EraseInDisplay); !ok {
		t.Fatalf("expected EraseInDisplay, got %#v", rec.Commands[0])
	}
}
