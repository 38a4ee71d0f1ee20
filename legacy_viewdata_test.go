package icyengine

import "testing"

func TestViewdataParserPrintable(t *testing.T) {
	p := NewViewdataParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("Hi"), rec)

	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "H" {
		t.Fatalf("expected Printable(H), got %#v", rec.Commands[0])
	}
}

func TestViewdataParserResetsOnRowChange(t *testing.T) {
	p := NewViewdataParser()
	rec := NewCommandRecorder()

	p.Parse([]byte{31, 0, 0}, rec) // TAB x=0,y=0: row 1, col 1
	p.Parse([]byte{31, 0, 1}, rec) // TAB x=0,y=1: row 2, col 1: row changed, expect a reset emitted first

	found := false
	for _, cmd := range rec.Commands {
		if sgr, ok := cmd.(SelectGraphicRendition); ok && len(sgr.Attrs) > 0 && sgr.Attrs[0].Kind == SgrReset {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a SgrReset emitted on row change, got %#v", rec.Commands)
	}
}

func TestViewdataParserResetsOnClear(t *testing.T) {
	p := NewViewdataParser()
	rec := NewCommandRecorder()
	p.Parse([]byte{31, 5, 0}, rec)
	p.Parse([]byte{12}, rec) // clear: resets lastRow tracking

	if p.lastRow != -1 {
		t.Fatalf("expected lastRow reset after clear, got %d", p.lastRow)
	}
}
