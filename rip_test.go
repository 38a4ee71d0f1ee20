package icyengine

import "testing"

func TestRipParserLine(t *testing.T) {
	p := NewRipParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("!|L1,2,3,4\r"), rec)

	if len(rec.Commands) != 1 {
		t.Fatalf("expected 1 command, got %#v", rec.Commands)
	}
	rc, ok := rec.Commands[0].(RipCommandRecord)
	if !ok {
		t.Fatalf("expected RipCommandRecord, got %#v", rec.Commands[0])
	}
	line, ok := rc.Command.(RipLine)
	if !ok || line.X0 != 1 || line.Y0 != 2 || line.X1 != 3 || line.Y1 != 4 {
		t.Fatalf("unexpected RipLine: %#v", rc.Command)
	}
}

func TestRipParserBase36Params(t *testing.T) {
	p := NewRipParser()
	rec := NewCommandRecorder()
	// base-36 "Z" = 35
	p.Parse([]byte("!|XZ,0\r"), rec)

	rc := rec.Commands[0].(RipCommandRecord)
	px, ok := rc.Command.(RipPixel)
	if !ok || px.X != 35 {
		t.Fatalf("expected base-36 decode of X=35, got %#v", rc.Command)
	}
}

func TestRipParserDisabledPassesThrough(t *testing.T) {
	p := NewRipParser()
	p.SetEnabled(false)
	rec := NewCommandRecorder()
	p.Parse([]byte("!|L1,2,3,4\r"), rec)

	var text string
	for _, c := range rec.Commands {
		if pr, ok := c.(Printable); ok {
			text += pr.Text
		}
	}
	if text != "!|L1,2,3,4" {
		t.Fatalf("expected literal passthrough, got %q (commands: %#v)", text, rec.Commands)
	}
}

func TestRipParserNoMoreRipMarker(t *testing.T) {
	p := NewRipParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("!|#before"), rec)

	pr, ok := rec.Commands[0].(Printable)
	if !ok || pr.Text != "before" {
		t.Fatalf("expected 'before' to pass through after |#, got %#v", rec.Commands)
	}
}

func TestRipParserSplitAcrossCalls(t *testing.T) {
	p := NewRipParser()
	rec := NewCommandRecorder()
	p.Parse([]byte("!|L1,2"), rec)
	p.Parse([]byte(",3,4\r"), rec)

	rc := rec.Commands[0].(RipCommandRecord)
	if _, ok := rc.Command.(RipLine); !ok {
		t.Fatalf("expected RipLine across split calls, got %#v", rc.Command)
	}
}
