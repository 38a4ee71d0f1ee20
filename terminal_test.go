package icyengine

import "testing"

func TestTerminalPrintAdvancesCaret(t *testing.T) {
	term := NewTerminal(WithSize(10, 3))
	term.Emit(Printable{Text: "Hi"})

	if term.Caret().Position.X != 2 {
		t.Errorf("expected caret at column 2, got %d", term.Caret().Position.X)
	}
	if ch := term.Buffer().GetChar(0, 0); ch.Ch != 'H' {
		t.Errorf("expected 'H' at (0,0), got %q", ch.Ch)
	}
}

func TestTerminalAutoWrap(t *testing.T) {
	term := NewTerminal(WithSize(3, 2))
	term.Emit(Printable{Text: "ABCD"})

	if got := term.Buffer().GetChar(0, 1); got.Ch != 'D' {
		t.Errorf("expected wrap to place 'D' at (0,1), got %q", got.Ch)
	}
}

func TestTerminalCursorPosition(t *testing.T) {
	term := NewTerminal(WithSize(80, 25))
	term.Emit(CursorPosition{Row: 5, Col: 10})

	if term.Caret().Position.X != 9 || term.Caret().Position.Y != 4 {
		t.Errorf("expected (9,4), got (%d,%d)", term.Caret().Position.X, term.Caret().Position.Y)
	}
}

func TestTerminalSgrForegroundAndPrint(t *testing.T) {
	term := NewTerminal(WithSize(80, 25))
	term.Emit(SelectGraphicRendition{Attrs: []SgrAttribute{
		{Kind: SgrBold},
		{Kind: SgrForeground, Color: PaletteColor(1)},
	}})
	term.Emit(Printable{Text: "Hi"})

	ch := term.Buffer().GetChar(0, 0)
	if ch.Ch != 'H' {
		t.Fatalf("expected 'H', got %q", ch.Ch)
	}
	if !ch.Attr.HasFlag(AttrBold) {
		t.Error("expected bold flag set")
	}
	if ch.Attr.Foreground() != PaletteColor(1) {
		t.Errorf("expected foreground palette 1, got %+v", ch.Attr.Foreground())
	}
}

func TestTerminalScrollRegionConfinesWrites(t *testing.T) {
	term := NewTerminal(WithSize(10, 5))
	term.Emit(SetTopBottomMargin{Top: 1, Bottom: 3})
	term.Emit(CursorPosition{Row: 1, Col: 1})
	term.Emit(DecPrivateModeSet{Mode: DecModeOriginMode})
	term.Emit(CursorPosition{Row: 1, Col: 1})
	term.Emit(LineFeed{})
	term.Emit(LineFeed{})
	term.Emit(LineFeed{})

	// After 3 line feeds inside a 2-row region (rows 1-2, zero-based),
	// the region should have scrolled rather than moved past row 2.
	if term.Caret().Position.Y != 2 {
		t.Errorf("expected caret clamped at row 2 inside region, got %d", term.Caret().Position.Y)
	}
}

func TestTerminalDeclrmmGating(t *testing.T) {
	term := NewTerminal(WithSize(80, 25))
	state := term.Buffer().TerminalState
	term.Emit(SetLeftRightMargin{Left: 5, Right: 20})
	if state.LeftRightMargins != nil {
		t.Error("expected DECSLRM to be ignored while DECLRMM is off")
	}

	term.Emit(DecPrivateModeSet{Mode: DecModeDECLRMM})
	term.Emit(SetLeftRightMargin{Left: 5, Right: 20})
	if state.LeftRightMargins == nil {
		t.Error("expected DECSLRM to take effect once DECLRMM is on")
	}

	term.Emit(DecPrivateModeReset{Mode: DecModeDECLRMM})
	if state.LeftRightMargins != nil {
		t.Error("expected turning DECLRMM off to clear left/right margins")
	}
}
