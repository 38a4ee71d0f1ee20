package icyengine

import "testing"

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(80, 24)

	if b.Width() != 80 {
		t.Errorf("expected width 80, got %d", b.Width())
	}
	if b.Height() != 24 {
		t.Errorf("expected height 24, got %d", b.Height())
	}
	if len(b.Layers()) != 1 {
		t.Errorf("expected a single background layer, got %d", len(b.Layers()))
	}
}

func TestLayerSetGetChar(t *testing.T) {
	l := NewLayer("test", NewSize(10, 5))
	ch := NewAttributedChar('A', NewTextAttribute())
	l.SetChar(2, 1, ch)

	got := l.GetChar(2, 1)
	if got.Ch != 'A' {
		t.Errorf("expected 'A', got %q", got.Ch)
	}

	// Reading outside written bounds returns an invisible cell.
	if !l.GetChar(9, 9).IsInvisible() {
		t.Error("expected out-of-range read to be invisible")
	}
}

func TestLayerLockedWritesAreNoop(t *testing.T) {
	l := NewLayer("test", NewSize(10, 5))
	l.Properties.Locked = true
	l.SetChar(0, 0, NewAttributedChar('X', NewTextAttribute()))

	if l.GetChar(0, 0).Ch == 'X' {
		t.Error("expected write to locked layer to be a no-op")
	}
}

func TestLayerAlphaChannelLockedRefusesNewCells(t *testing.T) {
	l := NewLayer("test", NewSize(10, 5))
	l.Properties.AlphaChannel = true
	l.Properties.AlphaChannelLocked = true

	l.SetChar(0, 0, NewAttributedChar('X', NewTextAttribute()))
	if l.GetChar(0, 0).Ch == 'X' {
		t.Error("expected write to previously-invisible cell to be refused")
	}
}

func TestLayerInsertDeleteLine(t *testing.T) {
	l := NewLayer("test", NewSize(5, 3))
	attr := NewTextAttribute()
	l.SetChar(0, 0, NewAttributedChar('1', attr))
	l.SetChar(0, 1, NewAttributedChar('2', attr))
	l.SetChar(0, 2, NewAttributedChar('3', attr))

	l.InsertLineAt(0, 0, 3, InvisibleChar())
	if l.GetChar(0, 1).Ch != '1' {
		t.Errorf("expected row 1 to hold the old row 0 content, got %q", l.GetChar(0, 1).Ch)
	}

	l.DeleteLineAt(0, 0, 3, InvisibleChar())
	if l.GetChar(0, 0).Ch != '1' {
		t.Errorf("expected row 0 to hold the old row 1 content, got %q", l.GetChar(0, 0).Ch)
	}
}

func TestBufferCompositesTopmostLayer(t *testing.T) {
	b := NewBuffer(10, 5)
	b.PrimaryLayer().SetChar(0, 0, NewAttributedChar('B', NewTextAttribute()))

	top := NewLayer("overlay", NewSize(10, 5))
	top.SetChar(0, 0, NewAttributedChar('T', NewTextAttribute()))
	b.AddLayer(*top)

	if got := b.GetChar(0, 0); got.Ch != 'T' {
		t.Errorf("expected overlay layer to win, got %q", got.Ch)
	}
}
