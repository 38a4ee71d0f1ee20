package icyengine

import "testing"

func TestIceDrawRoundTrip(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.IceMode = IceModeIce
	buf.SetFont(0, NewBitFont("Test", 8, 16))
	attr := NewTextAttribute()
	attr.SetForeground(PaletteColor(8))
	buf.PrimaryLayer().SetChar(0, 0, NewAttributedChar('A', attr))
	buf.PrimaryLayer().SetChar(1, 0, NewAttributedChar('B', NewTextAttribute()))

	format := IceDrawFormat{}
	data, err := format.ToBytes(buf, SaveOptions{})
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}

	out, err := format.LoadBuffer("test.idf", data, nil)
	if err != nil {
		t.Fatalf("LoadBuffer: %v", err)
	}
	if out.Width() != 4 {
		t.Fatalf("expected width 4, got %d", out.Width())
	}
	got := out.PrimaryLayer().GetChar(0, 0)
	if got.Ch != 'A' {
		t.Fatalf("expected 'A' at (0,0), got %q", got.Ch)
	}
}

func TestIceDrawRejectsNonIceMode(t *testing.T) {
	buf := NewBuffer(4, 2)
	format := IceDrawFormat{}
	if _, err := format.ToBytes(buf, SaveOptions{}); err != ErrIceModeRequired {
		t.Fatalf("expected ErrIceModeRequired, got %v", err)
	}
}

func TestIceDrawLoadRejectsBadMagic(t *testing.T) {
	format := IceDrawFormat{}
	if _, err := format.LoadBuffer("x.idf", []byte("not an idf file at all"), nil); err == nil {
		t.Fatalf("expected an error for malformed header")
	}
}
