package icyengine

import "testing"

func TestTundraDrawRoundTrip(t *testing.T) {
	buf := NewBuffer(80, 2)
	buf.IceMode = IceModeIce
	attr := NewTextAttribute()
	attr.SetForeground(RGBColor(0x80, 0, 0))
	attr.SetBackground(RGBColor(0, 0, 0))
	for x := 0; x < 80; x++ {
		buf.PrimaryLayer().SetChar(x, 0, NewAttributedChar('A', attr))
		buf.PrimaryLayer().SetChar(x, 1, NewAttributedChar('A', attr))
	}

	fmtC := TundraDrawFormat{}
	data, err := fmtC.ToBytes(buf, SaveOptions{SaveSauce: false})
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}

	out, err := fmtC.LoadBuffer("test.tnd", data, nil)
	if err != nil {
		t.Fatalf("LoadBuffer: %v", err)
	}
	if out.Width() != 80 || out.Height() != 2 {
		t.Fatalf("expected 80x2, got %dx%d", out.Width(), out.Height())
	}
	ch := out.PrimaryLayer().GetChar(5, 1)
	if ch.Ch != 'A' {
		t.Fatalf("expected 'A', got %q", ch.Ch)
	}
	rgb := out.Palette().Resolve(ch.Attr.Foreground())
	if rgb.R != 0x80 || rgb.G != 0 || rgb.B != 0 {
		t.Fatalf("expected foreground RGB(0x80,0,0), got %#v", rgb)
	}
}

func TestTundraDrawLoadRejectsBadMagic(t *testing.T) {
	fmtC := TundraDrawFormat{}
	if _, err := fmtC.LoadBuffer("x.tnd", []byte("short"), nil); err == nil {
		t.Fatalf("expected an error for too-short input")
	}
}
