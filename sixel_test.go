package icyengine

import "testing"

func TestParseSixel_SimplePixel(t *testing.T) {
	// '~' = 63 (all 6 pixels set)
	img := ParseSixel(nil, []byte("~"))
	if img.Width != 1 {
		t.Errorf("expected width 1, got %d", img.Width)
	}
	if img.Height != 6 {
		t.Errorf("expected height 6, got %d", img.Height)
	}
}

func TestParseSixel_MultipleColumns(t *testing.T) {
	img := ParseSixel(nil, []byte("~~~"))
	if img.Width != 3 {
		t.Errorf("expected width 3, got %d", img.Width)
	}
	if img.Height != 6 {
		t.Errorf("expected height 6, got %d", img.Height)
	}
}

func TestParseSixel_NewLine(t *testing.T) {
	img := ParseSixel(nil, []byte("~-~"))
	if img.Width != 1 {
		t.Errorf("expected width 1, got %d", img.Width)
	}
	if img.Height != 12 {
		t.Errorf("expected height 12, got %d", img.Height)
	}
}

func TestParseSixel_CarriageReturn(t *testing.T) {
	img := ParseSixel(nil, []byte("~$~"))
	if img.Width != 1 {
		t.Errorf("expected width 1, got %d", img.Width)
	}
}

func TestParseSixel_Repeat(t *testing.T) {
	img := ParseSixel(nil, []byte("!5~"))
	if img.Width != 5 {
		t.Errorf("expected width 5, got %d", img.Width)
	}
}

func TestParseSixel_ColorRGB(t *testing.T) {
	img := ParseSixel(nil, []byte("#1;2;100;0;0#1~"))
	if img.Width != 1 || img.Height != 6 {
		t.Errorf("unexpected dimensions: %dx%d", img.Width, img.Height)
	}
	if len(img.Pixels) < 1 {
		t.Fatal("expected at least one decoded pixel")
	}
	c := img.Pixels[0]
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("expected red (255,0,0), got (%d,%d,%d)", c.R, c.G, c.B)
	}
}

func TestParseSixel_ColorHLS(t *testing.T) {
	img := ParseSixel(nil, []byte("#2;1;120;50;100#2~"))
	if img.Width != 1 {
		t.Errorf("expected width 1, got %d", img.Width)
	}
}

func TestParseSixel_Transparent(t *testing.T) {
	// P2=1 means transparent background: unset pixels stay zero-value.
	params := []int64{0, 1, 0}
	img := ParseSixel(params, []byte("~"))
	if len(img.Pixels) != img.Width*img.Height {
		t.Fatalf("expected %d pixels, got %d", img.Width*img.Height, len(img.Pixels))
	}
}

func TestParseSixel_Empty(t *testing.T) {
	img := ParseSixel(nil, []byte(""))
	if img.Width != 0 || img.Height != 0 {
		t.Errorf("expected 0x0, got %dx%d", img.Width, img.Height)
	}
}

func TestParseSixel_ComplexImage(t *testing.T) {
	img := ParseSixel(nil, []byte("#0;2;0;0;0#1;2;100;0;0#0!10~-#1!10~"))
	if img.Width != 10 {
		t.Errorf("expected width 10, got %d", img.Width)
	}
	if img.Height != 12 {
		t.Errorf("expected height 12, got %d", img.Height)
	}
}
