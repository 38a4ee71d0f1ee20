package icyengine

import "testing"

func TestSkyPaintPutPixelClipped(t *testing.T) {
	grid := NewPixelGrid(10, 10)
	p := NewSkyPaint(grid)
	p.PenA = RGBAQuad{255, 0, 0, 255}

	p.PutPixel(5, 5)
	if grid.GetPixel(5, 5) != p.PenA {
		t.Fatalf("expected pixel set, got %#v", grid.GetPixel(5, 5))
	}

	p.PutPixel(100, 100) // out of bounds, must not panic
}

func TestSkyPaintLine(t *testing.T) {
	grid := NewPixelGrid(10, 10)
	p := NewSkyPaint(grid)
	p.PenA = RGBAQuad{0, 255, 0, 255}
	p.Line(0, 0, 9, 0)

	for x := 0; x < 10; x++ {
		if grid.GetPixel(x, 0) != p.PenA {
			t.Fatalf("expected horizontal line at x=%d", x)
		}
	}
}

func TestSkyPaintBar(t *testing.T) {
	grid := NewPixelGrid(10, 10)
	p := NewSkyPaint(grid)
	p.PenB = RGBAQuad{0, 0, 255, 255}
	p.Bar(2, 2, 4, 4)

	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			if grid.GetPixel(x, y) != p.PenB {
				t.Fatalf("expected fill at (%d,%d)", x, y)
			}
		}
	}
	if grid.GetPixel(1, 1) == p.PenB {
		t.Fatal("expected pixel outside bar to be untouched")
	}
}

func TestSkyPaintFloodFillColorMode(t *testing.T) {
	grid := NewPixelGrid(5, 5)
	p := NewSkyPaint(grid)
	p.PenB = RGBAQuad{1, 2, 3, 255}
	p.FloodFill(0, 0, false)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if grid.GetPixel(x, y) != p.PenB {
				t.Fatalf("expected flood fill to cover (%d,%d)", x, y)
			}
		}
	}
}

func TestSkyPaintFloodFillBorderMode(t *testing.T) {
	grid := NewPixelGrid(5, 5)
	p := NewSkyPaint(grid)
	p.PenA = RGBAQuad{9, 9, 9, 255}
	// Draw a border box from (1,1) to (3,3).
	p.Line(1, 1, 3, 1)
	p.Line(3, 1, 3, 3)
	p.Line(3, 3, 1, 3)
	p.Line(1, 3, 1, 1)

	p.PenB = RGBAQuad{8, 8, 8, 255}
	p.FloodFill(2, 2, true)

	if grid.GetPixel(2, 2) != p.PenB {
		t.Fatal("expected interior to be filled")
	}
	if grid.GetPixel(0, 0) == p.PenB {
		t.Fatal("expected exterior to stay untouched by border-mode fill")
	}
}

func TestSkyPaintGetImagePutImage2RoundTrip(t *testing.T) {
	src := NewPixelGrid(4, 4)
	p := NewSkyPaint(src)
	p.PenB = RGBAQuad{7, 8, 9, 255}
	p.Bar(0, 0, 1, 1)

	img := p.GetImage(0, 0, 1, 1)

	dst := NewPixelGrid(4, 4)
	q := NewSkyPaint(dst)
	q.PutImage2(2, 2, 2, 2, img)

	if dst.GetPixel(2, 2) != p.PenB || dst.GetPixel(3, 3) != p.PenB {
		t.Fatal("expected captured image to be placed at destination")
	}
}
