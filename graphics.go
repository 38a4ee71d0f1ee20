package icyengine

// EditableScreen is the pixel-addressable surface SkyPaint draws onto: a
// fixed-size grid of RGBAQuads, read and written one pixel at a time.
type EditableScreen interface {
	Width() int
	Height() int
	GetPixel(x, y int) RGBAQuad
	SetPixel(x, y int, c RGBAQuad)
}

// PixelGrid is the in-memory EditableScreen backing SkyPaint when no host
// framebuffer is supplied.
type PixelGrid struct {
	width, height int
	pixels        []RGBAQuad
}

// NewPixelGrid returns a width x height grid, all pixels zero-valued
// (transparent black).
func NewPixelGrid(width, height int) *PixelGrid {
	return &PixelGrid{width: width, height: height, pixels: make([]RGBAQuad, width*height)}
}

func (g *PixelGrid) Width() int  { return g.width }
func (g *PixelGrid) Height() int { return g.height }

func (g *PixelGrid) GetPixel(x, y int) RGBAQuad {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return RGBAQuad{}
	}
	return g.pixels[y*g.width+x]
}

func (g *PixelGrid) SetPixel(x, y int, c RGBAQuad) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.pixels[y*g.width+x] = c
}

var _ EditableScreen = (*PixelGrid)(nil)

// SkyPaint is the graphics core shared by RIP and SkyPix raster
// operations: two pens, a viewport clip rectangle, and the drawing
// primitives both dialects express their vector commands in terms of.
// Pens and pixels hold RGBAQuad colors directly; no palette index is kept.
type SkyPaint struct {
	Screen   EditableScreen
	PenA     RGBAQuad // drawing color
	PenB     RGBAQuad // fill color
	PenPos   Position
	Viewport Rectangle
}

// NewSkyPaint returns a SkyPaint drawing onto screen, with the viewport
// defaulted to the screen's full extent.
func NewSkyPaint(screen EditableScreen) *SkyPaint {
	return &SkyPaint{
		Screen:   screen,
		Viewport: Rectangle{Start: Position{}, Size: Size{Width: screen.Width(), Height: screen.Height()}},
	}
}

func (s *SkyPaint) inViewport(x, y int) bool {
	return s.Viewport.IsInside(Position{X: x, Y: y})
}

// PutPixel sets a single pixel to PenA, clipped to the viewport.
func (s *SkyPaint) PutPixel(x, y int) {
	if s.inViewport(x, y) {
		s.Screen.SetPixel(x, y, s.PenA)
	}
}

// Line draws a Bresenham line from (x0,y0) to (x1,y1) with PenA.
func (s *SkyPaint) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		s.PutPixel(x, y)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// MovePen relocates the pen position without drawing.
func (s *SkyPaint) MovePen(x, y int) { s.PenPos = Position{X: x, Y: y} }

// LineTo draws from the current pen position to (x,y) and updates the pen
// position to match.
func (s *SkyPaint) LineTo(x, y int) {
	s.Line(s.PenPos.X, s.PenPos.Y, x, y)
	s.PenPos = Position{X: x, Y: y}
}

// Bar fills an axis-aligned rectangle with PenB.
func (s *SkyPaint) Bar(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if s.inViewport(x, y) {
				s.Screen.SetPixel(x, y, s.PenB)
			}
		}
	}
}

// Ellipse draws (unfilled, PenA) an axis-aligned ellipse via the midpoint
// ellipse algorithm.
func (s *SkyPaint) Ellipse(cx, cy, rx, ry int) {
	s.ellipsePoints(cx, cy, rx, ry, func(x, y int) { s.PutPixel(x, y) })
}

// FillEllipse draws a filled ellipse with PenB by scanning each point the
// outline algorithm visits and filling the horizontal span to its mirror.
func (s *SkyPaint) FillEllipse(cx, cy, rx, ry int) {
	s.ellipsePoints(cx, cy, rx, ry, func(x, y int) {
		mirrorX := 2*cx - x
		lo, hi := x, mirrorX
		if lo > hi {
			lo, hi = hi, lo
		}
		for px := lo; px <= hi; px++ {
			if s.inViewport(px, y) {
				s.Screen.SetPixel(px, y, s.PenB)
			}
		}
	})
}

func (s *SkyPaint) ellipsePoints(cx, cy, rx, ry int, plot func(x, y int)) {
	if rx == 0 || ry == 0 {
		return
	}
	rx2, ry2 := rx*rx, ry*ry
	x, y := 0, ry
	px, py := 0, 2*rx2*y
	plot4(cx, cy, x, y, plot)

	p1 := ry2 - rx2*ry + rx2/4
	for px < py {
		x++
		px += 2 * ry2
		if p1 < 0 {
			p1 += ry2 + px
		} else {
			y--
			py -= 2 * rx2
			p1 += ry2 + px - py
		}
		plot4(cx, cy, x, y, plot)
	}

	p2 := ry2*(x*2+1)*(x*2+1)/4 + rx2*(y-1)*(y-1) - rx2*ry2
	for y > 0 {
		y--
		py -= 2 * rx2
		if p2 > 0 {
			p2 += rx2 - py
		} else {
			x++
			px += 2 * ry2
			p2 += rx2 - py + px
		}
		plot4(cx, cy, x, y, plot)
	}
}

func plot4(cx, cy, x, y int, plot func(x, y int)) {
	plot(cx+x, cy+y)
	plot(cx-x, cy+y)
	plot(cx+x, cy-y)
	plot(cx-x, cy-y)
}

// FloodFill performs a 4-connected flood fill starting at (x,y): pixels
// matching the seed color are replaced with PenB (color mode), or stops at
// any pixel matching PenA (outline/border mode), matching RIP's two
// flood-fill variants.
func (s *SkyPaint) FloodFill(x, y int, borderMode bool) {
	seed := s.Screen.GetPixel(x, y)
	if borderMode && seed == s.PenA {
		return
	}
	if !borderMode && seed == s.PenB {
		return
	}
	visited := make(map[[2]int]bool)
	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		px, py := p[0], p[1]
		if !s.inViewport(px, py) || visited[p] {
			continue
		}
		cur := s.Screen.GetPixel(px, py)
		if borderMode {
			if cur == s.PenA {
				continue
			}
		} else if cur != seed {
			continue
		}
		visited[p] = true
		s.Screen.SetPixel(px, py, s.PenB)
		stack = append(stack,
			[2]int{px + 1, py}, [2]int{px - 1, py},
			[2]int{px, py + 1}, [2]int{px, py - 1})
	}
}

// GetImage captures the pixels of a rectangle for later PutImage2 placement.
func (s *SkyPaint) GetImage(x0, y0, x1, y1 int) []RGBAQuad {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	w := x1 - x0 + 1
	h := y1 - y0 + 1
	out := make([]RGBAQuad, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = s.Screen.GetPixel(x0+x, y0+y)
		}
	}
	return out
}

// PutImage2 writes pixels (width x height, row-major) with top-left corner
// at (x,y).
func (s *SkyPaint) PutImage2(x, y, width, height int, pixels []RGBAQuad) {
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			i := row*width + col
			if i >= len(pixels) {
				return
			}
			s.PutPixel(x+col, y+row)
			s.Screen.SetPixel(x+col, y+row, pixels[i])
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
