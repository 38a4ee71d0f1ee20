package icyengine

import (
	"bytes"
	stdimage "image"
	stdcolor "image/color"
	"image/gif"
	"image/png"
)

// GifRepeat selects a GIF's loop-count behavior.
type GifRepeat int

const (
	GifRepeatInfinite GifRepeat = iota
	GifRepeatOnce
	GifRepeatTimes
)

// GifEncoder renders RGBA frames to an indexed, animated GIF, quantizing
// each frame to at most 255 colors with wuQuantize's box splitting; no
// palette slot is reserved for transparency.
type GifEncoder struct {
	Width, Height int
	Repeat        GifRepeat
	Times         int // meaningful only when Repeat == GifRepeatTimes
}

// NewGifEncoder returns a GifEncoder for frames of the given pixel size.
func NewGifEncoder(width, height int) *GifEncoder {
	return &GifEncoder{Width: width, Height: height, Repeat: GifRepeatInfinite}
}

func (e *GifEncoder) loopCount() int {
	switch e.Repeat {
	case GifRepeatOnce:
		return 1
	case GifRepeatTimes:
		return e.Times
	default:
		return 0 // image/gif's convention for "loop forever"
	}
}

// Encode quantizes each frame independently and writes a multi-image GIF
// with the given per-frame delays (in milliseconds, converted to the
// format's native centiseconds, floored to a minimum of 1).
func (e *GifEncoder) Encode(frames [][]RGBAQuad, delaysMs []int) ([]byte, error) {
	g := &gif.GIF{LoopCount: e.loopCount()}
	for i, frame := range frames {
		pal := wuQuantize(frame, 255)
		img := stdimage.NewPaletted(stdimage.Rect(0, 0, e.Width, e.Height), pal)
		for y := 0; y < e.Height; y++ {
			for x := 0; x < e.Width; x++ {
				q := frame[y*e.Width+x]
				img.Set(x, y, stdcolor.RGBA{R: q.R, G: q.G, B: q.B, A: q.A})
			}
		}
		delay := delaysMs[i] / 10
		if delay < 1 {
			delay = 1
		}
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBlinkAnimation renders a buffer's blink-on/blink-off frames as a
// two-frame GIF, with the delay taken from bufferType's BlinkRate.
func (e *GifEncoder) EncodeBlinkAnimation(frameOn, frameOff []RGBAQuad, bufferType BufferType) ([]byte, error) {
	rate := bufferType.BlinkRate() / 10
	if rate < 1 {
		rate = 1
	}
	return e.Encode([][]RGBAQuad{frameOn, frameOff}, []int{rate * 10, rate * 10})
}

// EncodePNG renders a single RGBA frame as a static PNG.
func EncodePNG(width, height int, pixels []RGBAQuad) ([]byte, error) {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			q := pixels[y*width+x]
			img.SetRGBA(x, y, stdcolor.RGBA{R: q.R, G: q.G, B: q.B, A: q.A})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// wuColorBox is one box in Wu's quantization octree-less binary split.
type wuColorBox struct {
	r0, r1, g0, g1, b0, b1 int
	count                  int
}

// wuQuantize reduces pixels to at most maxColors palette entries over a
// 32x32x32 histogram: it repeatedly splits the most populated box at the
// midpoint of its longest axis and uses each box's mean color. Split
// choices are not based on color variance, so this is not Wu's algorithm.
func wuQuantize(pixels []RGBAQuad, maxColors int) stdcolor.Palette {
	if maxColors < 1 {
		maxColors = 1
	}
	const bits = 5 // 32 buckets per channel
	size := 1 << bits
	hist := make([]int, size*size*size)
	sumR := make([]int, size*size*size)
	sumG := make([]int, size*size*size)
	sumB := make([]int, size*size*size)

	idx := func(r, g, b int) int { return (r<<bits+g)<<bits + b }

	for _, p := range pixels {
		r, g, b := int(p.R)>>(8-bits), int(p.G)>>(8-bits), int(p.B)>>(8-bits)
		i := idx(r, g, b)
		hist[i]++
		sumR[i] += int(p.R)
		sumG[i] += int(p.G)
		sumB[i] += int(p.B)
	}

	boxes := []wuColorBox{{r1: size - 1, g1: size - 1, b1: size - 1}}
	boxCount := func(bx wuColorBox) int {
		n := 0
		for r := bx.r0; r <= bx.r1; r++ {
			for g := bx.g0; g <= bx.g1; g++ {
				for b := bx.b0; b <= bx.b1; b++ {
					n += hist[idx(r, g, b)]
				}
			}
		}
		return n
	}
	boxes[0].count = boxCount(boxes[0])

	for len(boxes) < maxColors {
		splitIdx, axis, mid := -1, 0, 0
		best := -1
		for i, bx := range boxes {
			if bx.count < 2 {
				continue
			}
			rSpan, gSpan, bSpan := bx.r1-bx.r0, bx.g1-bx.g0, bx.b1-bx.b0
			span := rSpan
			ax := 0
			if gSpan > span {
				span, ax = gSpan, 1
			}
			if bSpan > span {
				span, ax = bSpan, 2
			}
			if bx.count > best && span > 0 {
				best = bx.count
				splitIdx = i
				axis = ax
				switch axis {
				case 0:
					mid = (bx.r0 + bx.r1) / 2
				case 1:
					mid = (bx.g0 + bx.g1) / 2
				default:
					mid = (bx.b0 + bx.b1) / 2
				}
			}
		}
		if splitIdx < 0 {
			break
		}
		bx := boxes[splitIdx]
		left, right := bx, bx
		switch axis {
		case 0:
			left.r1, right.r0 = mid, mid+1
		case 1:
			left.g1, right.g0 = mid, mid+1
		default:
			left.b1, right.b0 = mid, mid+1
		}
		left.count = boxCount(left)
		right.count = boxCount(right)
		if left.count == 0 || right.count == 0 {
			break
		}
		boxes[splitIdx] = left
		boxes = append(boxes, right)
	}

	pal := make(stdcolor.Palette, 0, len(boxes))
	for _, bx := range boxes {
		var n, tr, tg, tb int
		for r := bx.r0; r <= bx.r1; r++ {
			for g := bx.g0; g <= bx.g1; g++ {
				for b := bx.b0; b <= bx.b1; b++ {
					i := idx(r, g, b)
					n += hist[i]
					tr += sumR[i]
					tg += sumG[i]
					tb += sumB[i]
				}
			}
		}
		if n == 0 {
			continue
		}
		pal = append(pal, stdcolor.RGBA{R: uint8(tr / n), G: uint8(tg / n), B: uint8(tb / n), A: 255})
	}
	if len(pal) == 0 {
		pal = append(pal, stdcolor.RGBA{A: 255})
	}
	return pal
}
