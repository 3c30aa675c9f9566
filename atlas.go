package moveone

import (
	"image"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteBank maps sprite names to procedurally rasterized images. Every
// name resolves: the visual is an arrowhead (pointing +X, so facing is
// visible) tinted with a color derived from the xxhash of the name, which
// keeps a given name's color stable across runs and machines.
//
// Rasterization to CPU pixels is done eagerly per name; upload to an
// *ebiten.Image happens lazily on first draw, so update-side code and
// tests never touch the GPU.
type SpriteBank struct {
	size   int
	pixels map[string]*image.RGBA
	images map[string]*ebiten.Image
}

// NewSpriteBank creates a bank producing size×size sprites.
func NewSpriteBank(size int) *SpriteBank {
	return &SpriteBank{
		size:   size,
		pixels: make(map[string]*image.RGBA),
		images: make(map[string]*ebiten.Image),
	}
}

// Size returns the sprite edge length in pixels.
func (b *SpriteBank) Size() int {
	return b.size
}

// Color returns the stable tint for a sprite name.
func (b *SpriteBank) Color(name string) Color {
	hue := float64(xxhash.Sum64String(name) % 360)
	r, g, bl := hslToRGB(hue, 0.65, 0.6)
	return Color{R: r, G: g, B: bl, A: 1}
}

// Pixels returns the CPU-side raster for a sprite name, generating it on
// first use.
func (b *SpriteBank) Pixels(name string) *image.RGBA {
	if img, ok := b.pixels[name]; ok {
		return img
	}
	img := rasterizeArrow(b.size, b.Color(name))
	b.pixels[name] = img
	return img
}

// Image returns the GPU image for a sprite name, uploading it on first use.
// Only the render path calls this.
func (b *SpriteBank) Image(name string) *ebiten.Image {
	if img, ok := b.images[name]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(b.Pixels(name))
	b.images[name] = img
	return img
}

// rasterizeArrow fills a size×size RGBA image with an arrowhead triangle
// pointing toward +X: nose at the right edge's middle, base at the left.
func rasterizeArrow(size int, c Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fill := c.toRGBA()

	s := float64(size - 1)
	nose := Vec2{X: s, Y: s / 2}
	top := Vec2{X: 0, Y: 0}
	bottom := Vec2{X: 0, Y: s}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := Vec2{X: float64(x), Y: float64(y)}
			if pointInTriangle(p, top, nose, bottom) {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

// pointInTriangle uses the cross-product sign test: p is inside when it
// lies on the same side of all three edges.
func pointInTriangle(p, a, b, c Vec2) bool {
	d1 := cross(p, a, b)
	d2 := cross(p, b, c)
	d3 := cross(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(p, a, b Vec2) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// hslToRGB converts hue [0,360), saturation and lightness [0,1] to RGB [0,1].
func hslToRGB(h, s, l float64) (float64, float64, float64) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return r + m, g + m, b + m
}
