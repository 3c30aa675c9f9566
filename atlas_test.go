package moveone

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpriteColorIsStable(t *testing.T) {
	a := NewSpriteBank(32)
	b := NewSpriteBank(32)

	require.Equal(t, a.Color("whelp"), b.Color("whelp"))
	require.NotEqual(t, a.Color("whelp"), a.Color("wisp"))
}

func TestSpriteColorComponentsInRange(t *testing.T) {
	bank := NewSpriteBank(32)
	for _, name := range []string{"whelp", "wisp", "drake", "x", ""} {
		c := bank.Color(name)
		for _, v := range []float64{c.R, c.G, c.B} {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
		require.Equal(t, 1.0, c.A)
	}
}

func TestArrowRasterShape(t *testing.T) {
	bank := NewSpriteBank(32)
	img := bank.Pixels("whelp")

	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 32, img.Bounds().Dy())

	// Pixels along the spine toward the nose and at the base are filled.
	require.NotZero(t, img.RGBAAt(30, 15).A)
	require.NotZero(t, img.RGBAAt(1, 15).A)

	// Right-side corners are outside the triangle.
	require.Zero(t, img.RGBAAt(31, 0).A)
	require.Zero(t, img.RGBAAt(31, 31).A)
}

func TestPixelsAreCached(t *testing.T) {
	bank := NewSpriteBank(16)
	require.Same(t, bank.Pixels("whelp"), bank.Pixels("whelp"))
}

func TestHSLPrimaries(t *testing.T) {
	r, g, b := hslToRGB(0, 1, 0.5)
	assertNear(t, "red.r", r, 1)
	assertNear(t, "red.g", g, 0)
	assertNear(t, "red.b", b, 0)

	r, g, b = hslToRGB(120, 1, 0.5)
	assertNear(t, "green.g", g, 1)
	assertNear(t, "green.r", r, 0)
	assertNear(t, "green.b", b, 0)

	r, g, b = hslToRGB(240, 1, 0.5)
	assertNear(t, "blue.b", b, 1)
	assertNear(t, "blue.r", r, 0)
	assertNear(t, "blue.g", g, 0)
}
