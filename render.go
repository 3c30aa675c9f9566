package moveone

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders every visible node, z-sorted (stable, so insertion order
// breaks ties). Bank sprites are resolved — and lazily rasterized — at
// draw time, which keeps the update pipeline free of GPU work.
func (s *Stage) Draw(screen *ebiten.Image, bank *SpriteBank) {
	screen.Fill(s.ClearColor.toRGBA())

	s.drawBuf = s.drawBuf[:0]
	for _, n := range s.nodes {
		if !n.Visible || n.disposed || n.Alpha <= 0 {
			continue
		}
		s.drawBuf = append(s.drawBuf, n)
	}
	sort.SliceStable(s.drawBuf, func(i, j int) bool {
		return s.drawBuf[i].ZIndex < s.drawBuf[j].ZIndex
	})

	for _, n := range s.drawBuf {
		img := n.customImage
		if img == nil {
			img = bank.Image(n.SpriteName)
		}
		if img == nil {
			continue
		}

		m := computeLocalTransform(n)
		var op ebiten.DrawImageOptions
		op.GeoM.SetElement(0, 0, m[0])
		op.GeoM.SetElement(1, 0, m[1])
		op.GeoM.SetElement(0, 1, m[2])
		op.GeoM.SetElement(1, 1, m[3])
		op.GeoM.SetElement(0, 2, m[4])
		op.GeoM.SetElement(1, 2, m[5])

		op.ColorScale.Scale(
			float32(n.Color.R),
			float32(n.Color.G),
			float32(n.Color.B),
			float32(n.Color.A*n.Alpha),
		)

		screen.DrawImage(img, &op)
	}
}
