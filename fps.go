package moveone

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSWidget creates a Node that displays the current FPS, TPS, and live
// mover count. The widget refreshes every ~0.5 seconds.
func NewFPSWidget(count func() int) *Node {
	// 100x48 is enough for three DebugPrint lines.
	img := ebiten.NewImage(100, 48)

	node := NewNode("fps_widget")
	node.SetCustomImage(img)
	node.ZIndex = 255 // draw on top

	var lastUpdate float64

	node.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0

		img.Clear()
		// Semi-transparent background for readability
		img.Fill(color.RGBA{0, 0, 0, 128})

		movers := 0
		if count != nil {
			movers = count()
		}
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nMovers: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), movers))
	}

	return node
}
