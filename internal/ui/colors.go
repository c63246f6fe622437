package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// parseColor converts a #rrggbb string, falling back when it is invalid
func parseColor(hex string, fallback tcell.Color) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return toTcell(c)
}

// fade blends from background toward fg; t=0 is background, t=1 is fg
func fade(fg, bg string, t float64) tcell.Color {
	from, err := colorful.Hex(bg)
	if err != nil {
		from = colorful.Color{}
	}
	to, err := colorful.Hex(fg)
	if err != nil {
		to = colorful.Color{R: 1, G: 1, B: 1}
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return toTcell(from.BlendRgb(to, t).Clamped())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
