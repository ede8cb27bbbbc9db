package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette holds every color the renderer uses
type Palette struct {
	Sky       tcell.Color
	WaterTop  tcell.Color
	WaterDeep tcell.Color
	Surface   tcell.Color
	Seabed    tcell.Color
	Turtle    tcell.Color
	Hazard    tcell.Color
	Pickup    tcell.Color
	Text      tcell.Color
	Dim       tcell.Color
	Highlight tcell.Color
	Panel     tcell.Color
}

// TrueColorPalette uses 24-bit colors with a per-row water gradient
var TrueColorPalette = Palette{
	Sky:       tcell.NewRGBColor(135, 206, 235), // Sky blue
	WaterTop:  tcell.NewRGBColor(30, 144, 200),  // Shallow water
	WaterDeep: tcell.NewRGBColor(8, 30, 70),     // Deep water
	Surface:   tcell.NewRGBColor(220, 240, 255), // Foam
	Seabed:    tcell.NewRGBColor(194, 160, 100), // Sand
	Turtle:    tcell.NewRGBColor(60, 200, 90),   // Green
	Hazard:    tcell.NewRGBColor(230, 60, 60),   // Red
	Pickup:    tcell.NewRGBColor(255, 215, 0),   // Gold
	Text:      tcell.NewRGBColor(255, 255, 255),
	Dim:       tcell.NewRGBColor(170, 170, 170),
	Highlight: tcell.NewRGBColor(255, 215, 0),
	Panel:     tcell.NewRGBColor(10, 20, 40),
}

// IndexedPalette sticks to the 256-color cube; the water gradient collapses to two steps
var IndexedPalette = Palette{
	Sky:       tcell.PaletteColor(117),
	WaterTop:  tcell.PaletteColor(32),
	WaterDeep: tcell.PaletteColor(17),
	Surface:   tcell.PaletteColor(195),
	Seabed:    tcell.PaletteColor(180),
	Turtle:    tcell.PaletteColor(77),
	Hazard:    tcell.PaletteColor(196),
	Pickup:    tcell.PaletteColor(220),
	Text:      tcell.PaletteColor(231),
	Dim:       tcell.PaletteColor(250),
	Highlight: tcell.PaletteColor(220),
	Panel:     tcell.PaletteColor(233),
}

// PaletteFor resolves a color mode ("auto", "truecolor", "256") against the screen
func PaletteFor(mode string, screen tcell.Screen) Palette {
	switch mode {
	case "truecolor":
		return TrueColorPalette
	case "256":
		return IndexedPalette
	}
	if screen != nil && screen.Colors() > 256 {
		return TrueColorPalette
	}
	return IndexedPalette
}

// lerpColor blends two colors; progress outside [0,1] is clamped
// Non-RGB colors switch at the midpoint
func lerpColor(a, b tcell.Color, progress float64) tcell.Color {
	if progress <= 0 {
		return a
	}
	if progress >= 1 {
		return b
	}
	if !a.IsRGB() || !b.IsRGB() {
		if progress < 0.5 {
			return a
		}
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 {
		return x + int32(float64(y-x)*progress)
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
