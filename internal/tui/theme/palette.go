package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colors the calendar actually paints with, derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Endpoint    lipgloss.Color
	Today       lipgloss.Color
	Weekend     lipgloss.Color
	Tag         lipgloss.Color
	Warning     lipgloss.Color

	RangeBg    lipgloss.Color // in-range days
	PreviewBg  lipgloss.Color // hover preview, lighter than RangeBg
	DisabledFg lipgloss.Color

	TextOnAccent   lipgloss.Color
	TextOnEndpoint lipgloss.Color
	TextOnRange    lipgloss.Color
}

// NewPalette derives a Palette from t. A nil theme means mocha.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	light := relativeLuminance(t.Bg) > 0.55
	var rangeHex, previewHex string
	if light {
		rangeHex = blendColors(t.Range, t.Bg, 0.75)
		previewHex = blendColors(t.Range, t.Bg, 0.88)
	} else {
		rangeHex = darkenColor(t.Range)
		previewHex = blendColors(rangeHex, t.Bg, 0.5)
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Endpoint:    lipgloss.Color(t.Endpoint),
		Today:       lipgloss.Color(t.Today),
		Weekend:     lipgloss.Color(t.Weekend),
		Tag:         lipgloss.Color(t.Tag),
		Warning:     lipgloss.Color(t.Warning),

		RangeBg:    lipgloss.Color(rangeHex),
		PreviewBg:  lipgloss.Color(previewHex),
		DisabledFg: lipgloss.Color(blendColors(t.FgMuted, t.Bg, 0.45)),

		TextOnAccent:   lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnEndpoint: lipgloss.Color(chooseTextColor(t.Endpoint, t.Bg, t.Fg)),
		TextOnRange:    lipgloss.Color(chooseTextColor(rangeHex, t.Bg, t.Fg)),
	}
}

// darkenColor scales each channel to 45% with a floor of 40/255 so range
// backgrounds stay visible on dark themes. Invalid input is returned unchanged.
func darkenColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	const floor = 40.0 / 255
	scale := func(v float64) float64 { return math.Max(v*0.45, floor) }
	return colorful.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B)}.Hex()
}

// blendColors mixes a toward b by ratio in RGB. Invalid input returns a.
func blendColors(a, b string, ratio float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	return ca.BlendRgb(cb, math.Max(0, math.Min(ratio, 1))).Clamped().Hex()
}

// chooseTextColor picks whichever of the two text colors contrasts more with bg.
func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1, l2 := relativeLuminance(a), relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance is the WCAG luminance of a hex color, 0 when unparsable.
func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
