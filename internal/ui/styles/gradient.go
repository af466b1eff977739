package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient colors each grapheme of text along a blend from one color to
// another. Blending happens in HCL space.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(bold).Render(text)
	}

	ramp := Ramp(len(clusters), from, to)
	var b strings.Builder
	for i, g := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Bold(bold).Render(g))
	}
	return b.String()
}

// TitleGradient renders a title row label with the theme accent gradient.
func TitleGradient(text string) string {
	t := T()
	return Gradient(text, t.Accent, t.AccentAlt, true)
}

// Ramp returns n colors from one end to the other. The ends are returned
// as given.
func Ramp(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}
	c1 := toColorful(from)
	c2 := toColorful(to)
	out := make([]lipgloss.Color, n)
	out[0], out[n-1] = from, to
	for i := 1; i < n-1; i++ {
		out[i] = lipgloss.Color(c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

func graphemes(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// toColorful parses a hex lipgloss color. ANSI indexes map to mid gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.Gray{Y: 128})
	return gray
}
