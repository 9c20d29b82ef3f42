package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// colorCodes maps palette entries to ANSI 256 colors.
var colorCodes = map[Color]lipgloss.Color{
	ColorWhite:  lipgloss.Color("15"),
	ColorPink:   lipgloss.Color("212"),
	ColorGreen:  lipgloss.Color("10"),
	ColorRed:    lipgloss.Color("9"),
	ColorGray:   lipgloss.Color("245"),
	ColorYellow: lipgloss.Color("11"),
	ColorCyan:   lipgloss.Color("14"),
	ColorOrange: lipgloss.Color("208"),
}

// Palette turns colored cells and text into styled strings for one output.
// Each SSH session gets its own Palette so color detection is per client.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[Color]lipgloss.Style
	cells    map[cell]string
}

// NewPalette creates a palette for w using the given color profile.
func NewPalette(w io.Writer, profile termenv.Profile) *Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	styles := make(map[Color]lipgloss.Style, len(colorCodes)+1)
	styles[ColorNone] = r.NewStyle()
	for c, code := range colorCodes {
		styles[c] = r.NewStyle().Foreground(code)
	}

	return &Palette{
		renderer: r,
		styles:   styles,
		cells:    make(map[cell]string),
	}
}

// Cell returns the styled half-block glyph for a cell. Results are cached.
func (p *Palette) Cell(top, bottom Color) string {
	key := cell{top: top, bottom: bottom}
	if s, ok := p.cells[key]; ok {
		return s
	}

	var s string
	switch {
	case top == ColorNone && bottom == ColorNone:
		s = " "
	case top == bottom:
		s = p.style(top).Render(string(BlockFull))
	case bottom == ColorNone:
		s = p.style(top).Render(string(BlockUpperHalf))
	case top == ColorNone:
		s = p.style(bottom).Render(string(BlockLowerHalf))
	default:
		s = p.style(top).Background(colorCodes[bottom]).Render(string(BlockUpperHalf))
	}
	p.cells[key] = s
	return s
}

// Text styles s in color c.
func (p *Palette) Text(s string, c Color) string {
	return p.style(c).Render(s)
}

func (p *Palette) style(c Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.styles[ColorNone]
}
