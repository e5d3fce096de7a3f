package monitor

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Dashboard color palette
const (
	ColorTextPrimary = lipgloss.Color("#FFFFFF")
	ColorTextMuted   = lipgloss.Color("#6B6B8D")
	ColorAxis        = lipgloss.Color("#B4B4D0")
	ColorMemory      = lipgloss.Color("#39FF14") // green
	ColorCPU         = lipgloss.Color("#00FFFF") // cyan
	ColorCore        = lipgloss.Color("#BF40FF") // purple
)

// Markers plotted for each sample. They differ so both series stay
// distinguishable when shown together.
const (
	CPUMarker    = ":"
	MemoryMarker = "#"
)

// Styles holds the lipgloss styles used by the dashboard, all bound to one
// renderer so color support is decided once for the output stream.
type Styles struct {
	Header        lipgloss.Style
	Axis          lipgloss.Style
	AxisLabel     lipgloss.Style
	CPUReadout    lipgloss.Style
	MemoryReadout lipgloss.Style
	CPUMarker     lipgloss.Style
	MemoryMarker  lipgloss.Style
	CoreHeader    lipgloss.Style
	CoreBox       lipgloss.Style
	Summary       lipgloss.Style
}

// NewStyles builds the dashboard styles for a renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header:        r.NewStyle().Foreground(ColorTextPrimary).Bold(true),
		Axis:          r.NewStyle().Foreground(ColorAxis),
		AxisLabel:     r.NewStyle().Foreground(ColorTextMuted),
		CPUReadout:    r.NewStyle().Foreground(ColorCPU).Bold(true),
		MemoryReadout: r.NewStyle().Foreground(ColorMemory).Bold(true),
		CPUMarker:     r.NewStyle().Foreground(ColorCPU),
		MemoryMarker:  r.NewStyle().Foreground(ColorMemory),
		CoreHeader:    r.NewStyle().Foreground(ColorTextPrimary).Bold(true),
		CoreBox:       r.NewStyle().Foreground(ColorCore),
		Summary:       r.NewStyle().Foreground(ColorTextMuted),
	}
}

// NewRenderer returns a lipgloss renderer for w with the given color profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

// PlainStyles renders every style as plain text. Tests use it to compare
// screen contents without escape codes.
func PlainStyles() Styles {
	return NewStyles(NewRenderer(io.Discard, termenv.Ascii))
}
