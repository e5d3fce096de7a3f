package monitor

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/sysgraph/internal/errors"
)

// Series identifies which resource a graph tracks.
type Series int

const (
	SeriesMemory Series = iota
	SeriesCPU
)

func (s Series) String() string {
	switch s {
	case SeriesMemory:
		return "memory"
	case SeriesCPU:
		return "cpu"
	default:
		return "unknown"
	}
}

const (
	// axisLabelWidth is the width of the left label column including the
	// space before the "|" tick.
	axisLabelWidth = 8
	axisTick       = "        |"
	axisGap        = "   "
)

// Graph is what the sample loop needs from a rendered series.
type Graph interface {
	// DrawFrame paints the static axes. Called once per run.
	DrawFrame()
	// Readout overwrites the live numeric line above the graph.
	Readout(value float64)
	// Plot writes one marker for a sample. Prior markers are never touched.
	Plot(value float64, index int) error
}

// Grid renders one series onto a Surface at a fixed Geometry.
type Grid struct {
	surface  Surface
	geom     Geometry
	series   Series
	maxValue float64
	styles   Styles
}

// NewGrid returns a Grid for series spanning [0, maxValue].
// CPU uses maxValue 100; memory uses the total memory in GB.
func NewGrid(surface Surface, geom Geometry, series Series, maxValue float64, styles Styles) *Grid {
	return &Grid{
		surface:  surface,
		geom:     geom,
		series:   series,
		maxValue: maxValue,
		styles:   styles,
	}
}

// DrawFrame paints the left axis with one tick line per bucket, the top
// label, and the bottom axis of samples+1 dashes.
func (g *Grid) DrawFrame() {
	top := g.geom.TopRow()
	for row := top; row <= g.geom.OriginRow; row++ {
		g.surface.MoveTo(row, 1)
		g.surface.Write(g.styles.Axis.Render(axisTick))
	}

	g.surface.MoveTo(top, 1)
	g.surface.Write(g.styles.AxisLabel.Render(g.topLabel()))

	g.surface.MoveTo(g.geom.AxisRow(), 1)
	g.surface.Write(g.styles.AxisLabel.Render(g.bottomLabel()))
	g.surface.Write(g.styles.Axis.Render(axisGap + strings.Repeat("-", g.geom.Columns+1)))
}

func (g *Grid) topLabel() string {
	if g.series == SeriesMemory {
		return fmt.Sprintf(" %.0f GB", g.maxValue)
	}
	return "  100%  |"
}

func (g *Grid) bottomLabel() string {
	if g.series == SeriesMemory {
		return " 0 GB"
	}
	return "   0%"
}

// Readout clears the readout line and prints the current value.
func (g *Grid) Readout(value float64) {
	g.surface.MoveTo(g.geom.ReadoutRow, 1)
	g.surface.ClearLine()
	if g.series == SeriesMemory {
		g.surface.Write(g.styles.MemoryReadout.Render(fmt.Sprintf("v Memory  %2.2f GB", value)))
		return
	}
	g.surface.Write(g.styles.CPUReadout.Render(fmt.Sprintf("v CPU  %2.2f %%", value)))
}

// Plot writes the marker for value at sample index. The index must be in
// [0, Columns).
func (g *Grid) Plot(value float64, index int) error {
	if index < 0 || index >= g.geom.Columns {
		return errors.New(errors.ErrRender,
			fmt.Sprintf("sample %d is outside the %d-column %s graph", index, g.geom.Columns, g.series),
			"")
	}

	bucket := Bucket(value, g.maxValue, g.geom.Rows)
	row, col := g.geom.Cell(bucket, index)

	g.surface.MoveTo(row, col)
	if g.series == SeriesMemory {
		g.surface.Write(g.styles.MemoryMarker.Render(MemoryMarker))
	} else {
		g.surface.Write(g.styles.CPUMarker.Render(CPUMarker))
	}
	return nil
}
