package monitor

// Grid dimensions. Memory gets a taller graph than CPU.
const (
	CPURows    = 10
	MemoryRows = 12

	// PlotOriginCol is the first plotting column, right after the "|" axis.
	PlotOriginCol = 10

	headerRow = 1
	// readoutGap is the distance from the previous block's last row to a
	// graph's readout row (one blank line in between).
	readoutGap = 2
)

// Geometry fixes where one graph lives on screen. It is computed once before
// sampling starts and never changes during a run.
type Geometry struct {
	Rows       int // number of buckets
	Columns    int // one per sample
	ReadoutRow int // live numeric readout line
	OriginRow  int // row of bucket 0
	OriginCol  int // column of sample 0
}

// TopRow is the row of the highest bucket.
func (g Geometry) TopRow() int {
	return g.OriginRow - g.Rows + 1
}

// AxisRow is the row of the horizontal axis under the graph.
func (g Geometry) AxisRow() int {
	return g.OriginRow + 1
}

// Cell returns the screen position of a bucket at a sample index.
func (g Geometry) Cell(bucket, index int) (row, col int) {
	return g.OriginRow - bucket, g.OriginCol + index
}

// Contains reports whether (row, col) is inside the plotting area.
func (g Geometry) Contains(row, col int) bool {
	return row >= g.TopRow() && row <= g.OriginRow &&
		col >= g.OriginCol && col < g.OriginCol+g.Columns
}

// Layout places the enabled graphs top to bottom: memory first, then CPU.
type Layout struct {
	Memory    Geometry
	CPU       Geometry
	HasMemory bool
	HasCPU    bool

	// BottomRow is the first free row below everything drawn so far.
	BottomRow int
}

// NewLayout computes the geometry for a run of samples.
func NewLayout(samples int, showMemory, showCPU bool) Layout {
	l := Layout{HasMemory: showMemory, HasCPU: showCPU}
	last := headerRow

	if showMemory {
		l.Memory = newGeometry(MemoryRows, samples, last)
		last = l.Memory.AxisRow()
	}
	if showCPU {
		l.CPU = newGeometry(CPURows, samples, last)
		last = l.CPU.AxisRow()
	}

	l.BottomRow = last + 1
	return l
}

func newGeometry(rows, samples, after int) Geometry {
	readout := after + readoutGap
	return Geometry{
		Rows:       rows,
		Columns:    samples,
		ReadoutRow: readout,
		OriginRow:  readout + rows,
		OriginCol:  PlotOriginCol,
	}
}

// Width is the number of columns the layout needs: the axis label plus
// samples+1 dashes.
func (l Layout) Width() int {
	cols := l.Memory.Columns
	if l.HasCPU {
		cols = l.CPU.Columns
	}
	return axisLabelWidth + cols + 1
}
