package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/sysgraph/internal/counters"
	"github.com/rileyhilliard/sysgraph/internal/errors"
)

// recordingSurface keeps a character screen in memory and tracks cursor
// save/restore nesting.
type recordingSurface struct {
	row, col   int
	savedRow   int
	savedCol   int
	lines      map[int][]rune
	depth      int
	maxDepth   int
	badRestore int
	clears     int
	flushes    int
	flushErr   error
	writes     int
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{row: 1, col: 1, lines: make(map[int][]rune)}
}

func (s *recordingSurface) MoveTo(row, col int) {
	s.row, s.col = row, col
}

func (s *recordingSurface) Write(text string) {
	s.writes++
	line := s.lines[s.row]
	for _, r := range text {
		for len(line) < s.col {
			line = append(line, ' ')
		}
		line[s.col-1] = r
		s.col++
	}
	s.lines[s.row] = line
}

func (s *recordingSurface) SaveCursor() {
	s.depth++
	if s.depth > s.maxDepth {
		s.maxDepth = s.depth
	}
	s.savedRow, s.savedCol = s.row, s.col
}

func (s *recordingSurface) RestoreCursor() {
	if s.depth == 0 {
		s.badRestore++
		return
	}
	s.depth--
	s.row, s.col = s.savedRow, s.savedCol
}

func (s *recordingSurface) ClearLine() {
	delete(s.lines, s.row)
}

func (s *recordingSurface) ClearScreen() {
	s.clears++
	s.lines = make(map[int][]rune)
	s.row, s.col = 1, 1
}

func (s *recordingSurface) Flush() error {
	s.flushes++
	return s.flushErr
}

// Line returns the text on row with trailing blanks removed.
func (s *recordingSurface) Line(row int) string {
	return strings.TrimRight(string(s.lines[row]), " ")
}

// At returns the character at (row, col), or ' ' when empty.
func (s *recordingSurface) At(row, col int) rune {
	line := s.lines[row]
	if col-1 < len(line) {
		return line[col-1]
	}
	return ' '
}

// fakeSource replays scripted snapshots. The last snapshot repeats once the
// script runs out.
type fakeSource struct {
	cpu      []counters.CPUSnapshot
	mem      []counters.MemorySnapshot
	cpuCalls int
	memCalls int
	cpuErrAt int // call number (0-based) that fails, -1 for never
	memErrAt int
}

func newFakeSource() *fakeSource {
	return &fakeSource{cpuErrAt: -1, memErrAt: -1}
}

func (f *fakeSource) ReadCPU() (counters.CPUSnapshot, error) {
	call := f.cpuCalls
	f.cpuCalls++
	if call == f.cpuErrAt {
		return counters.CPUSnapshot{}, errors.Wrap(fmt.Errorf("injected"), "Can't read CPU counters from fake")
	}
	if len(f.cpu) == 0 {
		return counters.CPUSnapshot{}, nil
	}
	return f.cpu[min(call, len(f.cpu)-1)], nil
}

func (f *fakeSource) ReadMemory() (counters.MemorySnapshot, error) {
	call := f.memCalls
	f.memCalls++
	if call == f.memErrAt {
		return counters.MemorySnapshot{}, errors.Wrap(fmt.Errorf("injected"), "Can't read memory counters from fake")
	}
	if len(f.mem) == 0 {
		return counters.MemorySnapshot{TotalKB: 1024 * 1024}, nil
	}
	return f.mem[min(call, len(f.mem)-1)], nil
}

// fakeSleeper records requested delays and can cancel the run after a
// number of sleeps.
type fakeSleeper struct {
	delays      []time.Duration
	cancelAfter int
	cancel      context.CancelFunc
}

func (f *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	f.delays = append(f.delays, d)
	if f.cancel != nil && len(f.delays) >= f.cancelAfter {
		f.cancel()
		return ctx.Err()
	}
	return nil
}

// spyGraph counts frame draws and records plotted samples.
type spyGraph struct {
	series   Series
	geom     Geometry
	maxValue float64
	frames   int
	readouts []float64
	values   []float64
	indices  []int
}

func (g *spyGraph) DrawFrame() { g.frames++ }

func (g *spyGraph) Readout(value float64) { g.readouts = append(g.readouts, value) }

func (g *spyGraph) Plot(value float64, index int) error {
	g.values = append(g.values, value)
	g.indices = append(g.indices, index)
	return nil
}

type fakeHost struct {
	cores int
	ghz   float64
	brand string
	err   error
}

func (h fakeHost) CoreCount() int                    { return h.cores }
func (h fakeHost) MaxFrequencyGHz() (float64, error) { return h.ghz, h.err }
func (h fakeHost) BrandName() string                 { return h.brand }
