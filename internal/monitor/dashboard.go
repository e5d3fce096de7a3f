package monitor

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rileyhilliard/sysgraph/internal/config"
	"github.com/rileyhilliard/sysgraph/internal/counters"
	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/logger"
)

// Dashboard runs one bounded sampling session and renders it.
type Dashboard struct {
	cfg     config.RunConfig
	source  counters.Source
	host    HostInfo
	surface Surface
	sleeper Sleeper
	styles  Styles
	log     logger.Logger

	newGraph func(series Series, geom Geometry, maxValue float64) Graph
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithSleeper replaces the inter-sample sleep.
func WithSleeper(s Sleeper) Option {
	return func(d *Dashboard) { d.sleeper = s }
}

// WithLogger sets the logger for debug and summary output.
func WithLogger(l logger.Logger) Option {
	return func(d *Dashboard) { d.log = l }
}

// WithStyles sets the lipgloss styles.
func WithStyles(s Styles) Option {
	return func(d *Dashboard) { d.styles = s }
}

// WithHost sets the source of core count and frequency for the cores section.
func WithHost(h HostInfo) Option {
	return func(d *Dashboard) { d.host = h }
}

// NewDashboard creates a Dashboard for cfg reading from source and drawing
// on surface.
func NewDashboard(cfg config.RunConfig, source counters.Source, surface Surface, opts ...Option) *Dashboard {
	d := &Dashboard{
		cfg:     cfg,
		source:  source,
		surface: surface,
		sleeper: TimerSleeper{},
		styles:  PlainStyles(),
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.host == nil {
		d.host = counters.NewHost(cfg.SysRoot)
	}
	d.newGraph = func(series Series, geom Geometry, maxValue float64) Graph {
		return NewGrid(d.surface, geom, series, maxValue, d.styles)
	}
	return d
}

// Layout returns the screen geometry this dashboard will use.
func (d *Dashboard) Layout() Layout {
	return NewLayout(d.cfg.Samples, d.cfg.ShowMemory, d.cfg.ShowCPU)
}

// Run draws the header, samples the enabled graphs, then draws the cores
// section. Cancelling ctx stops sampling at the next iteration boundary and
// still leaves the terminal in a clean state; it is not reported as an error.
func (d *Dashboard) Run(ctx context.Context) error {
	d.surface.ClearScreen()
	d.surface.MoveTo(headerRow, 1)
	d.surface.Write(d.styles.Header.Render(d.header()))

	layout := d.Layout()
	row := headerRow + 1

	if d.cfg.ShowGraphs() {
		var err error
		row, err = d.sample(ctx, layout)
		if err != nil {
			d.surface.MoveTo(layout.BottomRow, 1)
			_ = d.surface.Flush()
			return err
		}
	}

	if d.cfg.ShowCores && ctx.Err() == nil {
		var err error
		row, err = d.drawCores(row)
		if err != nil {
			d.surface.MoveTo(row, 1)
			_ = d.surface.Flush()
			return err
		}
	}

	d.surface.MoveTo(row, 1)
	return d.flush()
}

func (d *Dashboard) header() string {
	secs := d.cfg.Delay.Seconds()
	return fmt.Sprintf("Nbr of samples: %d -- every %d microSecs (%.3f secs)",
		d.cfg.Samples, d.cfg.DelayMicros(), secs)
}

// sample runs the init/running/done states of the loop and returns the first
// free row below what it drew.
func (d *Dashboard) sample(ctx context.Context, layout Layout) (int, error) {
	var memGraph, cpuGraph Graph
	var totalGB float64
	var prev counters.CPUSnapshot

	// Init: frames are drawn exactly once; memory total is fixed here.
	if layout.HasMemory {
		snap, err := d.source.ReadMemory()
		if err != nil {
			return layout.BottomRow, err
		}
		totalGB = snap.TotalGB()
		d.log.Debug("memory total %s (%.2f GB)", humanize.IBytes(uint64(snap.TotalKB)*1024), totalGB)

		memGraph = d.newGraph(SeriesMemory, layout.Memory, totalGB)
		memGraph.DrawFrame()
	}

	if layout.HasCPU {
		cpuGraph = d.newGraph(SeriesCPU, layout.CPU, 100)
		cpuGraph.DrawFrame()

		baseline, err := d.source.ReadCPU()
		if err != nil {
			return layout.BottomRow, err
		}
		prev = baseline
		d.log.Debug("cpu baseline total=%d idle=%d", baseline.TotalTicks, baseline.IdleTicks)
	}

	d.surface.MoveTo(layout.BottomRow, 1)
	if err := d.flush(); err != nil {
		return layout.BottomRow, err
	}

	var memTally, cpuTally Tally

	// Running
	for i := 0; i < d.cfg.Samples; i++ {
		if ctx.Err() != nil {
			d.log.Debug("sampling cancelled after %d of %d samples", i, d.cfg.Samples)
			break
		}

		d.surface.SaveCursor()

		if memGraph != nil {
			snap, err := d.source.ReadMemory()
			if err != nil {
				d.surface.RestoreCursor()
				return layout.BottomRow, err
			}
			used := MemoryUsedGB(totalGB, snap.FreeKB)
			memGraph.Readout(used)
			if err := memGraph.Plot(used, i); err != nil {
				d.surface.RestoreCursor()
				return layout.BottomRow, err
			}
			memTally.Add(used)
			d.log.Debug("sample %d memory %.2f GB", i, used)
		}

		if cpuGraph != nil {
			cur, err := d.source.ReadCPU()
			if err != nil {
				d.surface.RestoreCursor()
				return layout.BottomRow, err
			}
			usage := CPUUsagePercent(prev, cur)
			cpuGraph.Readout(usage)
			if err := cpuGraph.Plot(usage, i); err != nil {
				d.surface.RestoreCursor()
				return layout.BottomRow, err
			}
			prev = cur
			cpuTally.Add(usage)
			d.log.Debug("sample %d cpu %.2f%%", i, usage)
		}

		d.surface.RestoreCursor()
		if err := d.flush(); err != nil {
			return layout.BottomRow, err
		}

		if err := d.sleeper.Sleep(ctx, d.cfg.Delay); err != nil {
			if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
				d.log.Debug("sampling cancelled after %d of %d samples", i+1, d.cfg.Samples)
				break
			}
			return layout.BottomRow, err
		}
	}

	// Done
	return d.summarize(layout.BottomRow, &memTally, &cpuTally, layout), nil
}

// summarize logs min/avg/max for each series and, when enabled, prints them
// under the graphs. It returns the next free row.
func (d *Dashboard) summarize(row int, memTally, cpuTally *Tally, layout Layout) int {
	var lines []string

	if layout.HasMemory {
		if s, ok := memTally.Stats(); ok {
			d.log.Debug("memory summary over %d samples: min %.2f avg %.2f max %.2f GB", s.Count, s.Min, s.Avg, s.Max)
			lines = append(lines, fmt.Sprintf("Memory  min %.2f GB  avg %.2f GB  max %.2f GB", s.Min, s.Avg, s.Max))
		}
	}
	if layout.HasCPU {
		if s, ok := cpuTally.Stats(); ok {
			d.log.Debug("cpu summary over %d samples: min %.2f avg %.2f max %.2f %%", s.Count, s.Min, s.Avg, s.Max)
			lines = append(lines, fmt.Sprintf("CPU     min %.2f %%  avg %.2f %%  max %.2f %%", s.Min, s.Avg, s.Max))
		}
	}

	if !d.cfg.Summary {
		return row
	}

	for _, line := range lines {
		d.surface.MoveTo(row, 1)
		d.surface.Write(d.styles.Summary.Render(line))
		row++
	}
	return row
}

// drawCores prints the core count, frequency and box diagram starting one
// line below row, and returns the next free row.
func (d *Dashboard) drawCores(row int) (int, error) {
	count := d.host.CoreCount()
	ghz, err := d.host.MaxFrequencyGHz()
	if err != nil {
		return row, err
	}

	row++
	d.surface.MoveTo(row, 1)
	d.surface.Write(d.styles.CoreHeader.Render(fmt.Sprintf("v Number of Cores: %d @ %.2f GHz", count, ghz)))
	row++

	if brand := d.host.BrandName(); brand != "" {
		d.surface.MoveTo(row, 1)
		d.surface.Write(d.styles.Summary.Render("  " + fitBrand(brand)))
		row++
	}

	diagram := strings.TrimSuffix(RenderCores(count), "\n")
	for _, line := range strings.Split(diagram, "\n") {
		d.surface.MoveTo(row, 1)
		if line != "" {
			d.surface.Write(d.styles.CoreBox.Render(line))
		}
		row++
	}

	return row, nil
}

func (d *Dashboard) flush() error {
	if err := d.surface.Flush(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Failed to write to the terminal",
			"Check that stdout is still open")
	}
	return nil
}
