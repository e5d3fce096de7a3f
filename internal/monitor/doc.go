// Package monitor implements the live CPU and memory dashboard.
//
// The dashboard paints a fixed character grid once and then adds exactly one
// marker per sample using absolute cursor addressing. Nothing already on
// screen is redrawn; the only text rewritten every sample is the numeric
// readout line above each graph.
//
// # Key Components
//
//	Dashboard - Drives the sample loop (init, N iterations, done)
//	Grid      - Frame and plot phases for one series on a Surface
//	Surface   - Cursor-addressed terminal; ANSISurface emits the escape codes
//	Layout    - Row/column geometry of every graph, fixed before sampling
//	Tally     - Running min/avg/max of the current run, for the closing summary
//
// # Screen Layout
//
// With both graphs enabled and 20 samples the screen looks like:
//
//	row 1    Nbr of samples: 20 -- every 500000 microSecs (0.500 secs)
//	row 3    v Memory  7.41 GB
//	row 4     16 GB  |             <- top memory bucket (11)
//	row 15           |##          <- memory bucket 0, OriginRow
//	row 16    0 GB   ---------------------
//	row 18   v CPU  12.50 %
//	row 19     100%  |
//	row 28           |: :
//	row 29      0%   ---------------------
//
// Plot columns start at column 10 and advance one per sample.
//
// # Sample Loop
//
//  1. Init: clear screen, header, frames, memory total, baseline CPU snapshot
//  2. Running: per sample read counters, update readouts, plot markers,
//     restore the cursor, sleep the configured delay
//  3. Done: optional summary, cores diagram, cursor parked below everything
package monitor
