package monitor

import (
	"strings"

	"github.com/muesli/reflow/truncate"
)

// CoresPerRow is how many core boxes share one diagram row.
const CoresPerRow = 4

var coreBoxLayers = [3]string{
	"+ -- +",
	"|    |",
	"+ -- +",
}

const coreBoxGap = "   "

// coreRowWidth is the width of a full row of core boxes.
var coreRowWidth = CoresPerRow*len(coreBoxLayers[0]) + (CoresPerRow-1)*len(coreBoxGap)

// fitBrand shortens a CPU model string to the width of the core diagram.
func fitBrand(brand string) string {
	return truncate.StringWithTail(brand, uint(coreRowWidth), "...")
}

// HostInfo answers the static questions behind the cores section.
type HostInfo interface {
	CoreCount() int
	MaxFrequencyGHz() (float64, error)
	BrandName() string
}

// RenderCores draws count cores as ASCII boxes, CoresPerRow per row. Each box
// row is three text lines followed by a blank line; the last row holds only
// the remaining cores.
func RenderCores(count int) string {
	var b strings.Builder

	for start := 0; start < count; start += CoresPerRow {
		inRow := min(CoresPerRow, count-start)
		for _, layer := range coreBoxLayers {
			for k := 0; k < inRow; k++ {
				b.WriteString(layer)
				if k < inRow-1 {
					b.WriteString(coreBoxGap)
				}
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
