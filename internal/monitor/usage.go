package monitor

import (
	"math"

	"github.com/samber/lo"

	"github.com/rileyhilliard/sysgraph/internal/counters"
)

// CPUUsagePercent returns the share of non-idle ticks between two snapshots.
// It returns 0 when no ticks elapsed. Results are clamped to [0, 100] so a
// counter reset can never push a marker off the grid.
func CPUUsagePercent(prev, cur counters.CPUSnapshot) float64 {
	totalDelta := cur.TotalTicks - prev.TotalTicks
	if totalDelta == 0 {
		return 0
	}
	idleDelta := cur.IdleTicks - prev.IdleTicks

	usage := (1 - float64(idleDelta)/float64(totalDelta)) * 100
	return lo.Clamp(usage, 0, 100)
}

// MemoryUsedGB returns used memory in GB given the fixed total and the
// current free kB.
func MemoryUsedGB(totalGB float64, freeKB int64) float64 {
	return totalGB - float64(freeKB)/1024/1024
}

// Bucket quantizes value into one of rows levels spanning [0, maxValue].
// A value at exactly maxValue lands in the top bucket (rows-1).
func Bucket(value, maxValue float64, rows int) int {
	if rows <= 0 || maxValue <= 0 || math.IsNaN(value) {
		return 0
	}

	bucket := int(math.Floor(value / (maxValue / float64(rows))))
	return lo.Clamp(bucket, 0, rows-1)
}
