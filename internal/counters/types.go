package counters

// CPUSnapshot is one read of the aggregate cpu line in /proc/stat.
// Values are cumulative ticks since boot.
type CPUSnapshot struct {
	TotalTicks int64
	IdleTicks  int64
}

// MemorySnapshot is one read of /proc/meminfo, in kB.
type MemorySnapshot struct {
	TotalKB int64
	FreeKB  int64
}

// TotalGB converts TotalKB to GB (1024-based).
func (m MemorySnapshot) TotalGB() float64 {
	return float64(m.TotalKB) / (1024 * 1024)
}

// Source reads raw cumulative counters from the operating system.
// Each call is a blocking, synchronous read of a single counter file.
type Source interface {
	ReadCPU() (CPUSnapshot, error)
	ReadMemory() (MemorySnapshot, error)
}
