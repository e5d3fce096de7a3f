package counters

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

const (
	// cpuFieldCount is how many tick fields after the "cpu" label are summed:
	// user nice system idle iowait irq softirq steal guest guest_nice.
	cpuFieldCount = 10
	// cpuIdleField is the zero-based index of the idle field.
	cpuIdleField = 3
)

// ParseCPU parses the aggregate CPU line of /proc/stat output.
// Only the first line is considered; it must start with the "cpu" label.
func ParseCPU(procStat string) (CPUSnapshot, error) {
	line := procStat
	if idx := strings.IndexByte(procStat, '\n'); idx >= 0 {
		line = procStat[:idx]
	}

	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "cpu") {
		return CPUSnapshot{}, fmt.Errorf("missing cpu label in /proc/stat line: %q", line)
	}

	var snap CPUSnapshot
	values := fields[1:]
	if len(values) > cpuFieldCount {
		values = values[:cpuFieldCount]
	}
	if len(values) <= cpuIdleField {
		return CPUSnapshot{}, fmt.Errorf("invalid /proc/stat cpu line: %s", line)
	}

	for i, field := range values {
		val, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return CPUSnapshot{}, fmt.Errorf("failed to parse cpu field %d: %w", i, err)
		}
		if val < 0 {
			return CPUSnapshot{}, fmt.Errorf("negative cpu field %d: %d", i, val)
		}
		snap.TotalTicks += val
		if i == cpuIdleField {
			snap.IdleTicks = val
		}
	}

	return snap, nil
}

// ParseMemory parses MemTotal and MemFree from /proc/meminfo output.
// Lines have the form "<Label>: <value> kB".
func ParseMemory(procMeminfo string) (MemorySnapshot, error) {
	var snap MemorySnapshot
	var haveTotal, haveFree bool

	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		key := strings.TrimSuffix(parts[0], ":")
		if key != "MemTotal" && key != "MemFree" {
			continue
		}

		val, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return MemorySnapshot{}, fmt.Errorf("failed to parse %s: %w", key, err)
		}

		switch key {
		case "MemTotal":
			snap.TotalKB = val
			haveTotal = true
		case "MemFree":
			snap.FreeKB = val
			haveFree = true
		}

		if haveTotal && haveFree {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return MemorySnapshot{}, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}

	if !haveTotal {
		return MemorySnapshot{}, fmt.Errorf("MemTotal not found in /proc/meminfo")
	}
	if !haveFree {
		return MemorySnapshot{}, fmt.Errorf("MemFree not found in /proc/meminfo")
	}

	return snap, nil
}
