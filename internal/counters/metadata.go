package counters

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/rileyhilliard/sysgraph/internal/errors"
)

// DefaultSysRoot is where sysfs is normally mounted.
const DefaultSysRoot = "/sys"

// maxFreqPath is relative to the sysfs root and reports kHz.
const maxFreqPath = "devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"

// Host answers the static questions asked once per run: how many cores,
// how fast, and what model.
type Host struct {
	SysRoot string

	// cpuidHz overrides the CPUID frequency lookup. Tests set it.
	cpuidHz func() int64
}

// NewHost returns a Host reading sysfs under sysRoot, or /sys when empty.
func NewHost(sysRoot string) *Host {
	if sysRoot == "" {
		sysRoot = DefaultSysRoot
	}
	return &Host{SysRoot: sysRoot, cpuidHz: cpuidFrequency}
}

// CoreCount returns the number of online logical cores.
func (h *Host) CoreCount() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// MaxFrequencyGHz returns cpu0's maximum frequency in GHz. When cpufreq is
// not exposed (VMs, containers) the CPUID-reported frequency is used instead.
func (h *Host) MaxFrequencyGHz() (float64, error) {
	path := filepath.Join(h.SysRoot, maxFreqPath)
	data, err := os.ReadFile(path)
	if err == nil {
		khz, perr := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
		if perr != nil {
			return 0, errors.WrapWithCode(perr, errors.ErrIO,
				fmt.Sprintf("Malformed max frequency in %s", path), "")
		}
		return float64(khz) / 1e6, nil
	}

	if !os.IsNotExist(err) {
		return 0, errors.Wrap(err, fmt.Sprintf("Can't read max frequency from %s", path))
	}

	lookup := h.cpuidHz
	if lookup == nil {
		lookup = cpuidFrequency
	}
	if hz := lookup(); hz > 0 {
		return float64(hz) / 1e9, nil
	}

	return 0, errors.WrapWithCode(err, errors.ErrIO,
		"Can't determine CPU max frequency",
		"Run without --cores, or expose cpufreq under "+h.SysRoot)
}

// BrandName returns the CPU model string, or "" when CPUID has none.
func (h *Host) BrandName() string {
	return strings.TrimSpace(cpuid.CPU.BrandName)
}

func cpuidFrequency() int64 {
	if cpuid.CPU.BoostFreq > 0 {
		return cpuid.CPU.BoostFreq
	}
	return cpuid.CPU.Hz
}
