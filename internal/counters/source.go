package counters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/sysgraph/internal/errors"
)

// DefaultProcRoot is where the kernel exposes its counter files.
const DefaultProcRoot = "/proc"

// ProcSource reads counters from a procfs mount. Files are opened, read and
// closed on every call; nothing is held across samples.
type ProcSource struct {
	Root string
}

// NewProcSource returns a ProcSource rooted at root, or /proc when empty.
func NewProcSource(root string) *ProcSource {
	if root == "" {
		root = DefaultProcRoot
	}
	return &ProcSource{Root: root}
}

// ReadCPU reads and parses <root>/stat.
func (s *ProcSource) ReadCPU() (CPUSnapshot, error) {
	path := filepath.Join(s.Root, "stat")
	data, err := os.ReadFile(path)
	if err != nil {
		return CPUSnapshot{}, errors.Wrap(err, fmt.Sprintf("Can't read CPU counters from %s", path))
	}

	snap, err := ParseCPU(string(data))
	if err != nil {
		return CPUSnapshot{}, errors.WrapWithCode(err, errors.ErrIO,
			fmt.Sprintf("Malformed CPU counters in %s", path),
			"sysgraph needs a Linux procfs with a leading aggregate cpu line.")
	}
	return snap, nil
}

// ReadMemory reads and parses <root>/meminfo.
func (s *ProcSource) ReadMemory() (MemorySnapshot, error) {
	path := filepath.Join(s.Root, "meminfo")
	data, err := os.ReadFile(path)
	if err != nil {
		return MemorySnapshot{}, errors.Wrap(err, fmt.Sprintf("Can't read memory counters from %s", path))
	}

	snap, err := ParseMemory(string(data))
	if err != nil {
		return MemorySnapshot{}, errors.WrapWithCode(err, errors.ErrIO,
			fmt.Sprintf("Malformed memory counters in %s", path),
			"sysgraph needs MemTotal and MemFree lines in meminfo.")
	}
	return snap, nil
}
