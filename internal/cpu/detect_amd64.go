//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// Uses golang.org/x/sys/cpu which provides portable CPUID access. This is
// the same FMA3 bit the runtime checks before math.FMA uses VFMADD.
func detectFeaturesImpl() Features {
	return Features{
		HasFMA:       cpu.X86.HasFMA,
		HasAVX2:      cpu.X86.HasAVX2,
		Architecture: runtime.GOARCH,
	}
}
