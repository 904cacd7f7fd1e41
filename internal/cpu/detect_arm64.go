//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
//
// FMADD is part of the base ARMv8 instruction set, so HasFMA is always true.
func detectFeaturesImpl() Features {
	return Features{
		HasFMA:       true,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
