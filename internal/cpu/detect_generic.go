//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures.
//
// Some of them (ppc64, s390x, riscv64) do have FMA instructions, but they
// are not probed here; reporting the software path is the conservative answer.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
