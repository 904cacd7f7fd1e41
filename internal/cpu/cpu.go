// Package cpu reports whether fused multiply-add runs in hardware on the
// current processor.
//
// math.FMA is correctly rounded everywhere; without hardware support it falls
// back to a much slower software routine. The command-line tools use this
// package to say which of the two a run exercised.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// Features describes CPU capabilities relevant to fused arithmetic.
type Features struct {
	HasFMA  bool // scalar fused multiply-add instruction (FMA3 on x86, base ISA on arm64)
	HasAVX2 bool // x86 AVX2, reported alongside FMA3 since both ship together
	HasNEON bool // ARM Advanced SIMD

	// ForceGeneric reports the software path regardless of hardware.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

// Path names the FMA implementation selected for f.
func (f Features) Path() string {
	if f.HasFMA && !f.ForceGeneric {
		return "hardware"
	}
	return "software"
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasFMA returns true if fused multiply-add runs in hardware.
func HasFMA() bool {
	f := DetectFeatures()
	return f.HasFMA && !f.ForceGeneric
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
