package cpu

import (
	"runtime"
	"sync"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH == "arm64" && !f.HasFMA {
		t.Fatal("arm64 always has FMA")
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasFMA: true, Architecture: "test"})
	if !HasFMA() {
		t.Fatal("HasFMA() = false with forced FMA")
	}
	if got := DetectFeatures().Path(); got != "hardware" {
		t.Fatalf("Path() = %q, want hardware", got)
	}

	SetForcedFeatures(Features{HasFMA: true, ForceGeneric: true})
	if HasFMA() {
		t.Fatal("HasFMA() = true with ForceGeneric")
	}
	if got := DetectFeatures().Path(); got != "software" {
		t.Fatalf("Path() = %q, want software", got)
	}
}

func TestDetectFeaturesConcurrent(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	want := DetectFeatures()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := DetectFeatures(); got != want {
				t.Errorf("DetectFeatures() = %+v, want %+v", got, want)
			}
		}()
	}
	wg.Wait()
}
