package extract

import (
	"bytes"
	"math"
	"testing"
)

func TestAudio_Defaults(t *testing.T) {
	f := Audio(nil)

	if f.PitchHz != 150 {
		t.Errorf("expected default pitch 150, got %v", f.PitchHz)
	}
	if f.Volume != 0.5 {
		t.Errorf("expected default volume 0.5, got %v", f.Volume)
	}
	if f.TempoBpm != 120 {
		t.Errorf("expected default tempo 120, got %v", f.TempoBpm)
	}
	if f.SpectralCentroidHz != 1000 {
		t.Errorf("expected default spectral centroid 1000, got %v", f.SpectralCentroidHz)
	}
	if f.ZeroCrossingRate != 0.1 {
		t.Errorf("expected default zero crossing rate 0.1, got %v", f.ZeroCrossingRate)
	}
	if f.SpectralRolloffHz != 2000 {
		t.Errorf("expected default spectral rolloff 2000, got %v", f.SpectralRolloffHz)
	}
	if f.SpectralBandwidthHz != 500 {
		t.Errorf("expected default spectral bandwidth 500, got %v", f.SpectralBandwidthHz)
	}
	if len(f.MFCC) != 13 {
		t.Fatalf("expected 13 MFCC coefficients, got %d", len(f.MFCC))
	}
	for i, v := range f.MFCC {
		if v != 0.1 {
			t.Errorf("expected default MFCC[%d] 0.1, got %v", i, v)
		}
	}
}

func TestAudio_EmptyBufferEqualsAbsent(t *testing.T) {
	absent := Audio(nil)
	empty := Audio([]byte{})

	if absent.PitchHz != empty.PitchHz || absent.Volume != empty.Volume {
		t.Error("empty buffer must yield the same record as absent input")
	}
}

func TestAudio_Interpolation(t *testing.T) {
	// 10000 bytes saturates complexity at 1.
	f := Audio(make([]byte, 10000))

	if f.PitchHz != 220 {
		t.Errorf("expected pitch 220 at full complexity, got %v", f.PitchHz)
	}
	if f.Volume != 0.8 {
		t.Errorf("expected volume 0.8 at full complexity, got %v", f.Volume)
	}
	if f.TempoBpm != 160 {
		t.Errorf("expected tempo 160 at full complexity, got %v", f.TempoBpm)
	}

	// Beyond the scale the scalar stays saturated.
	huge := Audio(make([]byte, 50_000_000))
	if huge.PitchHz != f.PitchHz {
		t.Errorf("expected saturated pitch %v for huge buffer, got %v", f.PitchHz, huge.PitchHz)
	}
}

func TestAudio_HalfComplexity(t *testing.T) {
	f := Audio(make([]byte, 5000))

	if f.PitchHz != 170 {
		t.Errorf("expected pitch 170 at half complexity, got %v", f.PitchHz)
	}
	if math.Abs(f.Volume-0.55) > 1e-12 {
		t.Errorf("expected volume 0.55 at half complexity, got %v", f.Volume)
	}
}

func TestAudio_Deterministic(t *testing.T) {
	buf := bytes.Repeat([]byte{0xab}, 3137)

	a := Audio(buf)
	b := Audio(buf)

	if a.PitchHz != b.PitchHz || a.Volume != b.Volume || a.TempoBpm != b.TempoBpm {
		t.Error("identical buffers must yield identical feature records")
	}
	for i := range a.MFCC {
		if a.MFCC[i] != b.MFCC[i] {
			t.Errorf("MFCC[%d] differs between identical calls", i)
		}
	}
}
