package geometry

import (
	"math"
	"testing"
)

// FuzzFrustumVolume verifies totality of the kernel: no input may
// panic, equal diameters must never produce a finite value, and inside
// the validity envelope the volume must be strictly positive and agree
// with the cone decomposition.
func FuzzFrustumVolume(f *testing.F) {
	// Seed corpus with the demonstration pots and known edges.
	f.Add(11.0, 19.0, 18.0)
	f.Add(17.0, 18.0, 16.0)
	f.Add(10.0, 10.0, 5.0)   // degenerate: equal diameters
	f.Add(19.0, 11.0, 18.0)  // inverted taper
	f.Add(10.0, 40.0, 16.0)  // apex inside the pot
	f.Add(10.0, 40.0, 15.0)  // height equals the slant half-width
	f.Add(0.0, 1.0, 1.0)
	f.Add(1e300, 2e300, 2e300)

	f.Fuzz(func(t *testing.T, base, top, height float64) {
		v := FrustumVolume(base, top, height)

		if top == base && !math.IsNaN(v) {
			t.Errorf("FrustumVolume(%v, %v, %v) = %v, want NaN for equal diameters", base, top, height, v)
		}

		// Positivity is only asserted for sane magnitudes: extreme
		// inputs overflow the intermediate cone volumes to Inf, which
		// is the documented propagation behavior, not a defect.
		if top > base && base >= 1e-6 && height >= top && height <= 1e6 {
			hSmall, hBig := ConeHeights(base, top, height)
			want := ConeVolume(top/2, hBig) - ConeVolume(base/2, hSmall)
			if v != want {
				t.Errorf("FrustumVolume(%v, %v, %v) = %v, want cone difference %v", base, top, height, v, want)
			}
			if v <= 0 || math.IsNaN(v) {
				t.Errorf("FrustumVolume(%v, %v, %v) = %v, want > 0 inside the validity envelope", base, top, height, v)
			}
		}
	})
}
