package constructive

import (
	"testing"
)

// TestPiCrossCheck confirms the AGM-based Pi and the Machin-formula AtanPi
// agree, the independent-derivation cross-check spec.md §8 scenario 1
// calls for.
func TestPiCrossCheck(t *testing.T) {
	if cmp := PreciseCmp(Pi(), AtanPi(), -200); cmp != 0 {
		t.Errorf("Pi() and AtanPi() disagree at precision -200: cmp=%d", cmp)
	}
}

func TestPiKnownDigits(t *testing.T) {
	rep, err := ToStringFloatRep(Pi(), 10, 10, -64)
	if err != nil {
		t.Fatalf("ToStringFloatRep: %v", err)
	}
	const want = "3141592654"
	if rep.Mantissa != want {
		t.Errorf("expected mantissa %q, got %q", want, rep.Mantissa)
	}
}
