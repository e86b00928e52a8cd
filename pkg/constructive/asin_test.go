package constructive

import "testing"

func TestAsinKnownValues(t *testing.T) {
	// asin(1) == pi/2
	if cmp := PreciseCmp(Asin(One()), Divide(Pi(), Two()), -100); cmp != 0 {
		t.Errorf("Asin(1) != pi/2: cmp=%d", cmp)
	}
	// asin(0) == 0
	if cmp := PreciseCmp(Asin(Zero()), Zero(), -100); cmp != 0 {
		t.Errorf("Asin(0) != 0: cmp=%d", cmp)
	}
	// asin(-1) == -pi/2
	if cmp := PreciseCmp(Asin(Negate(One())), Negate(Divide(Pi(), Two())), -100); cmp != 0 {
		t.Errorf("Asin(-1) != -pi/2: cmp=%d", cmp)
	}
}

func TestAsinOutOfDomainPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Asin(2) to panic")
		}
	}()
	Asin(FromInt(2))
}

func TestAcos(t *testing.T) {
	// acos(0) == pi/2
	if cmp := PreciseCmp(Acos(Zero()), Divide(Pi(), Two()), -100); cmp != 0 {
		t.Errorf("Acos(0) != pi/2: cmp=%d", cmp)
	}
}

func TestArctanKnownValue(t *testing.T) {
	// atan(1) == pi/4
	if cmp := PreciseCmp(Arctan(One()), Divide(Pi(), FromInt(4)), -100); cmp != 0 {
		t.Errorf("Arctan(1) != pi/4: cmp=%d", cmp)
	}
}

// TestArcsinViaInverseCrossCheck confirms the monotone-inverse solver
// agrees with the prescaled-series Asin implementation.
func TestArcsinViaInverseCrossCheck(t *testing.T) {
	half := Divide(One(), Two())
	if cmp := PreciseCmp(Asin(half), ArcsinViaInverse(half), -50); cmp != 0 {
		t.Errorf("ArcsinViaInverse disagrees with Asin at 1/2: cmp=%d", cmp)
	}
}
