package strip

import "testing"

func TestClassifyStandardScenarios(t *testing.T) {
	// Reference N=360: hour mark every 30 segments, minute mark every 6.
	tests := []struct {
		i            int
		outer, middle Material
	}{
		{0, MaterialDarkPrimary, MaterialDarkPrimary},  // hour tick
		{6, MaterialLight, MaterialDarkSecondary},      // minute tick only
		{1, MaterialLight, MaterialLight},              // unmarked
		{30, MaterialDarkPrimary, MaterialDarkPrimary}, // next hour tick
		{36, MaterialLight, MaterialDarkSecondary},
	}

	for _, tt := range tests {
		outer, middle := Classify(TickStandard, tt.i, 360)
		if outer != tt.outer || middle != tt.middle {
			t.Errorf("standard i=%d: got (%d, %d), want (%d, %d)",
				tt.i, outer, middle, tt.outer, tt.middle)
		}
	}
}

func TestClassifyMinimal(t *testing.T) {
	for i := 0; i < 360; i++ {
		outer, middle := Classify(TickMinimal, i, 360)
		if outer != middle {
			t.Fatalf("minimal i=%d: outer %d != middle %d", i, outer, middle)
		}
		if i%30 == 0 && outer == MaterialLight {
			t.Errorf("minimal i=%d: hour tick should be dark", i)
		}
		if i%30 != 0 && outer != MaterialLight {
			t.Errorf("minimal i=%d: non-hour segment should be light", i)
		}
	}
}

func TestClassifyAlternating(t *testing.T) {
	// Hour sectors alternate; minute structure is ignored.
	o0, m0 := Classify(TickAlternating, 0, 360)
	o29, _ := Classify(TickAlternating, 29, 360)
	o30, _ := Classify(TickAlternating, 30, 360)

	if o0 != o29 {
		t.Error("alternating: segments of the same hour sector must match")
	}
	if o0 == o30 {
		t.Error("alternating: adjacent hour sectors must differ")
	}
	if m0 != o0 {
		t.Error("alternating: middle third follows the outer thirds")
	}
}

func TestClassifyAlternatingTicks(t *testing.T) {
	// Outer thirds alternate by hour sector, middle third by minute
	// sector with inverted phase.
	o0, m0 := Classify(TickAlternatingTicks, 0, 360)
	if o0 != MaterialDarkPrimary {
		t.Errorf("alternating_ticks i=0: outer %d, want dark-primary", o0)
	}
	if m0 != MaterialLight {
		t.Errorf("alternating_ticks i=0: middle %d, want light (inverted phase)", m0)
	}

	_, m6 := Classify(TickAlternatingTicks, 6, 360)
	if m6 != MaterialDarkSecondary {
		t.Errorf("alternating_ticks i=6: middle %d, want dark-secondary", m6)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	schemes := []TickScheme{TickStandard, TickMinimal, TickAlternating, TickAlternatingTicks}
	for _, scheme := range schemes {
		for i := 0; i < 360; i += 7 {
			o1, m1 := Classify(scheme, i, 360)
			o2, m2 := Classify(scheme, i, 360)
			if o1 != o2 || m1 != m2 {
				t.Fatalf("%s i=%d: classification not deterministic", scheme, i)
			}
		}
	}
}

func TestClassifySmallN(t *testing.T) {
	// Degenerate segment counts must not divide by zero.
	for i := 0; i < 3; i++ {
		Classify(TickStandard, i, 3)
		Classify(TickAlternatingTicks, i, 3)
	}
}

func TestParseTickScheme(t *testing.T) {
	if s, ok := ParseTickScheme("alternating_ticks"); !ok || s != TickAlternatingTicks {
		t.Errorf("parse alternating_ticks: got (%s, %v)", s, ok)
	}
	if s, ok := ParseTickScheme("bogus"); ok || s != DefaultTickScheme {
		t.Errorf("parse bogus: got (%s, %v), want default fallback", s, ok)
	}
}
