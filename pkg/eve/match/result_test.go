package match

import (
	"testing"
	"time"
)

func TestCanonicalize(t *testing.T) {
	raw := Result{
		Scores: [2]float64{30, 19},
		Times: [2][]time.Duration{
			{time.Second},
			{2 * time.Second, 3 * time.Second},
		},
	}

	same := Canonicalize(raw, false)
	if same.Scores != raw.Scores || len(same.Times[0]) != 1 || len(same.Times[1]) != 2 {
		t.Errorf("unswapped result changed: %+v", same)
	}

	swapped := Canonicalize(raw, true)
	if swapped.Scores != [2]float64{19, 30} {
		t.Errorf("scores = %v, want [19 30]", swapped.Scores)
	}

	if len(swapped.Times[0]) != 2 || swapped.Times[1][0] != time.Second {
		t.Errorf("times not swapped: %v", swapped.Times)
	}

	if back := Canonicalize(swapped, true); back.Scores != raw.Scores {
		t.Errorf("double swap = %v, want %v", back.Scores, raw.Scores)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		scores [2]float64
		want   Outcome
	}{
		{[2]float64{5, 3}, Win},
		{[2]float64{3, 5}, Loss},
		{[2]float64{4, 4}, Draw},
		{[2]float64{0, 0}, Draw},
	}

	for _, test := range tests {
		if got := (Result{Scores: test.scores}).Outcome(); got != test.want {
			t.Errorf("Outcome(%v) = %v, want %v", test.scores, got, test.want)
		}
	}
}
