package stats

import (
	"math"
	"testing"
)

func TestStoppingBounds(t *testing.T) {
	lower, upper := StoppingBounds(0.05, 0.05)
	if math.Abs(lower+2.944) > 0.001 || math.Abs(upper-2.944) > 0.001 {
		t.Errorf("StoppingBounds(0.05, 0.05) = %f, %f", lower, upper)
	}
}

func TestSPRT(t *testing.T) {
	test := NewSPRT(0, 10, 0.05, 0.05)

	if got := test.Decide(0, 0, 0); got != Undecided {
		t.Errorf("no games: %v, want undecided", got)
	}

	if got := test.Decide(900, 200, 100); got != H1 {
		t.Errorf("strong agent: %v, want H1", got)
	}

	if got := test.Decide(100, 200, 900); got != H0 {
		t.Errorf("weak agent: %v, want H0", got)
	}

	if llr := test.LLR(300, 400, 300); llr >= 0 {
		t.Errorf("even score: llr = %f, want negative", llr)
	}
}
