package lz4x

import "testing"

func TestEstimateCosts_AllLiteralsStayLiteral(t *testing.T) {
	m := &matches{
		lengths:   make([]int, 20),
		distances: make([]int, 20),
	}
	for i := range m.lengths {
		m.lengths[i] = justLiteral
	}

	m.estimateCosts()

	for i, length := range m.lengths {
		if length != justLiteral {
			t.Errorf("lengths[%d] = %d, want %d (no matches were offered)", i, length, justLiteral)
		}
	}
}

func TestEstimateCosts_PrefersAvailableMatch(t *testing.T) {
	n := 30
	m := &matches{
		lengths:   make([]int, n),
		distances: make([]int, n),
	}
	for i := range m.lengths {
		m.lengths[i] = justLiteral
	}
	// A single long match available at position 0, far from the block end.
	m.lengths[0] = 20
	m.distances[0] = 4

	m.estimateCosts()

	if m.lengths[0] == justLiteral {
		t.Fatal("expected the estimator to choose the available match over a literal")
	}
	if m.lengths[0] < minMatch {
		t.Fatalf("chosen length %d is shorter than minMatch", m.lengths[0])
	}
}
