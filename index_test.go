package lz4x

import "testing"

func TestIndex_ExactChainFindsRepeat(t *testing.T) {
	data := []byte("ABCDxxxxABCDyyyy")
	w := newWindow(data)
	idx := newIndex()

	for pos := 0; pos+4 <= len(data); pos++ {
		idx.update(w, pos)
	}

	// Position 8 ("ABCD" again) should chain back to position 0 with
	// distance 8 on the exact chain.
	dist := idx.previousExact[8&maxDistance]
	if dist != 8 {
		t.Fatalf("previousExact[8] = %d, want 8", dist)
	}
}

func TestIndex_NoChainBeforeFirstOccurrence(t *testing.T) {
	data := []byte("ABCDEFGH")
	w := newWindow(data)
	idx := newIndex()

	idx.update(w, 0)
	if idx.previousExact[0] != endOfChain {
		t.Fatalf("previousExact[0] = %d, want endOfChain", idx.previousExact[0])
	}
}

func TestIndex_DistanceBeyondMaxIsIgnored(t *testing.T) {
	w := newWindow(make([]byte, 8))
	idx := newIndex()
	idx.lastHash[hash4(0)] = -1

	// Synthetic: force a lastHash entry far enough back that the
	// resulting distance exceeds maxDistance.
	idx.lastHash[hash4(w.byte4(0))] = -int64(maxDistance) - 100
	idx.update(w, 0)
	if idx.previousExact[0&maxDistance] != endOfChain {
		t.Fatalf("expected out-of-range distance to be rejected")
	}
}
