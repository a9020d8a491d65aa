package lz4x

const (
	// blockEndLiterals: the last 5 bytes of a block must always be
	// literals; no match may end there.
	blockEndLiterals = 5
	// blockEndNoMatch: match *finding* stops 12 bytes before the block
	// end, a safety margin wider than blockEndLiterals so a long match
	// starting a little earlier still can't straddle the literal tail.
	blockEndNoMatch = 12

	// maxSameLetter is the length threshold (19 + 255*256) past which a
	// run of identical bytes gets a fast path in both the indexer and the
	// cost estimator, instead of re-deriving the same unary match length
	// position by position.
	maxSameLetter = 19 + 255*256

	// shortChainsGreedy: at or below this chain-length budget, use greedy
	// matching (take the first/longest match found and skip ahead) instead
	// of optimal parsing.
	shortChainsGreedy = 3
	// shortChainsLazy: above shortChainsGreedy and at or below this, use
	// lazy evaluation (greedy, but check one position ahead first).
	shortChainsLazy = 6
)

// matches holds the per-position parse result for one block: lengths[i] is
// either justLiteral (or, equivalently here, 0 — see buildMatches) or a
// match length >= minMatch; distances[i] is meaningful only when
// lengths[i] > justLiteral.
type matches struct {
	lengths   []int
	distances []int
}

// buildMatches runs the hash index and longest-match finder over one block
// and returns the raw (pre-cost-estimation) parse. lastBlock/nextBlock are
// absolute positions bounding the block; lookback is zero or negative, the
// offset from lastBlock at which indexing starts: the -lookback bytes before
// lastBlock are indexed (but not matched against) because the previous
// block's trailing literals were never indexed.
func buildMatches(w *window, idx *index, lastBlock, nextBlock int, maxChainLength int, lookback int) *matches {
	blockSize := nextBlock - lastBlock

	isGreedy := maxChainLength <= shortChainsGreedy
	isLazy := !isGreedy && maxChainLength <= shortChainsLazy

	skipMatches := 0
	lazyEvaluation := false

	m := &matches{
		lengths:   make([]int, blockSize),
		distances: make([]int, blockSize),
	}

	i := lookback
	for ; i+blockEndNoMatch <= blockSize; i++ {
		pos := lastBlock + i

		// Self-match shortcut: a long run of one repeated byte would
		// otherwise re-walk the same chain at every position.
		if i > 0 && w.data[pos] == w.data[pos-1] && m.distances[i-1] == 1 {
			prevLength := m.lengths[i-1]
			if prevLength > maxSameLetter {
				m.distances[i] = 1
				m.lengths[i] = prevLength - 1
				continue
			}
		}

		idx.update(w, pos)

		// Crossing into the previous block: only build the chains, the
		// match itself was already decided when that block was parsed.
		if i < 0 {
			continue
		}

		if skipMatches > 0 {
			skipMatches--
			if !lazyEvaluation {
				continue
			}
			lazyEvaluation = false
		}

		length, distance := findLongestMatch(w.data, pos, nextBlock-blockEndLiterals, idx.previousExact, maxChainLength)
		m.lengths[i] = length
		m.distances[i] = distance

		if (isLazy || isGreedy) && length != justLiteral {
			if skipMatches == 0 {
				lazyEvaluation = true
			}
			skipMatches = length
		}
	}
	// A block shorter than the lookback span leaves i negative here.
	if i < 0 {
		i = 0
	}
	for ; i < blockSize; i++ {
		m.lengths[i] = justLiteral
	}

	return m
}
