package lz4x

// maxLengthCode is the largest value an extension byte can carry before
// another 0xFF continuation byte is needed.
const maxLengthCode = 255

// estimateCosts runs the backward dynamic program described in spec §4.4:
// for each position, it picks whichever of "emit a literal" or "emit a
// match of length ℓ" (for every reachable ℓ) minimizes the total encoded
// size from that position to the end of the block, and overwrites
// m.lengths[i] with the winning choice. m.distances is left untouched;
// only the lengths decided here (plus the original distance at that
// length) are used downstream.
func (m *matches) estimateCosts() {
	blockEnd := len(m.lengths)
	cost := make([]int, blockEnd)

	// The last blockEndLiterals bytes are always literals; seed the
	// running literal-run counter accordingly.
	numLiterals := blockEndLiterals

	for i := blockEnd - (1 + blockEndLiterals); i >= 0; i-- {
		numLiterals++

		bestLength := justLiteral
		minCost := cost[i+1] + 1

		// An extra length byte is needed every 255 literals past the
		// first 15 (the nibble's worth).
		if numLiterals >= 15 {
			if numLiterals == 15 || (numLiterals >= 15+maxLengthCode && (numLiterals-15)%maxLengthCode == 0) {
				minCost++
			}
		}

		matchLength := m.lengths[i]
		matchDistance := m.distances[i]

		switch {
		case matchLength >= maxSameLetter && matchDistance == 1:
			// Very long self-referencing match: assume the longest
			// length is the best one rather than scoring every ℓ.
			bestLength = matchLength
			minCost = cost[i+matchLength] + 1 + 2 + 1 + (matchLength-19)/255

		default:
			// token (1 byte) + distance (2 bytes), plus extension
			// bytes for long matches.
			extraCost := 1 + 2
			nextCostIncrease := 18

			for length := minMatch; length <= matchLength; length++ {
				currentCost := cost[i+length] + extraCost
				// "<=" (not "<") is load-bearing: on a tie it
				// prefers the match over the literal, which can
				// avoid an extension byte an earlier literal run
				// would otherwise need. Using "<" still produces
				// a valid parse, just a slightly larger one.
				if currentCost <= minCost {
					minCost = currentCost
					bestLength = length
				}

				if length == nextCostIncrease {
					extraCost++
					nextCostIncrease += maxLengthCode
				}
			}
		}

		cost[i] = minCost
		m.lengths[i] = bestLength

		if bestLength != justLiteral {
			numLiterals = 0
		}
	}
}
