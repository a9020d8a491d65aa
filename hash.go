package lz4x

import "encoding/binary"

// hashBits controls the match finder's hash table size: 2^hashBits entries.
// Must stay well under 32 or hashSize overflows.
const (
	hashBits = 20
	hashSize = 1 << hashBits

	// hashMultiplier is a linear-congruential-generator multiplier; see
	// https://en.wikipedia.org/wiki/Linear_congruential_generator
	hashMultiplier = 48271
)

// hash4 reduces a 4-byte little-endian word to a hashBits-wide hash. It is
// the exact function the reference smallz4 implementation uses: changing it
// still produces a valid (but different) parse.
func hash4(word uint32) uint32 {
	return (word * hashMultiplier) >> (32 - hashBits) & (hashSize - 1)
}

// match4 reports whether the 4 bytes at a and b are identical.
func match4(data []byte, a, b int) bool {
	return binary.LittleEndian.Uint32(data[a:]) == binary.LittleEndian.Uint32(data[b:])
}
