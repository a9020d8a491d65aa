package lz4x

import "encoding/binary"

// maxBlockSize is the largest block this encoder ever produces: LZ4 frame
// format defines seven possible block sizes and this implementation only
// uses the largest, block-size-id 7 (4 MiB), matching the precomputed
// header checksum below.
const maxBlockSize = 4 * 1024 * 1024

// frameHeader is the complete 7-byte LZ4 frame header this encoder always
// emits: magic, flags (version 1, no checksums, blocks depend on each
// other, no dictionary ID), block-max-size id 7, and the xxHash32 header
// checksum precomputed for exactly that flag byte and block-max byte. Any
// change to the two bytes after the magic requires recomputing the last
// byte.
var frameHeader = []byte{0x04, 0x22, 0x4D, 0x18, 0x40, 0x70, 0xDF}

// ProgressFunc, if set on Options, is called once per block after it is
// written, purely for external progress reporting (e.g. the CLI's -v flag).
// The core never calls it for any other reason and never blocks on it.
type ProgressFunc func(block int, rawLen, compressedLen int)

// Options configures a single call to Compress or Append.
type Options struct {
	// MaxChainLength bounds how many times the longest-match finder may
	// improve on its best match per position; chain entries it rejects do
	// not count against it. 0 disables compression entirely (blocks are
	// stored raw); see LevelToChainLength for the CLI's 0-9 mapping.
	MaxChainLength uint16

	// Dictionary, if non-empty, primes the match finder with up to its
	// last 64 KiB so the first block can reference it.
	Dictionary []byte

	// Progress, if non-nil, is invoked after each block is written.
	Progress ProgressFunc
}

// LevelOptions returns Options for the given CLI compression level
// (0-9, clamped), using LevelToChainLength.
func LevelOptions(level int) Options {
	return Options{MaxChainLength: LevelToChainLength(level)}
}

// compressedBound returns a conservative upper bound on the encoded size
// of an n-byte input, including frame overhead, suitable for preallocating
// the output buffer. It is never a hard limit: Compress still grows the
// buffer via append if a pathological input needs more.
func compressedBound(n int) int {
	numBlocks := n/maxBlockSize + 1
	return len(frameHeader) + n + n/255 + 16 + 4*numBlocks + 4
}

// Compress returns the LZ4 frame encoding of src under opts.
func Compress(src []byte, opts Options) []byte {
	dst := make([]byte, 0, compressedBound(len(src)))
	return Append(dst, src, opts)
}

// Append appends the LZ4 frame encoding of src under opts to dst and
// returns the extended slice.
func Append(dst []byte, src []byte, opts Options) []byte {
	dst = append(dst, frameHeader...)

	uncompressed := opts.MaxChainLength == 0

	data, offset := primeWindow(src, opts.Dictionary)
	w := newWindow(data)
	idx := newIndex()

	dictLookback := 0
	if offset > 0 {
		dictLookback = offset
	}
	parsingDictionary := offset > 0

	total := len(data)
	lastBlock := offset
	nextBlock := offset
	block := 0

	for nextBlock != total {
		lastBlock = nextBlock
		nextBlock += maxBlockSize
		if nextBlock > total {
			nextBlock = total
		}
		blockSize := nextBlock - lastBlock

		var compressed []byte
		if !uncompressed {
			lookback := w.dataZero
			if lookback > blockEndNoMatch && !parsingDictionary {
				lookback = blockEndNoMatch
			}
			if parsingDictionary {
				lookback = dictLookback
			}
			lookback = -lookback

			m := buildMatches(w, idx, lastBlock, nextBlock, int(opts.MaxChainLength), lookback)
			if blockSize > blockEndNoMatch && int(opts.MaxChainLength) > shortChainsGreedy {
				m.estimateCosts()
			}
			compressed = emitTokens(nil, data[lastBlock:nextBlock], m)
		}
		parsingDictionary = false

		useCompression := !uncompressed && len(compressed) < blockSize
		if useCompression {
			dst = binary.LittleEndian.AppendUint32(dst, uint32(len(compressed)))
			dst = append(dst, compressed...)
		} else {
			dst = binary.LittleEndian.AppendUint32(dst, uint32(blockSize)|0x80000000)
			dst = append(dst, data[lastBlock:nextBlock]...)
		}

		if opts.Progress != nil {
			opts.Progress(block, blockSize, len(compressed))
		}
		block++

		w.advance(nextBlock)
	}

	return binary.LittleEndian.AppendUint32(dst, 0)
}

// primeWindow returns the buffer the window should operate over and the
// offset within it where src begins. With no dictionary, src is used
// directly (no copy). With a dictionary, its last 64 KiB are copied in
// front of a copy of src so the two form one contiguous address space;
// dictionary positions end up immediately before offset, the start of src.
func primeWindow(src, dictionary []byte) (data []byte, offset int) {
	if len(dictionary) == 0 {
		return src, 0
	}

	tail := dictionary
	if len(tail) > maxDistance {
		tail = tail[len(tail)-maxDistance:]
	}

	data = make([]byte, 0, len(tail)+len(src))
	data = append(data, tail...)
	data = append(data, src...)
	return data, len(tail)
}
