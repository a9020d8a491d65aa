package lz4x

// appendExtension appends n in the LZ4 variable-length extension-byte
// encoding: as many 0xFF bytes as needed while the remainder is still
// >= 255, followed by one final byte in [0, 254]. n == 255 therefore
// encodes as the two bytes 0xFF 0x00.
func appendExtension(dst []byte, n int) []byte {
	for n >= maxLengthCode {
		dst = append(dst, maxLengthCode)
		n -= maxLengthCode
	}
	return append(dst, byte(n))
}

// emitTokens walks the chosen parse forward and packs it into the LZ4
// block token stream: runs of literals and matches become
// [token][literal-extension?][literals][distance][match-extension?]
// packets, terminated by a literals-only packet whose low nibble is 0 and
// which carries no distance. data must be the block's raw bytes (indexed
// the same way m.lengths/m.distances are, i.e. data[0] is the block start).
func emitTokens(dst []byte, data []byte, m *matches) []byte {
	n := len(m.lengths)

	literalsFrom := 0
	numLiterals := 0
	lastToken := false

	for offset := 0; offset < n; {
		length := m.lengths[offset]
		distance := m.distances[offset]

		if length <= justLiteral {
			if numLiterals == 0 {
				literalsFrom = offset
			}
			numLiterals++
			offset++

			if offset < n {
				continue
			}
			lastToken = true
		} else {
			offset += length
		}

		matchLength := 0
		if !lastToken {
			matchLength = length - minMatch
		}

		token := byte(matchLength)
		if matchLength >= 15 {
			token = 15
		}

		if numLiterals < 15 {
			dst = append(dst, token|byte(numLiterals<<4))
		} else {
			dst = append(dst, token|0xF0)
			dst = appendExtension(dst, numLiterals-15)
		}

		if numLiterals > 0 {
			dst = append(dst, data[literalsFrom:literalsFrom+numLiterals]...)
			if lastToken {
				break
			}
			numLiterals = 0
		}

		dst = append(dst, byte(distance), byte(distance>>8))
		if matchLength >= 15 {
			dst = appendExtension(dst, matchLength-15)
		}
	}

	return dst
}
