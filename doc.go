/*
lz4x is an LZ4 frame encoder that chooses its token sequence by optimal
parsing instead of greedy matching.

It writes modern LZ4 frames (magic 0x184D2204, version 1): a 7-byte header
with no checksums, a sequence of size-prefixed blocks of up to 4 MiB, and a
zero-sized terminator block. Output decodes correctly under any conforming
LZ4 decoder.

The package does not decompress; round-trip correctness is only verified in
tests, against github.com/pierrec/lz4/v4.
*/
package lz4x
