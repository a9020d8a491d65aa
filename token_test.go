package lz4x

import (
	"bytes"
	"testing"
)

func TestAppendExtension(t *testing.T) {
	cases := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0}},
		{254, []byte{254}},
		{255, []byte{255, 0}},
		{256, []byte{255, 1}},
		{510, []byte{255, 255, 0}},
		{511, []byte{255, 255, 1}},
	}

	for _, c := range cases {
		got := appendExtension(nil, c.n)
		if !bytes.Equal(got, c.want) {
			t.Errorf("appendExtension(%d) = % x, want % x", c.n, got, c.want)
		}
	}
}

func TestEmitTokens_AllLiterals(t *testing.T) {
	data := []byte("abc")
	m := &matches{
		lengths:   []int{justLiteral, justLiteral, justLiteral},
		distances: []int{0, 0, 0},
	}

	out := emitTokens(nil, data, m)
	// token: 3 literals, 0-length match -> 0x30, followed by the 3 literal bytes.
	want := []byte{0x30, 'a', 'b', 'c'}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

func TestEmitTokens_SingleMatch(t *testing.T) {
	data := []byte("aaaaaX")
	m := &matches{
		lengths:   []int{minMatch + 1, 0, 0, 0, 0, justLiteral},
		distances: []int{1, 0, 0, 0, 0, 0},
	}

	out := emitTokens(nil, data, m)
	if len(out) < 4 {
		t.Fatalf("output too short: % x", out)
	}
	if out[0]&0xF0 != 0 {
		t.Fatalf("expected no leading literals, got token % x", out[0])
	}
	if out[0]&0x0F != 1 {
		t.Fatalf("expected match-length nibble 1 (length-4), got token % x", out[0])
	}
}
