// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binarydiff

import "testing"

func TestChunkLengths(t *testing.T) {
	tests := []struct {
		name   string
		chunk  Chunk
		source int
		patch  int
	}{
		{"same", same(0, 4), 4, 4},
		{"delete", del(2, 3), 3, 0},
		{"insert", insert(2, []byte{1, 2}), 0, 2},
		{"replace", Chunk{Kind: Replace, Offset: 2, Length: 3, Bytes: []byte{1, 2}}, 3, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.chunk.SourceLength(); got != tc.source {
				t.Errorf("SourceLength() = %d, want %d", got, tc.source)
			}
			if got := tc.chunk.PatchedLength(); got != tc.patch {
				t.Errorf("PatchedLength() = %d, want %d", got, tc.patch)
			}
		})
	}
}

func TestChunkString(t *testing.T) {
	tests := []struct {
		chunk Chunk
		want  string
	}{
		{same(0, 4), "Same(offset=0x0, length=0x4)"},
		{del(2, 3), "Delete(offset=0x2, length=0x3)"},
		{insert(2, []byte{0x0a, 0xff}), "Insert(offset=0x2, bytes=[0a ff])"},
		{Chunk{Kind: Replace, Offset: 1, Length: 2, Bytes: []byte{0xfd}}, "Replace(offset=0x1, length=0x2, bytes=[fd])"},
	}
	for _, tc := range tests {
		if got := tc.chunk.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
