// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binarydiff

import (
	"io"
	"sort"
)

// BinaryDiff is an ordered sequence of Chunks describing how to turn old
// into new. Applying its chunks left to right to old reproduces new
// exactly; see Compute.
type BinaryDiff struct {
	chunks []Chunk
}

// Compute runs the greedy segmenter (C6) over old and new, both of which
// must support io.Seeker with a finite, known length. It returns the
// chunk list before fusion; call Enhance to merge adjacent Delete/Insert
// pairs into Replace.
func Compute(old, new io.ReadSeeker) (*BinaryDiff, error) {
	oldSize, err := streamLength(old)
	if err != nil {
		return nil, err
	}
	newSize, err := streamLength(new)
	if err != nil {
		return nil, err
	}

	pos := func(r io.ReadSeeker) (int, error) {
		p, err := r.Seek(0, io.SeekCurrent)
		return int(p), err
	}

	var chunks []Chunk
	for {
		oldPos, err := pos(old)
		if err != nil {
			return nil, err
		}
		newPos, err := pos(new)
		if err != nil {
			return nil, err
		}

		for _, extract := range []func(io.ReadSeeker, io.ReadSeeker, int, int, int, int) (Chunk, bool, error){
			extractSame, extractDelete, extractInsert,
		} {
			curOld, err := pos(old)
			if err != nil {
				return nil, err
			}
			curNew, err := pos(new)
			if err != nil {
				return nil, err
			}
			c, ok, err := extract(old, new, curOld, curNew, oldSize, newSize)
			if err != nil {
				return nil, err
			}
			if ok {
				chunks = append(chunks, c)
			}
		}

		curOld, err := pos(old)
		if err != nil {
			return nil, err
		}
		curNew, err := pos(new)
		if err != nil {
			return nil, err
		}

		if curOld == oldSize && curNew == newSize {
			break
		}
		if curOld == oldPos && curNew == newPos {
			return nil, &StalledError{OldPos: curOld, NewPos: curNew}
		}
	}

	return &BinaryDiff{chunks: chunks}, nil
}

// Enhance runs the fusion pass (C7) and returns a new BinaryDiff; it does
// not modify the receiver.
func (d *BinaryDiff) Enhance() *BinaryDiff {
	return &BinaryDiff{chunks: fuse(d.chunks)}
}

// Chunks returns the diff's chunk list in order.
func (d *BinaryDiff) Chunks() []Chunk {
	return d.chunks
}

// FromChunks constructs a BinaryDiff from an externally supplied list,
// sorting it by ascending Offset with Insert ordered before Same at a
// tied offset (invariant 3 of spec.md §3).
func FromChunks(chunks []Chunk) *BinaryDiff {
	sorted := make([]Chunk, len(chunks))
	copy(sorted, chunks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		return chunkRank(a.Kind) < chunkRank(b.Kind)
	})
	return &BinaryDiff{chunks: sorted}
}

// chunkRank orders chunk kinds at a tied offset: a Delete consumes old
// bytes starting here and sorts first, an Insert produces bytes here
// without consuming old and sorts next, and a Same or Replace that
// begins exactly where a prior Insert ended sorts last.
func chunkRank(k Kind) int {
	switch k {
	case Delete:
		return 0
	case Insert:
		return 1
	case Replace:
		return 2
	default: // Same
		return 2
	}
}
