// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analyzer maps a byte position in a patched file back to the
// chunk of a binarydiff.BinaryDiff that produced it (C8).
package analyzer

import (
	"io"

	"github.com/dsnet/binarydiff"
)

// DerivesFrom is the result of a point query: the patched position
// queried, the offset relative to the start of the responsible chunk,
// and the chunk itself.
type DerivesFrom struct {
	Patched  int
	Relative int
	Chunk    binarydiff.Chunk
}

// OriginalPosition resolves the position in old that produced the
// queried byte. It is only meaningful for Same chunks; for any other
// kind it returns (0, false).
func (d *DerivesFrom) OriginalPosition() (int, bool) {
	if d.Chunk.Kind != binarydiff.Same {
		return 0, false
	}
	return d.Chunk.Offset + d.Relative, true
}

// Analyzer attributes offsets in a patched stream to the chunks of a
// diff that produced them.
type Analyzer struct {
	diff    *binarydiff.BinaryDiff
	patched io.ReadSeeker
}

// New creates an Analyzer over diff, resolving queries against patched.
func New(diff *binarydiff.BinaryDiff, patched io.ReadSeeker) *Analyzer {
	return &Analyzer{diff: diff, patched: patched}
}

// DerivesFrom walks the diff's chunks to attribute offset to exactly one
// chunk, or none (C8). It reads a single byte from the patched stream at
// offset to confirm that stream agrees with the diff; the read position
// is restored before returning.
//
// Delete chunks never match: they contribute zero patched length. An
// Insert or Replace chunk matches only if the patched byte equals the
// corresponding byte of the chunk's payload — a mismatch there means the
// patched stream and the diff disagree about what occupies that offset,
// so DerivesFrom reports no chunk rather than a wrong one.
func (a *Analyzer) DerivesFrom(offset int) (*DerivesFrom, error) {
	pos, err := a.patched.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if _, err := a.patched.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, err
	}
	var buf [1]byte
	_, readErr := io.ReadFull(a.patched, buf[:])
	if _, err := a.patched.Seek(pos, io.SeekStart); err != nil {
		return nil, err
	}
	if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
		return nil, nil
	}
	if readErr != nil {
		return nil, readErr
	}
	value := buf[0]

	patchedCursor := 0
	for _, chunk := range a.diff.Chunks() {
		length := chunk.PatchedLength()
		if offset >= patchedCursor && offset < patchedCursor+length {
			rel := offset - patchedCursor
			switch chunk.Kind {
			case binarydiff.Same:
				return &DerivesFrom{Patched: offset, Relative: rel, Chunk: chunk}, nil
			case binarydiff.Insert, binarydiff.Replace:
				if value == chunk.Bytes[rel] {
					return &DerivesFrom{Patched: offset, Relative: rel, Chunk: chunk}, nil
				}
				return nil, nil
			}
		}
		patchedCursor += length
	}
	return nil, nil
}
