// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binarydiff

import "io"

// insertWindow bounds the look-ahead used to find the longest common
// substring between the upcoming bytes of old and new.
const insertWindow = 16

// extractInsert emits an Insert chunk whose payload is the maximal
// prefix of the remaining new that does not yet appear in the near old
// window (C5). Must be called immediately after extractDelete.
func extractInsert(old, new io.ReadSeeker, oldPos, newPos, oldSize, newSize int) (Chunk, bool, error) {
	n := newSize - newPos
	if n == 0 {
		return Chunk{}, false, nil
	}

	if oldPos == oldSize {
		rest, err := peekWindow(new, n)
		if err != nil {
			return Chunk{}, false, err
		}
		if _, err := new.Seek(int64(n), io.SeekCurrent); err != nil {
			return Chunk{}, false, err
		}
		return insert(oldPos, rest), true, nil
	}

	w := min(n, insertWindow)
	oldWindow, err := peekWindow(old, min(w, oldSize-oldPos))
	if err != nil {
		return Chunk{}, false, err
	}
	newWindow, err := peekWindow(new, w)
	if err != nil {
		return Chunk{}, false, err
	}

	_, secondPos, length := longestCommonSubstring(oldWindow, newWindow)
	if length > 0 {
		if secondPos == 0 {
			return Chunk{}, false, nil
		}
		if _, err := new.Seek(int64(secondPos), io.SeekCurrent); err != nil {
			return Chunk{}, false, err
		}
		buf := make([]byte, secondPos)
		copy(buf, newWindow[:secondPos])
		return insert(oldPos, buf), true, nil
	}

	// The near windows share no byte at all: scan new forward,
	// buffering bytes, until one matches the byte currently at the
	// front of old.
	oldByte, err := peekWindow(old, 1)
	if err != nil {
		return Chunk{}, false, err
	}
	rest, err := peekWindow(new, n)
	if err != nil {
		return Chunk{}, false, err
	}

	idx := findByte(rest, oldByte[0])
	if idx < 0 {
		idx = n
	}
	if idx == 0 {
		return Chunk{}, false, nil
	}
	if _, err := new.Seek(int64(idx), io.SeekCurrent); err != nil {
		return Chunk{}, false, err
	}
	buf := make([]byte, idx)
	copy(buf, rest[:idx])
	return insert(oldPos, buf), true, nil
}
