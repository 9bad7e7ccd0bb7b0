// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binarydiff

import "io"

// extractSame emits the maximal common prefix of old and new starting at
// the current cursors as a Same chunk (C3). It advances both cursors by
// the length of the agreement, or leaves them untouched and returns
// (Chunk{}, false, nil) if the two inputs disagree immediately.
func extractSame(old, new io.ReadSeeker, oldPos, newPos, oldSize, newSize int) (Chunk, bool, error) {
	n := min(oldSize-oldPos, newSize-newPos)
	if n == 0 {
		return Chunk{}, false, nil
	}

	oldWindow, err := peekWindow(old, n)
	if err != nil {
		return Chunk{}, false, err
	}
	newWindow, err := peekWindow(new, n)
	if err != nil {
		return Chunk{}, false, err
	}

	agree := 0
	for agree < n && oldWindow[agree] == newWindow[agree] {
		agree++
	}
	if agree == 0 {
		return Chunk{}, false, nil
	}

	if _, err := old.Seek(int64(agree), io.SeekCurrent); err != nil {
		return Chunk{}, false, err
	}
	if _, err := new.Seek(int64(agree), io.SeekCurrent); err != nil {
		return Chunk{}, false, err
	}
	return same(oldPos, agree), true, nil
}
