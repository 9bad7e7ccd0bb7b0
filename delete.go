// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binarydiff

import "io"

// deleteWindow is the tuning constant from spec.md §4.3: the width of
// the look-ahead window used to find the closest upcoming reappearance
// of an old byte inside new. It trades off how far the heuristic can see
// against the cost of the window scan; 32 matches the reference
// implementation and keeps every scan O(1) relative to file size.
const deleteWindow = 32

// extractDelete emits a Delete chunk whose length is the minimum
// distance to the next byte of old that will participate in a future
// Same (C4). Must be called immediately after extractSame has declined
// to emit for the current cursors.
func extractDelete(old, new io.ReadSeeker, oldPos, newPos, oldSize, newSize int) (Chunk, bool, error) {
	if newPos == newSize {
		length := oldSize - oldPos
		if length == 0 {
			return Chunk{}, false, nil
		}
		if _, err := old.Seek(0, io.SeekEnd); err != nil {
			return Chunk{}, false, err
		}
		return del(oldPos, length), true, nil
	}

	n := min(oldSize-oldPos, newSize-newPos)
	if n == 0 {
		return Chunk{}, false, nil
	}

	w := min(deleteWindow, n)
	oldWindow, err := peekWindow(old, w)
	if err != nil {
		return Chunk{}, false, err
	}
	newWindow, err := peekWindow(new, w)
	if err != nil {
		return Chunk{}, false, err
	}

	// Find the old-window index whose byte reappears earliest in the
	// new-window; ties go to the smaller index since we only replace the
	// best candidate on a strict improvement.
	bestPos, bestIdx := -1, -1
	for i, v := range oldWindow {
		pos := findByte(newWindow, v)
		if pos < 0 {
			continue
		}
		if bestIdx < 0 || pos < bestPos {
			bestPos, bestIdx = pos, i
		}
	}

	if bestIdx >= 0 {
		if bestIdx == 0 {
			return Chunk{}, false, nil
		}
		if _, err := old.Seek(int64(bestIdx), io.SeekCurrent); err != nil {
			return Chunk{}, false, err
		}
		return del(oldPos, bestIdx), true, nil
	}

	// No byte of the old window reappears anywhere in the new window:
	// fall back to a linear scan of the remainder of old for the byte
	// currently at the front of new.
	newCur, err := peekWindow(new, 1)
	if err != nil {
		return Chunk{}, false, err
	}
	oldRest, err := peekWindow(old, oldSize-oldPos)
	if err != nil {
		return Chunk{}, false, err
	}
	if dist := findByte(oldRest, newCur[0]); dist >= 0 {
		if _, err := old.Seek(int64(dist), io.SeekCurrent); err != nil {
			return Chunk{}, false, err
		}
		return del(oldPos, dist), true, nil
	}

	if _, err := old.Seek(0, io.SeekEnd); err != nil {
		return Chunk{}, false, err
	}
	return del(oldPos, oldSize-oldPos), true, nil
}
