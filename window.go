// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binarydiff

import (
	"io"

	"github.com/dsnet/golib/errs"
)

// peekWindow reads up to n bytes from r starting at its current position
// and restores the position before returning, on every exit path
// (success or I/O failure). The returned slice has length min(n,
// remaining); it is never nil for n > 0 unless an I/O error occurs. A
// zero-length window is a legal input and returns an empty slice.
//
// This is the single save/restore primitive described in spec.md's
// design notes: every extractor peeks a window, decides on a cut point,
// and then explicitly advances the reader by seeking forward — it never
// needs to unwind a partially-consumed read by hand.
func peekWindow(r io.ReadSeeker, n int) (buf []byte, err error) {
	if n <= 0 {
		return nil, nil
	}
	defer errs.Recover(&err)

	pos, err := r.Seek(0, io.SeekCurrent)
	errs.Panic(err)

	buf = make([]byte, n)
	cnt, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	_, serr := r.Seek(pos, io.SeekStart)
	errs.Panic(err)
	errs.Panic(serr)
	buf = buf[:cnt]
	return buf, nil
}

// findByte returns the first index i such that window[i] == b, or -1 if
// b does not appear in window. A zero-length window legally returns -1.
func findByte(window []byte, b byte) int {
	for i, v := range window {
		if v == b {
			return i
		}
	}
	return -1
}

// longestCommonSubstring returns the longest contiguous run of bytes
// equal in both a and b, reporting (firstPos, secondPos, length) where
// firstPos is its start in a and secondPos its start in b. Ties are
// broken toward the earliest firstPos, then the earliest secondPos.
// length == 0 (with firstPos == secondPos == 0) is returned when a and b
// share no byte at all. Either window may legally be empty.
//
// This is a short-window hash-match: it builds an index of positions per
// byte value in b and extends every candidate match in a, which is
// sufficient for the handful-of-bytes windows the segmenter uses (n*m is
// tiny) without pulling in a suffix-array or generalized LCS library.
func longestCommonSubstring(a, b []byte) (firstPos, secondPos, length int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	var positions [256][]int
	for j, v := range b {
		positions[v] = append(positions[v], j)
	}

	bestLen := 0
	bestI, bestJ := 0, 0
	for i := range a {
		for _, j := range positions[a[i]] {
			l := 0
			for i+l < len(a) && j+l < len(b) && a[i+l] == b[j+l] {
				l++
			}
			if l > bestLen {
				bestLen, bestI, bestJ = l, i, j
			}
		}
	}
	return bestI, bestJ, bestLen
}

// streamLength seeks to the end of r to determine its total size, then
// restores the position to the start. Both inputs to Compute must report
// a finite, known length up front.
func streamLength(r io.ReadSeeker) (n int, err error) {
	defer errs.Recover(&err)

	end, err := r.Seek(0, io.SeekEnd)
	errs.Panic(err)
	_, err = r.Seek(0, io.SeekStart)
	errs.Panic(err)
	return int(end), nil
}
