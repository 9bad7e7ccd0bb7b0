// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binarydiff computes a compact edit script between two arbitrary
// byte sequences and lets callers query, for any byte position in the
// patched output, which edit operation produced it.
//
// The engine is a greedy segmenter: it walks both inputs forward and, at
// each position, decides whether the next chunk is Same, Delete, or
// Insert, using short bounded look-ahead windows and a
// longest-common-substring primitive to choose cut points. It does not
// produce a globally optimal edit script (see Myers or Hunt-McIlroy for
// that); it is tuned to be cheap over binary data where line structure
// does not exist.
package binarydiff

import "fmt"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "binarydiff: " + string(e) }

// StalledError reports that the segmenter failed to advance either
// cursor during a driver iteration. It always indicates a logic error in
// the segmenter (an extractor round that emitted nothing and moved
// nothing) and must not be swallowed by callers.
type StalledError struct {
	OldPos int
	NewPos int
}

func (e *StalledError) Error() string {
	return fmt.Sprintf("binarydiff: segmentation stalled at old_pos=%d, new_pos=%d", e.OldPos, e.NewPos)
}
