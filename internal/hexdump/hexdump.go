// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hexdump renders a byte slice as a 16-bytes-per-line hex/ASCII
// dump, optionally highlighting the ranges touched by a diff's Delete
// chunks (in the "before" view) or Insert/Replace chunks (in the "after"
// view). It is a non-interactive stand-in for the paged, colored,
// keyboard-driven TUI described in spec.md §6 — see SPEC_FULL.md §1 for
// why the interactive pager itself is out of scope for this repository.
package hexdump

import (
	"fmt"
	"io"

	"github.com/dsnet/binarydiff"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[37;41m" // white-on-red: deleted bytes in "before"
	ansiBlue  = "\x1b[37;44m" // white-on-blue: inserted bytes in "after"
	ansiGray  = "\x1b[90m"    // dim: non-printable ASCII column filler
)

// Side selects which of the two compared files is being rendered, which
// determines how chunk coordinates are translated into highlighted byte
// ranges.
type Side int

const (
	// Before renders old, highlighting bytes a Delete chunk consumes.
	Before Side = iota
	// After renders new, highlighting bytes an Insert/Replace chunk produced.
	After
)

// highlightedRanges computes the set of byte offsets (in the rendered
// file) that should be drawn in the highlight color.
func highlightedRanges(side Side, diff *binarydiff.BinaryDiff) map[int]bool {
	marked := make(map[int]bool)
	switch side {
	case Before:
		for _, c := range diff.Chunks() {
			if c.Kind != binarydiff.Delete {
				continue
			}
			for i := c.Offset; i < c.Offset+c.Length; i++ {
				marked[i] = true
			}
		}
	case After:
		offset := 0
		for _, c := range diff.Chunks() {
			switch c.Kind {
			case binarydiff.Insert, binarydiff.Replace:
				for i := offset; i < offset+len(c.Bytes); i++ {
					marked[i] = true
				}
				offset += len(c.Bytes)
			case binarydiff.Same:
				offset += c.Length
			case binarydiff.Delete:
				// Contributes nothing to the patched file.
			}
		}
	}
	return marked
}

// Write renders data to w as a colored hex/ASCII dump, highlighting the
// ranges diff attributes to side.
func Write(w io.Writer, data []byte, side Side, diff *binarydiff.BinaryDiff) error {
	marked := highlightedRanges(side, diff)

	numLines := (len(data) + 15) / 16
	for lineOffset := 0; lineOffset < numLines; lineOffset++ {
		offset := lineOffset * 16
		if _, err := fmt.Fprintf(w, "%08x: ", offset); err != nil {
			return err
		}
		for i := offset; i < offset+16; i++ {
			if i%2 == 0 && i != offset {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
			if i >= len(data) {
				if _, err := fmt.Fprint(w, "  "); err != nil {
					return err
				}
				continue
			}
			text := fmt.Sprintf("%02x", data[i])
			if marked[i] {
				text = highlightColor(side) + text + ansiReset
			}
			if _, err := fmt.Fprint(w, text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "  "); err != nil {
			return err
		}
		for i := offset; i < offset+16 && i < len(data); i++ {
			b := data[i]
			if b >= 0x20 && b < 0x7f {
				if _, err := fmt.Fprintf(w, "%c", b); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprint(w, ansiGray+"."+ansiReset); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func highlightColor(side Side) string {
	if side == Before {
		return ansiRed
	}
	return ansiBlue
}
