// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binarydiff

import (
	"fmt"
	"strings"
)

// Kind identifies which variant a Chunk holds.
type Kind uint8

const (
	// Same marks bytes that appear verbatim in old and new.
	Same Kind = iota
	// Delete marks bytes present in old but dropped from new.
	Delete
	// Insert marks bytes present in new but absent from old.
	Insert
	// Replace is the fusion of an adjacent Delete immediately followed
	// by an Insert; see Enhance.
	Replace
)

func (k Kind) String() string {
	switch k {
	case Same:
		return "Same"
	case Delete:
		return "Delete"
	case Insert:
		return "Insert"
	case Replace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Chunk is one entry of an edit script. All four variants share the same
// coordinate fields; which fields are meaningful depends on Kind:
//
//	Same(Offset, Length)          Bytes == nil
//	Delete(Offset, Length)        Bytes == nil
//	Insert(Offset, Bytes)         Length == 0
//	Replace(Offset, Length, Bytes)
//
// Offset is always an offset into old. For Insert it is the old-side
// position at which Bytes are inserted; old's cursor does not advance
// past it.
type Chunk struct {
	Kind   Kind
	Offset int
	Length int
	Bytes  []byte
}

// SourceLength reports how many bytes of old this chunk consumes.
func (c Chunk) SourceLength() int {
	if c.Kind == Insert {
		return 0
	}
	return c.Length
}

// PatchedLength reports how many bytes of new this chunk contributes.
func (c Chunk) PatchedLength() int {
	switch c.Kind {
	case Delete:
		return 0
	case Insert, Replace:
		return len(c.Bytes)
	default: // Same
		return c.Length
	}
}

// String renders the chunk in the reference display form, e.g.
// "Same(offset=0x0, length=0x4)" or "Insert(offset=0x2, bytes=[02 03])".
func (c Chunk) String() string {
	switch c.Kind {
	case Same:
		return fmt.Sprintf("Same(offset=%#x, length=%#x)", c.Offset, c.Length)
	case Delete:
		return fmt.Sprintf("Delete(offset=%#x, length=%#x)", c.Offset, c.Length)
	case Insert:
		return fmt.Sprintf("Insert(offset=%#x, bytes=[%s])", c.Offset, hexJoin(c.Bytes))
	case Replace:
		return fmt.Sprintf("Replace(offset=%#x, length=%#x, bytes=[%s])", c.Offset, c.Length, hexJoin(c.Bytes))
	default:
		return fmt.Sprintf("Unknown(offset=%#x)", c.Offset)
	}
}

func hexJoin(bytes []byte) string {
	var sb strings.Builder
	for i, b := range bytes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}

func same(offset, length int) Chunk     { return Chunk{Kind: Same, Offset: offset, Length: length} }
func del(offset, length int) Chunk      { return Chunk{Kind: Delete, Offset: offset, Length: length} }
func insert(offset int, b []byte) Chunk { return Chunk{Kind: Insert, Offset: offset, Bytes: b} }
