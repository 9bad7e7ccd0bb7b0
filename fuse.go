// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binarydiff

// fuse rewrites adjacent Delete(o,l), Insert(_,b) pairs into
// Replace(o,l,b) in a single linear pass (C7). It is idempotent: a
// Replace never re-splits into a pair that could be fused again.
func fuse(chunks []Chunk) []Chunk {
	enhanced := make([]Chunk, 0, len(chunks))
	for i := 0; i < len(chunks); i++ {
		c := chunks[i]
		if c.Kind == Delete && i+1 < len(chunks) && chunks[i+1].Kind == Insert {
			next := chunks[i+1]
			enhanced = append(enhanced, Chunk{
				Kind:   Replace,
				Offset: c.Offset,
				Length: c.Length,
				Bytes:  next.Bytes,
			})
			i++
			continue
		}
		enhanced = append(enhanced, c)
	}
	return enhanced
}
