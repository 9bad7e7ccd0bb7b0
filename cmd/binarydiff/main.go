// Copyright 2026 The Binarydiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command binarydiff shows changes between two binary files.
//
// Usage:
//
//	binarydiff [flags] FILE1 FILE2
//
// By default it prints every Delete, Insert, and Replace chunk computed
// between FILE1 (old) and FILE2 (new). Flags select alternate modes; see
// SPEC_FULL.md §6a for the full contract.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dsnet/binarydiff"
	"github.com/dsnet/binarydiff/analyzer"
	"github.com/dsnet/binarydiff/internal/hexdump"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("binarydiff", flag.ContinueOnError)
	printSame := fs.Bool("same", false, "include Same chunks in the printed chunk list")
	enhance := fs.Bool("enhance", true, "fuse adjacent Delete/Insert chunks into Replace before printing")
	offsetHex := fs.String("offset", "", "resolve a single patched-file offset (hex) to its source chunk instead of printing the chunk list")
	patchedPath := fs.String("patched", "", "patched file to query with -offset (default FILE2)")
	hex := fs.Bool("hex", false, "render a colored hex/ASCII dump of FILE1 and FILE2 instead of the chunk list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: binarydiff [flags] FILE1 FILE2")
	}
	file1, file2 := fs.Arg(0), fs.Arg(1)

	oldFile, err := os.Open(file1)
	if err != nil {
		return err
	}
	defer oldFile.Close()
	newFile, err := os.Open(file2)
	if err != nil {
		return err
	}
	defer newFile.Close()

	diff, err := binarydiff.Compute(oldFile, newFile)
	if err != nil {
		return err
	}
	if *enhance {
		diff = diff.Enhance()
	}

	switch {
	case *hex:
		return printHex(oldFile, newFile, diff)
	case *offsetHex != "":
		return printDerivesFrom(*offsetHex, file2, *patchedPath, diff)
	default:
		printChunks(diff, *printSame)
		return nil
	}
}

func printChunks(diff *binarydiff.BinaryDiff, printSame bool) {
	for _, chunk := range diff.Chunks() {
		if chunk.Kind == binarydiff.Same && !printSame {
			continue
		}
		fmt.Println(chunk)
	}
}

func printDerivesFrom(offsetHex, file2, patchedPath string, diff *binarydiff.BinaryDiff) error {
	var offset int64
	if _, err := fmt.Sscanf(offsetHex, "%x", &offset); err != nil {
		return fmt.Errorf("invalid -offset %q: %w", offsetHex, err)
	}

	path := patchedPath
	if path == "" {
		path = file2
	}
	patched, err := os.Open(path)
	if err != nil {
		return err
	}
	defer patched.Close()

	a := analyzer.New(diff, patched)
	result, err := a.DerivesFrom(int(offset))
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Println("<no chunk>")
		return nil
	}
	fmt.Printf("offset=%#x relative=%#x chunk=%s\n", result.Patched, result.Relative, result.Chunk)
	if pos, ok := result.OriginalPosition(); ok {
		fmt.Printf("original_position=%#x\n", pos)
	}
	return nil
}

func printHex(oldFile, newFile *os.File, diff *binarydiff.BinaryDiff) error {
	oldBytes, err := readAll(oldFile)
	if err != nil {
		return err
	}
	newBytes, err := readAll(newFile)
	if err != nil {
		return err
	}

	fmt.Printf("--- %s\n", oldFile.Name())
	if err := hexdump.Write(os.Stdout, oldBytes, hexdump.Before, diff); err != nil {
		return err
	}
	fmt.Printf("+++ %s\n", newFile.Name())
	return hexdump.Write(os.Stdout, newBytes, hexdump.After, diff)
}

func readAll(f *os.File) ([]byte, error) {
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	return buf, nil
}
