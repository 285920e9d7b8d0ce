// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command artdump builds an Adaptive Radix Tree from newline-separated keys
// (read from stdin or a file) and prints its internal structure.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/radixart/art"
)

func main() {
	path := flag.String("f", "", "file of newline-separated keys (default: stdin)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			log.Fatalf("artdump: %v", err)
		}
		defer f.Close()
		r = f
	}

	var t art.Tree[int]
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		t.Insert([]byte(line), n)
		n++
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("artdump: reading input: %v", err)
	}

	fmt.Printf("%d entries\n", t.Len())
	if err := t.Dump(os.Stdout); err != nil {
		log.Fatalf("artdump: %v", err)
	}
}
