// Pigment - a dominant-colour palette extractor
//
// Pigment extracts small, visually distinct colour palettes from images.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/pigment/internal/cli"

func main() {
	cli.Execute()
}
