// Pigment - prominent colour extraction for images
//
// Pigment quantises images down to their most prominent colours and
// scores them against perceptual profiles for use in theming.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/pigment/internal/cli"

func main() {
	cli.Execute()
}
