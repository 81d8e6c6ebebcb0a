// utils.go
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file contains general utility functions.

package boggle

import "unicode/utf8"

// Words returns the words spelled by a list of paths on a Grid
func Words(grid *Grid, paths []Path) []string {
	// Preallocate the result slice with one word per path
	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = p.Word(grid)
	}
	return result
}

// Longest returns the longest of the given words, counted in
// characters, and its length. The first one wins a tie.
func Longest(words []string) (string, int) {
	longest, n := "", 0
	for _, w := range words {
		if l := utf8.RuneCountInString(w); l > n {
			longest, n = w, l
		}
	}
	return longest, n
}
