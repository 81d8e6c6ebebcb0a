// path.go
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file implements Paths across the Grid, their validation
// and their scores

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package boggle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Path is an ordered sequence of Grid coordinates, each one
// adjacent to the previous one, with no coordinate repeated
type Path []Coord

// String represents a Path as a dash-separated list of coordinates
func (path Path) String() string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, "-")
}

// Contains returns true if the coordinate is already in the Path
func (path Path) Contains(c Coord) bool {
	for _, p := range path {
		if p == c {
			return true
		}
	}
	return false
}

// Word returns the string spelled by the tiles along the Path
func (path Path) Word(grid *Grid) string {
	var sb strings.Builder
	for _, c := range path {
		sb.WriteString(grid.Tile(c))
	}
	return sb.String()
}

// MarshalJSON encodes a Path as a list of [row, col] pairs
func (path Path) MarshalJSON() ([]byte, error) {
	pairs := make([][2]int, len(path))
	for i, c := range path {
		pairs[i] = [2]int{c.Row, c.Col}
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON decodes a Path from a list of [row, col] pairs
func (path *Path) UnmarshalJSON(b []byte) error {
	var pairs [][]int
	if err := json.Unmarshal(b, &pairs); err != nil {
		return err
	}
	result := make(Path, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return fmt.Errorf("path element %d must be a [row, col] pair", i)
		}
		result[i] = Coord{pair[0], pair[1]}
	}
	*path = result
	return nil
}

// CheckPath returns true if the Path is non-empty, does not
// visit any coordinate twice, starts on the Grid and only moves
// between adjacent coordinates. It does not look at the word
// that the Path spells, so it can be used to check a partial
// Path while it is being built up one tile at a time.
func CheckPath(grid *Grid, path Path) bool {
	if len(path) == 0 {
		return false
	}
	seen := make(map[Coord]struct{}, len(path))
	for _, c := range path {
		if _, ok := seen[c]; ok {
			// The same tile is used twice
			return false
		}
		seen[c] = struct{}{}
	}
	if !grid.IsLegal(path[0]) {
		return false
	}
	// Neighbors only yields legal coordinates, so this checks
	// legality and adjacency in one go
	for i := 1; i < len(path); i++ {
		if !grid.IsAdjacent(path[i-1], path[i]) {
			return false
		}
	}
	return true
}

// ValidatePath checks a Path on the Grid and returns the word
// that it spells, and true, if the Path is well formed and the word
// is in the Dictionary. Otherwise, it returns an empty string and
// false. ValidatePath keeps no state between calls.
func ValidatePath(grid *Grid, path Path, dict *Dictionary) (string, bool) {
	if !CheckPath(grid, path) {
		return "", false
	}
	word := path.Word(grid)
	if !dict.Contains(word) {
		return "", false
	}
	return word, true
}

// PathScore returns the score for finding a word along
// the given Path: the square of the number of tiles in it
func PathScore(path Path) int {
	return len(path) * len(path)
}

// MaxScore returns the total score of a list of Paths, typically
// the result of MaxScorePaths(), i.e. the best possible score
// that can be achieved on a Grid
func MaxScore(paths []Path) int {
	total := 0
	for _, p := range paths {
		total += PathScore(p)
	}
	return total
}
