// grid.go
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file implements the Grid of letter tiles, together with
// its coordinates and the 8-directional adjacency between them

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
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrEmptyGrid is returned when a grid has no rows or no columns
	ErrEmptyGrid = errors.New("grid must have at least one row and one column")
	// ErrRaggedGrid is returned when the rows of a grid differ in width
	ErrRaggedGrid = errors.New("all grid rows must have the same number of tiles")
	// ErrEmptyTile is returned when a grid cell holds an empty string
	ErrEmptyTile = errors.New("grid tiles must not be empty")
)

// Coord is a (row, column) coordinate on a Grid
type Coord struct {
	Row int
	Col int
}

// String represents a Coord as "(row,col)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// directions are the eight unit offsets to adjacent squares.
// The order is fixed since it determines the order in which
// paths are discovered, and thereby tie-breaking downstream.
var directions = [8]Coord{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
	{1, 1},
	{-1, -1},
	{1, -1},
	{-1, 1},
}

// Grid is a rectangular matrix of tiles. Each tile holds a
// non-empty string, which may be longer than a single letter
// (such as "Qu"). A Grid is not modified after construction.
type Grid struct {
	tiles [][]string
	rows  int
	cols  int
}

// NewGrid creates a Grid from a list of rows, copying the input
func NewGrid(rows [][]string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	tiles := make([][]string, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d tiles, expected %d: %w",
				r, len(row), cols, ErrRaggedGrid)
		}
		for c, tile := range row {
			if tile == "" {
				return nil, fmt.Errorf("tile at %v: %w", Coord{r, c}, ErrEmptyTile)
			}
		}
		tiles[r] = append([]string(nil), row...)
	}
	return &Grid{tiles: tiles, rows: len(rows), cols: cols}, nil
}

// ParseGrid creates a Grid from a text representation having one
// row per line. Tiles within a row are separated by commas and/or
// whitespace. Blank lines are ignored.
func ParseGrid(text string) (*Grid, error) {
	isSeparator := func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}
	rows := make([][]string, 0, 4)
	for _, line := range strings.Split(text, "\n") {
		tiles := strings.FieldsFunc(line, isSeparator)
		if len(tiles) == 0 {
			continue
		}
		rows = append(rows, tiles)
	}
	return NewGrid(rows)
}

// Rows returns the number of rows in the Grid
func (grid *Grid) Rows() int {
	return grid.rows
}

// Cols returns the number of columns in the Grid
func (grid *Grid) Cols() int {
	return grid.cols
}

// Tile returns the content of the tile at the given coordinate,
// or an empty string if the coordinate is not on the Grid
func (grid *Grid) Tile(c Coord) string {
	if !grid.IsLegal(c) {
		return ""
	}
	return grid.tiles[c.Row][c.Col]
}

// Tiles returns a copy of the tile matrix
func (grid *Grid) Tiles() [][]string {
	result := make([][]string, grid.rows)
	for r, row := range grid.tiles {
		result[r] = append([]string(nil), row...)
	}
	return result
}

// IsLegal returns true if the coordinate is within the Grid
func (grid *Grid) IsLegal(c Coord) bool {
	return c.Row >= 0 && c.Row < grid.rows && c.Col >= 0 && c.Col < grid.cols
}

// Neighbors returns the legal coordinates adjacent to c,
// horizontally, vertically or diagonally, in a fixed order
func (grid *Grid) Neighbors(c Coord) []Coord {
	result := make([]Coord, 0, len(directions))
	for _, d := range directions {
		n := Coord{c.Row + d.Row, c.Col + d.Col}
		if grid.IsLegal(n) {
			result = append(result, n)
		}
	}
	return result
}

// IsAdjacent returns true if b is one of the Neighbors of a
func (grid *Grid) IsAdjacent(a, b Coord) bool {
	for _, n := range grid.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// Coords returns all coordinates of the Grid in row-major order
func (grid *Grid) Coords() []Coord {
	result := make([]Coord, 0, grid.rows*grid.cols)
	for r := 0; r < grid.rows; r++ {
		for c := 0; c < grid.cols; c++ {
			result = append(result, Coord{r, c})
		}
	}
	return result
}

// String represents a Grid as text, one row per line, in a
// format that ParseGrid accepts
func (grid *Grid) String() string {
	var sb strings.Builder
	for _, row := range grid.tiles {
		sb.WriteString(strings.Join(row, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
