// dice.go
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file contains the Dice logic, used to roll random Grids

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
	"fmt"
	"math/rand"
)

// Die is a list of the tile contents on its faces
type Die []string

// DiceSet is a static list of dice, used as a prototype
// for rolling new Grids
type DiceSet []Die

// ClassicDice are the sixteen dice of the classic 4x4 game.
// Note the single "QU" face.
var ClassicDice = DiceSet{
	{"A", "E", "A", "N", "E", "G"},
	{"A", "H", "S", "P", "C", "O"},
	{"A", "S", "P", "F", "F", "K"},
	{"O", "B", "J", "O", "A", "B"},
	{"I", "O", "T", "M", "U", "C"},
	{"R", "Y", "V", "D", "E", "L"},
	{"L", "R", "E", "I", "X", "D"},
	{"E", "I", "U", "N", "E", "S"},
	{"W", "N", "G", "E", "E", "H"},
	{"L", "N", "H", "N", "R", "Z"},
	{"T", "S", "T", "I", "Y", "D"},
	{"O", "W", "T", "O", "A", "T"},
	{"E", "R", "T", "T", "Y", "L"},
	{"T", "O", "E", "S", "S", "I"},
	{"T", "E", "R", "W", "H", "V"},
	{"N", "U", "I", "H", "M", "QU"},
}

// ClassicSize is the number of rows and columns of the classic board
const ClassicSize = 4

// RandomGrid shakes the dice into a Grid of the given dimensions:
// the dice are shuffled into the cells and each one shows a random
// face. If the Grid has more cells than there are dice, the dice
// are reused in turn. A nil rng uses the default random source.
func RandomGrid(rng *rand.Rand, dice DiceSet, rows, cols int) (*Grid, error) {
	if len(dice) == 0 {
		return nil, fmt.Errorf("cannot roll a grid without dice")
	}
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	intn := rand.Intn
	shuffle := rand.Shuffle
	if rng != nil {
		intn = rng.Intn
		shuffle = rng.Shuffle
	}
	// Pick a die for each cell
	numCells := rows * cols
	cup := make([]Die, numCells)
	for i := range cup {
		cup[i] = dice[i%len(dice)]
	}
	shuffle(numCells, func(i, j int) {
		cup[i], cup[j] = cup[j], cup[i]
	})
	// Roll each die
	tiles := make([][]string, rows)
	for r := range tiles {
		tiles[r] = make([]string, cols)
		for c := range tiles[r] {
			die := cup[r*cols+c]
			if len(die) == 0 {
				return nil, fmt.Errorf("die #%d has no faces", (r*cols+c)%len(dice))
			}
			tiles[r][c] = die[intn(len(die))]
		}
	}
	return NewGrid(tiles)
}
