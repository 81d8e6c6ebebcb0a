// game.go
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file implements the Game class

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
	"strings"
)

// Move is a word found by a player, or a pass if Path is empty
type Move struct {
	Player int
	Path   Path
	Word   string
	Score  int
}

// IsPass returns true if the Move is a pass
func (move *Move) IsPass() bool {
	return len(move.Path) == 0
}

// String returns a string representation of a Move
func (move *Move) String() string {
	if move.IsPass() {
		return "(pass)"
	}
	return fmt.Sprintf("%v %v", move.Word, move.Path)
}

// Game is a container for an in-progress game between two
// players, taking turns to find words on a Grid. The player to
// move builds up a current Path one tile at a time and then
// submits it. Each word can only be found once.
type Game struct {
	PlayerNames [2]string
	Scores      [2]int
	Grid        *Grid
	Dict        *Dictionary
	MoveList    []Move
	// The Path being built by the player to move
	Path Path
	// Words found so far, mapped to the player who found them
	Found map[string]int
	// reference holds one Path for every word on the Grid
	reference []Path
}

// NewGame creates a Game on the given Grid, using the given
// Dictionary. All words available on the Grid are found up front.
func NewGame(grid *Grid, dict *Dictionary) (*Game, error) {
	reference, err := MaxScorePaths(grid, dict)
	if err != nil {
		return nil, err
	}
	return &Game{
		Grid:      grid,
		Dict:      dict,
		MoveList:  make([]Move, 0, 30),
		Found:     make(map[string]int),
		reference: reference,
	}, nil
}

// NewRandomGame creates a Game on a freshly rolled classic Grid
func NewRandomGame(rng *rand.Rand, dict *Dictionary) (*Game, error) {
	grid, err := RandomGrid(rng, ClassicDice, ClassicSize, ClassicSize)
	if err != nil {
		return nil, err
	}
	return NewGame(grid, dict)
}

// SetPlayerNames sets the names of the two players
func (game *Game) SetPlayerNames(player0, player1 string) {
	game.PlayerNames[0] = player0
	game.PlayerNames[1] = player1
}

// PlayerToMove returns 0 or 1 depending on which player's move it is
func (game *Game) PlayerToMove() int {
	return len(game.MoveList) % 2
}

// AddTile extends the current Path with a tile. If the extended
// Path would not be well formed, the Path is left unchanged and
// false is returned.
func (game *Game) AddTile(c Coord) bool {
	candidate := append(game.Path[:len(game.Path):len(game.Path)], c)
	if !CheckPath(game.Grid, candidate) {
		return false
	}
	game.Path = candidate
	return true
}

// CurrentWord returns the string spelled by the current Path
func (game *Game) CurrentWord() string {
	return game.Path.Word(game.Grid)
}

// Clear abandons the current Path
func (game *Game) Clear() {
	game.Path = nil
}

// Submit checks the current Path and, if it spells a word that
// has not already been found, credits the player to move with its
// score and passes the turn. The current Path is cleared in any case.
func (game *Game) Submit() (string, bool) {
	path := game.Path
	game.Clear()
	word, ok := ValidatePath(game.Grid, path, game.Dict)
	if !ok {
		return "", false
	}
	if _, found := game.Found[word]; found {
		// Each word only counts once
		return "", false
	}
	player := game.PlayerToMove()
	score := PathScore(path)
	game.Found[word] = player
	game.Scores[player] += score
	game.MoveList = append(game.MoveList, Move{
		Player: player,
		Path:   path,
		Word:   word,
		Score:  score,
	})
	return word, true
}

// PlayPath submits a complete Path on behalf of the player to move.
// A nil Path is a pass.
func (game *Game) PlayPath(path Path) bool {
	if len(path) == 0 {
		game.Pass()
		return true
	}
	game.Path = path
	_, ok := game.Submit()
	return ok
}

// Pass passes the turn to the other player
func (game *Game) Pass() {
	game.Clear()
	game.MoveList = append(game.MoveList, Move{Player: game.PlayerToMove()})
}

// Remaining returns a Path for each word on the Grid that
// has not yet been found, longest first
func (game *Game) Remaining() []Path {
	result := make([]Path, 0, len(game.reference))
	for _, p := range game.reference {
		if _, found := game.Found[p.Word(game.Grid)]; !found {
			result = append(result, p)
		}
	}
	return result
}

// MaxScore returns the total score available on the Grid
func (game *Game) MaxScore() int {
	return MaxScore(game.reference)
}

// IsOver returns true if all words have been found, or if
// both players have passed in succession
func (game *Game) IsOver() bool {
	if len(game.Found) == len(game.reference) {
		return true
	}
	n := len(game.MoveList)
	return n >= 2 && game.MoveList[n-1].IsPass() && game.MoveList[n-2].IsPass()
}

// String returns a string representation of a Game
func (game *Game) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v (%v : %v) %v\n",
		game.PlayerNames[0],
		game.Scores[0],
		game.Scores[1],
		game.PlayerNames[1],
	))
	sb.WriteString(game.Grid.String())
	sb.WriteString(fmt.Sprintf("Found %v of %v words\n", len(game.Found), len(game.reference)))
	// Show the move list, if present
	if len(game.MoveList) > 0 {
		sb.WriteString("Moves:\n")
		for i := range game.MoveList {
			m := &game.MoveList[i]
			if i%2 == 0 {
				// Left side player
				sb.WriteString(fmt.Sprintf("  %2d: (%v) %v", (i/2)+1, m.Score, m))
			} else {
				// Right side player
				sb.WriteString(fmt.Sprintf(" / %v (%v)\n", m, m.Score))
			}
		}
		if len(game.MoveList)%2 == 1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
