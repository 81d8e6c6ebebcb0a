// robot.go
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file implements a word-finding robot player,
// and is a part of the Go 'boggle' package.

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

import "math/rand"

// Robot is an interface for automatic players that implement
// a playing strategy to pick a path given a list of paths
// spelling words that have not yet been found. Returning
// nil means a pass.
type Robot interface {
	PickPath(game *Game, paths []Path) Path
}

// RobotWrapper wraps a Robot implementation
type RobotWrapper struct {
	Robot
}

// GenerateMove finds the remaining words in the game, then
// asks the wrapped robot to pick one of them to play
func (rw *RobotWrapper) GenerateMove(game *Game) Path {
	return rw.PickPath(game, game.Remaining())
}

// HighScoreRobot implements a simple strategy: it always picks
// the highest-scoring path available, or passes if none is left
type HighScoreRobot struct {
}

// PickPath for a HighScoreRobot picks the path with the most
// tiles. The paths are already ordered that way.
func (robot *HighScoreRobot) PickPath(game *Game, paths []Path) Path {
	if len(paths) == 0 {
		return nil
	}
	return paths[0]
}

// NewHighScoreRobot returns a fresh instance of a HighScoreRobot
func NewHighScoreRobot() *RobotWrapper {
	return &RobotWrapper{&HighScoreRobot{}}
}

// RandomRobot picks any of the available paths at random,
// and occasionally passes, missing words like a human would
type RandomRobot struct {
	rng *rand.Rand
	// PassChance is the probability of passing, between 0 and 1
	PassChance float64
}

// PickPath for a RandomRobot picks a random path, or nil
func (robot *RandomRobot) PickPath(game *Game, paths []Path) Path {
	if len(paths) == 0 || robot.rng.Float64() < robot.PassChance {
		return nil
	}
	return paths[robot.rng.Intn(len(paths))]
}

// NewRandomRobot returns a RandomRobot drawing from the given
// random source, passing with the given probability
func NewRandomRobot(rng *rand.Rand, passChance float64) *RobotWrapper {
	return &RobotWrapper{&RandomRobot{rng: rng, PassChance: passChance}}
}
