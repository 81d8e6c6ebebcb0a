// main.go
// Copyright (C) 2026 Vilhjálmur Þorsteinsson

// Example main program for exercising the boggle module

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/vyevs/ansi"

	boggle "github.com/vthorsteinsson/GoBoggle"
)

// GameConstructor is a function that returns the type of Game we want
type GameConstructor func() (*boggle.Game, error)

// highlightBest returns the grid as text, with the tiles of the
// highest scoring move in color
func highlightBest(game *boggle.Game) string {
	var best boggle.Move
	for _, m := range game.MoveList {
		if m.Score > best.Score {
			best = m
		}
	}
	var b strings.Builder
	if !best.IsPass() {
		b.WriteString(ansi.FGColorName("green"))
		b.WriteString(best.Word)
		b.WriteString(ansi.Clear)
		b.WriteByte('\n')
	}
	for r := 0; r < game.Grid.Rows(); r++ {
		for c := 0; c < game.Grid.Cols(); c++ {
			coord := boggle.Coord{Row: r, Col: c}
			if best.Path.Contains(coord) {
				b.WriteString(ansi.FGColorName("green"))
			}
			b.WriteString(fmt.Sprintf("%-3s", game.Grid.Tile(coord)))
			b.WriteString(ansi.Clear)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Generate a sequence of moves and responses
func simulateGame(gameConstructor GameConstructor,
	robotA *boggle.RobotWrapper, robotB *boggle.RobotWrapper,
	verbose, show bool) (scoreA, scoreB, maxScore int, err error) {

	// Wrap fmt.Printf
	var p func(string, ...interface{}) (int, error)
	if verbose {
		p = fmt.Printf
	} else {
		p = func(format string, a ...interface{}) (int, error) { return 0, nil }
	}
	game, err := gameConstructor()
	if err != nil {
		return 0, 0, 0, err
	}
	game.SetPlayerNames("Robot A", "Robot B")
	p("%v\n", game)
	for i := 0; ; i++ {
		var path boggle.Path
		// Ask robotA or robotB to pick a path
		if i%2 == 0 {
			path = robotA.GenerateMove(game)
		} else {
			path = robotB.GenerateMove(game)
		}
		game.PlayPath(path)
		if game.IsOver() {
			p("%v\n", game)
			if show {
				fmt.Print(highlightBest(game))
			}
			p("Game over!\n\n")
			break
		}
	}
	return game.Scores[0], game.Scores[1], game.MaxScore(), nil
}

func main() {
	dictFile := flag.String("d", "words.txt", "Word list file, one word per line")
	boardFile := flag.String("b", "", "Board file (random boards if not given)")
	num := flag.Int("n", 10, "Number of games to simulate")
	quiet := flag.Bool("q", false, "Suppress output of game state and moves")
	seed := flag.Int64("seed", 0, "Random seed (0 for time-based)")
	show := flag.Bool("show", false, "Show the best word of each game on the board")
	flag.Parse()

	dict, err := boggle.LoadDictionaryFile(*dictFile)
	if err != nil {
		fmt.Printf("Unable to load dictionary: %v\n", err)
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	// Modify the following depending on the type of Game wanted
	gameConstructor := func() (*boggle.Game, error) {
		return boggle.NewRandomGame(rng, dict)
	}
	if *boardFile != "" {
		text, err := os.ReadFile(*boardFile)
		if err != nil {
			fmt.Printf("Unable to read board: %v\n", err)
			os.Exit(1)
		}
		grid, err := boggle.ParseGrid(string(text))
		if err != nil {
			fmt.Printf("Invalid board: %v\n", err)
			os.Exit(1)
		}
		gameConstructor = func() (*boggle.Game, error) {
			return boggle.NewGame(grid, dict)
		}
	}

	robotA := boggle.NewHighScoreRobot()
	robotB := boggle.NewRandomRobot(rng, 0.1) // Picks a random word, sometimes passes
	var winsA, winsB, sumMax int
	for i := 0; i < *num; i++ {
		scoreA, scoreB, maxScore, err := simulateGame(gameConstructor, robotA, robotB, !*quiet, *show)
		if err != nil {
			fmt.Printf("Unable to start game: %v\n", err)
			os.Exit(1)
		}
		sumMax += maxScore
		if scoreA > scoreB {
			winsA++
		} else {
			if scoreB > scoreA {
				winsB++
			}
		}
	}
	fmt.Printf("%v games were played using %v words from '%v'.\n"+
		"Robot A won %v games, and Robot B won %v games; %v games were draws.\n"+
		"The average maximum score per board was %.1f.\n",
		*num, dict.Len(), *dictFile,
		winsA, winsB, *num-winsA-winsB,
		float64(sumMax)/float64(max(*num, 1)))
}
