// puzzle.go
//
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the puzzle generation logic: rolling
// random boards and picking one that is rich in words.

package boggle

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// GenerationParams holds the parameters for puzzle generation.
type GenerationParams struct {
	Dict          *Dictionary // The dictionary of valid words
	Dice          DiceSet     // The dice to roll; ClassicDice if nil
	Rows          int
	Cols          int
	TimeLimit     time.Duration
	NumWorkers    int
	NumCandidates int   // Number of candidates to generate
	Seed          int64 // Random seed; 0 for a time-based seed
}

// HeuristicConfig defines the parameters for what constitutes a "good" puzzle.
type HeuristicConfig struct {
	MinWords       int     // Minimum number of distinct words on the board
	MaxWords       int     // Maximum number of distinct words, or 0 for no limit
	MinLongestWord int     // Minimum length, in characters, of the longest word
	MinMaxScore    int     // Minimum total score available
	LongWordBonus  float64 // Bonus factor for the length of the longest word
}

// DefaultHeuristics provides a baseline configuration.
var DefaultHeuristics = HeuristicConfig{
	MinWords:       30,
	MaxWords:       0,
	MinLongestWord: 6,
	MinMaxScore:    150,
	LongWordBonus:  5.0,
}

// Puzzle is the final structure returned by the API.
type Puzzle struct {
	Board    [][]string `json:"board"`
	Words    []string   `json:"words"`
	Paths    []Path     `json:"paths"`
	Longest  string     `json:"longest"`
	MaxScore int        `json:"maxScore"`
}

// PuzzleCandidate holds a potential puzzle and its evaluated rank.
type PuzzleCandidate struct {
	Puzzle *Puzzle
	Score  float64
}

// Stats are updated concurrently by the workers, using atomic operations
type Stats struct {
	Candidates int64 `json:"candidates"` // Number of candidates generated
	// The following are rejection statistics
	ContextCancelled int64 `json:"contextCancelled"` // Context was cancelled before a puzzle could be generated
	TooFewWords      int64 `json:"tooFewWords"`      // Unacceptable number of words on the board
	TooManyWords     int64 `json:"tooManyWords"`     // Unacceptable number of words on the board
	TooShortWord     int64 `json:"tooShortWord"`     // Longest word too short
	TooLowMaxScore   int64 `json:"tooLowMaxScore"`   // Total available score too low
}

// generateCandidate rolls a single board and evaluates it.
// Returns nil, nil if the board is rejected by the heuristics.
func generateCandidate(
	ctx context.Context,
	rng *rand.Rand,
	params GenerationParams,
	heuristics HeuristicConfig,
	stats *Stats,
) (*PuzzleCandidate, error) {
	select {
	case <-ctx.Done():
		atomic.AddInt64(&stats.ContextCancelled, 1)
		return nil, ctx.Err()
	default:
	}

	grid, err := RandomGrid(rng, params.Dice, params.Rows, params.Cols)
	if err != nil {
		return nil, err
	}
	paths, err := MaxScorePathsContext(ctx, grid, params.Dict)
	if err != nil {
		if ctx.Err() != nil {
			atomic.AddInt64(&stats.ContextCancelled, 1)
		}
		return nil, err
	}

	numWords := len(paths)
	if numWords < heuristics.MinWords {
		atomic.AddInt64(&stats.TooFewWords, 1)
		return nil, nil
	}
	if heuristics.MaxWords > 0 && numWords > heuristics.MaxWords {
		atomic.AddInt64(&stats.TooManyWords, 1)
		return nil, nil
	}

	words := Words(grid, paths)
	longest, longestLen := Longest(words)
	if longestLen < heuristics.MinLongestWord {
		atomic.AddInt64(&stats.TooShortWord, 1)
		return nil, nil
	}

	maxScore := MaxScore(paths)
	if maxScore < heuristics.MinMaxScore {
		atomic.AddInt64(&stats.TooLowMaxScore, 1)
		return nil, nil
	}

	puzzle := &Puzzle{
		Board:    grid.Tiles(),
		Words:    words,
		Paths:    paths,
		Longest:  longest,
		MaxScore: maxScore,
	}

	// Calculate the final ranking score for this candidate.
	rankScore := float64(maxScore)
	rankScore += float64(longestLen) * heuristics.LongWordBonus

	return &PuzzleCandidate{
		Puzzle: puzzle,
		Score:  rankScore,
	}, nil
}

// GeneratePuzzle orchestrates the generation and selection of the best puzzle.
// Generation stops at the time limit, or when ctx is done, whichever
// comes first. If ctx is done before any candidate is accepted,
// its error is returned.
func GeneratePuzzle(ctx context.Context, params GenerationParams, heuristics HeuristicConfig) (*Puzzle, *Stats, error) {
	if params.Dict == nil {
		return nil, nil, ErrEmptyDictionary
	}
	if params.Dice == nil {
		params.Dice = ClassicDice
	}
	if params.Rows == 0 && params.Cols == 0 {
		params.Rows, params.Cols = ClassicSize, ClassicSize
	}
	numWorkers := max(params.NumWorkers, 1)
	params.NumCandidates = max(params.NumCandidates, 1)
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	wctx, cancel := context.WithTimeout(ctx, params.TimeLimit)
	defer cancel()

	var wg sync.WaitGroup
	candidateChan := make(chan *PuzzleCandidate, 100)

	stats := &Stats{}
	// The first hard error, such as an empty dictionary, is kept here
	var firstErr error
	var errOnce sync.Once

	// Spawn a configurable number of workers.
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		// Each worker has its own random source, since
		// a rand.Rand is not safe for concurrent use
		rng := rand.New(rand.NewSource(seed + int64(i)))
		go func() {
			defer wg.Done()
			for atomic.LoadInt64(&stats.Candidates) < int64(params.NumCandidates) {
				candidate, err := generateCandidate(wctx, rng, params, heuristics, stats)
				if err != nil {
					if wctx.Err() == nil {
						errOnce.Do(func() { firstErr = err })
						cancel()
					}
					return
				}
				if candidate != nil {
					candidateChan <- candidate
					atomic.AddInt64(&stats.Candidates, 1)
				}
			}
		}()
	}

	// This goroutine will wait for all workers to finish and then close the channel.
	go func() {
		wg.Wait()
		close(candidateChan)
	}()

	// Collect and rank candidates as they come in.
	var bestCandidates []*PuzzleCandidate
	for candidate := range candidateChan {
		bestCandidates = append(bestCandidates, candidate)
	}

	if firstErr != nil {
		return nil, stats, firstErr
	}
	if len(bestCandidates) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, fmt.Errorf("could not generate a suitable puzzle in the allotted time")
	}

	// Sort by our final rank score.
	sort.SliceStable(bestCandidates, func(i, j int) bool {
		return bestCandidates[i].Score > bestCandidates[j].Score
	})

	// Return the best scoring puzzle.
	return bestCandidates[0].Puzzle, stats, nil
}
