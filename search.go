// search.go
//
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the backtracking search for paths
// across the Grid that spell words from the Dictionary.

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
	"context"
	"runtime"
	"sort"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// SearchMode is a strategy that controls how a search measures
// the size of a path against its budget
type SearchMode interface {
	// Increment returns the amount that a tile with the given
	// content adds to the size of a path
	Increment(tile string) int
	// KeepUndersized returns true if complete words that are found
	// before the budget is used up should also be returned
	KeepUndersized() bool
	// PrefixCap returns the length cap of the PrefixSet that
	// can prune a search with the given budget
	PrefixCap(budget int) int
}

// tileCountMode measures paths by their number of tiles
type tileCountMode struct{}

func (tileCountMode) Increment(string) int { return 1 }
func (tileCountMode) KeepUndersized() bool { return false }

// A path of n tiles can spell a word of any length
func (tileCountMode) PrefixCap(int) int { return Unbounded }

// wordLengthMode measures paths by the number of characters
// that they spell, so that a "Qu" tile counts as two
type wordLengthMode struct {
	keepUndersized bool
}

func (wordLengthMode) Increment(tile string) int { return utf8.RuneCountInString(tile) }
func (m wordLengthMode) KeepUndersized() bool    { return m.keepUndersized }
func (wordLengthMode) PrefixCap(budget int) int  { return budget }

var (
	// TileCountMode counts the tiles visited by a path
	TileCountMode SearchMode = tileCountMode{}
	// WordLengthMode counts the characters spelled by a path
	WordLengthMode SearchMode = wordLengthMode{}
	// AllWordsMode counts characters but also returns every
	// complete word found along the way, of any length
	// up to the budget
	AllWordsMode SearchMode = wordLengthMode{keepUndersized: true}
)

// finder holds the read-only inputs of a single search
type finder struct {
	grid     *Grid
	dict     *Dictionary
	prefixes PrefixSet
	mode     SearchMode
	// done is closed when the search is abandoned
	done <-chan struct{}
}

// findPaths extends the path so far with the start coordinate and
// returns all matching paths that begin that way. The budget is
// the size that remains to be filled, in the units of the mode.
func (f *finder) findPaths(budget int, start Coord, soFar Path, word string) []Path {
	select {
	case <-f.done:
		// The caller will discard the result
		return nil
	default:
	}
	// The full slice expression forces append to copy, so that
	// each branch owns its path and siblings never share a backing array
	path := append(soFar[:len(soFar):len(soFar)], start)
	tile := f.grid.Tile(start)
	word += tile
	increment := f.mode.Increment(tile)
	if increment == budget {
		// This tile completes the size: it is a match or nothing
		if f.dict.Contains(word) {
			return []Path{path}
		}
		return nil
	}
	if increment > budget {
		// The tile does not fit into what remains of the budget
		return nil
	}
	if !f.prefixes.Contains(word) {
		// No word in the dictionary starts this way
		return nil
	}
	var result []Path
	if f.mode.KeepUndersized() && f.dict.Contains(word) {
		result = append(result, path)
	}
	for _, next := range f.grid.Neighbors(start) {
		if path.Contains(next) {
			continue
		}
		result = append(result, f.findPaths(budget-increment, next, path, word)...)
	}
	return result
}

// Search runs a backtracking search from every coordinate of the
// Grid, measuring paths with the given mode, and returns the paths
// that spell Dictionary words within the budget. The result is in
// row-major order of the starting coordinates, and in the fixed
// order of Neighbors below each of them. The starting coordinates
// are searched in parallel since their subtrees are independent.
// If the context is cancelled before the search completes, its
// error is returned.
func Search(ctx context.Context, budget int, grid *Grid, dict *Dictionary, mode SearchMode) ([]Path, error) {
	if budget <= 0 {
		// No word has zero length
		return nil, nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	f := &finder{
		grid:     grid,
		dict:     dict,
		prefixes: dict.Prefixes(mode.PrefixCap(budget)),
		mode:     mode,
		done:     gctx.Done(),
	}
	coords := grid.Coords()
	found := make([][]Path, len(coords))
	for i, c := range coords {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found[i] = f.findPaths(budget, c, nil, "")
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var result []Path
	for _, paths := range found {
		result = append(result, paths...)
	}
	return result, nil
}

// FindLengthNPaths returns all paths of exactly n tiles that
// spell a word in the Dictionary
func FindLengthNPaths(n int, grid *Grid, dict *Dictionary) []Path {
	// The background context is never cancelled
	paths, _ := Search(context.Background(), n, grid, dict, TileCountMode)
	return paths
}

// FindLengthNWords returns all paths that spell a word of exactly
// n characters in the Dictionary. Tiles holding more than one
// character count accordingly.
func FindLengthNWords(n int, grid *Grid, dict *Dictionary) []Path {
	paths, _ := Search(context.Background(), n, grid, dict, WordLengthMode)
	return paths
}

// BestPathPerWord returns one path for each distinct word spelled
// by the given paths: the one with the most tiles, and among those,
// the one that comes first. The result is ordered by descending
// number of tiles. The input is not modified.
func BestPathPerWord(grid *Grid, paths []Path) []Path {
	sorted := append([]Path(nil), paths...)
	// A stable sort keeps discovery order among paths of equal length
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	seen := make(map[string]struct{}, len(sorted))
	result := make([]Path, 0, len(sorted))
	for _, p := range sorted {
		word := p.Word(grid)
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		result = append(result, p)
	}
	return result
}

// MaxScorePaths returns one path for each distinct Dictionary word
// that can be spelled on the Grid. Where a word can be spelled in
// more than one way, the path with the most tiles is returned, and
// among those, the one that was discovered first. The paths are
// ordered by descending number of tiles.
// Returns ErrEmptyDictionary if the Dictionary has no words.
func MaxScorePaths(grid *Grid, dict *Dictionary) ([]Path, error) {
	return MaxScorePathsContext(context.Background(), grid, dict)
}

// MaxScorePathsContext is MaxScorePaths with cancellation
func MaxScorePathsContext(ctx context.Context, grid *Grid, dict *Dictionary) ([]Path, error) {
	maxLen, err := dict.Longest()
	if err != nil {
		return nil, err
	}
	paths, err := Search(ctx, maxLen, grid, dict, AllWordsMode)
	if err != nil {
		return nil, err
	}
	return BestPathPerWord(grid, paths), nil
}
