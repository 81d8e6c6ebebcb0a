// boggle_test.go
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file contains tests for the grid, dictionary and search
// functions of the boggle package

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
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"
	"unicode/utf8"
)

// mustGrid creates a Grid or fails the test
func mustGrid(t testing.TB, rows [][]string) *Grid {
	t.Helper()
	grid, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid(%v) failed: %v", rows, err)
	}
	return grid
}

// antGrid is the 2x2 grid
//
//	A T
//	N E
func antGrid(t testing.TB) *Grid {
	return mustGrid(t, [][]string{{"A", "T"}, {"N", "E"}})
}

func wordSet(grid *Grid, paths []Path) []string {
	words := Words(grid, paths)
	sort.Strings(words)
	return words
}

func TestNewGrid(t *testing.T) {
	cases := []struct {
		rows [][]string
		err  error
	}{
		{nil, ErrEmptyGrid},
		{[][]string{{}}, ErrEmptyGrid},
		{[][]string{{"A", "B"}, {"C"}}, ErrRaggedGrid},
		{[][]string{{"A", ""}}, ErrEmptyTile},
		{[][]string{{"A"}}, nil},
		{[][]string{{"A", "B", "C"}}, nil},
		{[][]string{{"A"}, {"B"}}, nil},
	}
	for _, c := range cases {
		_, err := NewGrid(c.rows)
		if !errors.Is(err, c.err) {
			t.Errorf("NewGrid(%v) returned error %v, expected %v", c.rows, err, c.err)
		}
	}
	// The grid must not be affected by later changes to its input
	rows := [][]string{{"A", "B"}}
	grid := mustGrid(t, rows)
	rows[0][0] = "X"
	if grid.Tile(Coord{0, 0}) != "A" {
		t.Errorf("Grid shares storage with its input")
	}
}

func TestParseGrid(t *testing.T) {
	grid, err := ParseGrid("A,B, Qu\n\nC D E\n")
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if grid.Rows() != 2 || grid.Cols() != 3 {
		t.Errorf("ParseGrid returned a %vx%v grid, expected 2x3", grid.Rows(), grid.Cols())
	}
	if grid.Tile(Coord{0, 2}) != "Qu" {
		t.Errorf("Tile (0,2) is '%v', expected 'Qu'", grid.Tile(Coord{0, 2}))
	}
	if s := grid.String(); s != "A B Qu\nC D E\n" {
		t.Errorf("String() returned %q", s)
	}
	if _, err := ParseGrid("A B\nC\n"); !errors.Is(err, ErrRaggedGrid) {
		t.Errorf("ParseGrid accepted a ragged grid")
	}
}

func TestNeighbors(t *testing.T) {
	grid := mustGrid(t, [][]string{
		{"A", "B", "C"},
		{"D", "E", "F"},
		{"G", "H", "I"},
	})
	cases := []struct {
		c        Coord
		expected []Coord
	}{
		{Coord{0, 0}, []Coord{{0, 1}, {1, 0}, {1, 1}}},
		{Coord{1, 1}, []Coord{{1, 2}, {2, 1}, {1, 0}, {0, 1}, {2, 2}, {0, 0}, {2, 0}, {0, 2}}},
		{Coord{2, 2}, []Coord{{2, 1}, {1, 2}, {1, 1}}},
		{Coord{0, 1}, []Coord{{0, 2}, {1, 1}, {0, 0}, {1, 2}, {1, 0}}},
	}
	for _, c := range cases {
		if n := grid.Neighbors(c.c); !reflect.DeepEqual(n, c.expected) {
			t.Errorf("Neighbors(%v) returned %v, expected %v", c.c, n, c.expected)
		}
	}
	single := mustGrid(t, [][]string{{"A"}})
	if n := single.Neighbors(Coord{0, 0}); len(n) != 0 {
		t.Errorf("A 1x1 grid should have no neighbors, got %v", n)
	}
	if !grid.IsLegal(Coord{2, 2}) || grid.IsLegal(Coord{3, 0}) || grid.IsLegal(Coord{0, -1}) {
		t.Errorf("IsLegal() returns incorrect results")
	}
	if grid.Tile(Coord{5, 5}) != "" {
		t.Errorf("Tile() of an illegal coordinate should be empty")
	}
}

func TestDictionary(t *testing.T) {
	dict, err := LoadDictionary(strings.NewReader("  ANT\n\nTEN\r\nATE \nQuIT\n"))
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	if dict.Len() != 4 {
		t.Errorf("Dictionary has %v words, expected 4", dict.Len())
	}
	for _, w := range []string{"ANT", "TEN", "ATE", "QuIT"} {
		if !dict.Contains(w) {
			t.Errorf("Did not find word '%v' that should be in the dictionary", w)
		}
	}
	for _, w := range []string{"", "ant", "AN", "QUIT"} {
		if dict.Contains(w) {
			t.Errorf("Found word '%v' that should not be in the dictionary", w)
		}
	}
	if n, err := dict.Longest(); err != nil || n != 4 {
		t.Errorf("Longest() returned %v, %v, expected 4", n, err)
	}
	if _, err := NewDictionary(nil).Longest(); !errors.Is(err, ErrEmptyDictionary) {
		t.Errorf("Longest() of an empty dictionary should fail")
	}
}

func TestPrefixSet(t *testing.T) {
	dict := NewDictionary([]string{"QuIT", "AB", "ÁÐ"})
	ps := BuildPrefixSet(dict, Unbounded)
	for _, p := range []string{"", "Q", "Qu", "QuI", "QuIT", "A", "AB", "Á", "ÁÐ"} {
		if !ps.Contains(p) {
			t.Errorf("Prefix '%v' missing from unbounded prefix set", p)
		}
	}
	for _, p := range []string{"u", "QuITE", "B"} {
		if ps.Contains(p) {
			t.Errorf("'%v' should not be in the prefix set", p)
		}
	}
	// The prefix set is built on rune boundaries
	for p := range ps {
		if !utf8.ValidString(p) {
			t.Errorf("Prefix %q is not a valid UTF-8 string", p)
		}
	}
	capped := BuildPrefixSet(dict, 2)
	if !capped.Contains("AB") || !capped.Contains("ÁÐ") || !capped.Contains("") {
		t.Errorf("Capped prefix set is missing short words")
	}
	if capped.Contains("Q") {
		t.Errorf("Capped prefix set contains a prefix of a word that is too long")
	}
	// Prefix sets are cached per length cap
	a, b := dict.Prefixes(2), dict.Prefixes(2)
	if reflect.ValueOf(a).Pointer() != reflect.ValueOf(b).Pointer() {
		t.Errorf("Prefixes() did not return the cached set")
	}
	// Caps at or above the longest word share the unbounded set
	c, d := dict.Prefixes(Unbounded), dict.Prefixes(10)
	if reflect.ValueOf(c).Pointer() != reflect.ValueOf(d).Pointer() {
		t.Errorf("Prefixes() built separate sets for equivalent caps")
	}
	if len(c) != len(ps) {
		t.Errorf("Cached unbounded prefix set differs from a fresh one")
	}
}

func TestValidatePath(t *testing.T) {
	grid := antGrid(t)
	dict := NewDictionary([]string{"ANT", "TEN", "ATE", "ATA", "A", "AE"})
	cases := []struct {
		path  Path
		word  string
		valid bool
	}{
		{Path{{0, 0}, {1, 0}, {0, 1}}, "ANT", true},
		{Path{{0, 1}, {1, 1}, {1, 0}}, "TEN", true},
		{Path{{0, 0}}, "A", true},
		{Path{{0, 0}, {1, 1}}, "AE", true},
		// Empty
		{Path{}, "", false},
		{nil, "", false},
		// Repeated tile, even though ATA is in the dictionary
		{Path{{0, 0}, {0, 1}, {0, 0}}, "", false},
		// Off the grid, first and later
		{Path{{2, 0}}, "", false},
		{Path{{-1, 0}, {0, 0}}, "", false},
		{Path{{0, 0}, {0, 2}}, "", false},
		// Well formed, but not a word
		{Path{{0, 0}, {0, 1}}, "", false},
	}
	for _, c := range cases {
		word, valid := ValidatePath(grid, c.path, dict)
		if word != c.word || valid != c.valid {
			t.Errorf("ValidatePath(%v) returned '%v', %v; expected '%v', %v",
				c.path, word, valid, c.word, c.valid)
		}
	}
	// Adjacency is checked between consecutive tiles
	row := mustGrid(t, [][]string{{"A", "B", "C"}})
	if _, valid := ValidatePath(row, Path{{0, 0}, {0, 2}}, NewDictionary([]string{"AC"})); valid {
		t.Errorf("ValidatePath accepted a jump between non-adjacent tiles")
	}
	// A partial path is well formed even if it is not a word yet
	if !CheckPath(grid, Path{{0, 0}, {1, 0}}) {
		t.Errorf("CheckPath rejected a well formed partial path")
	}
}

func TestPathJSON(t *testing.T) {
	path := Path{{0, 0}, {1, 1}, {2, 1}}
	b, err := json.Marshal(path)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != "[[0,0],[1,1],[2,1]]" {
		t.Errorf("Marshal returned %s", b)
	}
	var decoded Path
	if err := json.Unmarshal([]byte("[[0,0],[1,1],[2,1]]"), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, path) {
		t.Errorf("Unmarshal returned %v, expected %v", decoded, path)
	}
	if err := json.Unmarshal([]byte("[[0,0,1]]"), &decoded); err == nil {
		t.Errorf("Unmarshal accepted a triple as a coordinate")
	}
	if s := path.String(); s != "(0,0)-(1,1)-(2,1)" {
		t.Errorf("String() returned %v", s)
	}
}

func TestZeroBudget(t *testing.T) {
	grid := antGrid(t)
	dict := NewDictionary([]string{"ANT", "TEN", "ATE", "A"})
	if paths := FindLengthNPaths(0, grid, dict); len(paths) != 0 {
		t.Errorf("FindLengthNPaths(0) returned %v", paths)
	}
	if paths := FindLengthNWords(0, grid, dict); len(paths) != 0 {
		t.Errorf("FindLengthNWords(0) returned %v", paths)
	}
}

func TestFindLengthNWords(t *testing.T) {
	grid := antGrid(t)
	dict := NewDictionary([]string{"ANT", "TEN", "ATE"})
	paths := FindLengthNWords(3, grid, dict)
	// Row-major start order, fixed neighbor order
	expected := []Path{
		{{0, 0}, {0, 1}, {1, 1}}, // ATE
		{{0, 0}, {1, 0}, {0, 1}}, // ANT
		{{0, 1}, {1, 1}, {1, 0}}, // TEN
	}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("FindLengthNWords(3) returned %v, expected %v", paths, expected)
	}
	if words := wordSet(grid, paths); !reflect.DeepEqual(words, []string{"ANT", "ATE", "TEN"}) {
		t.Errorf("FindLengthNWords(3) found %v", words)
	}
	for _, p := range paths {
		if len(p) != 3 || !CheckPath(grid, p) {
			t.Errorf("Path %v is not a well formed 3-tile path", p)
		}
	}
	// Single-letter tiles: tile count and word length coincide
	if tiles := FindLengthNPaths(3, grid, dict); !reflect.DeepEqual(tiles, expected) {
		t.Errorf("FindLengthNPaths(3) returned %v, expected %v", tiles, expected)
	}
	// The search is deterministic
	if again := FindLengthNWords(3, grid, dict); !reflect.DeepEqual(again, paths) {
		t.Errorf("A repeated search returned %v", again)
	}
}

func TestFindLengthNPaths(t *testing.T) {
	grid := mustGrid(t, [][]string{{"A", "B"}})
	paths := FindLengthNPaths(2, grid, NewDictionary([]string{"AB"}))
	if !reflect.DeepEqual(paths, []Path{{{0, 0}, {0, 1}}}) {
		t.Errorf("FindLengthNPaths(2) returned %v", paths)
	}
	if paths := FindLengthNPaths(2, grid, NewDictionary([]string{"XY"})); len(paths) != 0 {
		t.Errorf("FindLengthNPaths(2) found %v with no matching words", paths)
	}
	single := mustGrid(t, [][]string{{"A"}})
	if paths := FindLengthNPaths(1, single, NewDictionary([]string{"A"})); len(paths) != 1 {
		t.Errorf("FindLengthNPaths(1) on a 1x1 grid returned %v", paths)
	}
	if paths := FindLengthNPaths(2, single, NewDictionary([]string{"AA"})); len(paths) != 0 {
		t.Errorf("A tile was used twice: %v", paths)
	}
}

func TestMultiCharacterTiles(t *testing.T) {
	grid := mustGrid(t, [][]string{{"Qu", "I"}, {"T", "E"}})
	dict := NewDictionary([]string{"QuIT"})
	paths := FindLengthNWords(4, grid, dict)
	if !reflect.DeepEqual(paths, []Path{{{0, 0}, {0, 1}, {1, 0}}}) {
		t.Errorf("FindLengthNWords(4) returned %v", paths)
	}
	if paths := FindLengthNPaths(4, grid, dict); len(paths) != 0 {
		t.Errorf("FindLengthNPaths(4) returned %v, expected nothing", paths)
	}
	if paths := FindLengthNPaths(3, grid, dict); len(paths) != 1 {
		t.Errorf("FindLengthNPaths(3) returned %v, expected one path", paths)
	}
	// A tile that is too long for the remaining budget
	if paths := FindLengthNWords(1, grid, NewDictionary([]string{"Q"})); len(paths) != 0 {
		t.Errorf("FindLengthNWords(1) split a tile: %v", paths)
	}
}

// classicGrid is a fixed board rolled from the classic dice
func classicGrid(t testing.TB) *Grid {
	return mustGrid(t, [][]string{
		{"S", "T", "A", "R"},
		{"E", "N", "I", "L"},
		{"T", "O", "QU", "E"},
		{"R", "A", "D", "S"},
	})
}

var classicWords = []string{
	"STAR", "STARE", "TAR", "TARS", "NET", "NETS", "TEN", "TENS",
	"SENT", "LINT", "TIN", "TINE", "TINS", "SNOT", "NOT", "TON",
	"TONE", "TONER", "QUIT", "QUILT", "QUIET", "QUIETS", "QUOTA", "ROAD",
	"ROADS", "TOAD", "TOADS", "DOTE", "RAD", "ADS", "NOTE", "ANT", "QUA",
	"ZEBRA", "XYLOPHONE", "STAIR", "AIR", "RAIL", "RAILS", "LIAR",
}

func TestRoundTrip(t *testing.T) {
	grid := classicGrid(t)
	dict := NewDictionary(classicWords)
	for n := 1; n <= 9; n++ {
		for _, p := range FindLengthNWords(n, grid, dict) {
			word, ok := ValidatePath(grid, p, dict)
			if !ok {
				t.Errorf("FindLengthNWords(%v) returned invalid path %v", n, p)
			}
			if utf8.RuneCountInString(word) != n {
				t.Errorf("FindLengthNWords(%v) returned '%v'", n, word)
			}
		}
		for _, p := range FindLengthNPaths(n, grid, dict) {
			if len(p) != n {
				t.Errorf("FindLengthNPaths(%v) returned a %v-tile path", n, len(p))
			}
			if _, ok := ValidatePath(grid, p, dict); !ok {
				t.Errorf("FindLengthNPaths(%v) returned invalid path %v", n, p)
			}
		}
	}
}

func TestMaxScorePaths(t *testing.T) {
	grid := antGrid(t)
	if _, err := MaxScorePaths(grid, NewDictionary(nil)); !errors.Is(err, ErrEmptyDictionary) {
		t.Errorf("MaxScorePaths with an empty dictionary returned %v", err)
	}
	dict := NewDictionary([]string{"ANT", "TEN", "ATE", "NET", "AT", "A", "CAT", "ANTE"})
	paths, err := MaxScorePaths(grid, dict)
	if err != nil {
		t.Fatalf("MaxScorePaths failed: %v", err)
	}
	expected := []string{"A", "ANT", "ANTE", "AT", "ATE", "NET", "TEN"}
	if words := wordSet(grid, paths); !reflect.DeepEqual(words, expected) {
		t.Errorf("MaxScorePaths found %v, expected %v", words, expected)
	}
	for i := 1; i < len(paths); i++ {
		if len(paths[i]) > len(paths[i-1]) {
			t.Errorf("MaxScorePaths result is not ordered by length")
		}
	}
	if MaxScore(paths) != 16+9*4+4+1 {
		t.Errorf("MaxScore() returned %v", MaxScore(paths))
	}
}

func TestMaxScorePathsPrefersMoreTiles(t *testing.T) {
	// ABC can be spelled with three tiles or with two
	grid := mustGrid(t, [][]string{{"A", "B"}, {"AB", "C"}})
	paths, err := MaxScorePaths(grid, NewDictionary([]string{"ABC"}))
	if err != nil {
		t.Fatalf("MaxScorePaths failed: %v", err)
	}
	if !reflect.DeepEqual(paths, []Path{{{0, 0}, {0, 1}, {1, 1}}}) {
		t.Errorf("MaxScorePaths returned %v", paths)
	}
	// Undersized words are found along the way
	paths, err = MaxScorePaths(grid, NewDictionary([]string{"ABC", "AB"}))
	if err != nil {
		t.Fatalf("MaxScorePaths failed: %v", err)
	}
	expected := []Path{
		{{0, 0}, {0, 1}, {1, 1}}, // ABC
		{{0, 0}, {0, 1}},         // AB
	}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("MaxScorePaths returned %v, expected %v", paths, expected)
	}
}

func TestMaxScorePathsMaximality(t *testing.T) {
	grid := classicGrid(t)
	dict := NewDictionary(classicWords)
	paths, err := MaxScorePaths(grid, dict)
	if err != nil {
		t.Fatalf("MaxScorePaths failed: %v", err)
	}
	seen := make(map[string]bool)
	for _, p := range paths {
		word, ok := ValidatePath(grid, p, dict)
		if !ok {
			t.Errorf("MaxScorePaths returned invalid path %v", p)
		}
		if seen[word] {
			t.Errorf("MaxScorePaths returned '%v' twice", word)
		}
		seen[word] = true
	}
	// Every word that the length-bounded search can find must be there
	for n := 1; n <= 9; n++ {
		for _, p := range FindLengthNWords(n, grid, dict) {
			if word := p.Word(grid); !seen[word] {
				t.Errorf("MaxScorePaths is missing '%v'", word)
			}
		}
	}
	for _, w := range []string{"ZEBRA", "XYLOPHONE"} {
		if seen[w] {
			t.Errorf("MaxScorePaths found '%v', which is not on the board", w)
		}
	}
	for _, w := range []string{"STAR", "ROADS", "TOADS", "RAIL", "QUA"} {
		if !seen[w] {
			t.Errorf("MaxScorePaths did not find '%v'", w)
		}
	}
}

func TestSearch(t *testing.T) {
	grid := antGrid(t)
	dict := NewDictionary([]string{"ANT", "TEN", "ATE", "AT"})
	paths, err := Search(context.Background(), 3, grid, dict, TileCountMode)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(paths, FindLengthNPaths(3, grid, dict)) {
		t.Errorf("Search in tile count mode returned %v", paths)
	}
	// All words mode also keeps the shorter words along the way
	all, err := Search(context.Background(), 3, grid, dict, AllWordsMode)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	expected := []string{"ANT", "AT", "ATE", "TEN"}
	if words := wordSet(grid, all); !reflect.DeepEqual(words, expected) {
		t.Errorf("Search in all words mode found %v, expected %v", words, expected)
	}
	// A cancelled search reports it instead of returning partial results
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err = Search(ctx, 3, grid, dict, WordLengthMode)
	if !errors.Is(err, context.Canceled) || paths != nil {
		t.Errorf("Cancelled Search returned %v, %v", paths, err)
	}
	if _, err := MaxScorePathsContext(ctx, grid, dict); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancelled MaxScorePathsContext returned %v", err)
	}
}

func TestBestPathPerWord(t *testing.T) {
	grid := mustGrid(t, [][]string{{"A", "A"}})
	paths := FindLengthNPaths(2, grid, NewDictionary([]string{"AA"}))
	if len(paths) != 2 {
		t.Fatalf("Expected two paths spelling AA, got %v", paths)
	}
	best := BestPathPerWord(grid, paths)
	if !reflect.DeepEqual(best, []Path{{{0, 0}, {0, 1}}}) {
		t.Errorf("BestPathPerWord returned %v", best)
	}
	if MaxScore(best) != 4 {
		t.Errorf("AA should be scored once, got %v", MaxScore(best))
	}
	if len(paths) != 2 || paths[1][0] != (Coord{0, 1}) {
		t.Errorf("BestPathPerWord modified its input: %v", paths)
	}
}

func TestZeroDictionary(t *testing.T) {
	var dict Dictionary
	if dict.Contains("A") || dict.Len() != 0 {
		t.Errorf("The zero Dictionary should be empty")
	}
	if ps := dict.Prefixes(3); len(ps) != 0 {
		t.Errorf("The zero Dictionary has prefixes %v", ps)
	}
	grid := antGrid(t)
	if paths := FindLengthNWords(2, grid, &dict); len(paths) != 0 {
		t.Errorf("The zero Dictionary matched %v", paths)
	}
	if _, err := MaxScorePaths(grid, &dict); !errors.Is(err, ErrEmptyDictionary) {
		t.Errorf("MaxScorePaths with the zero Dictionary returned %v", err)
	}
}

func BenchmarkMaxScorePaths(b *testing.B) {
	grid := classicGrid(b)
	dict := NewDictionary(classicWords)
	for i := 0; i < b.N; i++ {
		if _, err := MaxScorePaths(grid, dict); err != nil {
			b.Fatal(err)
		}
	}
}
