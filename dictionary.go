// dictionary.go
//
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Dictionary of valid words, and the
// prefix sets derived from it which are used to prune the search.

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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/simplelru"
)

// ErrEmptyDictionary is returned when an operation needs at
// least one word in the Dictionary
var ErrEmptyDictionary = errors.New("dictionary is empty")

// Unbounded is the maxLength value that places no cap on
// the words that contribute to a PrefixSet
const Unbounded = 0

// prefixCacheSize is the number of distinct length caps
// whose prefix sets are kept in memory
const prefixCacheSize = 16

// Dictionary is a set of valid words, queried only for exact
// membership. The letter case convention is up to the caller:
// words are stored exactly as given. The Dictionary is immutable
// after construction and safe for concurrent use. The zero value
// is an empty Dictionary.
type Dictionary struct {
	words   map[string]struct{}
	longest int
	// prefixes caches the prefix sets already built,
	// keyed by their length cap
	prefixes prefixCache
}

// PrefixSet contains every prefix, including the empty string
// and the word itself, of the Dictionary words that are eligible
// under a length cap. A PrefixSet is read-only once built.
type PrefixSet map[string]struct{}

// Contains returns true if the string is a prefix in the set
func (ps PrefixSet) Contains(prefix string) bool {
	_, ok := ps[prefix]
	return ok
}

// NewDictionary creates a Dictionary containing the given words
func NewDictionary(words []string) *Dictionary {
	dict := &Dictionary{
		words: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		dict.add(w)
	}
	dict.prefixes.Init(prefixCacheSize)
	return dict
}

// LoadDictionary reads a Dictionary from a word list having one
// word per line. Surrounding whitespace is trimmed and blank lines
// are skipped.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	words := make([]string, 0, 1024)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return NewDictionary(words), nil
}

// LoadDictionaryFile reads a Dictionary from the word list file
// at the given path
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dict, err := LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dict, nil
}

func (dict *Dictionary) add(word string) {
	dict.words[word] = struct{}{}
	if n := utf8.RuneCountInString(word); n > dict.longest {
		dict.longest = n
	}
}

// Contains returns true if the word is in the Dictionary
func (dict *Dictionary) Contains(word string) bool {
	_, ok := dict.words[word]
	return ok
}

// Len returns the number of words in the Dictionary
func (dict *Dictionary) Len() int {
	return len(dict.words)
}

// Longest returns the length, in characters, of the longest
// word in the Dictionary. There is no such length if the
// Dictionary is empty, in which case ErrEmptyDictionary is returned.
func (dict *Dictionary) Longest() (int, error) {
	if len(dict.words) == 0 {
		return 0, ErrEmptyDictionary
	}
	return dict.longest, nil
}

// Prefixes returns the PrefixSet of the Dictionary for the given
// length cap (or Unbounded), building it on first use and then
// serving it from a cache
func (dict *Dictionary) Prefixes(maxLength int) PrefixSet {
	if maxLength < Unbounded || maxLength >= dict.longest {
		// Every word fits under the cap: all such caps share one set
		maxLength = Unbounded
	}
	return dict.prefixes.Lookup(maxLength, func(maxLength int) PrefixSet {
		return BuildPrefixSet(dict, maxLength)
	})
}

// BuildPrefixSet creates the set of all prefixes of the
// Dictionary words whose length does not exceed maxLength.
// If maxLength is Unbounded, all words are included.
func BuildPrefixSet(dict *Dictionary, maxLength int) PrefixSet {
	ps := make(PrefixSet, 2*len(dict.words))
	for word := range dict.words {
		if maxLength > Unbounded && utf8.RuneCountInString(word) > maxLength {
			continue
		}
		// Add the empty prefix, then each prefix ending at
		// a rune boundary, up to and including the word itself
		ps[""] = struct{}{}
		for i := range word {
			ps[word[:i]] = struct{}{}
		}
		ps[word] = struct{}{}
	}
	return ps
}

// prefixCache encapsulates a simple LRU cached map of
// length caps to prefix sets
type prefixCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

// Init initalizes an empty prefixCache
func (pc *prefixCache) Init(size int) {
	pc.lru, _ = simplelru.NewLRU(size, nil)
}

// Lookup returns the prefix set for a length cap. If the cap
// is found in the cache, its set is returned immediately. Otherwise,
// the given fetchFunc() is called to build the set before storing
// it in the cache.
func (pc *prefixCache) Lookup(maxLength int, fetchFunc func(int) PrefixSet) PrefixSet {
	pc.mux.Lock()
	defer pc.mux.Unlock()
	if pc.lru == nil {
		// Zero value Dictionary
		pc.Init(prefixCacheSize)
	}
	if ps, ok := pc.lru.Get(maxLength); ok {
		return ps.(PrefixSet)
	}
	ps := fetchFunc(maxLength)
	pc.lru.Add(maxLength, ps)
	return ps
}
