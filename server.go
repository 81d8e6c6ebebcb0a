// server.go
//
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements compact HTTP handlers that receive
// JSON encoded requests and return JSON encoded responses.

package boggle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Version of the JSON response format
const Version = "1.0"

// Limits on what a single request may ask for
const (
	MaxBoardSize         = 16
	MaxGenerateTime      = 20 * time.Second
	DefaultGenerateTime  = 2 * time.Second
	DefaultGenerateCands = 8
)

// ValidateRequest asks whether a path spells a valid word
type ValidateRequest struct {
	Locale string     `json:"locale"`
	Board  [][]string `json:"board"`
	Path   Path       `json:"path"`
}

// WordsRequest asks for all paths of a given length. The Mode is
// either "chars" (the default), where the length is counted in
// characters, or "tiles", where it is counted in tiles.
type WordsRequest struct {
	Locale string     `json:"locale"`
	Board  [][]string `json:"board"`
	Length int        `json:"length"`
	Mode   string     `json:"mode"`
	Limit  int        `json:"limit"`
}

// SolveRequest asks for every word that can be found on a board
type SolveRequest struct {
	Locale string     `json:"locale"`
	Board  [][]string `json:"board"`
	Limit  int        `json:"limit"`
}

// GenerateRequest asks for a freshly generated puzzle board
type GenerateRequest struct {
	Locale         string `json:"locale"`
	Rows           int    `json:"rows"`
	Cols           int    `json:"cols"`
	Seed           int64  `json:"seed"`
	TimeLimitMs    int    `json:"time_limit_ms"`
	MinWords       int    `json:"min_words"`
	MinLongestWord int    `json:"min_longest_word"`
}

// ValidateResponse is the reply to a ValidateRequest
type ValidateResponse struct {
	Version string `json:"version"`
	Valid   bool   `json:"valid"`
	Word    string `json:"word,omitempty"`
	Score   int    `json:"score"`
}

// WordWithPath is a found word, along with the path that spells it
type WordWithPath struct {
	Word  string `json:"word"`
	Path  Path   `json:"path"`
	Score int    `json:"score"`
}

// WordsResponse is the reply to WordsRequest and SolveRequest
type WordsResponse struct {
	Version  string         `json:"version"`
	Count    int            `json:"count"`
	MaxScore int            `json:"maxScore"`
	Words    []WordWithPath `json:"words"`
}

// GenerateResponse is the reply to a GenerateRequest
type GenerateResponse struct {
	Version string  `json:"version"`
	Puzzle  *Puzzle `json:"puzzle"`
	Stats   *Stats  `json:"stats"`
}

// Handler serves requests against a set of dictionaries, one per
// locale. Dictionaries are added before serving starts; the Handler
// is read-only, and thus safe for concurrent use, from then on.
type Handler struct {
	dicts         map[string]*Dictionary
	defaultLocale string
}

// NewHandler returns a Handler with no dictionaries
func NewHandler() *Handler {
	return &Handler{dicts: make(map[string]*Dictionary)}
}

// AddDictionary registers the dictionary for a locale. The first
// dictionary added is used for requests with unknown locales.
func (h *Handler) AddDictionary(locale string, dict *Dictionary) {
	if len(h.dicts) == 0 {
		h.defaultLocale = locale
	}
	h.dicts[locale] = dict
}

// Dictionary returns the dictionary for a locale. A locale such as
// "en_US" or "en-GB" matches "en" if there is no exact match.
func (h *Handler) Dictionary(locale string) *Dictionary {
	if dict, ok := h.dicts[locale]; ok {
		return dict
	}
	// Obtain the language part of the locale
	if i := strings.IndexAny(locale, "_-"); i > 0 {
		if dict, ok := h.dicts[locale[:i]]; ok {
			return dict
		}
	}
	return h.dicts[h.defaultLocale]
}

// prepare looks up the dictionary and builds the grid for a request,
// writing an error response and returning false if either fails
func (h *Handler) prepare(w http.ResponseWriter, locale string, board [][]string) (*Grid, *Dictionary, bool) {
	dict := h.Dictionary(locale)
	if dict == nil {
		http.Error(w, "No dictionary available.\n", http.StatusInternalServerError)
		return nil, nil, false
	}
	if len(board) > MaxBoardSize || (len(board) > 0 && len(board[0]) > MaxBoardSize) {
		msg := fmt.Sprintf("Invalid board. At most %v rows and columns.\n", MaxBoardSize)
		http.Error(w, msg, http.StatusBadRequest)
		return nil, nil, false
	}
	grid, err := NewGrid(board)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid board: %v.\n", err), http.StatusBadRequest)
		return nil, nil, false
	}
	return grid, dict, true
}

// writeJSON encodes a response as JSON
func writeJSON(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		// Unable to generate valid JSON
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// searchFailed writes the response for a search that did not complete
func searchFailed(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		http.Error(w, "Request timed out.\n", http.StatusGatewayTimeout)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// wordsResponse converts a list of paths to a response, applying a limit.
// The maximum score counts each distinct word once.
func wordsResponse(grid *Grid, paths []Path, limit int) WordsResponse {
	maxScore := MaxScore(BestPathPerWord(grid, paths))
	if limit > 0 {
		paths = paths[0:min(limit, len(paths))]
	}
	words := make([]WordWithPath, len(paths))
	for i, p := range paths {
		words[i] = WordWithPath{
			Word:  p.Word(grid),
			Path:  p,
			Score: PathScore(p),
		}
	}
	return WordsResponse{
		Version:  Version,
		Count:    len(words),
		MaxScore: maxScore,
		Words:    words,
	}
}

// HandleValidateRequest checks a submitted path
func (h *Handler) HandleValidateRequest(w http.ResponseWriter, req ValidateRequest) {
	grid, dict, ok := h.prepare(w, req.Locale, req.Board)
	if !ok {
		return
	}
	result := ValidateResponse{Version: Version}
	if word, valid := ValidatePath(grid, req.Path, dict); valid {
		result.Valid = true
		result.Word = word
		result.Score = PathScore(req.Path)
	}
	writeJSON(w, result)
}

// HandleWordsRequest finds all paths of a given length
func (h *Handler) HandleWordsRequest(ctx context.Context, w http.ResponseWriter, req WordsRequest) {
	grid, dict, ok := h.prepare(w, req.Locale, req.Board)
	if !ok {
		return
	}
	if req.Length < 0 {
		http.Error(w, "Invalid length.\n", http.StatusBadRequest)
		return
	}
	var mode SearchMode
	switch req.Mode {
	case "", "chars":
		mode = WordLengthMode
	case "tiles":
		mode = TileCountMode
	default:
		msg := "Invalid mode. Must be 'chars' or 'tiles'.\n"
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	paths, err := Search(ctx, req.Length, grid, dict, mode)
	if err != nil {
		searchFailed(w, err)
		return
	}
	writeJSON(w, wordsResponse(grid, paths, req.Limit))
}

// HandleSolveRequest finds every word on the board
func (h *Handler) HandleSolveRequest(ctx context.Context, w http.ResponseWriter, req SolveRequest) {
	grid, dict, ok := h.prepare(w, req.Locale, req.Board)
	if !ok {
		return
	}
	paths, err := MaxScorePathsContext(ctx, grid, dict)
	if err != nil {
		searchFailed(w, err)
		return
	}
	writeJSON(w, wordsResponse(grid, paths, req.Limit))
}

// HandleGenerateRequest generates a new puzzle board
func (h *Handler) HandleGenerateRequest(ctx context.Context, w http.ResponseWriter, req GenerateRequest) {
	dict := h.Dictionary(req.Locale)
	if dict == nil {
		http.Error(w, "No dictionary available.\n", http.StatusInternalServerError)
		return
	}
	if req.Rows < 0 || req.Cols < 0 || req.Rows > MaxBoardSize || req.Cols > MaxBoardSize {
		msg := fmt.Sprintf("Invalid board size. At most %v rows and columns.\n", MaxBoardSize)
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	timeLimit := DefaultGenerateTime
	if req.TimeLimitMs > 0 {
		timeLimit = min(time.Duration(req.TimeLimitMs)*time.Millisecond, MaxGenerateTime)
	}
	heuristics := DefaultHeuristics
	if req.MinWords > 0 {
		heuristics.MinWords = req.MinWords
	}
	if req.MinLongestWord > 0 {
		heuristics.MinLongestWord = req.MinLongestWord
	}
	params := GenerationParams{
		Dict:          dict,
		Rows:          req.Rows,
		Cols:          req.Cols,
		TimeLimit:     timeLimit,
		NumWorkers:    4,
		NumCandidates: DefaultGenerateCands,
		Seed:          req.Seed,
	}
	if params.Rows == 0 || params.Cols == 0 {
		params.Rows, params.Cols = ClassicSize, ClassicSize
	}
	puzzle, stats, err := GeneratePuzzle(ctx, params, heuristics)
	if err != nil {
		if ctx.Err() != nil {
			searchFailed(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, GenerateResponse{
		Version: Version,
		Puzzle:  puzzle,
		Stats:   stats,
	})
}
