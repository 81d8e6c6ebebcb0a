// go-app/main.go
// App Engine main package for GoBoggle server
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	boggle "github.com/vthorsteinsson/GoBoggle"
)

// Corresponding Authorization header (or "" if no auth required)
var AUTH_HEADER string

// Allowed access control (CORS) origins
var ALLOWED_ORIGINS string = "*" // Default to all origins allowed

// Largest accepted request body. A full 16x16 board with a
// long path is well below this.
const maxRequestBytes = 64 << 10

func validate(w http.ResponseWriter, r *http.Request, req any) bool {
	// Set CORS headers
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", ALLOWED_ORIGINS)
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	// Handle preflight OPTIONS request
	if r.Method == http.MethodOptions {
		// Returning false simply causes the handler to return the response headers
		return false
	}

	// We only accept POST requests
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return false
	}
	// Check for a bearer authorization token,
	// which must match the environment variable
	// ACCESS_KEY, if present
	if AUTH_HEADER != "" {
		authHeader := r.Header.Get("Authorization")
		if authHeader != AUTH_HEADER {
			hlog.FromRequest(r).Warn().Msg("authorization header mismatch")
			http.Error(w, "Authorization header mismatch", http.StatusUnauthorized)
			return false
		}
	}
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request too large", http.StatusRequestEntityTooLarge)
			return false
		}
		// Not valid JSON
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// newRouter sets up the middleware stack and the service handlers
func newRouter(h *boggle.Handler, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", chimw.GetReqID(r.Context())).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(timeout))

	// Dummy warmup handler
	r.Get("/_ah/warmup", func(w http.ResponseWriter, r *http.Request) {
		// No concrete action required
		hlog.FromRequest(r).Info().Msg("warmup request received")
	})

	r.HandleFunc("/validate", func(w http.ResponseWriter, r *http.Request) {
		var req boggle.ValidateRequest
		if !validate(w, r, &req) {
			return
		}
		h.HandleValidateRequest(w, req)
	})
	r.HandleFunc("/words", func(w http.ResponseWriter, r *http.Request) {
		var req boggle.WordsRequest
		if !validate(w, r, &req) {
			return
		}
		h.HandleWordsRequest(r.Context(), w, req)
	})
	r.HandleFunc("/solve", func(w http.ResponseWriter, r *http.Request) {
		var req boggle.SolveRequest
		if !validate(w, r, &req) {
			return
		}
		h.HandleSolveRequest(r.Context(), w, req)
	})
	r.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		var req boggle.GenerateRequest
		if !validate(w, r, &req) {
			return
		}
		h.HandleGenerateRequest(r.Context(), w, req)
	})
	return r
}

// loadDictionaries reads the word lists named in a specification
// such as "en=words/en.txt,is=words/is.txt" into the handler.
// The first one becomes the default.
func loadDictionaries(h *boggle.Handler, spec string) error {
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		locale, path, ok := strings.Cut(item, "=")
		if !ok {
			return fmt.Errorf("invalid dictionary specification '%s', expected locale=path", item)
		}
		dict, err := boggle.LoadDictionaryFile(path)
		if err != nil {
			return err
		}
		log.Info().Str("locale", locale).Str("path", path).Int("words", dict.Len()).
			Msg("dictionary loaded")
		h.AddDictionary(locale, dict)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	// A .env file is optional; the real environment takes precedence
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Info().Str("go", runtime.Version()).Msg("boggle service starting")
	// Figure out the authorization header, if required
	if accessKey := os.Getenv("ACCESS_KEY"); accessKey != "" {
		AUTH_HEADER = "Bearer " + accessKey
	}
	// Establish allowed CORS origins
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		log.Info().Str("origins", origins).Msg("allowed CORS origins")
		ALLOWED_ORIGINS = origins
	} else {
		log.Info().Msg("no ALLOWED_ORIGINS specified, allowing all")
	}
	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REQUEST_TIMEOUT")
	}

	h := boggle.NewHandler()
	if err := loadDictionaries(h, getEnv("DICTIONARIES", "en=words.txt")); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionaries")
	}

	// Establish the port number to listen on, defaulting to 8080
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("listening")
	// Start the server loop
	if err := http.ListenAndServe(":"+port, newRouter(h, timeout)); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
