// internal/httpserver/server.go
//
// HTTP front end for the Wordle core.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - POST /game/new and /daily/new start a game and hand back a game token.
//   - Token-gated endpoints translate requests into game operations:
//     GET /game, POST /game/letter, /game/backspace, /game/submit, /game/reset.
//
// Notes:
//   - Every game belongs to the single client holding its token. There are
//     no accounts and no shared games.
//   - Sessions live in the in-memory store and are swept when idle.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

// Options wires the word source and game defaults into the server.
type Options struct {
	Words    *words.List
	Picker   words.Picker // target for /game/new and /game/reset
	Daily    words.Picker // target for /daily/new; nil disables the route
	MaxTries int
	Scoring  game.Scoring

	JWTSecret    []byte
	TokenTTL     time.Duration
	CookieName   string
	CookieSecure bool
	ClientOrigin string
	IdleTTL      time.Duration
}

// Server bundles router, session store and word source.
type Server struct {
	r     *chi.Mux
	store store.Store
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, o Options) *Server {
	if o.Picker == nil {
		o.Picker = words.RandomPicker{}
	}
	if o.CookieName == "" {
		o.CookieName = "wordle_game"
	}
	if o.TokenTTL <= 0 {
		o.TokenTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), store: st, opts: o}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(chimw.SetHeader("Content-Type", "application/json; charset=utf-8"))
	s.r.Use(newCORS(o.ClientOrigin).handler)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle","endpoints":["/health","POST /game/new","POST /daily/new","GET /game","POST /game/{letter,backspace,submit,reset}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.opts.Words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g, "length": s.opts.Words.Length()})
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)

		// Token-gated: the caller's own game only
		r.Group(func(r chi.Router) {
			r.Use(s.requireGame)
			r.Get("/", s.handleView)
			r.Post("/letter", s.handleLetter)
			r.Post("/backspace", s.handleBackspace)
			r.Post("/submit", s.handleSubmit)
			r.Post("/reset", s.handleReset)
		})
	})
	if o.Daily != nil {
		s.mountDaily(s.r)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves HTTP on addr until ctx is cancelled, sweeping idle games
// in the background.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	go s.sweep(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("http server listening")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) sweep(ctx context.Context) {
	idle := s.opts.IdleTTL
	if idle <= 0 {
		return
	}
	t := time.NewTicker(idle / 4)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.store.Sweep(now, idle); n > 0 {
				log.Debug().Int("evicted", n).Msg("swept idle games")
			}
		}
	}
}

// ----------------------------- middleware ----------------------------------

// corsPolicy admits credentialed requests from a single front-end origin.
type corsPolicy struct {
	origin  string
	methods string
	headers string
}

func newCORS(origin string) corsPolicy {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return corsPolicy{origin: origin, methods: "GET, POST, OPTIONS", headers: "Content-Type, Authorization"}
}

// handler answers preflights itself and tags every other response.
func (c corsPolicy) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Origin", c.origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
			next.ServeHTTP(w, r)
			return
		}
		h.Set("Access-Control-Allow-Methods", c.methods)
		h.Set("Access-Control-Allow-Headers", c.headers)
		h.Set("Access-Control-Max-Age", "600")
		w.WriteHeader(http.StatusNoContent)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq is the optional body of POST /game/new.
type newGameReq struct {
	Answer   string `json:"answer"`   // fixed answer (testing); must be in the word list
	MaxTries int    `json:"maxTries"` // 0 = server default
}

type newGameRes struct {
	GameID string   `json:"gameId"`
	Token  string   `json:"token"`
	View   gameView `json:"view"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, "bad_json")
			return
		}
	}
	answer := req.Answer
	if answer == "" {
		answer = s.opts.Picker.Pick(s.opts.Words)
	} else if !s.opts.Words.IsAnswer(answer) {
		writeErr(w, http.StatusBadRequest, "invalid_answer")
		return
	}
	s.startGame(w, r, answer, req.MaxTries, false)
}

// startGame creates the session, stores it, and issues the game token.
// daily marks games whose resets should stay on the day's word.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, answer string, maxTries int, daily bool) {
	if maxTries > game.MaxTriesLimit || maxTries < 0 {
		writeErr(w, http.StatusBadRequest, "invalid_max_tries")
		return
	}
	if maxTries == 0 {
		maxTries = s.opts.MaxTries
	}
	sess, err := game.New(answer, maxTries, s.opts.Words, game.WithScoring(s.opts.Scoring))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_game")
		return
	}
	id := uuid.NewString()
	if err := s.store.Save(r.Context(), store.Entry{ID: id, Session: sess, Daily: daily}); err != nil {
		log.Error().Err(err).Msg("save game")
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.signToken(id)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setGameCookie(w, tok, exp)
	log.Debug().Str("gameId", id).Int("length", sess.WordLength()).Int("maxTries", maxTries).Msg("game started")
	writeJSON(w, http.StatusOK, newGameRes{GameID: id, Token: tok, View: viewOf(id, sess, nil)})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	e, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(id, e.Session, nil))
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	ch, ok := game.LetterKey(req.Letter)
	if !ok {
		writeErr(w, http.StatusBadRequest, "invalid_letter")
		return
	}
	s.apply(w, r, game.AppendChar{Ch: ch})
}

func (s *Server) handleBackspace(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, game.RemoveLast{})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, game.Submit{})
}

type resetReq struct {
	MaxTries int `json:"maxTries"`
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, "bad_json")
			return
		}
	}
	if req.MaxTries > game.MaxTriesLimit || req.MaxTries < 0 {
		writeErr(w, http.StatusBadRequest, "invalid_max_tries")
		return
	}
	if req.MaxTries == 0 {
		req.MaxTries = s.opts.MaxTries
	}
	s.applyWith(w, r, func(e store.Entry) game.Op {
		picker := s.opts.Picker
		if e.Daily && s.opts.Daily != nil {
			picker = s.opts.Daily
		}
		return game.Reset{Target: picker.Pick(s.opts.Words), MaxTries: req.MaxTries}
	})
}

// apply runs op against the caller's game and writes the resulting view.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, op game.Op) {
	s.applyWith(w, r, func(store.Entry) game.Op { return op })
}

// applyWith builds the op from the stored entry under the store lock.
func (s *Server) applyWith(w http.ResponseWriter, r *http.Request, opFor func(store.Entry) game.Op) {
	id := gameID(r)
	var sigs []game.Signal
	e, err := s.store.Update(r.Context(), id, func(e *store.Entry) error {
		e.Session, sigs = game.Apply(e.Session, opFor(*e))
		return nil
	})
	if err != nil {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	for _, sg := range sigs {
		if end, ok := sg.(game.GameEnd); ok {
			logGameEnd(id, end)
		}
	}
	writeJSON(w, http.StatusOK, viewOf(id, e.Session, sigs))
}

func logGameEnd(id string, end game.GameEnd) {
	verdict := "NAY"
	if end.Found {
		verdict = "YAY"
	}
	log.Info().
		Str("gameId", id).
		Str("word", end.Word).
		Bool("found", end.Found).
		Int("tries", len(end.Guesses)).
		Int("maxTries", end.MaxTries).
		Msg(verdict)
}

// ------------------------------- util --------------------------------------

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
