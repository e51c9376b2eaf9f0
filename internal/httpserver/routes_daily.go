// internal/httpserver/routes_daily.go
//
// Daily Challenge routes. Every caller gets the same target for the UTC
// day, chosen by the daily picker; the game itself is an ordinary session.
//   - GET  /daily     → today's date key
//   - POST /daily/new → start a game on today's word; /game/reset on that
//     game stays on the daily picker

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/internal/daily"
)

func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"date": daily.DateKey(time.Now())})
		})
		r.Post("/new", func(w http.ResponseWriter, r *http.Request) {
			s.startGame(w, r, s.opts.Daily.Pick(s.opts.Words), 0, true)
		})
	})
}
