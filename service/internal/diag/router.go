// internal/diag/router.go
package diag

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jason-s-yu/shbot/service/internal/game"
)

// StatusFunc lists the bots currently playing.
type StatusFunc func() []game.BotStatus

// NewRouter serves the debug endpoints:
//
//	GET /healthz
//	GET /debug/bots
//	GET /debug/ledgers
//	GET /debug/ledgers/{bot}
func NewRouter(latest *Latest, statuses StatusFunc) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/debug", func(r chi.Router) {
		r.Get("/bots", func(w http.ResponseWriter, _ *http.Request) {
			var out []game.BotStatus
			if statuses != nil {
				out = statuses()
			}
			if out == nil {
				out = []game.BotStatus{}
			}
			writeJSON(w, http.StatusOK, out)
		})
		r.Get("/ledgers", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, latest.All())
		})
		r.Get("/ledgers/{bot}", func(w http.ResponseWriter, r *http.Request) {
			rec, ok := latest.Get(chi.URLParam(r, "bot"))
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "no ledger recorded for bot"})
				return
			}
			writeJSON(w, http.StatusOK, rec)
		})
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
