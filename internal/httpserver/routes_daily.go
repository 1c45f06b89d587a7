// internal/httpserver/routes_daily.go
//
// HTTP routes for the board of the day.
//   - GET /daily        → today's board (UTC)
//   - GET /daily?date=  → the board for a given YYYY-MM-DD
//
// The board is derived from date + salt, so every caller sees the same grid.
// Snapshots are cached per date; the daily board is read-only.

package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/minesweeper/internal/daily"
	"github.com/robalobadob/minesweeper/internal/game"
	"github.com/robalobadob/minesweeper/internal/presets"
)

// dailyCacheLimit bounds how many dates are held in memory.
const dailyCacheLimit = 64

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	salt   string
	preset string
	boards map[string]game.Snapshot // keyed by date
	mu     sync.Mutex               // guards boards
}

// mountDaily registers the /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		salt:   s.cfg.DailySalt,
		preset: s.cfg.DailyPreset,
		boards: make(map[string]game.Snapshot),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", dd.handleDaily)
	})
}

// dailyRes is returned by /daily.
type dailyRes struct {
	Date  string        `json:"date"`
	Board game.Snapshot `json:"board"`
}

// handleDaily returns the deterministic board for the requested date.
func (d *dailyServer) handleDaily(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if q := r.URL.Query().Get("date"); q != "" {
		t, err := daily.ParseDate(q)
		if err != nil {
			http.Error(w, `{"error":"bad_date"}`, http.StatusBadRequest)
			return
		}
		date = t
	}
	key := daily.DateKey(date)

	d.mu.Lock()
	snap, ok := d.boards[key]
	d.mu.Unlock()
	if !ok {
		var err error
		snap, err = d.generate(date)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Str("date", key).Msg("daily board")
			http.Error(w, `{"error":"daily_unavailable"}`, http.StatusInternalServerError)
			return
		}
		d.mu.Lock()
		if len(d.boards) >= dailyCacheLimit {
			d.boards = make(map[string]game.Snapshot)
		}
		d.boards[key] = snap
		d.mu.Unlock()
	}
	_ = json.NewEncoder(w).Encode(dailyRes{Date: key, Board: snap})
}

// generate builds the board for date from the configured preset.
func (d *dailyServer) generate(date time.Time) (game.Snapshot, error) {
	p, ok := presets.Lookup(d.preset)
	if !ok {
		return game.Snapshot{}, fmt.Errorf("unknown daily preset %q", d.preset)
	}
	key := daily.DateKey(date)
	midnight, err := daily.ParseDate(key)
	if err != nil {
		return game.Snapshot{}, err
	}
	g, err := game.New(game.Params{
		Cells:   p.Cells,
		Density: p.Density,
		Seed:    daily.Seed(date, d.salt),
		Preset:  p.Name,
	})
	if err != nil {
		return game.Snapshot{}, err
	}
	g.ID = "daily-" + key
	snap := g.Snapshot()
	snap.CreatedAt = midnight
	return snap, nil
}
