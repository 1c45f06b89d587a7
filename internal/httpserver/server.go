// internal/httpserver/server.go
//
// HTTP server wiring for the board generator.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     zerolog access logs).
//   - Public endpoints: "/", "/health", "/presets".
//   - Board endpoints: generate, snapshot, single-cell read.
//   - Owner-only endpoints (owner token required): cell replace, increment, delete.
//   - Daily board: mounted under /daily (routes_daily.go).
//
// Notes:
//   - Board errors from internal/board are mapped to 400s with stable codes.
//   - Sessions live in the in-memory store only.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/minesweeper/internal/board"
	"github.com/robalobadob/minesweeper/internal/game"
	"github.com/robalobadob/minesweeper/internal/presets"
	"github.com/robalobadob/minesweeper/internal/store"
)

// Server bundles router, session store and configuration.
type Server struct {
	r     *chi.Mux
	store store.Store
	cfg   Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg Config) *Server {
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg.withDefaults()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(accessLog())                     // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"minesweeper-go","endpoints":["/health","/presets","POST /boards","/boards/{id}","/daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "boards": s.store.Len()})
	})
	s.r.Get("/presets", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(presets.All())
	})

	// --- boards ---
	s.r.Post("/boards", s.handleNewBoard)
	s.r.Get("/boards/{id}", s.handleGetBoard)
	s.r.Get("/boards/{id}/cells/{x}/{y}", s.handleGetCell)

	// Owner-only mutations
	s.r.With(s.requireOwner()).Put("/boards/{id}/cells/{x}/{y}", s.handleSetCell)
	s.r.With(s.requireOwner()).Post("/boards/{id}/cells/{x}/{y}/increment", s.handleIncrement)
	s.r.With(s.requireOwner()).Delete("/boards/{id}", s.handleDeleteBoard)

	// Board of the day
	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes method, path, status, size and duration per request.
func accessLog() func(http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, dur time.Duration) {
		hlog.FromRequest(r).Info().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", size).
			Dur("dur", dur).
			Msg("http")
	})
}

// ------------------------------ BOARDS -------------------------------------

// newBoardReq/Res payloads for POST /boards.
type newBoardReq struct {
	Cells   int      `json:"cells"`                 // total cells, perfect square
	Preset  string   `json:"preset"`                // named size, overrides cells
	Density *float64 `json:"density"`               // optional, default from config/preset
	Seed    uint64   `json:"seed,string,omitempty"` // optional, decimal string
}
type newBoardRes struct {
	BoardID    string        `json:"boardId"`
	OwnerToken string        `json:"ownerToken"`
	ExpiresAt  time.Time     `json:"expiresAt"`
	Board      game.Snapshot `json:"board"`
}

// handleNewBoard generates a board, stores it, and returns an owner token.
func (s *Server) handleNewBoard(w http.ResponseWriter, r *http.Request) {
	var req newBoardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	p := game.Params{Cells: req.Cells, Density: s.cfg.DefaultDensity, Seed: req.Seed}
	if req.Preset != "" {
		pr, ok := presets.Lookup(req.Preset)
		if !ok {
			http.Error(w, `{"error":"unknown_preset"}`, http.StatusBadRequest)
			return
		}
		p.Cells, p.Density, p.Preset = pr.Cells, pr.Density, pr.Name
	}
	if req.Density != nil {
		p.Density = *req.Density
	}
	if p.Cells > s.cfg.MaxCells {
		http.Error(w, `{"error":"too_large"}`, http.StatusBadRequest)
		return
	}

	g, err := game.New(p)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save board")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := s.signOwnerToken(g.ID)
	if err != nil {
		log.Error().Err(err).Str("boardId", g.ID).Msg("sign owner token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}

	snap := g.Snapshot()
	hlog.FromRequest(r).Info().
		Str("boardId", g.ID).
		Int("cells", snap.Cells).
		Int("bombs", snap.Bombs).
		Uint64("seed", snap.Seed).
		Msg("board generated")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newBoardRes{BoardID: g.ID, OwnerToken: tok, ExpiresAt: exp, Board: snap})
}

// handleGetBoard returns the full snapshot.
func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadBoard(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(g.Snapshot())
}

// handleGetCell returns a single cell.
func (s *Server) handleGetCell(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadBoard(w, r)
	if !ok {
		return
	}
	x, y, ok := coords(w, r)
	if !ok {
		return
	}
	c, err := g.Cell(x, y)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(c)
}

// setCellReq is the body of PUT /boards/{id}/cells/{x}/{y}.
type setCellReq struct {
	Kind  board.Kind `json:"kind"`
	Count uint8      `json:"count"`
}

// handleSetCell replaces a cell (owner only).
func (s *Server) handleSetCell(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadBoard(w, r)
	if !ok {
		return
	}
	x, y, ok := coords(w, r)
	if !ok {
		return
	}
	var req setCellReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	c, err := g.SetCell(x, y, board.CellKind{Kind: req.Kind, Count: req.Count})
	if err != nil {
		writeBoardError(w, err)
		return
	}
	hlog.FromRequest(r).Debug().Str("boardId", g.ID).Int("x", x).Int("y", y).Stringer("kind", c.Kind).Msg("cell set")
	_ = json.NewEncoder(w).Encode(c)
}

// handleIncrement bumps a cell's adjacency number (owner only).
func (s *Server) handleIncrement(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadBoard(w, r)
	if !ok {
		return
	}
	x, y, ok := coords(w, r)
	if !ok {
		return
	}
	c, err := g.Increment(x, y)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(c)
}

// handleDeleteBoard drops a board session (owner only).
func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	hlog.FromRequest(r).Info().Str("boardId", id).Msg("board deleted")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// ------------------------------- helpers -----------------------------------

// loadBoard resolves {id}; writes a 404 and returns false when missing.
func (s *Server) loadBoard(w http.ResponseWriter, r *http.Request) (*game.Game, bool) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil, false
	}
	return g, true
}

// coords parses {x} and {y}; writes a 400 and returns false on garbage.
func coords(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	x, errX := strconv.Atoi(chi.URLParam(r, "x"))
	y, errY := strconv.Atoi(chi.URLParam(r, "y"))
	if errX != nil || errY != nil {
		http.Error(w, `{"error":"bad_coordinates"}`, http.StatusBadRequest)
		return 0, 0, false
	}
	return x, y, true
}

// writeBoardError maps board/game errors to status codes.
func writeBoardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrInvalidSize):
		http.Error(w, `{"error":"invalid_size"}`, http.StatusBadRequest)
	case errors.Is(err, board.ErrInvalidDensity):
		http.Error(w, `{"error":"invalid_density"}`, http.StatusBadRequest)
	case errors.Is(err, board.ErrOutOfBounds):
		http.Error(w, `{"error":"out_of_bounds"}`, http.StatusBadRequest)
	case errors.Is(err, game.ErrInvalidKind):
		http.Error(w, `{"error":"invalid_kind"}`, http.StatusBadRequest)
	default:
		log.Error().Err(err).Msg("board operation")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}
}
