// internal/httpserver/auth.go
//
// Owner tokens.
// A board may be read by anyone who knows its ID, but only the caller that
// generated it may mutate it. POST /boards hands back an HS256 JWT whose
// "board" claim names the board; mutation routes require it as a bearer token.

package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"
)

// ownerClaims is the payload of an owner token.
type ownerClaims struct {
	Board string `json:"board"`
	jwt.RegisteredClaims
}

// signOwnerToken issues a token granting mutation rights on boardID.
func (s *Server) signOwnerToken(boardID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.TokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, ownerClaims{
		Board: boardID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   boardID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(s.cfg.TokenSecret)
	return ss, exp, err
}

// parseOwnerToken verifies signature and expiry and returns the board claim.
func (s *Server) parseOwnerToken(tokenStr string) (string, error) {
	var claims ownerClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.cfg.TokenSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return claims.Board, nil
}

// requireOwner enforces a valid owner token for the {id} in the route.
func (s *Server) requireOwner() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearer(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			boardID, err := s.parseOwnerToken(tokenStr)
			if err != nil {
				hlog.FromRequest(r).Debug().Err(err).Msg("owner token rejected")
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			if boardID == "" || boardID != chi.URLParam(r, "id") {
				http.Error(w, `{"error":"not_owner"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
