// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/store"
)

// ErrSessionNotFound indicates an unknown session ID.
var ErrSessionNotFound = errors.New("server: session not found")

// ErrUnknownEngine indicates a run request naming no known engine.
var ErrUnknownEngine = fmt.Errorf("server: unknown engine: %w", core.ErrInvalidInput)

// ErrUnknownOp indicates an operation request naming no known container
// operation.
var ErrUnknownOp = fmt.Errorf("server: unknown operation: %w", core.ErrInvalidInput)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// StatusFor maps err to an HTTP status.
func StatusFor(err error) int {
	if errors.Is(err, ErrSessionNotFound) || errors.Is(err, store.ErrTraceNotFound) {
		return http.StatusNotFound
	}
	switch core.ErrorKind(err) {
	case "InvalidInput":
		return http.StatusBadRequest
	case "NotFound":
		return http.StatusNotFound
	case "Full", "Overflow", "Empty", "Underflow", "OutOfRange",
		"SlotOccupied", "AlreadyEmpty", "RunInProgress":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func kindOf(err error) string {
	if errors.Is(err, ErrSessionNotFound) || errors.Is(err, store.ErrTraceNotFound) {
		return "NotFound"
	}

	return core.ErrorKind(err)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, ErrorBody{Error: err.Error(), Kind: kindOf(err)})
}
