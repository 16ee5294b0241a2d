package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/leapstack-labs/leapmath/internal/cli/output"
	"github.com/leapstack-labs/leapmath/pkg/core"
	"github.com/leapstack-labs/leapmath/pkg/format"
	"github.com/leapstack-labs/leapmath/pkg/parser"
)

// ParseRequest is the body of the parse and format endpoints. Nil option
// fields fall back to the server defaults.
type ParseRequest struct {
	Input        string `json:"input"`
	MixedNumbers *bool  `json:"mixed_numbers,omitempty"`
	Singletons   *bool  `json:"singletons,omitempty"`
}

// ParseResponse is returned by POST /api/v1/parse.
type ParseResponse struct {
	Tree *format.Node `json:"tree"`
	Text string       `json:"text"`
}

// FormatResponse is returned by POST /api/v1/format.
type FormatResponse struct {
	Text string `json:"text"`
}

// ErrorResponse wraps every failure.
type ErrorResponse struct {
	Error output.ErrorInfo `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	expr, ok := s.parseRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ParseResponse{Tree: format.Tree(expr), Text: format.Format(expr)})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	expr, ok := s.parseRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, FormatResponse{Text: format.Format(expr)})
}

// parseRequest decodes the body and parses its input. On failure it writes
// the error response and reports false.
func (s *Server) parseRequest(w http.ResponseWriter, r *http.Request) (core.Expr, bool) {
	var req ParseRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, output.ErrorInfo{Kind: "bad_request", Message: err.Error()})
		return nil, false
	}

	opts := s.opts
	if req.MixedNumbers != nil {
		opts.MixedNumbers = *req.MixedNumbers
	}
	if req.Singletons != nil {
		opts.Singletons = *req.Singletons
	}

	expr, err := parser.ParseString(req.Input, parser.WithOptions(opts))
	if err != nil {
		var se *parser.SyntaxError
		var le *parser.LexError
		if !errors.As(err, &se) && !errors.As(err, &le) {
			s.logger.Error("parse failed", "error", err)
			writeError(w, http.StatusInternalServerError, output.ErrorInfo{Kind: "error", Message: err.Error()})
			return nil, false
		}
		s.logger.Debug("rejected input", "input", req.Input, "error", err)
		writeError(w, http.StatusUnprocessableEntity, output.NewErrorInfo(err))
		return nil, false
	}
	return expr, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, info output.ErrorInfo) {
	writeJSON(w, status, ErrorResponse{Error: info})
}
