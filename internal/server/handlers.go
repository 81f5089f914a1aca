package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"bisub/internal/api"
	"bisub/internal/logging"
	"bisub/internal/services"
)

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.StatusResponse{
		Running: s.Running(),
		Version: s.version,
		Bind:    s.Addr(),
	})
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	ctx := services.WithOperation(r.Context(), api.OpMerge)
	var req api.MergeRequest
	if !s.decode(ctx, w, r, &req) {
		return
	}
	resp := api.Merge(req.English, req.Chinese)
	logger := logging.WithContext(ctx, s.logger)
	status := resultStatus(resp.Err)
	switch {
	case status != http.StatusOK:
		logging.ErrorWithContext(logger, "merge failed", "merge_failed", logging.Error(resp.Err))
	case resp.Aborted():
		logging.WarnWithContext(logger, "merge aborted", "merge_aborted",
			logging.Int("diagnostics", len(resp.Errors)),
			logging.String(logging.FieldImpact, "no merged output returned"),
		)
	default:
		logger.Info("merge completed",
			logging.String("status", resp.Status),
			logging.Int("diagnostics", len(resp.Errors)),
			logging.Int("output_bytes", len(resp.MergedOutput)),
		)
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleCheckFormat(w http.ResponseWriter, r *http.Request) {
	s.handleCheck(w, r, api.OpFormatCheck, api.CheckFormat)
}

func (s *Server) handleCheckSymbols(w http.ResponseWriter, r *http.Request) {
	s.handleCheck(w, r, api.OpSymbolsCheck, api.CheckSymbols)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request, op string, run func(string) api.CheckResult) {
	ctx := services.WithOperation(r.Context(), op)
	var req api.CheckRequest
	if !s.decode(ctx, w, r, &req) {
		return
	}
	result := run(req.Content)
	logger := logging.WithContext(ctx, s.logger)
	status := resultStatus(result.Err)
	if status != http.StatusOK {
		logging.ErrorWithContext(logger, "check failed", "check_failed", logging.Error(result.Err))
	} else {
		logger.Info("check completed",
			logging.String("status", result.Status),
			logging.Int("diagnostics", len(result.Errors)),
		)
	}
	writeJSON(w, status, result)
}

// resultStatus maps a result's marker to an HTTP status. Problems with the
// submitted text are reported in the body with 200, like a passing result.
func resultStatus(err error) int {
	if err == nil || services.IsInputError(err) {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// decode reads a JSON body capped at server.max_body_bytes. It writes the
// error response itself and reports whether decoding succeeded.
func (s *Server) decode(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	status := http.StatusBadRequest
	message := "invalid JSON body"
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
		message = fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)
	}
	logging.WithContext(ctx, s.logger).Info("rejected request body",
		logging.Int("status", status),
		logging.Error(services.Wrap(services.ErrValidation, "server", "decode", message, err)),
	)
	writeJSON(w, status, api.ErrorResponse{Error: message})
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		slog.Default().Error("failed to encode response", logging.Error(err))
	}
}
