package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/convomail/internal/server"
	"github.com/dmitrymomot/convomail/pkg/automation"
	"github.com/dmitrymomot/convomail/pkg/mailer"
)

const maxBodyBytes = 1 << 20

type evaluator interface {
	Evaluate(ctx context.Context, msg automation.Message) (bool, error)
	Active() bool
}

type recorder interface {
	Record(ctx context.Context, msg automation.Message) error
}

type messageResponse struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
	Sent  bool   `json:"sent"`
}

func newRouter(svc evaluator, history recorder, checks server.Checks, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(server.RequestID)
	r.Use(server.AccessLog(log))
	r.Use(server.Recover(log))

	r.Get("/healthz", server.Liveness())
	r.Get("/readyz", server.Readiness(checks, log))

	h := &messageHandler{svc: svc, history: history, logger: log}
	r.With(middleware.AllowContentType("application/json")).Post("/v1/messages", h.post)

	return r
}

type messageHandler struct {
	svc     evaluator
	history recorder
	logger  *slog.Logger
}

func (h *messageHandler) post(w http.ResponseWriter, r *http.Request) {
	var msg automation.Message
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Error: "invalid JSON body"})
		return
	}

	msg.UserID = strings.TrimSpace(msg.UserID)
	if msg.UserID == "" || strings.TrimSpace(msg.Content.Text) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, messageResponse{ID: msg.ID, Error: "userId and content.text are required"})
		return
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	if err := h.history.Record(r.Context(), msg); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to record message", slog.Any("error", err))
		writeJSON(w, http.StatusServiceUnavailable, messageResponse{ID: msg.ID, Error: "history unavailable"})
		return
	}

	sent, err := h.svc.Evaluate(r.Context(), msg)
	if err != nil {
		writeJSON(w, statusFor(err), messageResponse{ID: msg.ID, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{ID: msg.ID, Sent: sent})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, automation.ErrInactive):
		return http.StatusServiceUnavailable
	case errors.Is(err, automation.ErrSynthesisValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, automation.ErrEvaluation),
		errors.Is(err, automation.ErrSynthesis),
		errors.Is(err, mailer.ErrSendFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
