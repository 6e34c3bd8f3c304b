package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

type Response struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"insufficient funds"`
	Kind    string `json:"kind,omitempty" example:"insufficient_funds"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Status: "error", Message: message})
}

// RespondWithDomainError maps err to its HTTP status. Errors outside the
// domain taxonomy are hidden behind a generic message.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := StatusFor(err)
	kind := domain.Kind(err)
	message := "Internal server error"
	switch {
	case errors.Is(err, domain.ErrTransient):
		message = "Service temporarily unavailable"
	case errors.Is(err, domain.ErrCommitUnknown):
		message = "Outcome unknown, queued for reconciliation"
	case kind != "internal":
		message = baseMessage(err)
	}
	RespondWithJSON(w, code, Response{Status: "error", Message: message, Kind: kind})
}

func StatusFor(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return http.StatusInternalServerError
}

var statuses = []struct {
	err  error
	code int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrWrongStatus, http.StatusConflict},
	{domain.ErrAlreadyExists, http.StatusConflict},
	{domain.ErrAlreadyQuoted, http.StatusConflict},
	{domain.ErrAlreadyPaid, http.StatusConflict},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
	{domain.ErrQuoteLimitReached, http.StatusConflict},
	{domain.ErrJobNotActive, http.StatusConflict},
	{domain.ErrJobExpired, http.StatusGone},
	{domain.ErrNotAuthorized, http.StatusForbidden},
	{domain.ErrCategoryMismatch, http.StatusUnprocessableEntity},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrInvalidTransactionType, http.StatusUnprocessableEntity},
	{domain.ErrTransient, http.StatusServiceUnavailable},
	{domain.ErrCommitUnknown, http.StatusInternalServerError},
}

// baseMessage returns the stable sentinel text even when err was wrapped.
func baseMessage(err error) string {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.err.Error()
		}
	}
	return err.Error()
}
