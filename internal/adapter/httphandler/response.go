package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/niksmo/emporium/internal/core/domain"
)

const (
	kindNotFound       = "not_found"
	kindReference      = "reference"
	kindValidation     = "validation"
	kindTotalMismatch  = "total_mismatch"
	kindMalformedJSON  = "malformed_json"
	kindNotImplemented = "not_implemented"
	kindInternal       = "internal"
)

type errorResponse struct {
	Kind       string      `json:"kind"`
	Message    string      `json:"message"`
	Field      string      `json:"field,omitempty"`
	Calculated json.Number `json:"calculated,omitempty"`
	Claimed    json.Number `json:"claimed,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// malformedJSONError marks request bodies that could not be decoded.
type malformedJSONError struct {
	err error
}

func (e malformedJSONError) Error() string {
	return e.err.Error()
}

func (e malformedJSONError) Unwrap() error {
	return e.err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "op", "httphandler.writeJSON", "err", err)
	}
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// writeError maps err to its HTTP status and error body. Errors that are not
// part of the domain vocabulary are logged and hidden behind a 500.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, body := errorBody(err)
	log := slog.With(
		"op", op, "requestID", middleware.GetReqID(r.Context()), "err", err,
	)
	if status >= http.StatusInternalServerError {
		log.Error("request failed")
	} else {
		log.Debug("request rejected", "status", status)
	}
	writeJSON(w, status, body)
}

func errorBody(err error) (int, errorResponse) {
	var (
		notFound  domain.NotFoundError
		reference domain.ReferenceError
		invalid   domain.ValidationError
		mismatch  domain.TotalMismatchError
		malformed malformedJSONError
	)

	switch {
	case errors.As(err, &malformed):
		return http.StatusBadRequest, errorResponse{
			Kind: kindMalformedJSON, Message: malformed.Error(),
		}
	case errors.As(err, &invalid):
		return http.StatusBadRequest, errorResponse{
			Kind: kindValidation, Message: invalid.Error(), Field: invalid.Field,
		}
	case errors.As(err, &mismatch):
		return http.StatusBadRequest, errorResponse{
			Kind:       kindTotalMismatch,
			Message:    mismatch.Error(),
			Calculated: moneyJSON(mismatch.Calculated),
			Claimed:    moneyJSON(mismatch.Claimed),
		}
	case errors.As(err, &reference):
		return http.StatusNotFound, errorResponse{
			Kind: kindReference, Message: reference.Error(),
		}
	case errors.As(err, &notFound):
		return http.StatusNotFound, errorResponse{
			Kind: kindNotFound, Message: notFoundMessage(notFound.Entity),
		}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{
			Kind: kindNotFound, Message: "not found",
		}
	case errors.Is(err, domain.ErrNotImplemented):
		return http.StatusNotImplemented, errorResponse{
			Kind: kindNotImplemented, Message: "not implemented",
		}
	default:
		return http.StatusInternalServerError, errorResponse{
			Kind: kindInternal, Message: "internal server error",
		}
	}
}

func notFoundMessage(e domain.Entity) string {
	switch e {
	case domain.EntityProduct:
		return "Product not found"
	case domain.EntityOrder:
		return "Cannot find order"
	case domain.EntityReview:
		return "Cannot find review"
	case domain.EntityCategory:
		return "Cannot find category"
	case domain.EntityCustomer:
		return "Cannot find customer"
	default:
		return "not found"
	}
}

func notImplemented(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, "httphandler.notImplemented", domain.ErrNotImplemented)
}
