package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/emporium/internal/core/port"
)

type ReviewsHandler struct {
	service port.ReviewsManager
}

func RegisterReviews(r chi.Router, service port.ReviewsManager) {
	h := ReviewsHandler{service}
	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", h.PostReview)
		r.Get("/", h.ListReviews)
		r.Get("/product/{productId}", h.ListProductReviews)
		r.Get("/{id}", h.GetReview)
		r.Patch("/{id}", h.UpdateReview)
		r.Delete("/{id}", h.DeleteReview)
	})
}

func (h ReviewsHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	const op = "ReviewsHandler.PostReview"

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}

	review, err := h.service.PostReview(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, reviewFromDomain(review))
}

func (h ReviewsHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	const op = "ReviewsHandler.ListReviews"

	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(reviews, reviewViewFromDomain))
}

func (h ReviewsHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	const op = "ReviewsHandler.ListProductReviews"

	reviews, err := h.service.ListProductReviews(
		r.Context(), chi.URLParam(r, "productId"),
	)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(reviews, reviewViewFromDomain))
}

func (h ReviewsHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	const op = "ReviewsHandler.GetReview"

	review, err := h.service.GetReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewViewFromDomain(review))
}

func (h ReviewsHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	const op = "ReviewsHandler.UpdateReview"

	var req reviewPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}

	review, err := h.service.UpdateReview(
		r.Context(), chi.URLParam(r, "id"), req.toDomain(),
	)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewFromDomain(review))
}

func (h ReviewsHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	const op = "ReviewsHandler.DeleteReview"

	if err := h.service.DeleteReview(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, op, err)
		return
	}
	writeMessage(w, "Review deleted")
}
