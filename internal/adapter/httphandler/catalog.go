package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/emporium/internal/core/port"
)

// CatalogHandler serves categories and customers read-only. Writes answer
// 501 until their operations exist.
type CatalogHandler struct {
	service port.CatalogReader
}

func RegisterCatalog(r chi.Router, service port.CatalogReader) {
	h := CatalogHandler{service}
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/{id}", h.GetCategory)
		r.Post("/", notImplemented)
		r.Patch("/{id}", notImplemented)
		r.Delete("/{id}", notImplemented)
	})
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.ListCustomers)
		r.Get("/{id}", h.GetCustomer)
		r.Post("/", notImplemented)
		r.Patch("/{id}", notImplemented)
		r.Delete("/{id}", notImplemented)
	})
}

func (h CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ListCategories"

	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(categories, categoryFromDomain))
}

func (h CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategory"

	category, err := h.service.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryFromDomain(category))
}

func (h CatalogHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ListCustomers"

	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(customers, customerFromDomain))
}

func (h CatalogHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCustomer"

	customer, err := h.service.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, customerFromDomain(customer))
}
