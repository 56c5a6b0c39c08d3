package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/emporium/internal/core/port"
)

type ProductsHandler struct {
	service port.ProductsManager
}

func RegisterProducts(r chi.Router, service port.ProductsManager) {
	h := ProductsHandler{service}
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)
		r.Patch("/{id}", h.UpdateProduct)
		r.Delete("/{id}", h.DeleteProduct)
		r.Get("/{id}/rating", h.GetProductRating)
	})
}

func (h ProductsHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.CreateProduct"

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}
	product, err := req.toDomain()
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	created, err := h.service.CreateProduct(r.Context(), product)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, productFromDomain(created))
}

func (h ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.ListProducts"

	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(products, productFromDomain))
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"

	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, productFromDomain(product))
}

func (h ProductsHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.UpdateProduct"

	var req productPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}
	patch, err := req.toDomain()
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	updated, err := h.service.UpdateProduct(
		r.Context(), chi.URLParam(r, "id"), patch,
	)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, productFromDomain(updated))
}

func (h ProductsHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.DeleteProduct"

	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, op, err)
		return
	}
	writeMessage(w, "Product deleted successfully")
}

func (h ProductsHandler) GetProductRating(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProductRating"

	rating, err := h.service.GetProductRating(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, ratingFromDomain(rating))
}
