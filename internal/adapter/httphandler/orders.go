package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/emporium/internal/core/port"
)

type OrdersHandler struct {
	service port.OrdersManager
}

func RegisterOrders(r chi.Router, service port.OrdersManager) {
	h := OrdersHandler{service}
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.PlaceOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}", h.UpdateOrder)
		r.Delete("/{id}", h.DeleteOrder)
	})
}

func (h OrdersHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.PlaceOrder"

	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}
	cmd, err := req.toDomain()
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), cmd)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, orderFromDomain(order))
}

func (h OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.ListOrders"

	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(orders, orderViewFromDomain))
}

func (h OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.GetOrder"

	order, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orderViewFromDomain(order))
}

func (h OrdersHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.UpdateOrder"

	var req orderPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}

	order, err := h.service.UpdateOrder(
		r.Context(), chi.URLParam(r, "id"), req.toDomain(),
	)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orderFromDomain(order))
}

func (h OrdersHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.DeleteOrder"

	if err := h.service.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, op, err)
		return
	}
	writeMessage(w, "Order deleted")
}
