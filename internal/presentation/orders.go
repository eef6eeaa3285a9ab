package presentation

import (
	"net/http"

	"github.com/RaikyD/charms-admin/internal/application"
	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/presentation/helpers"
)

type pageRequest struct {
	Page      int    `json:"page"`
	Direction string `json:"direction"`
}

type assignRequest struct {
	ShipperID int64 `json:"shipperId"`
}

type statusRequest struct {
	Status *int `json:"status"`
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"loading": h.orders.Loading(),
		"page":    h.orders.CurrentPage(),
	})
}

func (h *AdminHandler) ReloadOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Refresh(r.Context()); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"page":     h.orders.CurrentPage(),
		"shippers": h.orders.Shippers(),
	})
}

// ChangeOrdersPage accepts either an absolute page or a next/prev direction.
// Requests outside the valid range leave the page unchanged.
func (h *AdminHandler) ChangeOrdersPage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	switch req.Direction {
	case "next":
		h.orders.NextPage()
	case "prev":
		h.orders.PrevPage()
	case "":
		h.orders.SetPage(req.Page)
	default:
		helpers.HttpError(w, http.StatusBadRequest, "direction must be next or prev")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.orders.CurrentPage())
}

func (h *AdminHandler) SelectOrder(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.IDParam(r, "id")
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	ord, ok := h.orders.Select(id)
	if !ok {
		helpers.HttpError(w, http.StatusNotFound, "order not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, application.NewOrderDetail(ord))
}

func (h *AdminHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	ord, ok := h.orders.Detail()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, application.NewOrderDetail(ord))
}

func (h *AdminHandler) CloseSelection(w http.ResponseWriter, r *http.Request) {
	h.orders.CloseDetail()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.IDParam(r, "id")
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.orders.Delete(r.Context(), id); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.orders.CurrentPage())
}

func (h *AdminHandler) AssignShipper(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.IDParam(r, "id")
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req assignRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.ShipperID <= 0 {
		helpers.HttpError(w, http.StatusBadRequest, "shipperId is required")
		return
	}
	if err := h.orders.Assign(r.Context(), id, req.ShipperID); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.orders.CurrentPage())
}

func (h *AdminHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	id, status, ok := h.statusRequest(w, r)
	if !ok {
		return
	}
	ds := domain.DeliveryStatus(status)
	if !ds.Valid() {
		helpers.HttpError(w, http.StatusBadRequest, "unknown delivery status")
		return
	}
	if err := h.orders.UpdateDelivery(r.Context(), id, ds); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.orders.CurrentPage())
}

func (h *AdminHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, status, ok := h.statusRequest(w, r)
	if !ok {
		return
	}
	ps := domain.PaymentStatus(status)
	if !ps.Valid() {
		helpers.HttpError(w, http.StatusBadRequest, "unknown payment status")
		return
	}
	if err := h.orders.UpdatePayment(r.Context(), id, ps); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.orders.CurrentPage())
}

func (h *AdminHandler) statusRequest(w http.ResponseWriter, r *http.Request) (int64, int, bool) {
	id, err := helpers.IDParam(r, "id")
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	var req statusRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return 0, 0, false
	}
	if req.Status == nil {
		helpers.HttpError(w, http.StatusBadRequest, "status is required")
		return 0, 0, false
	}
	return id, *req.Status, true
}

func (h *AdminHandler) ListShippers(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, h.orders.Shippers())
}
