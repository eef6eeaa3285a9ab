package presentation

import (
	"context"
	"net/http"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/presentation/helpers"
)

type quantityRequest struct {
	Quantity helpers.Text `json:"quantity"`
}

func (h *AdminHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	snap, err := h.revenue.Load(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, snap)
}

func (h *AdminHandler) stockView() map[string]any {
	active := h.stock.ActiveType()
	return map[string]any{
		"type":  active,
		"label": active.Label(),
		"page":  h.stock.CurrentPage(),
	}
}

func (h *AdminHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, h.stockView())
}

// ReloadStock refetches the inventory, switching family first when ?type= is given.
func (h *AdminHandler) ReloadStock(w http.ResponseWriter, r *http.Request) {
	var err error
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, perr := domain.ParseStockType(raw)
		if perr != nil {
			helpers.HttpError(w, http.StatusBadRequest, perr.Error())
			return
		}
		err = h.stock.SwitchType(r.Context(), t)
	} else {
		err = h.stock.Load(r.Context())
	}
	if err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.stockView())
}

func (h *AdminHandler) ChangeStockPage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	h.stock.SetPage(req.Page)
	helpers.WriteJSON(w, http.StatusOK, h.stockView())
}

// AddStock receives warehouse stock; product id 0 registers a new stock entry.
func (h *AdminHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	h.stockChange(w, r, helpers.IDParamOrZero, h.stock.AddStock)
}

func (h *AdminHandler) DistributeStock(w http.ResponseWriter, r *http.Request) {
	h.stockChange(w, r, helpers.IDParam, h.stock.Distribute)
}

func (h *AdminHandler) UpdateStockQuantity(w http.ResponseWriter, r *http.Request) {
	h.stockChange(w, r, helpers.IDParam, h.stock.UpdateQuantity)
}

func (h *AdminHandler) stockChange(
	w http.ResponseWriter,
	r *http.Request,
	readID func(*http.Request, string) (int64, error),
	op func(context.Context, int64, string) error,
) {
	id, err := readID(r, "id")
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req quantityRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := op(r.Context(), id, string(req.Quantity)); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.stockView())
}

func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, h.reviews.Rows())
}

func (h *AdminHandler) ReloadReviews(w http.ResponseWriter, r *http.Request) {
	if err := h.reviews.Load(r.Context()); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.reviews.Rows())
}

func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.IDParam(r, "id")
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.reviews.Delete(r.Context(), id); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.reviews.Rows())
}

func (h *AdminHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := helpers.IntQuery(r, "limit", defaultNotificationLimit)
	helpers.WriteJSON(w, http.StatusOK, h.journal.Recent(limit))
}

func (h *AdminHandler) NotificationHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		helpers.HttpError(w, http.StatusNotImplemented, "notification history is not configured")
		return
	}
	limit := helpers.IntQuery(r, "limit", defaultNotificationLimit)
	items, err := h.history.ListRecent(r.Context(), limit)
	if err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, items)
}
