package presentation

import (
	"net/http"
	"strconv"

	"github.com/RaikyD/charms-admin/internal/application"
	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/presentation/helpers"
)

// charmFilterRequest carries the search inputs as typed; numbers may arrive
// as JSON strings or numbers.
type charmFilterRequest struct {
	Name       helpers.Text `json:"name"`
	MinPrice   helpers.Text `json:"minPrice"`
	MaxPrice   helpers.Text `json:"maxPrice"`
	CategoryID helpers.Text `json:"categoryId"`
}

func filterRequestOf(f domain.CharmFilter) charmFilterRequest {
	req := charmFilterRequest{Name: helpers.Text(f.Name)}
	if f.MinPrice != nil {
		req.MinPrice = helpers.Text(f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		req.MaxPrice = helpers.Text(f.MaxPrice.String())
	}
	if f.CategoryID != nil {
		req.CategoryID = helpers.Text(strconv.FormatInt(*f.CategoryID, 10))
	}
	return req
}

func (h *AdminHandler) charmsView() map[string]any {
	return map[string]any{
		"filter": filterRequestOf(h.charms.Filter()),
		"error":  h.charms.LoadError(),
		"page":   h.charms.CurrentPage(),
	}
}

func (h *AdminHandler) ListCharms(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, h.charmsView())
}

func (h *AdminHandler) ReloadCharms(w http.ResponseWriter, r *http.Request) {
	if err := h.charms.Load(r.Context()); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.charmsView())
}

func (h *AdminHandler) ChangeCharmsPage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	h.charms.SetPage(req.Page)
	helpers.WriteJSON(w, http.StatusOK, h.charmsView())
}

// FilterCharms replaces the search criteria; the list restarts at page 1.
func (h *AdminHandler) FilterCharms(w http.ResponseWriter, r *http.Request) {
	var req charmFilterRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	f, err := application.ParseCharmFilter(string(req.Name), string(req.MinPrice), string(req.MaxPrice), string(req.CategoryID))
	if err != nil {
		h.writeConsoleError(w, err)
		return
	}
	h.charms.SetFilter(f)
	helpers.WriteJSON(w, http.StatusOK, h.charmsView())
}

func (h *AdminHandler) DeleteCharm(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.IDParam(r, "id")
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.charms.Delete(r.Context(), id); err != nil {
		h.writeConsoleError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, h.charmsView())
}
