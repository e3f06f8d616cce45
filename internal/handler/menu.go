package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/udonhaus/kiosk-backend/internal/domain/menu"
)

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.menu.ListCategories(r.Context())
	if err != nil {
		serverError(w, r, "list categories", err)
		return
	}

	var e jx.Encoder
	e.Arr(func(e *jx.Encoder) {
		for _, c := range categories {
			e.Obj(func(e *jx.Encoder) {
				e.Field("id", func(e *jx.Encoder) { e.Int64(c.ID) })
				e.Field("name", func(e *jx.Encoder) { e.Str(c.Name) })
			})
		}
	})
	writeJSON(w, http.StatusOK, &e)
}

// ListMenu handles GET /api/menu with an optional ?category=N filter.
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			failed(w, http.StatusBadRequest, "invalid category id")
			return
		}
		categoryID = &id
	}

	items, err := h.menu.ListItems(r.Context(), categoryID)
	if err != nil {
		serverError(w, r, "list menu", err)
		return
	}

	var e jx.Encoder
	e.Arr(func(e *jx.Encoder) {
		for i := range items {
			encodeMenuItem(e, &items[i])
		}
	})
	writeJSON(w, http.StatusOK, &e)
}

// GetMenuItem handles GET /api/menu/{id}.
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		failed(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	item, err := h.menu.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			failed(w, http.StatusNotFound, "menu item not found")
			return
		}
		serverError(w, r, "get menu item", err)
		return
	}

	var e jx.Encoder
	encodeMenuItem(&e, item)
	writeJSON(w, http.StatusOK, &e)
}

func encodeMenuItem(e *jx.Encoder, item *menu.Item) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(item.ID) })
		e.Field("categoryId", func(e *jx.Encoder) { e.Int64(item.CategoryID) })
		e.Field("name", func(e *jx.Encoder) { e.Str(item.Name) })
		e.Field("description", func(e *jx.Encoder) { e.Str(item.Description) })
		e.Field("price", func(e *jx.Encoder) { e.Float64(item.Price.InexactFloat64()) })
		e.Field("image", func(e *jx.Encoder) { e.Str(item.Image) })
	})
}
