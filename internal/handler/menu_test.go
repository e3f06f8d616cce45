package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udonhaus/kiosk-backend/internal/domain/menu"
)

type mockMenuRepo struct {
	categories []menu.Category
	items      []menu.Item
	lastFilter *int64
}

func (m *mockMenuRepo) ListCategories(_ context.Context) ([]menu.Category, error) {
	return m.categories, nil
}

func (m *mockMenuRepo) ListItems(_ context.Context, categoryID *int64) ([]menu.Item, error) {
	m.lastFilter = categoryID
	if categoryID == nil {
		return m.items, nil
	}
	var filtered []menu.Item
	for _, it := range m.items {
		if it.CategoryID == *categoryID {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

func (m *mockMenuRepo) GetItem(_ context.Context, id int64) (*menu.Item, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, menu.ErrNotFound
}

func newMenuHandler(repo *mockMenuRepo) http.Handler {
	h := New(nil, repo, nil)
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}

func testMenu() *mockMenuRepo {
	return &mockMenuRepo{
		categories: []menu.Category{{ID: 1, Name: "Noodles"}, {ID: 2, Name: "Drinks"}},
		items: []menu.Item{
			{ID: 10, CategoryID: 1, Name: "Udon", Price: decimal.RequireFromString("13.80")},
			{ID: 11, CategoryID: 2, Name: "Green Tea", Price: decimal.RequireFromString("2.50")},
		},
	}
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListCategories(t *testing.T) {
	h := newMenuHandler(testMenu())

	w := doGet(t, h, "/api/categories")

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "Noodles", got[0]["name"])
}

func TestListMenu_All(t *testing.T) {
	h := newMenuHandler(testMenu())

	w := doGet(t, h, "/api/menu")

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestListMenu_CategoryFilter(t *testing.T) {
	repo := testMenu()
	h := newMenuHandler(repo)

	w := doGet(t, h, "/api/menu?category=2")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, int64(2), *repo.lastFilter)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Green Tea", got[0]["name"])
}

func TestListMenu_BadCategory(t *testing.T) {
	h := newMenuHandler(testMenu())

	w := doGet(t, h, "/api/menu?category=noodles")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMenuItem(t *testing.T) {
	h := newMenuHandler(testMenu())

	w := doGet(t, h, "/api/menu/10")

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Udon", got["name"])
	assert.InDelta(t, 13.80, got["price"], 0.001)
}

func TestGetMenuItem_NotFound(t *testing.T) {
	h := newMenuHandler(testMenu())

	w := doGet(t, h, "/api/menu/999")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
