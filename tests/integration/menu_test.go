//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestListCategories(t *testing.T) {
	resp := doGet(t, "/api/categories")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	categories := decodeJSON[[]categoryResponse](t, resp)
	if len(categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(categories))
	}
}

func TestListMenu_ByCategory(t *testing.T) {
	resp := doGet(t, "/api/categories")
	categories := decodeJSON[[]categoryResponse](t, resp)
	resp.Body.Close()

	var drinks *categoryResponse
	for i := range categories {
		if categories[i].Name == "Drinks" {
			drinks = &categories[i]
		}
	}
	if drinks == nil {
		t.Fatal("Drinks category not seeded")
	}

	resp = doGet(t, fmt.Sprintf("/api/menu?category=%d", drinks.ID))
	defer resp.Body.Close()

	items := decodeJSON[[]menuItemResponse](t, resp)
	if len(items) != 3 {
		t.Fatalf("expected 3 drinks, got %d", len(items))
	}
	for _, it := range items {
		if it.CategoryID != drinks.ID {
			t.Errorf("item %q has category %d, want %d", it.Name, it.CategoryID, drinks.ID)
		}
	}
}

func TestGetMenuItem(t *testing.T) {
	resp := doGet(t, "/api/menu")
	items := decodeJSON[[]menuItemResponse](t, resp)
	resp.Body.Close()
	if len(items) == 0 {
		t.Fatal("no menu items seeded")
	}

	resp = doGet(t, fmt.Sprintf("/api/menu/%d", items[0].ID))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	item := decodeJSON[menuItemResponse](t, resp)
	if item.Name != items[0].Name {
		t.Fatalf("got item %q, want %q", item.Name, items[0].Name)
	}
}

func TestGetMenuItem_NotFound(t *testing.T) {
	resp := doGet(t, "/api/menu/999999")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
