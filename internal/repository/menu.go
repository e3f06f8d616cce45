package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udonhaus/kiosk-backend/internal/domain/menu"
)

const (
	listCategoriesSQL = `SELECT id, name FROM categories ORDER BY name`

	listMenuItemsSQL = `SELECT id, category_id, name, description, price, image
		FROM menu_items ORDER BY name`

	listMenuItemsByCategorySQL = `SELECT id, category_id, name, description, price, image
		FROM menu_items WHERE category_id = $1 ORDER BY name`

	getMenuItemSQL = `SELECT id, category_id, name, description, price, image
		FROM menu_items WHERE id = $1`

	upsertCategorySQL = `INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	upsertMenuItemSQL = `INSERT INTO menu_items (category_id, name, description, price, image)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (category_id, name) DO UPDATE SET
			description = EXCLUDED.description,
			price       = EXCLUDED.price,
			image       = EXCLUDED.image`
)

var _ menu.Repository = (*MenuRepository)(nil)

// MenuRepository implements menu.Repository backed by PostgreSQL.
type MenuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a MenuRepository that uses the given pool.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

// ListCategories returns all categories ordered by name.
func (r *MenuRepository) ListCategories(ctx context.Context) ([]menu.Category, error) {
	rows, err := r.pool.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (menu.Category, error) {
		var c menu.Category
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
}

// ListItems returns menu items ordered by name, optionally filtered by
// category.
func (r *MenuRepository) ListItems(ctx context.Context, categoryID *int64) ([]menu.Item, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if categoryID != nil {
		rows, err = r.pool.Query(ctx, listMenuItemsByCategorySQL, *categoryID)
	} else {
		rows, err = r.pool.Query(ctx, listMenuItemsSQL)
	}
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	return pgx.CollectRows(rows, scanMenuItem)
}

// GetItem returns a single menu item by its identifier.
func (r *MenuRepository) GetItem(ctx context.Context, id int64) (*menu.Item, error) {
	rows, err := r.pool.Query(ctx, getMenuItemSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting menu item %d: %w", id, err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, scanMenuItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, menu.ErrNotFound
		}
		return nil, fmt.Errorf("getting menu item %d: %w", id, err)
	}
	return &item, nil
}

// UpsertCategory inserts the category or returns the id of the existing one.
// Used by the menu seeder.
func (r *MenuRepository) UpsertCategory(ctx context.Context, name string) (int64, error) {
	var id int64
	if err := r.pool.QueryRow(ctx, upsertCategorySQL, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("upserting category %q: %w", name, err)
	}
	return id, nil
}

// UpsertItem inserts the menu item or refreshes its description, price, and
// image when a row with the same name already exists in the category.
func (r *MenuRepository) UpsertItem(ctx context.Context, item menu.Item) error {
	_, err := r.pool.Exec(ctx, upsertMenuItemSQL,
		item.CategoryID, item.Name, item.Description, item.Price, item.Image)
	if err != nil {
		return fmt.Errorf("upserting menu item %q: %w", item.Name, err)
	}
	return nil
}

func scanMenuItem(row pgx.CollectableRow) (menu.Item, error) {
	var item menu.Item
	err := row.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.Price, &item.Image)
	return item, err
}
