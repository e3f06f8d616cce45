// Command seed-menu loads the menu catalog (categories and items) into
// PostgreSQL. It reads a JSON file, optionally gzip-compressed, and upserts
// every entry so re-running against an existing database is safe.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/udonhaus/kiosk-backend/internal/domain/menu"
	"github.com/udonhaus/kiosk-backend/internal/repository"
)

type menuItemJSON struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

type categoryJSON struct {
	Name  string         `json:"name"`
	Items []menuItemJSON `json:"items"`
}

func main() {
	var (
		databaseURL string
		menuFile    string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&menuFile, "menu-file", "db/seed/menu.json", "path to menu JSON file (.json or .json.gz)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, menuFile); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, menuFile string) error {
	categories, err := readMenuFile(menuFile)
	if err != nil {
		return errors.Wrap(err, "read menu file")
	}

	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	return seedMenu(ctx, repository.NewMenuRepository(pool), categories)
}

// readMenuFile parses the menu catalog, transparently decompressing .gz files.
func readMenuFile(path string) ([]categoryJSON, error) {
	slog.Info("reading menu file", slog.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "create gzip reader for %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	var categories []categoryJSON
	if err := json.NewDecoder(r).Decode(&categories); err != nil {
		return nil, errors.Wrap(err, "parse menu JSON")
	}
	return categories, nil
}

// seedMenu upserts each category and then its items, one goroutine per
// category.
func seedMenu(ctx context.Context, repo *repository.MenuRepository, categories []categoryJSON) error {
	slog.Info("seeding menu", slog.Int("categories", len(categories)))

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range categories {
		g.Go(seedCategory(ctx, repo, c))
	}
	return g.Wait()
}

func seedCategory(ctx context.Context, repo *repository.MenuRepository, c categoryJSON) func() error {
	return func() error {
		categoryID, err := repo.UpsertCategory(ctx, c.Name)
		if err != nil {
			return errors.Wrapf(err, "upsert category %s", c.Name)
		}

		for _, it := range c.Items {
			if err := repo.UpsertItem(ctx, menu.Item{
				CategoryID:  categoryID,
				Name:        it.Name,
				Description: it.Description,
				Price:       it.Price,
				Image:       it.Image,
			}); err != nil {
				return errors.Wrapf(err, "upsert item %s", it.Name)
			}
		}

		slog.Info("seeded category", slog.String("name", c.Name), slog.Int("items", len(c.Items)))
		return nil
	}
}
