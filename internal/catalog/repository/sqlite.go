package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"acoustic-planner/internal/placement/models"
)

// ============================================================
// SQLite Repository
// ============================================================

var ErrNotFound = errors.New("template not found")

//go:embed migrations/*.sql
var migrations embed.FS

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init запускает миграции и заполняет каталог стандартными проемами.
func (r *Repository) Init(ctx context.Context) error {
	if err := r.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return r.ensureDefaults(ctx)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) List(ctx context.Context) ([]models.Template, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT name, type, width, height, bottom_offset
        FROM opening_templates
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var out []models.Template
	for rows.Next() {
		var t models.Template
		if err := rows.Scan(&t.Name, &t.Type, &t.Width, &t.Height, &t.BottomOffset); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repository) GetByName(ctx context.Context, name string) (*models.Template, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT name, type, width, height, bottom_offset
        FROM opening_templates
        WHERE name = ?
    `, name)

	var t models.Template
	if err := row.Scan(&t.Name, &t.Type, &t.Width, &t.Height, &t.BottomOffset); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ============================================================
// Migrations & Seeding
// ============================================================

func (r *Repository) runMigrations(ctx context.Context) error {
	files, err := migrations.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	for _, f := range files {
		data, err := migrations.ReadFile("migrations/" + f.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", f.Name(), err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", f.Name(), err)
		}
	}
	return nil
}

// Размеры в метрах.
var defaultTemplates = []models.Template{
	{Name: "door", Type: models.OpeningDoor, Width: 0.80, Height: 2.15, BottomOffset: 0},
	{Name: "double-door", Type: models.OpeningDoor, Width: 1.60, Height: 2.15, BottomOffset: 0},
	{Name: "window", Type: models.OpeningWindow, Width: 0.90, Height: 1.00, BottomOffset: 0.90},
	{Name: "wide-window", Type: models.OpeningWindow, Width: 1.80, Height: 1.20, BottomOffset: 0.80},
}

func (r *Repository) ensureDefaults(ctx context.Context) error {
	for _, t := range defaultTemplates {
		_, err := r.db.ExecContext(ctx, `
            INSERT OR IGNORE INTO opening_templates (name, type, width, height, bottom_offset)
            VALUES (?, ?, ?, ?, ?)
        `, t.Name, string(t.Type), t.Width, t.Height, t.BottomOffset)
		if err != nil {
			return fmt.Errorf("seed template %s: %w", t.Name, err)
		}
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
