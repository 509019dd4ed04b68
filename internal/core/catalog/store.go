package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("catalog-service")

// CustomCategory is a user-created category persisted in the database.
// Its keywords participate in matching exactly like built-in ones.
type CustomCategory struct {
	ID              string    `json:"id" db:"id"`
	NameEn          string    `json:"name_en" db:"name_en"`
	NameHe          string    `json:"name_he" db:"name_he"`
	Color           string    `json:"color" db:"color"`
	Icon            string    `json:"icon" db:"icon"`
	KeywordsEn      []string  `json:"keywords_en" db:"keywords_en"`
	KeywordsHe      []string  `json:"keywords_he" db:"keywords_he"`
	DefaultUnit     string    `json:"default_unit" db:"default_unit"`
	DefaultQuantity float64   `json:"default_quantity" db:"default_quantity"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Category converts the stored row into the merged-registry representation.
func (c CustomCategory) Category() Category {
	return Category{
		ID:              c.ID,
		Name:            BilingualText{En: c.NameEn, He: c.NameHe},
		Color:           c.Color,
		Icon:            c.Icon,
		IsDefault:       false,
		KeywordsEn:      c.KeywordsEn,
		KeywordsHe:      c.KeywordsHe,
		DefaultUnit:     c.DefaultUnit,
		DefaultQuantity: c.DefaultQuantity,
	}
}

// DB is the subset of the pgx pool the store needs. Satisfied by
// *pgxpool.Pool and the instrumented wrapper around it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Store persists custom categories in postgres.
type Store struct {
	db     DB
	logger *slog.Logger
}

func NewStore(db DB, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// ListCategories retrieves all custom categories in creation order.
func (s *Store) ListCategories(ctx context.Context) ([]CustomCategory, error) {
	ctx, span := tracer.Start(ctx, "catalog.ListCategories")
	defer span.End()

	query := `
		SELECT id, name_en, name_he, color, icon, keywords_en, keywords_he, default_unit, default_quantity, created_at, updated_at
		FROM custom_categories
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom categories: %w", err)
	}
	defer rows.Close()

	var categories []CustomCategory
	for rows.Next() {
		var c CustomCategory
		err := rows.Scan(
			&c.ID,
			&c.NameEn,
			&c.NameHe,
			&c.Color,
			&c.Icon,
			&c.KeywordsEn,
			&c.KeywordsHe,
			&c.DefaultUnit,
			&c.DefaultQuantity,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			s.logger.Error("Failed to scan custom category row", "error", err)
			continue
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating custom categories: %w", err)
	}

	return categories, nil
}

// CreateCategory inserts a custom category. The id must not collide with a
// built-in category id.
func (s *Store) CreateCategory(ctx context.Context, c CustomCategory) (CustomCategory, error) {
	ctx, span := tracer.Start(ctx, "catalog.CreateCategory")
	defer span.End()

	if _, exists := FindCategory(DefaultCategories, c.ID); exists {
		return CustomCategory{}, fmt.Errorf("category id %q is reserved by a built-in category", c.ID)
	}
	if c.DefaultUnit != "" && !ValidUnit(c.DefaultUnit) {
		return CustomCategory{}, fmt.Errorf("unknown default unit %q", c.DefaultUnit)
	}
	if c.DefaultUnit == "" {
		c.DefaultUnit = UnitPiece
	}
	if c.DefaultQuantity <= 0 {
		c.DefaultQuantity = 1
	}

	query := `
		INSERT INTO custom_categories (id, name_en, name_he, color, icon, keywords_en, keywords_he, default_unit, default_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query,
		c.ID,
		c.NameEn,
		c.NameHe,
		c.Color,
		c.Icon,
		c.KeywordsEn,
		c.KeywordsHe,
		c.DefaultUnit,
		c.DefaultQuantity,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return CustomCategory{}, fmt.Errorf("failed to create custom category: %w", err)
	}

	s.logger.Info("Created custom category", "category_id", c.ID)
	return c, nil
}

// UpdateCategory replaces the mutable fields of an existing custom category.
func (s *Store) UpdateCategory(ctx context.Context, c CustomCategory) (CustomCategory, error) {
	ctx, span := tracer.Start(ctx, "catalog.UpdateCategory")
	defer span.End()

	if c.DefaultUnit != "" && !ValidUnit(c.DefaultUnit) {
		return CustomCategory{}, fmt.Errorf("unknown default unit %q", c.DefaultUnit)
	}

	query := `
		UPDATE custom_categories
		SET name_en = $2, name_he = $3, color = $4, icon = $5, keywords_en = $6, keywords_he = $7, default_unit = $8, default_quantity = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query,
		c.ID,
		c.NameEn,
		c.NameHe,
		c.Color,
		c.Icon,
		c.KeywordsEn,
		c.KeywordsHe,
		c.DefaultUnit,
		c.DefaultQuantity,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return CustomCategory{}, fmt.Errorf("custom category %q not found", c.ID)
		}
		return CustomCategory{}, fmt.Errorf("failed to update custom category: %w", err)
	}

	return c, nil
}

// DeleteCategory removes a custom category. Built-in categories cannot be
// deleted.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "catalog.DeleteCategory")
	defer span.End()

	if _, exists := FindCategory(DefaultCategories, id); exists {
		return fmt.Errorf("cannot delete built-in category %q", id)
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM custom_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete custom category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("custom category %q not found", id)
	}

	s.logger.Info("Deleted custom category", "category_id", id)
	return nil
}
