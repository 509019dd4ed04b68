package catalog

import (
	"context"
	"log/slog"
)

// CustomSource yields the user-created categories merged into the registry.
// A nil source means only built-in categories exist.
type CustomSource interface {
	ListCategories(ctx context.Context) ([]CustomCategory, error)
}

// Registry is the merged view of built-in and custom categories. Custom
// entries are re-read on every Categories call, so mutations made between
// calls are always visible. "other" stays last in precedence regardless of
// how many custom categories exist.
type Registry struct {
	source CustomSource
	logger *slog.Logger
}

func NewRegistry(source CustomSource, logger *slog.Logger) *Registry {
	return &Registry{
		source: source,
		logger: logger,
	}
}

// Categories returns the current merged, ordered category list. Failures
// reading custom categories are logged and degrade to the built-in set.
func (r *Registry) Categories(ctx context.Context) []Category {
	merged := make([]Category, 0, len(DefaultCategories))
	for _, c := range DefaultCategories {
		if c.ID != OtherCategoryID {
			merged = append(merged, c)
		}
	}

	if r.source != nil {
		custom, err := r.source.ListCategories(ctx)
		if err != nil {
			r.logger.Warn("Failed to load custom categories, using built-ins only", "error", err)
		}
		for _, c := range custom {
			if _, exists := FindCategory(merged, c.ID); exists {
				continue
			}
			merged = append(merged, c.Category())
		}
	}

	if other, ok := FindCategory(DefaultCategories, OtherCategoryID); ok {
		merged = append(merged, other)
	}
	return merged
}

// ByID looks up a category in the current merged registry.
func (r *Registry) ByID(ctx context.Context, id string) (Category, bool) {
	return FindCategory(r.Categories(ctx), id)
}
