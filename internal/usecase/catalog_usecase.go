package usecase

import (
	"context"

	"tiffin/internal/domain/entity"
)

// CatalogUsecase serves the listing screen's visible snapshot of food
// services.
type CatalogUsecase interface {
	// Browse issues a remote query for the filter and returns the visible
	// snapshot. Vendors never trigger a query and always see an empty
	// snapshot. A failed or superseded query never clobbers a newer
	// snapshot; failures degrade to an empty result, not an error.
	Browse(ctx context.Context, session entity.Session, filter entity.CatalogFilter) []entity.MenuService
}
