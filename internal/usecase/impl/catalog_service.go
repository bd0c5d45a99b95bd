package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/gateway"
	"tiffin/internal/usecase"
)

// catalogService implements the CatalogUsecase interface. It keeps the
// single visible snapshot for the listing screen and a generation counter
// so a slow response can never overwrite the result of a newer query.
type catalogService struct {
	catalog gateway.CatalogGateway
	logger  *slog.Logger

	mu       sync.Mutex
	latest   uint64
	snapshot []entity.MenuService
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalog gateway.CatalogGateway, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Browse issues one remote query for the filter and returns the visible
// snapshot afterwards. Only the last-issued query may replace the snapshot:
// responses to superseded queries are discarded. Vendors never query and
// always see an empty catalog. A transport or decode failure degrades to an
// empty result for that query; it never crosses this boundary as an error.
func (srv *catalogService) Browse(ctx context.Context, session entity.Session, filter entity.CatalogFilter) []entity.MenuService {
	if session.Role == entity.RoleVendor {
		return nil
	}

	generation := srv.issue()

	items, err := srv.catalog.ListMenu(ctx, filter)
	if err != nil {
		srv.log(ctx).Warn("Catalog query failed, showing empty listing",
			slog.Any("error", err), slog.String("pincode", filter.Pincode))
		items = nil
	}

	return srv.apply(generation, items)
}

// issue hands out the next query generation.
func (srv *catalogService) issue() uint64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.latest++

	return srv.latest
}

// apply installs the response as the visible snapshot when its generation
// is still the latest issued, then returns the snapshot either way.
func (srv *catalogService) apply(generation uint64, items []entity.MenuService) []entity.MenuService {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if generation == srv.latest {
		srv.snapshot = items
	}

	out := make([]entity.MenuService, len(srv.snapshot))
	copy(out, srv.snapshot)

	return out
}
