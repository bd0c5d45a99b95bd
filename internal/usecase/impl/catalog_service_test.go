package impl

import (
	"context"
	"testing"

	"tiffin/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userSession() entity.Session {
	return entity.Session{Authenticated: true, Role: entity.RoleUser, Name: "Asha Rao"}
}

func TestCatalogService_BrowseReturnsRemoteItems(t *testing.T) {
	want := []entity.MenuService{
		{ID: 1, Name: "Idli Combo", Pincode: "500081", Price: 60},
		{ID: 2, Name: "Veg Thali", Pincode: "500081", Price: 120},
	}
	gw := &fakeCatalogGateway{fn: func(_ context.Context, filter entity.CatalogFilter) ([]entity.MenuService, error) {
		assert.Equal(t, "500081", filter.Pincode)

		return want, nil
	}}
	svc := NewCatalogService(gw, newTestLogger())

	got := svc.Browse(context.Background(), userSession(), entity.CatalogFilter{Pincode: "500081"})

	assert.Equal(t, want, got)
	assert.Equal(t, 1, gw.calls, "one query per filter")
}

func TestCatalogService_VendorNeverQueries(t *testing.T) {
	gw := &fakeCatalogGateway{fn: func(context.Context, entity.CatalogFilter) ([]entity.MenuService, error) {
		t.Fatal("vendor browse must not reach the gateway")

		return nil, nil
	}}
	svc := NewCatalogService(gw, newTestLogger())
	vendor := entity.Session{Authenticated: true, Role: entity.RoleVendor}

	got := svc.Browse(context.Background(), vendor, entity.CatalogFilter{Pincode: "500081"})

	assert.Empty(t, got)
	assert.Zero(t, gw.calls)
}

func TestCatalogService_FailureDegradesToEmpty(t *testing.T) {
	gw := &fakeCatalogGateway{fn: func(context.Context, entity.CatalogFilter) ([]entity.MenuService, error) {
		return nil, errors.New("connection refused")
	}}
	svc := NewCatalogService(gw, newTestLogger())

	got := svc.Browse(context.Background(), userSession(), entity.CatalogFilter{Pincode: "500081"})

	assert.Empty(t, got)
}

func TestCatalogService_SnapshotReplacedWholesale(t *testing.T) {
	responses := [][]entity.MenuService{
		{{ID: 1, Name: "Idli Combo"}, {ID: 2, Name: "Veg Thali"}},
		{{ID: 3, Name: "Dosa Plate"}},
	}
	gw := &fakeCatalogGateway{}
	gw.fn = func(context.Context, entity.CatalogFilter) ([]entity.MenuService, error) {
		return responses[gw.calls-1], nil
	}
	svc := NewCatalogService(gw, newTestLogger())

	first := svc.Browse(context.Background(), userSession(), entity.CatalogFilter{Pincode: "100"})
	second := svc.Browse(context.Background(), userSession(), entity.CatalogFilter{Pincode: "200"})

	require.Len(t, first, 2)
	require.Len(t, second, 1)
	assert.Equal(t, int64(3), second[0].ID, "older rows never merge into the new snapshot")
}

// A response to a superseded query must never overwrite the snapshot of a
// newer one, regardless of arrival order.
func TestCatalogService_StaleResponseDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})

	slowItems := []entity.MenuService{{ID: 1, Name: "Stale Meal", Pincode: "100"}}
	freshItems := []entity.MenuService{{ID: 2, Name: "Fresh Meal", Pincode: "200"}}

	gw := &fakeCatalogGateway{fn: func(_ context.Context, filter entity.CatalogFilter) ([]entity.MenuService, error) {
		if filter.Pincode == "100" {
			close(slowStarted)
			<-release

			return slowItems, nil
		}

		return freshItems, nil
	}}
	svc := NewCatalogService(gw, newTestLogger())

	var stale []entity.MenuService
	done := make(chan struct{})
	go func() {
		defer close(done)
		stale = svc.Browse(context.Background(), userSession(), entity.CatalogFilter{Pincode: "100"})
	}()

	<-slowStarted
	fresh := svc.Browse(context.Background(), userSession(), entity.CatalogFilter{Pincode: "200"})
	close(release)
	<-done

	assert.Equal(t, freshItems, fresh)
	assert.Equal(t, freshItems, stale, "late response yields the newer snapshot, not its own rows")
}
