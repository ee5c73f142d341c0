package database

import (
	"context"
	"testing"
	"time"

	"github.com/dlaan/geopoint/internal/application/port/outbound"
	"github.com/dlaan/geopoint/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Four Dutch cities relative to Amsterdam: Utrecht ~35km, Rotterdam ~57km,
// Den Helder ~66km.
func seedCities(t *testing.T, repo *InMemoryLocationRepository, owner *entity.Owner) map[string]*entity.Location {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	cities := []struct {
		id       string
		lon, lat float64
		age      time.Duration
		owner    *entity.Owner
	}{
		{"amsterdam", 4.8897, 52.3740, 72 * time.Hour, owner},
		{"rotterdam", 4.4777, 51.9244, 48 * time.Hour, nil},
		{"utrecht", 5.1214, 52.0907, 24 * time.Hour, nil},
		{"den-helder", 4.7592, 52.9641, 0, nil},
	}

	out := make(map[string]*entity.Location, len(cities))
	for _, c := range cities {
		loc, err := entity.NewLocation(c.id, c.lon, c.lat, base.Add(-c.age), c.owner)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, loc))
		out[c.id] = loc
	}
	return out
}

func ids(locations []*entity.Location) []string {
	out := make([]string, len(locations))
	for i, l := range locations {
		out[i] = l.ID()
	}
	return out
}

func TestInMemoryList_RadiusFiftyKilometers(t *testing.T) {
	repo := NewInMemoryLocationRepository()
	seedCities(t, repo, nil)

	results, err := repo.List(context.Background(), outbound.ListQuery{
		Radius: &outbound.RadiusFilter{Latitude: 52.3740, Longitude: 4.8897, Meters: 50000},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"amsterdam", "utrecht"}, ids(results))

	require.NotNil(t, results[0].DistanceMeters())
	assert.Less(t, *results[0].DistanceMeters(), 1.0)

	require.NotNil(t, results[1].DistanceMeters())
	assert.InDelta(t, 35000, *results[1].DistanceMeters(), 1500)
}

func TestInMemoryList_RadiusHundredKilometers(t *testing.T) {
	repo := NewInMemoryLocationRepository()
	seedCities(t, repo, nil)

	results, err := repo.List(context.Background(), outbound.ListQuery{
		Radius: &outbound.RadiusFilter{Latitude: 52.3740, Longitude: 4.8897, Meters: 100000},
	})

	require.NoError(t, err)
	assert.Len(t, results, 4)
	assert.Equal(t, "amsterdam", results[0].ID())
}

func TestInMemoryList_NoRadiusKeepsDefaultOrder(t *testing.T) {
	repo := NewInMemoryLocationRepository()
	seedCities(t, repo, nil)

	results, err := repo.List(context.Background(), outbound.ListQuery{})

	require.NoError(t, err)
	// most recent first
	assert.Equal(t, []string{"den-helder", "utrecht", "rotterdam", "amsterdam"}, ids(results))
	for _, l := range results {
		assert.Nil(t, l.DistanceMeters())
	}
}

func TestInMemoryList_TimestampAscending(t *testing.T) {
	repo := NewInMemoryLocationRepository()
	seedCities(t, repo, nil)

	results, err := repo.List(context.Background(), outbound.ListQuery{Ordering: "timestamp"})

	require.NoError(t, err)
	assert.Equal(t, []string{"amsterdam", "rotterdam", "utrecht", "den-helder"}, ids(results))
}

func TestInMemoryList_OwnerFilter(t *testing.T) {
	owner := &entity.Owner{ID: "user-1", Username: "anna"}
	repo := NewInMemoryLocationRepository()
	seedCities(t, repo, owner)

	results, err := repo.List(context.Background(), outbound.ListQuery{OwnerID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"amsterdam"}, ids(results))
}

func TestInMemoryList_OwnerAndRadiusCombined(t *testing.T) {
	owner := &entity.Owner{ID: "user-1", Username: "anna"}
	repo := NewInMemoryLocationRepository()
	seedCities(t, repo, owner)

	// intersection of both predicates, still ordered by distance
	results, err := repo.List(context.Background(), outbound.ListQuery{
		OwnerID: "user-1",
		Radius:  &outbound.RadiusFilter{Latitude: 52.3740, Longitude: 4.8897, Meters: 100000},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"amsterdam"}, ids(results))
	assert.NotNil(t, results[0].DistanceMeters())
}

func TestInMemoryFindByID(t *testing.T) {
	repo := NewInMemoryLocationRepository()
	seedCities(t, repo, nil)

	loc, err := repo.FindByID(context.Background(), "utrecht")
	require.NoError(t, err)
	assert.Equal(t, 5.1214, loc.Longitude())
	assert.Equal(t, 52.0907, loc.Latitude())

	_, err = repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, entity.ErrLocationNotFound)
}

func TestInMemoryDeleteUser_ClearsOwnerReference(t *testing.T) {
	owner := &entity.Owner{ID: "user-1", Username: "anna"}
	repo := NewInMemoryLocationRepository()
	seedCities(t, repo, owner)

	repo.DeleteUser("user-1")

	loc, err := repo.FindByID(context.Background(), "amsterdam")
	require.NoError(t, err)
	assert.Nil(t, loc.Owner())
}
