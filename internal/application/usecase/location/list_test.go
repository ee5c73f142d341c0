package location

import (
	"context"
	"testing"
	"time"

	"github.com/dlaan/geopoint/internal/application/port/outbound"
	"github.com/dlaan/geopoint/internal/domain/entity"
	"github.com/dlaan/geopoint/internal/infra/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listQueryAll() outbound.ListQuery { return outbound.ListQuery{} }

// Amsterdam, Rotterdam, Utrecht and Den Helder, oldest to newest; the
// Amsterdam record belongs to user-1.
func seededListUseCase(t *testing.T) *ListUseCaseImpl {
	t.Helper()
	repo := database.NewInMemoryLocationRepository()
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	cities := []struct {
		id       string
		lon, lat float64
		age      time.Duration
		owner    *entity.Owner
	}{
		{"amsterdam", 4.8897, 52.3740, 72 * time.Hour, &entity.Owner{ID: "user-1", Username: "anna"}},
		{"rotterdam", 4.4777, 51.9244, 48 * time.Hour, nil},
		{"utrecht", 5.1214, 52.0907, 24 * time.Hour, nil},
		{"den-helder", 4.7592, 52.9641, 0, nil},
	}
	for _, c := range cities {
		loc, err := entity.NewLocation(c.id, c.lon, c.lat, base.Add(-c.age), c.owner)
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), loc))
	}

	return NewListLocationsUseCase(repo)
}

func outputIDs(outputs []Output) []string {
	ids := make([]string, len(outputs))
	for i, o := range outputs {
		ids[i] = o.ID
	}
	return ids
}

func TestList_DefaultOrderingMostRecentFirst(t *testing.T) {
	uc := seededListUseCase(t)

	outputs, err := uc.Execute(context.Background(), ListInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{"den-helder", "utrecht", "rotterdam", "amsterdam"}, outputIDs(outputs))
	for _, o := range outputs {
		assert.Nil(t, o.Distance)
	}
}

func TestList_OrderingOverride(t *testing.T) {
	uc := seededListUseCase(t)

	outputs, err := uc.Execute(context.Background(), ListInput{Ordering: "timestamp"})
	require.NoError(t, err)
	assert.Equal(t, "amsterdam", outputs[0].ID)

	outputs, err = uc.Execute(context.Background(), ListInput{Ordering: "-timestamp"})
	require.NoError(t, err)
	assert.Equal(t, "den-helder", outputs[0].ID)
}

func TestList_UnknownOrderingFallsBackToDefault(t *testing.T) {
	uc := seededListUseCase(t)

	outputs, err := uc.Execute(context.Background(), ListInput{Ordering: "username"})

	require.NoError(t, err)
	assert.Equal(t, "den-helder", outputs[0].ID)
}

func TestList_RadiusFilterFiftyKilometers(t *testing.T) {
	uc := seededListUseCase(t)

	outputs, err := uc.Execute(context.Background(), ListInput{
		Latitude:     floatPtr(52.3740),
		Longitude:    floatPtr(4.8897),
		RadiusMeters: floatPtr(50000),
	})

	require.NoError(t, err)
	require.Equal(t, []string{"amsterdam", "utrecht"}, outputIDs(outputs))

	require.NotNil(t, outputs[0].Distance)
	assert.Less(t, *outputs[0].Distance, 1.0)
	require.NotNil(t, outputs[1].Distance)
	assert.InDelta(t, 35000, *outputs[1].Distance, 1500)
}

func TestList_RadiusFilterHundredKilometersIncludesAll(t *testing.T) {
	uc := seededListUseCase(t)

	outputs, err := uc.Execute(context.Background(), ListInput{
		Latitude:     floatPtr(52.3740),
		Longitude:    floatPtr(4.8897),
		RadiusMeters: floatPtr(100000),
	})

	require.NoError(t, err)
	assert.Len(t, outputs, 4)
	assert.Equal(t, "amsterdam", outputs[0].ID)
}

func TestList_PartialRadiusParamsReturnUnfilteredSet(t *testing.T) {
	uc := seededListUseCase(t)

	partials := []ListInput{
		{Latitude: floatPtr(52.3740)},
		{Longitude: floatPtr(4.8897)},
		{RadiusMeters: floatPtr(50000)},
		{Latitude: floatPtr(52.3740), Longitude: floatPtr(4.8897)},
		{Latitude: floatPtr(52.3740), RadiusMeters: floatPtr(50000)},
		{Longitude: floatPtr(4.8897), RadiusMeters: floatPtr(50000)},
	}

	for _, input := range partials {
		outputs, err := uc.Execute(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, []string{"den-helder", "utrecht", "rotterdam", "amsterdam"}, outputIDs(outputs))
		for _, o := range outputs {
			assert.Nil(t, o.Distance)
		}
	}
}

func TestList_RadiusWithInvalidCenter(t *testing.T) {
	uc := seededListUseCase(t)

	_, err := uc.Execute(context.Background(), ListInput{
		Latitude:     floatPtr(95.0),
		Longitude:    floatPtr(4.8897),
		RadiusMeters: floatPtr(50000),
	})

	assert.ErrorIs(t, err, entity.ErrLatitudeOutOfRange)
}

func TestList_OwnerFilter(t *testing.T) {
	uc := seededListUseCase(t)

	outputs, err := uc.Execute(context.Background(), ListInput{OwnerID: "user-1"})

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "amsterdam", outputs[0].ID)
	require.NotNil(t, outputs[0].User)
	assert.Equal(t, "anna", outputs[0].User.Username)
}

func TestList_OwnerAndRadiusIntersect(t *testing.T) {
	uc := seededListUseCase(t)

	outputs, err := uc.Execute(context.Background(), ListInput{
		OwnerID:      "user-1",
		Latitude:     floatPtr(52.3740),
		Longitude:    floatPtr(4.8897),
		RadiusMeters: floatPtr(100000),
	})

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "amsterdam", outputs[0].ID)
	assert.NotNil(t, outputs[0].Distance)
}

func TestGet_ByID(t *testing.T) {
	repo := database.NewInMemoryLocationRepository()
	loc, err := entity.NewLocation("loc-1", 4.8897, 52.3740, time.Now(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), loc))

	uc := NewGetLocationUseCase(repo)

	output, err := uc.Execute(context.Background(), "loc-1")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{4.8897, 52.3740}, output.Coordinates)

	_, err = uc.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrLocationNotFound)

	_, err = uc.Execute(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrIDIsRequired)
}
