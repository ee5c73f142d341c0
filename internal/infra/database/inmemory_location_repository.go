package database

import (
	"context"
	"sort"
	"sync"

	"github.com/dlaan/geopoint/internal/application/port/outbound"
	"github.com/dlaan/geopoint/internal/domain/entity"
	"github.com/dlaan/geopoint/pkg/geo"
)

// InMemoryLocationRepository mirrors the Postgres repository's contract with
// a haversine radius filter. Used by tests and local development; not safe
// for anything that needs durability.
type InMemoryLocationRepository struct {
	mu        sync.RWMutex
	locations []*entity.Location
}

func NewInMemoryLocationRepository() *InMemoryLocationRepository {
	return &InMemoryLocationRepository{}
}

func (r *InMemoryLocationRepository) Save(_ context.Context, location *entity.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = append(r.locations, location)
	return nil
}

func (r *InMemoryLocationRepository) FindByID(_ context.Context, id string) (*entity.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.locations {
		if l.ID() == id {
			return copyLocation(l, nil), nil
		}
	}
	return nil, entity.ErrLocationNotFound
}

func (r *InMemoryLocationRepository) List(_ context.Context, query outbound.ListQuery) ([]*entity.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*entity.Location
	for _, l := range r.locations {
		if query.OwnerID != "" {
			if l.Owner() == nil || l.Owner().ID != query.OwnerID {
				continue
			}
		}

		if query.Radius != nil {
			d := geo.DistanceMeters(query.Radius.Latitude, query.Radius.Longitude, l.Latitude(), l.Longitude())
			if d > query.Radius.Meters {
				continue
			}
			results = append(results, copyLocation(l, &d))
			continue
		}

		results = append(results, copyLocation(l, nil))
	}

	switch {
	case query.Radius != nil:
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceMeters() < *results[j].DistanceMeters()
		})
	case query.Ordering == "timestamp":
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].RecordedAt().Before(results[j].RecordedAt())
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[j].RecordedAt().Before(results[i].RecordedAt())
		})
	}

	return results, nil
}

// DeleteUser clears the owner reference on every record owned by the user,
// matching the SQL schema's ON DELETE SET NULL.
func (r *InMemoryLocationRepository) DeleteUser(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.locations {
		if l.Owner() != nil && l.Owner().ID == userID {
			l.ClearOwner()
		}
	}
}

// copyLocation detaches stored state from what callers see, the way rows
// scanned from the database are fresh values.
func copyLocation(l *entity.Location, distance *float64) *entity.Location {
	var owner *entity.Owner
	if l.Owner() != nil {
		o := *l.Owner()
		owner = &o
	}
	cp, _ := entity.NewLocation(l.ID(), l.Longitude(), l.Latitude(), l.RecordedAt(), owner)
	if distance != nil {
		cp.AnnotateDistance(*distance)
	}
	return cp
}
