package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlaan/geopoint/internal/application/port/outbound"
	"github.com/dlaan/geopoint/internal/domain/entity"
)

// LocationRepositoryImpl persists locations in Postgres and delegates the
// spatial work to PostGIS: ST_DWithin for the radius predicate and
// ST_Distance for the annotation, both on the geography type so values are
// geodesic meters.
type LocationRepositoryImpl struct {
	Db *sql.DB
}

func NewLocationRepository(db *sql.DB) *LocationRepositoryImpl {
	return &LocationRepositoryImpl{Db: db}
}

func (r *LocationRepositoryImpl) Save(ctx context.Context, location *entity.Location) error {
	var ownerID sql.NullString
	if owner := location.Owner(); owner != nil {
		ownerID = sql.NullString{String: owner.ID, Valid: true}
	}

	_, err := r.Db.ExecContext(ctx, `
		INSERT INTO locations (id, location, recorded_at, owner_id)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4, $5)`,
		location.ID(), location.Longitude(), location.Latitude(), location.RecordedAt(), ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}
	return nil
}

func (r *LocationRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Location, error) {
	row := r.Db.QueryRowContext(ctx, `
		SELECT l.id, ST_X(l.location::geometry), ST_Y(l.location::geometry),
		       l.recorded_at, u.id, u.username, NULL::float8
		FROM locations l
		LEFT JOIN users u ON u.id = l.owner_id
		WHERE l.id = $1`,
		id,
	)

	loc, err := scanLocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return loc, nil
}

func (r *LocationRepositoryImpl) List(ctx context.Context, query outbound.ListQuery) ([]*entity.Location, error) {
	sqlText, args := buildListQuery(query)

	rows, err := r.Db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var results []*entity.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		results = append(results, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return results, nil
}

// buildListQuery assembles the listing SQL. With a radius filter the row set
// is restricted with ST_DWithin (closed boundary, meters), annotated with
// ST_Distance and ordered nearest-first; otherwise ordering is by timestamp,
// most recent first unless overridden.
func buildListQuery(query outbound.ListQuery) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)

	distanceExpr := "NULL::float8"
	if query.Radius != nil {
		args = append(args, query.Radius.Longitude, query.Radius.Latitude)
		distanceExpr = "ST_Distance(l.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)"
	}

	sb.WriteString("SELECT l.id, ST_X(l.location::geometry), ST_Y(l.location::geometry), ")
	sb.WriteString("l.recorded_at, u.id, u.username, ")
	sb.WriteString(distanceExpr)
	sb.WriteString(" AS distance FROM locations l LEFT JOIN users u ON u.id = l.owner_id")

	var conditions []string
	if query.Radius != nil {
		args = append(args, query.Radius.Meters)
		conditions = append(conditions,
			"ST_DWithin(l.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)")
	}
	if query.OwnerID != "" {
		args = append(args, query.OwnerID)
		conditions = append(conditions, fmt.Sprintf("l.owner_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	switch {
	case query.Radius != nil:
		sb.WriteString(" ORDER BY distance ASC")
	case query.Ordering == "timestamp":
		sb.WriteString(" ORDER BY l.recorded_at ASC")
	default:
		sb.WriteString(" ORDER BY l.recorded_at DESC")
	}

	return sb.String(), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (*entity.Location, error) {
	var (
		id            string
		longitude     float64
		latitude      float64
		recordedAt    time.Time
		ownerID       sql.NullString
		ownerUsername sql.NullString
		distance      sql.NullFloat64
	)

	if err := row.Scan(&id, &longitude, &latitude, &recordedAt, &ownerID, &ownerUsername, &distance); err != nil {
		return nil, err
	}

	var owner *entity.Owner
	if ownerID.Valid {
		owner = &entity.Owner{ID: ownerID.String, Username: ownerUsername.String}
	}

	loc, err := entity.NewLocation(id, longitude, latitude, recordedAt, owner)
	if err != nil {
		return nil, err
	}
	if distance.Valid {
		loc.AnnotateDistance(distance.Float64)
	}
	return loc, nil
}
