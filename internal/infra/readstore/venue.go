package readstore

import (
	"context"

	"tablebook/internal/domain/conversation"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// VenueReadStore serves both the public venue queries and the slot-finder's
// Catalog port from the same table.
type VenueReadStore struct {
	db *pgxpool.Pool
}

func NewVenueReadStore(db *pgxpool.Pool) *VenueReadStore {
	return &VenueReadStore{db: db}
}

func (r *VenueReadStore) FindAll(ctx context.Context) ([]*queries.VenueView, error) {
	const q = `
		SELECT id, name, cuisine, location, price_tier, rating, created_at
		FROM venues
		ORDER BY rating DESC, name`

	return r.queryVenueViews(ctx, q)
}

func (r *VenueReadStore) FindByTags(ctx context.Context, cuisine, location string) ([]*queries.VenueView, error) {
	const q = `
		SELECT id, name, cuisine, location, price_tier, rating, created_at
		FROM venues
		WHERE ($1 = '' OR cuisine ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR location ILIKE '%' || $2 || '%')
		ORDER BY rating DESC, name`

	return r.queryVenueViews(ctx, q, cuisine, location)
}

func (r *VenueReadStore) queryVenueViews(ctx context.Context, q string, args ...any) ([]*queries.VenueView, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query venues", err)
	}
	defer rows.Close()

	var result []*queries.VenueView
	for rows.Next() {
		var v queries.VenueView
		if err := rows.Scan(&v.ID, &v.Name, &v.Cuisine, &v.Location, &v.PriceTier, &v.Rating, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read venue rows", err)
	}
	return result, nil
}

// Cuisines implements conversation.Catalog.
func (r *VenueReadStore) Cuisines(ctx context.Context) ([]string, error) {
	return r.distinctTags(ctx, `SELECT DISTINCT cuisine FROM venues`)
}

// Locations implements conversation.Catalog.
func (r *VenueReadStore) Locations(ctx context.Context) ([]string, error) {
	return r.distinctTags(ctx, `SELECT DISTINCT location FROM venues`)
}

// Search implements conversation.Catalog.
func (r *VenueReadStore) Search(ctx context.Context, cuisine, location string) ([]conversation.VenueHit, error) {
	views, err := r.FindByTags(ctx, cuisine, location)
	if err != nil {
		return nil, err
	}

	hits := make([]conversation.VenueHit, len(views))
	for i, v := range views {
		hits[i] = conversation.VenueHit{
			ID:        v.ID,
			Name:      v.Name,
			Cuisine:   v.Cuisine,
			Location:  v.Location,
			Rating:    v.Rating,
			PriceTier: v.PriceTier,
		}
	}
	return hits, nil
}

func (r *VenueReadStore) distinctTags(ctx context.Context, q string) ([]string, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query venue tags", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue tag", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read venue tags", err)
	}
	return tags, nil
}
