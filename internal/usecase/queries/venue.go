package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=venue.go -destination=../../../tests/mock/queries/venue.go -package=queriesmock

type VenueView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Cuisine   string    `json:"cuisine"`
	Location  string    `json:"location"`
	PriceTier string    `json:"price_tier"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type VenueQueries interface {
	List(ctx context.Context) ([]*VenueView, error)
	Search(ctx context.Context, cuisine, location string) ([]*VenueView, error)
}

type VenueReadStore interface {
	FindAll(ctx context.Context) ([]*VenueView, error)
	FindByTags(ctx context.Context, cuisine, location string) ([]*VenueView, error)
}

type venueQueriesImpl struct {
	store VenueReadStore
}

func NewVenueQueries(store VenueReadStore) VenueQueries {
	return &venueQueriesImpl{store: store}
}

func (q *venueQueriesImpl) List(ctx context.Context) ([]*VenueView, error) {
	return q.store.FindAll(ctx)
}

func (q *venueQueriesImpl) Search(ctx context.Context, cuisine, location string) ([]*VenueView, error) {
	return q.store.FindByTags(ctx, cuisine, location)
}
