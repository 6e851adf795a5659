package conversation

import "context"

// Catalog is the read-only venue lookup the slot-finder consults. Search
// results are expected sorted by rating descending; the machine truncates
// them to maxResults.
type Catalog interface {
	Cuisines(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
	Search(ctx context.Context, cuisine, location string) ([]VenueHit, error)
}
