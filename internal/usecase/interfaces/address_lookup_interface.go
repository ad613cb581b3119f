package interfaces

import (
	"context"

	"smartride/internal/domain/entities"
)

// IAddressLookup abstracts the place autocomplete / geocoding collaborator.
type IAddressLookup interface {
	Autocomplete(ctx context.Context, query string) ([]entities.PlaceSuggestion, error)
	Reverse(ctx context.Context, lat, lng float64) (entities.Address, error)
}
