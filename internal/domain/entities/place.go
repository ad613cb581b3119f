package entities

// PlaceSuggestion is one autocomplete hit returned by the address lookup
// collaborator.
type PlaceSuggestion struct {
	Label   string  `json:"label"`
	Address Address `json:"address"`
}
