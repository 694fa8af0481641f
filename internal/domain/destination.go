package domain

// Destination is a travel location record. Price is free text ("$1,000",
// "100 - 200") so the stored value can express ranges and currency symbols;
// ordering by price derives a numeric key from it at query time.
type Destination struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Location     string  `db:"location"`
	Description  *string `db:"description"`
	Price        string  `db:"price"`
	Popularity   float64 `db:"popularity"`
	TouristSpots *string `db:"tourist_spots"`
	LocalSpots   *string `db:"local_spots"`
	Shops        *string `db:"shops"`
}

// DestinationFields carries the scalar fields for create and full-replace
// update operations. Image handling is separate.
type DestinationFields struct {
	Name         string
	Location     string
	Description  *string
	Price        string
	Popularity   float64
	TouristSpots *string
	LocalSpots   *string
	Shops        *string
}

// DestinationView is a destination enriched for display: its ordered image
// paths and whether the requesting user has saved it. Views are built fresh
// per read and never mutated.
type DestinationView struct {
	Destination
	ImagePaths []string
	Saved      bool
}

type SortKey string

const (
	SortByName       SortKey = "name"
	SortByPopularity SortKey = "popularity"
	SortByPrice      SortKey = "price"
)

// ParseSortKey maps a raw sort selection to a known key. Anything
// unrecognized falls back to name order.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortByPopularity:
		return SortByPopularity
	case SortByPrice:
		return SortByPrice
	default:
		return SortByName
	}
}
