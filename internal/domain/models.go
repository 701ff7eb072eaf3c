package domain

import "fmt"

// MatchRecord is one row returned by the color lookup service
type MatchRecord struct {
	FirstName     string `json:"firstName" toml:"first_name"`
	FavoriteColor string `json:"favoriteColor" toml:"favorite_color"` // raw color value, never validated
}

// DisplayKey identifies a record in a rendered list. The position is part of
// the key so duplicate names stay distinct.
func (r MatchRecord) DisplayKey(index int) string {
	return fmt.Sprintf("%s-%d", r.FirstName, index)
}
