// models/experience.go
package models

import "time"

// Experience is an artisan-offered bookable activity listing, stored in the
// "experiences" collection. Field names mirror the document schema.
type Experience struct {
	ID             string    `bson:"id" json:"id"`
	ArtisanUID     string    `bson:"artisanUid" json:"artisanUid"`
	ArtisanName    string    `bson:"artisanName" json:"artisanName"`
	Category       string    `bson:"category" json:"category"`
	Title          string    `bson:"title" json:"title"`
	MaxPersons     int       `bson:"maxPersons" json:"maxPersons"`
	AllowedGender  string    `bson:"allowedGender" json:"allowedGender"`
	City           string    `bson:"city" json:"city"`
	Description    string    `bson:"description" json:"description"`
	PricePerPerson float64   `bson:"pricePerPerson" json:"pricePerPerson"`
	DurationHours  float64   `bson:"durationHours" json:"durationHours"`
	Image          *string   `bson:"image" json:"image"` // explicit null when no image was attached
	CreatedBy      string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt      time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Normalize coerces missing or malformed fields into the safe defaults the
// views rely on, so a bad remote document never breaks rendering.
func (e *Experience) Normalize() {
	if e.MaxPersons <= 0 {
		e.MaxPersons = 1
	}
	if e.PricePerPerson < 0 {
		e.PricePerPerson = 0
	}
	if e.DurationHours <= 0 {
		e.DurationHours = 1
	}
	if e.AllowedGender == "" {
		e.AllowedGender = "any"
	}
	if e.Image != nil && *e.Image == "" {
		e.Image = nil
	}
}

// CreatedAtSeconds is the sort key for client-side ordering; a missing
// timestamp sorts as zero, i.e. earliest.
func (e *Experience) CreatedAtSeconds() int64 {
	if e.CreatedAt.IsZero() {
		return 0
	}
	return e.CreatedAt.Unix()
}
