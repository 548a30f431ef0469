// models/booking.go
package models

import "time"

// BookingStatus is the three-value booking lifecycle.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is one of the accepted values. Any
// transition between valid statuses is allowed; only the enum is enforced.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking is a reservation made against one Experience, stored in the
// "booking" collection (with a legacy "bookings" fallback for updates).
// The experience title is denormalized at creation time and never re-synced.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	ExperienceID    string        `bson:"experienceId,omitempty" json:"experienceId,omitempty"`
	ExperienceTitle string        `bson:"experienceTitle" json:"experienceTitle"`
	UserID          string        `bson:"userID" json:"userID"`
	ArtisanID       string        `bson:"artisanID" json:"artisanID"`
	BookingDate     time.Time     `bson:"bookingDate" json:"bookingDate"`
	NumberOfPeople  int           `bson:"numberOfPeople" json:"numberOfPeople"`
	TotalPrice      float64       `bson:"totalPrice" json:"totalPrice"`
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UserName        string        `bson:"userName,omitempty" json:"userName,omitempty"`
	UserEmail       string        `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	UserPhone       string        `bson:"userPhone,omitempty" json:"userPhone,omitempty"`
}

// Normalize coerces missing fields into safe defaults.
func (b *Booking) Normalize() {
	if b.NumberOfPeople <= 0 {
		b.NumberOfPeople = 1
	}
	if b.TotalPrice < 0 {
		b.TotalPrice = 0
	}
	if !b.Status.IsValid() {
		b.Status = BookingPending
	}
}

// CreatedAtSeconds is the client-side sort key; missing timestamps sort
// earliest.
func (b *Booking) CreatedAtSeconds() int64 {
	if b.CreatedAt.IsZero() {
		return 0
	}
	return b.CreatedAt.Unix()
}
