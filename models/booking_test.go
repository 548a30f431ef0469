package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	assert.True(t, BookingPending.IsValid())
	assert.True(t, BookingConfirmed.IsValid())
	assert.True(t, BookingCancelled.IsValid())

	assert.False(t, BookingStatus("").IsValid())
	assert.False(t, BookingStatus("archived").IsValid())
	assert.False(t, BookingStatus("Pending").IsValid())
}

func TestBookingNormalize(t *testing.T) {
	b := Booking{}
	b.Normalize()
	assert.Equal(t, 1, b.NumberOfPeople)
	assert.Equal(t, float64(0), b.TotalPrice)
	assert.Equal(t, BookingPending, b.Status)

	b = Booking{NumberOfPeople: 4, TotalPrice: 360, Status: BookingConfirmed}
	b.Normalize()
	assert.Equal(t, 4, b.NumberOfPeople)
	assert.Equal(t, float64(360), b.TotalPrice)
	assert.Equal(t, BookingConfirmed, b.Status)
}

func TestParseAccountType(t *testing.T) {
	assert.Equal(t, AccountArtisan, ParseAccountType("artisan"))
	assert.Equal(t, AccountUser, ParseAccountType("user"))
	assert.Equal(t, AccountTourist, ParseAccountType("tourist"))
	assert.Equal(t, AccountTourist, ParseAccountType(""))
	assert.Equal(t, AccountTourist, ParseAccountType("admin"))
}

func TestAccountTypeCanBook(t *testing.T) {
	assert.True(t, AccountTourist.CanBook())
	assert.True(t, AccountUser.CanBook())
	assert.False(t, AccountArtisan.CanBook())
}
