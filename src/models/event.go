package models

import (
	"tbs/src/types"
	"time"
)

type Event struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"index;not null" json:"name"`
	Slug        string    `gorm:"index" json:"slug,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `gorm:"not null" json:"date"`
	VenueID     uint      `gorm:"not null" json:"venue_id"`
	Capacity    int       `gorm:"not null" json:"capacity"`

	Venue    *Venue    `gorm:"foreignKey:venue_id" json:"venue,omitempty"`
	Bookings []Booking `gorm:"constraint:OnDelete:CASCADE" json:"bookings,omitempty"`

	types.Timestamps
}
