package models

import "tbs/src/types"

type Venue struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Address  string `gorm:"not null" json:"address"`
	Capacity int    `gorm:"not null" json:"capacity"`

	Events   []Event   `gorm:"constraint:OnDelete:CASCADE" json:"events,omitempty"`
	Bookings []Booking `gorm:"constraint:OnDelete:CASCADE" json:"bookings,omitempty"`

	types.Timestamps
}
