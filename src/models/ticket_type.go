package models

import "tbs/src/types"

// TicketType is a price tier (VIP, Standard, Economy) shared across events.
type TicketType struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description,omitempty"`

	Bookings []Booking `gorm:"constraint:OnDelete:CASCADE" json:"bookings,omitempty"`

	types.Timestamps
}
