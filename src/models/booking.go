package models

import "tbs/src/types"

type Booking struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	EventID       uint                `gorm:"not null" json:"event_id"`
	VenueID       uint                `gorm:"not null" json:"venue_id"`
	TicketTypeID  uint                `gorm:"not null" json:"ticket_type_id"`
	CustomerName  string              `gorm:"not null" json:"customer_name"`
	CustomerEmail string              `gorm:"not null" json:"customer_email"`
	Quantity      int                 `gorm:"not null" json:"quantity"`
	TotalAmount   float64             `gorm:"not null" json:"total_amount"`
	Status        types.BookingStatus `gorm:"default:'pending'" json:"status"`
	BookingCode   string              `gorm:"uniqueIndex;not null" json:"booking_code"`

	Event      *Event      `gorm:"foreignKey:event_id" json:"event,omitempty"`
	Venue      *Venue      `gorm:"foreignKey:venue_id" json:"venue,omitempty"`
	TicketType *TicketType `gorm:"foreignKey:ticket_type_id" json:"ticket_type,omitempty"`

	types.Timestamps
}
