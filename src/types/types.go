package types

import (
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type ListQueryParams struct {
	Skip  int `form:"skip,default=0" binding:"omitempty,gte=0"`
	Limit int `form:"limit,default=100" binding:"omitempty,gt=0"`
}

type CreateVenueRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

type UpdateVenueRequestBody struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Capacity *int    `json:"capacity,omitempty" binding:"omitempty,gt=0"`
}

type CreateEventRequestBody struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date" binding:"required"`
	VenueID     uint      `json:"venue_id" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required,gt=0"`
}

type UpdateEventRequestBody struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	VenueID     *uint      `json:"venue_id,omitempty"`
	Capacity    *int       `json:"capacity,omitempty" binding:"omitempty,gt=0"`
}

type CreateTicketTypeRequestBody struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description,omitempty"`
}

type UpdateTicketTypeRequestBody struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty"`
}

type CreateBookingRequestBody struct {
	EventID       uint   `json:"event_id" binding:"required"`
	VenueID       uint   `json:"venue_id" binding:"required"`
	TicketTypeID  uint   `json:"ticket_type_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateBookingRequestBody struct {
	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty" binding:"omitempty,email"`
	Quantity      *int    `json:"quantity,omitempty" binding:"omitempty,gt=0"`
}

type BookingStatusUpdateRequestBody struct {
	Status BookingStatus `json:"status" binding:"required,bookingstatus"`
}

type SearchBookingsQueryParams struct {
	EventName  string `form:"event_name"`
	VenueName  string `form:"venue_name"`
	TicketType string `form:"ticket_type"`
	Status     string `form:"status" binding:"omitempty,bookingstatus"`
}

type TicketTypeAvailability struct {
	TicketTypeID   uint    `json:"ticket_type_id"`
	TicketTypeName string  `json:"ticket_type_name"`
	Price          float64 `json:"price"`
	Booked         int     `json:"booked"`
	Available      int     `json:"available"`
}

type EventAvailability struct {
	EventID          uint                     `json:"event_id"`
	EventName        string                   `json:"event_name"`
	TotalCapacity    int                      `json:"total_capacity"`
	BookedTickets    int                      `json:"booked_tickets"`
	AvailableTickets int                      `json:"available_tickets"`
	TicketTypes      []TicketTypeAvailability `json:"ticket_types_available"`
}

type EventRevenue struct {
	EventID            uint    `json:"event_id"`
	EventName          string  `json:"event_name"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalBookings      int     `json:"total_bookings"`
	AverageTicketPrice float64 `json:"average_ticket_price"`
}

type VenueOccupancy struct {
	VenueID       uint    `json:"venue_id"`
	VenueName     string  `json:"venue_name"`
	TotalCapacity int     `json:"total_capacity"`
	TotalBooked   int     `json:"total_booked"`
	OccupancyRate float64 `json:"occupancy_rate"`
	TotalEvents   int     `json:"total_events"`
}

type BookingStats struct {
	TotalBookings     int     `json:"total_bookings"`
	TotalEvents       int     `json:"total_events"`
	TotalVenues       int     `json:"total_venues"`
	TotalRevenue      float64 `json:"total_revenue"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
}
