package common

import (
	"strings"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"
	"tbs/src/utils"
)

// EventAvailability reports remaining capacity for an event together with a
// per-ticket-type breakdown. Capacity is a single flat pool: every ticket
// type reports the event-wide remaining figure, not a per-type allotment.
func EventAvailability(eventID uint) (*types.EventAvailability, error) {
	event, err := GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	conn := db.GetDb()

	var booked int64
	if err := conn.
		Model(&models.Booking{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("event_id = ? AND status = ?", eventID, types.BOOKING_CONFIRMED).
		Scan(&booked).
		Error; err != nil {
		return nil, err
	}
	available := event.Capacity - int(booked)

	var ticketTypes []models.TicketType
	if err := conn.Find(&ticketTypes).Error; err != nil {
		return nil, err
	}
	breakdown := make([]types.TicketTypeAvailability, 0, len(ticketTypes))
	for _, tt := range ticketTypes {
		var bookedForType int64
		if err := conn.
			Model(&models.Booking{}).
			Select("COALESCE(SUM(quantity), 0)").
			Where("event_id = ? AND ticket_type_id = ? AND status = ?", eventID, tt.ID, types.BOOKING_CONFIRMED).
			Scan(&bookedForType).
			Error; err != nil {
			return nil, err
		}
		breakdown = append(breakdown, types.TicketTypeAvailability{
			TicketTypeID:   tt.ID,
			TicketTypeName: tt.Name,
			Price:          tt.Price,
			Booked:         int(bookedForType),
			Available:      available,
		})
	}

	return &types.EventAvailability{
		EventID:          event.ID,
		EventName:        event.Name,
		TotalCapacity:    event.Capacity,
		BookedTickets:    int(booked),
		AvailableTickets: available,
		TicketTypes:      breakdown,
	}, nil
}

// EventRevenue aggregates confirmed bookings for one event. The average is
// the mean of per-booking unit prices, not revenue divided by ticket count.
// NULL aggregates over an empty set map to zero.
func EventRevenue(eventID uint) (*types.EventRevenue, error) {
	event, err := GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	conn := db.GetDb()

	var result struct {
		TotalRevenue  float64
		TotalBookings int64
		AvgUnitPrice  float64
	}
	if err := conn.
		Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_revenue, COUNT(id) AS total_bookings, COALESCE(AVG(total_amount / quantity), 0) AS avg_unit_price").
		Where("event_id = ? AND status = ?", eventID, types.BOOKING_CONFIRMED).
		Scan(&result).
		Error; err != nil {
		return nil, err
	}

	return &types.EventRevenue{
		EventID:            event.ID,
		EventName:          event.Name,
		TotalRevenue:       result.TotalRevenue,
		TotalBookings:      int(result.TotalBookings),
		AverageTicketPrice: utils.Round2(result.AvgUnitPrice),
	}, nil
}

// VenueOccupancy sums confirmed booking quantities across all events at a
// venue. The rate is zero when the venue has no capacity.
func VenueOccupancy(venueID uint) (*types.VenueOccupancy, error) {
	venue, err := GetVenue(venueID)
	if err != nil {
		return nil, err
	}
	conn := db.GetDb()

	var totalEvents int64
	if err := conn.
		Model(&models.Event{}).
		Where(&models.Event{VenueID: venueID}).
		Count(&totalEvents).
		Error; err != nil {
		return nil, err
	}

	var totalBooked int64
	if err := conn.
		Model(&models.Booking{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("venue_id = ? AND status = ?", venueID, types.BOOKING_CONFIRMED).
		Scan(&totalBooked).
		Error; err != nil {
		return nil, err
	}

	var rate float64
	if venue.Capacity > 0 {
		rate = utils.Round2(float64(totalBooked) / float64(venue.Capacity) * 100)
	}

	return &types.VenueOccupancy{
		VenueID:       venue.ID,
		VenueName:     venue.Name,
		TotalCapacity: venue.Capacity,
		TotalBooked:   int(totalBooked),
		OccupancyRate: rate,
		TotalEvents:   int(totalEvents),
	}, nil
}

// GetBookingStats returns the global counters shown on the dashboard.
func GetBookingStats() (*types.BookingStats, error) {
	conn := db.GetDb()

	var totalBookings, totalEvents, totalVenues int64
	if err := conn.Model(&models.Booking{}).Count(&totalBookings).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Event{}).Count(&totalEvents).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Venue{}).Count(&totalVenues).Error; err != nil {
		return nil, err
	}

	statusCount := func(status types.BookingStatus) (int64, error) {
		var n int64
		err := conn.
			Model(&models.Booking{}).
			Where(&models.Booking{Status: status}).
			Count(&n).
			Error
		return n, err
	}
	confirmed, err := statusCount(types.BOOKING_CONFIRMED)
	if err != nil {
		return nil, err
	}
	pending, err := statusCount(types.BOOKING_PENDING)
	if err != nil {
		return nil, err
	}
	cancelled, err := statusCount(types.BOOKING_CANCELLED)
	if err != nil {
		return nil, err
	}

	var totalRevenue float64
	if err := conn.
		Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", types.BOOKING_CONFIRMED).
		Scan(&totalRevenue).
		Error; err != nil {
		return nil, err
	}

	return &types.BookingStats{
		TotalBookings:     int(totalBookings),
		TotalEvents:       int(totalEvents),
		TotalVenues:       int(totalVenues),
		TotalRevenue:      totalRevenue,
		ConfirmedBookings: int(confirmed),
		PendingBookings:   int(pending),
		CancelledBookings: int(cancelled),
	}, nil
}

// SearchBookings filters bookings on case-insensitive substrings of the
// joined event, venue and ticket type names plus an exact status match.
// Filters are independent and ANDed; results are unranked.
func SearchBookings(params *types.SearchBookingsQueryParams) ([]models.Booking, error) {
	conn := db.GetDb()
	query := conn.
		Model(&models.Booking{}).
		Preload("Event").
		Preload("Venue").
		Preload("TicketType")

	if params.EventName != "" {
		query = query.
			Joins("JOIN events ON events.id = bookings.event_id").
			Where("LOWER(events.name) LIKE ?", contains(params.EventName))
	}
	if params.VenueName != "" {
		query = query.
			Joins("JOIN venues ON venues.id = bookings.venue_id").
			Where("LOWER(venues.name) LIKE ?", contains(params.VenueName))
	}
	if params.TicketType != "" {
		query = query.
			Joins("JOIN ticket_types ON ticket_types.id = bookings.ticket_type_id").
			Where("LOWER(ticket_types.name) LIKE ?", contains(params.TicketType))
	}
	if params.Status != "" {
		query = query.Where("bookings.status = ?", params.Status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
