package common

import (
	"tbs/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirm(t *testing.T, id uint) {
	t.Helper()
	_, err := UpdateBookingStatus(id, types.BOOKING_CONFIRMED)
	require.NoError(t, err)
}

func TestEventAvailabilityFlatPool(t *testing.T) {
	conn := newTestDB(t)
	venue := createVenue(t, conn, "City Hall", 200)
	event := createEvent(t, conn, "Rock Night", venue.ID, 100)
	standard := createTicketType(t, conn, "Standard", 50)
	vip := createTicketType(t, conn, "VIP", 120)

	b1, err := CreateBooking(bookingRequest(event.ID, venue.ID, standard.ID, 10))
	require.NoError(t, err)
	confirm(t, b1.ID)
	b2, err := CreateBooking(bookingRequest(event.ID, venue.ID, vip.ID, 5))
	require.NoError(t, err)
	confirm(t, b2.ID)
	// pending bookings are invisible to availability
	_, err = CreateBooking(bookingRequest(event.ID, venue.ID, standard.ID, 30))
	require.NoError(t, err)

	availability, err := EventAvailability(event.ID)
	require.NoError(t, err)

	assert.Equal(t, 100, availability.TotalCapacity)
	assert.Equal(t, 15, availability.BookedTickets)
	assert.Equal(t, 85, availability.AvailableTickets)

	require.Len(t, availability.TicketTypes, 2)
	byName := map[string]types.TicketTypeAvailability{}
	for _, tt := range availability.TicketTypes {
		byName[tt.TicketTypeName] = tt
	}
	assert.Equal(t, 10, byName["Standard"].Booked)
	assert.Equal(t, 5, byName["VIP"].Booked)
	// capacity is one flat pool: every type reports the event-wide remainder
	assert.Equal(t, 85, byName["Standard"].Available)
	assert.Equal(t, 85, byName["VIP"].Available)

	_, err = EventAvailability(9999)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRevenue(t *testing.T) {
	conn := newTestDB(t)
	venue := createVenue(t, conn, "City Hall", 200)
	event := createEvent(t, conn, "Rock Night", venue.ID, 200)
	standard := createTicketType(t, conn, "Standard", 50)
	vip := createTicketType(t, conn, "VIP", 30)

	b1, err := CreateBooking(bookingRequest(event.ID, venue.ID, standard.ID, 2))
	require.NoError(t, err)
	confirm(t, b1.ID)
	b2, err := CreateBooking(bookingRequest(event.ID, venue.ID, vip.ID, 1))
	require.NoError(t, err)
	confirm(t, b2.ID)
	// pending revenue is not counted
	_, err = CreateBooking(bookingRequest(event.ID, venue.ID, standard.ID, 4))
	require.NoError(t, err)

	revenue, err := EventRevenue(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 130.00, revenue.TotalRevenue)
	assert.Equal(t, 2, revenue.TotalBookings)
	// mean of per-booking unit prices (50 and 30), not revenue/tickets
	assert.Equal(t, 40.00, revenue.AverageTicketPrice)
}

func TestEventRevenueEmpty(t *testing.T) {
	conn := newTestDB(t)
	venue := createVenue(t, conn, "City Hall", 200)
	event := createEvent(t, conn, "Quiet Night", venue.ID, 200)

	revenue, err := EventRevenue(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.00, revenue.TotalRevenue)
	assert.Equal(t, 0, revenue.TotalBookings)
	assert.Equal(t, 0.00, revenue.AverageTicketPrice)
}

func TestVenueOccupancy(t *testing.T) {
	conn := newTestDB(t)
	venue := createVenue(t, conn, "City Hall", 90)
	event1 := createEvent(t, conn, "Rock Night", venue.ID, 60)
	event2 := createEvent(t, conn, "Jazz Evening", venue.ID, 30)
	standard := createTicketType(t, conn, "Standard", 50)

	b1, err := CreateBooking(bookingRequest(event1.ID, venue.ID, standard.ID, 20))
	require.NoError(t, err)
	confirm(t, b1.ID)
	b2, err := CreateBooking(bookingRequest(event2.ID, venue.ID, standard.ID, 13))
	require.NoError(t, err)
	confirm(t, b2.ID)

	occupancy, err := VenueOccupancy(venue.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, occupancy.TotalCapacity)
	assert.Equal(t, 33, occupancy.TotalBooked)
	assert.Equal(t, 36.67, occupancy.OccupancyRate)
	assert.Equal(t, 2, occupancy.TotalEvents)

	_, err = VenueOccupancy(9999)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueOccupancyZeroCapacity(t *testing.T) {
	conn := newTestDB(t)
	venue := createVenue(t, conn, "Closed Hall", 0)

	occupancy, err := VenueOccupancy(venue.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, occupancy.OccupancyRate)
	assert.Equal(t, 0, occupancy.TotalBooked)
}

func TestGetBookingStats(t *testing.T) {
	conn := newTestDB(t)
	venue := createVenue(t, conn, "City Hall", 200)
	event := createEvent(t, conn, "Rock Night", venue.ID, 200)
	standard := createTicketType(t, conn, "Standard", 50)

	b1, err := CreateBooking(bookingRequest(event.ID, venue.ID, standard.ID, 2))
	require.NoError(t, err)
	confirm(t, b1.ID)
	b2, err := CreateBooking(bookingRequest(event.ID, venue.ID, standard.ID, 1))
	require.NoError(t, err)
	_, err = UpdateBookingStatus(b2.ID, types.BOOKING_CANCELLED)
	require.NoError(t, err)
	_, err = CreateBooking(bookingRequest(event.ID, venue.ID, standard.ID, 3))
	require.NoError(t, err)

	stats, err := GetBookingStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 1, stats.TotalEvents)
	assert.Equal(t, 1, stats.TotalVenues)
	assert.Equal(t, 1, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	assert.Equal(t, 100.00, stats.TotalRevenue)
}

func TestSearchBookings(t *testing.T) {
	conn := newTestDB(t)
	venue := createVenue(t, conn, "City Hall", 500)
	park := createVenue(t, conn, "Open Air Park", 500)
	rock := createEvent(t, conn, "Rock Concert", venue.ID, 200)
	jazz := createEvent(t, conn, "Jazz Evening", park.ID, 200)
	standard := createTicketType(t, conn, "Standard", 50)
	vip := createTicketType(t, conn, "VIP", 120)

	rockBooking, err := CreateBooking(bookingRequest(rock.ID, venue.ID, standard.ID, 2))
	require.NoError(t, err)
	jazzBooking, err := CreateBooking(bookingRequest(jazz.ID, park.ID, vip.ID, 1))
	require.NoError(t, err)
	confirm(t, jazzBooking.ID)

	results, err := SearchBookings(&types.SearchBookingsQueryParams{EventName: "rock"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, rockBooking.ID, results[0].ID)
	require.NotNil(t, results[0].Event)
	assert.Equal(t, "Rock Concert", results[0].Event.Name)

	results, err = SearchBookings(&types.SearchBookingsQueryParams{VenueName: "PARK"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, jazzBooking.ID, results[0].ID)

	results, err = SearchBookings(&types.SearchBookingsQueryParams{TicketType: "vip", Status: "confirmed"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, jazzBooking.ID, results[0].ID)

	results, err = SearchBookings(&types.SearchBookingsQueryParams{EventName: "rock", Status: "confirmed"})
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = SearchBookings(&types.SearchBookingsQueryParams{})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestVenueDeleteCascades(t *testing.T) {
	conn := newTestDB(t)
	venue := createVenue(t, conn, "City Hall", 200)
	event := createEvent(t, conn, "Rock Night", venue.ID, 200)
	standard := createTicketType(t, conn, "Standard", 50)
	_, err := CreateBooking(bookingRequest(event.ID, venue.ID, standard.ID, 2))
	require.NoError(t, err)

	require.NoError(t, conn.Delete(venue).Error)

	_, err = GetEvent(event.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
	stats, err := GetBookingStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalBookings)
}

func TestTicketTypeDeleteCascades(t *testing.T) {
	conn := newTestDB(t)
	venue := createVenue(t, conn, "City Hall", 200)
	event := createEvent(t, conn, "Rock Night", venue.ID, 200)
	standard := createTicketType(t, conn, "Standard", 50)
	_, err := CreateBooking(bookingRequest(event.ID, venue.ID, standard.ID, 2))
	require.NoError(t, err)

	require.NoError(t, conn.Delete(standard).Error)

	stats, err := GetBookingStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalBookings)
	// the event itself survives
	_, err = GetEvent(event.ID)
	assert.NoError(t, err)
}
