package common

import (
	"errors"
	"log"
	"tbs/src/config"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"
	"tbs/src/utils"

	"gorm.io/gorm"
)

// Joined-fetch helpers. Related entities are hydrated explicitly with
// Preload so responses always carry the event, venue and ticket type of a
// booking without any implicit traversal.

func GetVenue(id uint) (*models.Venue, error) {
	conn := db.GetDb()
	var venue models.Venue
	if err := conn.
		Where(&models.Venue{ID: id}).
		First(&venue).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func GetEvent(id uint) (*models.Event, error) {
	conn := db.GetDb()
	var event models.Event
	if err := conn.
		Where(&models.Event{ID: id}).
		Preload("Venue").
		First(&event).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func GetTicketType(id uint) (*models.TicketType, error) {
	conn := db.GetDb()
	var ticketType models.TicketType
	if err := conn.
		Where(&models.TicketType{ID: id}).
		First(&ticketType).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketTypeNotFound
		}
		return nil, err
	}
	return &ticketType, nil
}

func GetBooking(id uint) (*models.Booking, error) {
	conn := db.GetDb()
	var booking models.Booking
	if err := conn.
		Where(&models.Booking{ID: id}).
		Preload("Event").
		Preload("Venue").
		Preload("TicketType").
		First(&booking).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// bookedQuantity sums booking quantities that consume event capacity.
// Only confirmed bookings count, so pending bookings do not reserve seats
// and two requests racing through the availability check can both pass;
// neither the read nor the insert takes a row lock. STRICT_CAPACITY makes
// pending bookings reserve capacity as well (released on cancellation,
// since cancelled rows are never counted).
func bookedQuantity(tx *gorm.DB, eventID uint) (int, error) {
	statuses := []types.BookingStatus{types.BOOKING_CONFIRMED}
	if config.StrictCapacity() {
		statuses = append(statuses, types.BOOKING_PENDING)
	}
	var total int64
	err := tx.
		Model(&models.Booking{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("event_id = ? AND status IN ?", eventID, statuses).
		Scan(&total).
		Error
	return int(total), err
}

// CreateBooking validates the referenced entities, checks remaining
// capacity, computes the total from the ticket type price and persists a
// pending booking carrying a fresh booking code.
func CreateBooking(params *types.CreateBookingRequestBody) (*models.Booking, error) {
	event, err := GetEvent(params.EventID)
	if err != nil {
		return nil, err
	}
	if _, err := GetVenue(params.VenueID); err != nil {
		return nil, err
	}
	ticketType, err := GetTicketType(params.TicketTypeID)
	if err != nil {
		return nil, err
	}
	if event.VenueID != params.VenueID {
		return nil, ErrVenueMismatch
	}

	conn := db.GetDb()
	booking := models.Booking{
		EventID:       params.EventID,
		VenueID:       params.VenueID,
		TicketTypeID:  params.TicketTypeID,
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		Quantity:      params.Quantity,
		TotalAmount:   ticketType.Price * float64(params.Quantity),
		Status:        types.BOOKING_PENDING,
		BookingCode:   utils.NewBookingCode(),
	}
	err = conn.Transaction(func(tx *gorm.DB) error {
		booked, err := bookedQuantity(tx, params.EventID)
		if err != nil {
			return err
		}
		available := event.Capacity - booked
		if params.Quantity > available {
			return &NotEnoughTicketsError{Available: available}
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating Booking: %s\n", err.Error())
		return nil, err
	}
	return GetBooking(booking.ID)
}

// UpdateBooking merges the non-nil fields of the payload into the stored
// booking. A quantity change recomputes the total from the booking's
// existing ticket type.
func UpdateBooking(id uint, params *types.UpdateBookingRequestBody) (*models.Booking, error) {
	booking, err := GetBooking(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if params.CustomerName != nil {
		updates["customer_name"] = *params.CustomerName
	}
	if params.CustomerEmail != nil {
		updates["customer_email"] = *params.CustomerEmail
	}
	if params.Quantity != nil {
		ticketType, err := GetTicketType(booking.TicketTypeID)
		if err != nil {
			return nil, err
		}
		updates["quantity"] = *params.Quantity
		updates["total_amount"] = ticketType.Price * float64(*params.Quantity)
	}
	if len(updates) > 0 {
		conn := db.GetDb()
		if err := conn.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			Updates(updates).
			Error; err != nil {
			return nil, err
		}
	}
	return GetBooking(id)
}

// UpdateBookingStatus sets the status unconditionally. Any transition is
// accepted, including out of a terminal status; this mirrors the permissive
// behavior the API has always had.
func UpdateBookingStatus(id uint, status types.BookingStatus) (*models.Booking, error) {
	if _, err := GetBooking(id); err != nil {
		return nil, err
	}
	conn := db.GetDb()
	if err := conn.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id}).
		Update("status", status).
		Error; err != nil {
		return nil, err
	}
	return GetBooking(id)
}

func DeleteBooking(id uint) error {
	if _, err := GetBooking(id); err != nil {
		return err
	}
	conn := db.GetDb()
	return conn.Delete(&models.Booking{}, id).Error
}
