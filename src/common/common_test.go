package common

import (
	"fmt"
	"sync/atomic"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// newTestDB opens a fresh in-memory sqlite database, migrates the schema
// and installs it as the package-wide connection. Foreign keys are turned
// on so the cascade constraints behave like they do on postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:common_test_%d?mode=memory&cache=shared&_foreign_keys=on", testDBCounter.Add(1))
	conn, err := gorm.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, conn.AutoMigrate(
		&models.Venue{},
		&models.Event{},
		&models.TicketType{},
		&models.Booking{},
	))
	db.NewDB(conn)
	t.Cleanup(func() { sqlDB.Close() })
	return conn
}

func createVenue(t *testing.T, conn *gorm.DB, name string, capacity int) *models.Venue {
	t.Helper()
	venue := models.Venue{Name: name, Address: "123 Main St", Capacity: capacity}
	require.NoError(t, conn.Create(&venue).Error)
	return &venue
}

func createEvent(t *testing.T, conn *gorm.DB, name string, venueID uint, capacity int) *models.Event {
	t.Helper()
	event := models.Event{
		Name:     name,
		Date:     time.Now().Add(30 * 24 * time.Hour),
		VenueID:  venueID,
		Capacity: capacity,
	}
	require.NoError(t, conn.Create(&event).Error)
	return &event
}

func createTicketType(t *testing.T, conn *gorm.DB, name string, price float64) *models.TicketType {
	t.Helper()
	ticketType := models.TicketType{Name: name, Price: price}
	require.NoError(t, conn.Create(&ticketType).Error)
	return &ticketType
}

func bookingRequest(eventID, venueID, ticketTypeID uint, quantity int) *types.CreateBookingRequestBody {
	return &types.CreateBookingRequestBody{
		EventID:       eventID,
		VenueID:       venueID,
		TicketTypeID:  ticketTypeID,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Quantity:      quantity,
	}
}
