package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"tbs/src/common"
	"tbs/src/config"
	"tbs/src/db"
	"tbs/src/middlewares"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	apiPrefix string = "/api"
)

var bookingStatusValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	switch types.BookingStatus(fl.Field().String()) {
	case types.BOOKING_PENDING, types.BOOKING_CONFIRMED, types.BOOKING_CANCELLED:
		return true
	}
	return false
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookingstatus", bookingStatusValidatorFunc)
	}
}

// respondError maps engine errors onto the API's three status codes:
// missing references are 404, constraint violations are 400, anything
// else is a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case common.IsNotFoundError(err):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case common.IsValidationError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Unhandled error: %s\n", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error while processing request"})
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	return g.Group(apiPrefix)
}

func registerRoutes(g *gin.Engine) {
	api := apiGroup(g)
	venueHandlers(api)
	eventHandlers(api)
	ticketTypeHandlers(api)
	bookingHandlers(api)
	statsHandlers(api)
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			log.Printf("No .env file loaded: %s\n", err.Error())
		}
	}

	if err := db.Migrate(
		&models.Venue{},
		&models.Event{},
		&models.TicketType{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("Error preparing database: %s\n", err.Error())
	}

	registerValidators()

	router := setupRouter()
	router.Use(cors.Default())
	registerRoutes(router)

	if config.StrictCapacity() {
		log.Println("Strict capacity mode enabled: pending bookings reserve seats")
	}

	addr := fmt.Sprintf(":%s", config.Port())
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
