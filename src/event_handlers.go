package main

import (
	"log"
	"net/http"
	"tbs/src/common"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

func eventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/events", func(ctx *gin.Context) {
			var query types.ListQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			conn := db.GetDb()
			var events []models.Event
			if err := conn.
				Preload("Venue").
				Offset(query.Skip).
				Limit(query.Limit).
				Find(&events).
				Error; err != nil {
				log.Printf("Error retrieving Events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": events, "count": len(events)})
		}).
		POST("/events", func(ctx *gin.Context) {
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetVenue(body.VenueID); err != nil {
				respondError(ctx, err)
				return
			}
			event := models.Event{
				Name:        body.Name,
				Slug:        slug.Make(body.Name),
				Description: body.Description,
				Date:        body.Date,
				VenueID:     body.VenueID,
				Capacity:    body.Capacity,
			}
			conn := db.GetDb()
			if err := conn.Create(&event).Error; err != nil {
				log.Printf("Error creating Event: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			created, err := common.GetEvent(event.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": created})
		}).
		GET("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			event, err := common.GetEvent(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		}).
		PUT("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetEvent(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			updates := map[string]any{}
			if body.Name != nil {
				updates["name"] = *body.Name
				updates["slug"] = slug.Make(*body.Name)
			}
			if body.Description != nil {
				updates["description"] = *body.Description
			}
			if body.Date != nil {
				updates["date"] = *body.Date
			}
			if body.VenueID != nil {
				if _, err := common.GetVenue(*body.VenueID); err != nil {
					respondError(ctx, err)
					return
				}
				updates["venue_id"] = *body.VenueID
			}
			if body.Capacity != nil {
				updates["capacity"] = *body.Capacity
			}
			conn := db.GetDb()
			if len(updates) > 0 {
				if err := conn.
					Model(&models.Event{}).
					Where(&models.Event{ID: params.ID}).
					Updates(updates).
					Error; err != nil {
					log.Printf("Error updating Event: %s\n", err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
			}
			event, err := common.GetEvent(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		}).
		DELETE("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetEvent(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			conn := db.GetDb()
			if err := conn.Delete(&models.Event{}, params.ID).Error; err != nil {
				log.Printf("Error deleting Event: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/events/:id/bookings", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetEvent(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			conn := db.GetDb()
			var bookings []models.Booking
			if err := conn.
				Where(&models.Booking{EventID: params.ID}).
				Preload("Event").
				Preload("Venue").
				Preload("TicketType").
				Find(&bookings).
				Error; err != nil {
				log.Printf("Error retrieving Bookings for Event: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/events/:id/availability", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			availability, err := common.EventAvailability(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": availability})
		}).
		GET("/events/:id/revenue", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			revenue, err := common.EventRevenue(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": revenue})
		})
	return g
}
