package main

import (
	"log"
	"net/http"
	"tbs/src/common"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
)

func venueHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/venues", func(ctx *gin.Context) {
			var query types.ListQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			conn := db.GetDb()
			var venues []models.Venue
			if err := conn.
				Offset(query.Skip).
				Limit(query.Limit).
				Find(&venues).
				Error; err != nil {
				log.Printf("Error retrieving Venues: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": venues, "count": len(venues)})
		}).
		POST("/venues", func(ctx *gin.Context) {
			var body types.CreateVenueRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			venue := models.Venue{
				Name:     body.Name,
				Address:  body.Address,
				Capacity: body.Capacity,
			}
			conn := db.GetDb()
			if err := conn.Create(&venue).Error; err != nil {
				log.Printf("Error creating Venue: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": venue})
		}).
		GET("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			venue, err := common.GetVenue(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": venue})
		}).
		PUT("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateVenueRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetVenue(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			updates := map[string]any{}
			if body.Name != nil {
				updates["name"] = *body.Name
			}
			if body.Address != nil {
				updates["address"] = *body.Address
			}
			if body.Capacity != nil {
				updates["capacity"] = *body.Capacity
			}
			conn := db.GetDb()
			if len(updates) > 0 {
				if err := conn.
					Model(&models.Venue{}).
					Where(&models.Venue{ID: params.ID}).
					Updates(updates).
					Error; err != nil {
					log.Printf("Error updating Venue: %s\n", err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
			}
			venue, err := common.GetVenue(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": venue})
		}).
		DELETE("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetVenue(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			conn := db.GetDb()
			if err := conn.Delete(&models.Venue{}, params.ID).Error; err != nil {
				log.Printf("Error deleting Venue: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/venues/:id/events", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetVenue(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			conn := db.GetDb()
			var events []models.Event
			if err := conn.
				Where(&models.Event{VenueID: params.ID}).
				Find(&events).
				Error; err != nil {
				log.Printf("Error retrieving Events for Venue: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": events, "count": len(events)})
		}).
		GET("/venues/:id/occupancy", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			occupancy, err := common.VenueOccupancy(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": occupancy})
		})
	return g
}
