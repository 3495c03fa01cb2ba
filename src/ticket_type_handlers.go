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

func ticketTypeHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/ticket-types", func(ctx *gin.Context) {
			var query types.ListQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			conn := db.GetDb()
			var ticketTypes []models.TicketType
			if err := conn.
				Offset(query.Skip).
				Limit(query.Limit).
				Find(&ticketTypes).
				Error; err != nil {
				log.Printf("Error retrieving TicketTypes: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ticketTypes, "count": len(ticketTypes)})
		}).
		POST("/ticket-types", func(ctx *gin.Context) {
			var body types.CreateTicketTypeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticketType := models.TicketType{
				Name:        body.Name,
				Price:       body.Price,
				Description: body.Description,
			}
			conn := db.GetDb()
			if err := conn.Create(&ticketType).Error; err != nil {
				log.Printf("Error creating TicketType: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": ticketType})
		}).
		GET("/ticket-types/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticketType, err := common.GetTicketType(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ticketType})
		}).
		PUT("/ticket-types/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateTicketTypeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetTicketType(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			updates := map[string]any{}
			if body.Name != nil {
				updates["name"] = *body.Name
			}
			if body.Price != nil {
				updates["price"] = *body.Price
			}
			if body.Description != nil {
				updates["description"] = *body.Description
			}
			conn := db.GetDb()
			if len(updates) > 0 {
				if err := conn.
					Model(&models.TicketType{}).
					Where(&models.TicketType{ID: params.ID}).
					Updates(updates).
					Error; err != nil {
					log.Printf("Error updating TicketType: %s\n", err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
			}
			ticketType, err := common.GetTicketType(params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ticketType})
		}).
		DELETE("/ticket-types/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetTicketType(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			conn := db.GetDb()
			if err := conn.Delete(&models.TicketType{}, params.ID).Error; err != nil {
				log.Printf("Error deleting TicketType: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/ticket-types/:id/bookings", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := common.GetTicketType(params.ID); err != nil {
				respondError(ctx, err)
				return
			}
			conn := db.GetDb()
			var bookings []models.Booking
			if err := conn.
				Where(&models.Booking{TicketTypeID: params.ID}).
				Preload("Event").
				Preload("Venue").
				Preload("TicketType").
				Find(&bookings).
				Error; err != nil {
				log.Printf("Error retrieving Bookings for TicketType: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		})
	return g
}
