package main

import (
	"net/http"
	"tbs/src/common"

	"github.com/gin-gonic/gin"
)

func statsHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/stats", func(ctx *gin.Context) {
		stats, err := common.GetBookingStats()
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": stats})
	})
	return g
}
