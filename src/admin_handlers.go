package main

import (
	"casadelpuente/src/common"
	"casadelpuente/src/types"
	"casadelpuente/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/admin/stats", func(ctx *gin.Context) {
			stats, err := common.GetBookingStats()
			if err != nil {
				log.Printf("Error fetching stats: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
		}).
		GET("/admin/bookings/date-range", func(ctx *gin.Context) {
			var query types.DateRangeQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			startDate, err := utils.ParseISODate(query.StartDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			endDate, err := utils.ParseISODate(query.EndDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			bookings, err := common.GetBookingsByDateRange(startDate, endDate)
			if err != nil {
				log.Printf("Error fetching bookings by date range: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
		})
	return g
}
