package main

import (
	"casadelpuente/src/common"
	"casadelpuente/src/types"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func guestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/guests/by-email/:email", func(ctx *gin.Context) {
			var params types.EmailRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
				return
			}
			guest, err := common.GetGuestByEmail(params.Email)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
					return
				}
				log.Printf("Error fetching guest: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": guest})
		}).
		GET("/guests/:id/bookings", func(ctx *gin.Context) {
			var params types.IDRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			bookings, err := common.GetBookingsByGuest(uuid.MustParse(params.ID))
			if err != nil {
				log.Printf("Error fetching guest bookings: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest bookings"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
		})
	return g
}
