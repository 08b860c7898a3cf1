package main

import (
	"casadelpuente/src/common"
	"casadelpuente/src/lib/mailer"
	"casadelpuente/src/types"
	"casadelpuente/src/utils"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// abortOnDateError writes the 400 response for the date-level failures the
// client is expected to re-prompt on. Dates-unavailable gets its own message
// so the widget can show "dates unavailable" instead of a form error.
func abortOnDateError(ctx *gin.Context, err error) bool {
	if errors.Is(err, common.ErrInvalidDateRange) ||
		errors.Is(err, common.ErrCheckInPast) ||
		errors.Is(err, common.ErrDatesUnavailable) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return true
	}
	return false
}

func bindStayDates(ctx *gin.Context, checkInDate, checkOutDate string) (time.Time, time.Time, bool) {
	checkIn, err := utils.ParseISODate(checkInDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
		return time.Time{}, time.Time{}, false
	}
	checkOut, err := utils.ParseISODate(checkOutDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			checkIn, checkOut, ok := bindStayDates(ctx, body.Booking.CheckInDate, body.Booking.CheckOutDate)
			if !ok {
				return
			}
			guest, booking, err := common.CreateBookingWithGuest(&body, checkIn, checkOut)
			if err != nil {
				if abortOnDateError(ctx, err) {
					return
				}
				log.Printf("Error creating booking: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"success": true,
				"data":    gin.H{"guest": guest, "booking": booking},
				"message": "Booking created successfully",
			})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			limit, err := strconv.Atoi(ctx.Query("limit"))
			if err != nil || limit <= 0 {
				limit = 50
			}
			offset, err := strconv.Atoi(ctx.Query("offset"))
			if err != nil || offset < 0 {
				offset = 0
			}
			bookings, err := common.GetAllBookings(limit, offset)
			if err != nil {
				log.Printf("Error fetching bookings: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success":    true,
				"data":       bookings,
				"pagination": gin.H{"limit": limit, "offset": offset},
			})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.IDRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			booking, err := common.GetBooking(uuid.MustParse(params.ID))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
					return
				}
				log.Printf("Error fetching booking: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
		}).
		PATCH("/bookings/:id/status", func(ctx *gin.Context) {
			var params types.IDRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			booking, err := common.UpdateBookingStatus(uuid.MustParse(params.ID), body.Status)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
					return
				}
				log.Printf("Error updating booking status: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status"})
				return
			}
			if body.Status == types.BOOKING_CONFIRMED {
				go func() {
					if err := mailer.SendBookingConfirmation(booking); err != nil {
						log.Printf("Error sending confirmation mail: %s\n", err.Error())
					}
				}()
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    booking,
				"message": fmt.Sprintf("Booking %s successfully", body.Status),
			})
		}).
		DELETE("/bookings/:id", func(ctx *gin.Context) {
			var params types.IDRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			booking, err := common.CancelBooking(uuid.MustParse(params.ID))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
					return
				}
				log.Printf("Error cancelling booking: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    booking,
				"message": "Booking cancelled successfully",
			})
		}).
		POST("/bookings/check-availability", func(ctx *gin.Context) {
			var body types.DateRangeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			checkIn, checkOut, ok := bindStayDates(ctx, body.CheckInDate, body.CheckOutDate)
			if !ok {
				return
			}
			if err := common.ValidateStayDates(checkIn, checkOut); err != nil {
				abortOnDateError(ctx, err)
				return
			}
			available, err := common.CheckAvailability(checkIn, checkOut)
			if err != nil {
				log.Printf("Error checking availability: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"data": gin.H{
					"available":    available,
					"checkInDate":  checkIn.Format(time.RFC3339),
					"checkOutDate": checkOut.Format(time.RFC3339),
				},
			})
		}).
		POST("/bookings/pricing-estimate", func(ctx *gin.Context) {
			var body types.DateRangeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			checkIn, checkOut, ok := bindStayDates(ctx, body.CheckInDate, body.CheckOutDate)
			if !ok {
				return
			}
			if err := common.ValidateStayDates(checkIn, checkOut); err != nil {
				abortOnDateError(ctx, err)
				return
			}
			pricing, err := common.ComputePricing(checkIn, checkOut)
			if err != nil {
				abortOnDateError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"data": gin.H{
					"checkInDate":    checkIn.Format(time.RFC3339),
					"checkOutDate":   checkOut.Format(time.RFC3339),
					"numberOfNights": pricing.NumberOfNights,
					"basePrice":      pricing.BasePrice,
					"taxes":          pricing.Taxes,
					"fees":           pricing.Fees,
					"totalPrice":     pricing.TotalPrice,
				},
			})
		})
	return g
}
