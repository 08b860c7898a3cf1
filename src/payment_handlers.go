package main

import (
	"casadelpuente/src/common"
	"casadelpuente/src/models"
	"casadelpuente/src/types"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/payments", func(ctx *gin.Context) {
			var body types.CreatePaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			payment := models.Payment{
				BookingID:     uuid.MustParse(body.BookingID),
				Amount:        body.Amount,
				Currency:      body.Currency,
				PaymentMethod: body.PaymentMethod,
				TransactionID: body.TransactionID,
			}
			created, err := common.CreatePayment(&payment)
			if err != nil {
				log.Printf("Error creating payment: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"success": true,
				"data":    created,
				"message": "Payment created successfully",
			})
		}).
		PATCH("/payments/:id/status", func(ctx *gin.Context) {
			var params types.IDRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
				return
			}
			var body types.UpdatePaymentStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			payment, err := common.UpdatePaymentStatus(uuid.MustParse(params.ID), body.Status, body.TransactionID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
					return
				}
				log.Printf("Error updating payment status: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    payment,
				"message": "Payment status updated successfully",
			})
		}).
		GET("/payments/by-booking/:id", func(ctx *gin.Context) {
			var params types.IDRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			payments, err := common.GetPaymentsByBooking(uuid.MustParse(params.ID))
			if err != nil {
				log.Printf("Error fetching payments: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": payments})
		})
	return g
}
