package main

import (
	"casadelpuente/src/common"
	"casadelpuente/src/models"
	"casadelpuente/src/types"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func reviewHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/reviews", func(ctx *gin.Context) {
			var body types.CreateReviewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			isPublic := true
			if body.IsPublic != nil {
				isPublic = *body.IsPublic
			}
			review := models.Review{
				BookingID: uuid.MustParse(body.BookingID),
				GuestID:   uuid.MustParse(body.GuestID),
				Rating:    body.Rating,
				Title:     body.Title,
				Comment:   body.Comment,
				IsPublic:  isPublic,
			}
			created, err := common.CreateReview(&review)
			if err != nil {
				log.Printf("Error creating review: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"success": true,
				"data":    created,
				"message": "Review created successfully",
			})
		}).
		GET("/reviews/public", func(ctx *gin.Context) {
			limit, err := strconv.Atoi(ctx.Query("limit"))
			if err != nil || limit <= 0 {
				limit = 10
			}
			reviews, err := common.GetPublicReviews(limit)
			if err != nil {
				log.Printf("Error fetching reviews: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
		}).
		GET("/reviews/by-booking/:id", func(ctx *gin.Context) {
			var params types.IDRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
				return
			}
			reviews, err := common.GetReviewsByBooking(uuid.MustParse(params.ID))
			if err != nil {
				log.Printf("Error fetching reviews: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
		})
	return g
}
