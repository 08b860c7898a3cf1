package main

import (
	"casadelpuente/src/common"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func roomHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/rooms", func(ctx *gin.Context) {
			rooms, err := common.ListRooms(ctx.Request.Context())
			if err != nil {
				log.Printf("Error fetching rooms: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": rooms})
		}).
		GET("/rooms/:id", func(ctx *gin.Context) {
			var params struct {
				ID string `uri:"id" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
				return
			}
			room, err := common.GetRoom(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
					return
				}
				log.Printf("Error fetching room: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch room"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": room})
		})
	return g
}
