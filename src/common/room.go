package common

import (
	"casadelpuente/src/db"
	"casadelpuente/src/lib"
	"casadelpuente/src/models"
	"context"
	"encoding/json"
	"log"
)

const roomsCacheKey = "rooms"

// ListRooms serves the static room catalogue, read-through cached in redis.
// A missing or unreachable cache silently falls back to the database.
func ListRooms(ctx context.Context) ([]models.Room, error) {
	rd := lib.GetRedisClient()
	if rd != nil {
		if val, err := rd.Get(ctx, roomsCacheKey).Result(); err == nil {
			var rooms []models.Room
			if err := json.Unmarshal([]byte(val), &rooms); err == nil {
				return rooms, nil
			}
		}
	}
	rooms := []models.Room{}
	if err := db.GetDb().Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	cacheRooms(ctx, rooms)
	return rooms, nil
}

func GetRoom(id string) (*models.Room, error) {
	var room models.Room
	if err := db.GetDb().Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// RefreshRoomCache rebuilds the cached catalogue from the database.
func RefreshRoomCache(ctx context.Context) error {
	rooms := []models.Room{}
	if err := db.GetDb().Order("id").Find(&rooms).Error; err != nil {
		return err
	}
	cacheRooms(ctx, rooms)
	return nil
}

func cacheRooms(ctx context.Context, rooms []models.Room) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	data, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := rd.Set(ctx, roomsCacheKey, data, 0).Err(); err != nil {
		log.Printf("[redis] Error caching rooms: %s\n", err.Error())
	}
}
