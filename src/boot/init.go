package boot

import (
	"casadelpuente/src/common"
	"casadelpuente/src/db"
	"casadelpuente/src/lib"
	"casadelpuente/src/models"
	"casadelpuente/src/types"
	"context"
	"log"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Guest{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.Room{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func strptr(s string) *string { return &s }

// SeedRooms loads the botanical room catalogue. Ids are slugs of the display
// names; existing rows are left untouched so manual copy edits survive restarts.
func SeedRooms() {
	rooms := []models.Room{
		{
			DisplayName:       "Geisha",
			FlowerNameEnglish: "Geisha Flower",
			FlowerNameSpanish: "Flor Geisha",
			Floor:             "downstairs",
			BathroomType:      "ensuite",
			BedConfiguration:  "2 single beds",
			Capacity:          2,
			HeritageStory:     "Geisha celebrates the delicate beauty and refined elegance that defines this special room. Named for its graceful aesthetic and serene atmosphere, this downstairs bedroom offers peaceful garden views.",
			FlowerStory:       "Refined elegance. The Geisha room embodies grace, tranquility, and sophisticated simplicity. A peaceful retreat within our heritage home.",
			GardenLocation:    "Boquete is one of the world's geisha coffee capitals, with prized coffee plants thriving throughout this renowned growing region. You'll find geisha coffee farms and plantations all around town.",
			BloomingSeason:    strptr("Year-round garden beauty"),
			Features:          types.StringArray{"Private en-suite bathroom", "2 single beds", "Garden views", "Original hardwood details", "Elegant décor"},
			ViewDescription:   strptr("Mountain and garden views from downstairs bedroom"),
			MainImage:         "/bedrooms/casa-flora-room-geisha-main.jpg",
			AdditionalImages:  types.StringArray{"/bathrooms/casa-flora-bathroom-geisha-ensuite.jpg", "/bathrooms/casa-flora-bathroom-geisha-ensuite-shower.jpg"},
		},
		{
			DisplayName:       "Orquídea",
			FlowerNameEnglish: "Orchid",
			FlowerNameSpanish: "Orquídea",
			Floor:             "downstairs",
			BathroomType:      "ensuite",
			BedConfiguration:  "2 single beds",
			Capacity:          2,
			HeritageStory:     "Orquídea honors Panama's national flower, the exquisite \"Holy Ghost Orchid\" (Peristeria elata). Orchids flourish in Boquete's cloud forests and are the crown jewel of our annual Flower Fair each January.",
			FlowerStory:       "Panama's national treasure. The orchid represents elegance, rarity, and the precious biodiversity of our cloud forest ecosystem. Our gardens feature orchids throughout shaded walkways and tree trunks where they grow naturally.",
			GardenLocation:    "Look for orchids throughout our gardens, especially near shaded walkways and tree trunks where they grow naturally.",
			BloomingSeason:    strptr("Year-round (peak in January during Flower Fair)"),
			Features:          types.StringArray{"Private en-suite bathroom", "2 single beds", "Premium room", "Cloud forest views", "Elegant orchid accents"},
			ViewDescription:   strptr("Lush tropical garden with orchid-rich shaded areas"),
			MainImage:         "/bedrooms/casa-flora-room-orquidea-main.jpg",
			AdditionalImages:  types.StringArray{"/bathrooms/casa-flora-bathroom-orquidea-ensuite.jpg"},
		},
		{
			DisplayName:       "Hortensia",
			FlowerNameEnglish: "Hydrangea",
			FlowerNameSpanish: "Hortensia",
			Floor:             "upstairs",
			BathroomType:      "shared",
			BedConfiguration:  "2 single beds",
			Capacity:          2,
			HeritageStory:     "Hortensia celebrates the romantic hydrangeas that thrive in Boquete's cool highland climate. These European immigrants have flourished here for over a century, their white and light blue blossoms can be seen all over the garden.",
			FlowerStory:       "Peaceful hydrangea gardens. Named \"Hortensia\" in Spanish, these romantic blooms evoke musical gardens and serene contemplation. They represent the successful European heritage plants that have made Boquete their home.",
			GardenLocation:    "Find hydrangeas in the garden and throughout the property.",
			BloomingSeason:    strptr("Year-round (peak bloom in rainy season)"),
			Features:          types.StringArray{"2 single beds", "Shared upstairs bathroom", "Peaceful garden views", "Hydrangea-themed accents", "Mountain breeze windows"},
			ViewDescription:   strptr("Garden views showcasing hydrangea borders and mountain backdrop"),
			MainImage:         "/bedrooms/casa-flora-room-hortensia-twin-beds.jpg",
			AdditionalImages:  types.StringArray{"/bathrooms/casa-flora-bathroom-upstairs-shared.jpg"},
		},
		{
			DisplayName:       "Veranera",
			FlowerNameEnglish: "Bougainvillea",
			FlowerNameSpanish: "Veranera",
			Floor:             "upstairs",
			BathroomType:      "shared",
			BedConfiguration:  "2 bunk beds",
			Capacity:          4,
			HeritageStory:     "Veranera celebrates the vibrant bougainvillea that cascades over our walls and fences in brilliant magenta and purple. The Spanish name \"Veranera\" means \"summer flower\", evoking endless tropical warmth.",
			FlowerStory:       "Bright summer colors. Bougainvillea brings year-round vibrancy to Casa Del Puente, its papery bracts creating living curtains of color. This hardy climbing plant symbolizes the resilient beauty of tropical Panama.",
			GardenLocation:    "See bougainvillea cascading over walls and fences throughout the property, creating brilliant color cascades.",
			BloomingSeason:    strptr("Year-round"),
			Features:          types.StringArray{"2 bunk beds (sleeps 4)", "Shared upstairs bathroom", "Cozy tropical décor", "Bridge views", "Playful summer vibe"},
			ViewDescription:   strptr("Bridge and river views with bougainvillea-draped walls"),
			MainImage:         "/bedrooms/casa-flora-room-veranera-bunk-beds.jpg",
			AdditionalImages:  types.StringArray{"/bathrooms/casa-flora-bathroom-upstairs-shared.jpg"},
		},
	}
	for i := range rooms {
		rooms[i].ID = slug.Make(rooms[i].DisplayName)
	}

	err := db.GetDb().
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rooms).
		Error
	if err != nil {
		log.Printf("Error seeding rooms: %s\n", err.Error())
	}
}

// InitScheduler starts the in-process cron: the room cache is rebuilt and a
// stats snapshot logged once a day.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Printf("Error initializing scheduler: %s\n", err.Error())
		return
	}
	_, err = lib.CreateCronJob(func() {
		if err := common.RefreshRoomCache(context.Background()); err != nil {
			log.Printf("Error refreshing room cache: %s\n", err.Error())
		}
		stats, err := common.GetBookingStats()
		if err != nil {
			log.Printf("Error computing booking stats: %s\n", err.Error())
			return
		}
		log.Printf("Bookings: total=%d confirmed=%d pending=%d revenue=%s\n",
			stats.TotalBookings, stats.ConfirmedBookings, stats.PendingBookings, stats.TotalRevenue)
	}, 24*time.Hour)
	if err != nil {
		log.Printf("Error creating housekeeping job: %s\n", err.Error())
		return
	}
	sched.Start()
}
