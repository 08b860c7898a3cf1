package models

import (
	"casadelpuente/src/types"
)

// Room is reference data about the four botanical bedrooms. The house rents
// as a single unit, so rooms are never booked individually.
type Room struct {
	ID                string            `gorm:"primarykey" json:"id"`
	DisplayName       string            `json:"displayName"`
	FlowerNameEnglish string            `json:"flowerNameEnglish"`
	FlowerNameSpanish string            `json:"flowerNameSpanish"`
	Floor             string            `json:"floor"`
	BathroomType      string            `json:"bathroomType"`
	BedConfiguration  string            `json:"bedConfiguration"`
	Capacity          int               `json:"capacity"`
	HeritageStory     string            `json:"heritageStory"`
	FlowerStory       string            `json:"flowerStory"`
	GardenLocation    string            `json:"gardenLocation"`
	BloomingSeason    *string           `json:"bloomingSeason,omitempty"`
	Features          types.StringArray `gorm:"type:jsonb" json:"features"`
	ViewDescription   *string           `json:"viewDescription,omitempty"`
	MainImage         string            `json:"mainImage"`
	AdditionalImages  types.StringArray `gorm:"type:jsonb" json:"additionalImages,omitempty"`

	types.Timestamps
}
