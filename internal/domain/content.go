package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a marketing "what we offer" entry on the storefront.
type Service struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TitleAr       string             `bson:"titleAr" json:"titleAr"`
	TitleEn       string             `bson:"titleEn,omitempty" json:"titleEn,omitempty"`
	DescriptionAr string             `bson:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	DescriptionEn string             `bson:"descriptionEn,omitempty" json:"descriptionEn,omitempty"`
	Icon          string             `bson:"icon,omitempty" json:"icon,omitempty"`
	// SortOrder controls the display position on the public page.
	SortOrder int32 `bson:"sortOrder" json:"sortOrder"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PortfolioItem is a past-work showcase entry.
type PortfolioItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TitleAr       string             `bson:"titleAr" json:"titleAr"`
	TitleEn       string             `bson:"titleEn,omitempty" json:"titleEn,omitempty"`
	DescriptionAr string             `bson:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	DescriptionEn string             `bson:"descriptionEn,omitempty" json:"descriptionEn,omitempty"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
