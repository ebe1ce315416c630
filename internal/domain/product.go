package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Name and description are bilingual with the
// Arabic variant as the primary one.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NameAr        string             `bson:"nameAr" json:"nameAr"`
	NameEn        string             `bson:"nameEn,omitempty" json:"nameEn,omitempty"`
	DescriptionAr string             `bson:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	DescriptionEn string             `bson:"descriptionEn,omitempty" json:"descriptionEn,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	InStock       bool               `bson:"inStock" json:"inStock"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
