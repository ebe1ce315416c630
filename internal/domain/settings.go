package domain

import "time"

// SiteSettings is the single site-wide settings document. There is exactly
// one of these per deployment; updates upsert it in place.
type SiteSettings struct {
	SiteNameAr string            `bson:"siteNameAr" json:"siteNameAr"`
	SiteNameEn string            `bson:"siteNameEn,omitempty" json:"siteNameEn,omitempty"`
	Phone      string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Email      string            `bson:"email,omitempty" json:"email,omitempty"`
	Address    string            `bson:"address,omitempty" json:"address,omitempty"`
	Socials    map[string]string `bson:"socials,omitempty" json:"socials,omitempty"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
