package models

import (
	"github.com/google/uuid"
)

// Product represents a single catalog entry. The catalog is flat: one row per
// product, owned by a brand, with a free-form weight/pack descriptor
// (e.g. "200 Gm", "12*37.3 Gm").
type Product struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Brand       string    `json:"brand" gorm:"not null;index"`
	ProductName string    `json:"productName" gorm:"not null"`
	WeightPack  string    `json:"weightPack" gorm:"not null"`
}

// BrandCount is a derived aggregate, computed per request and never stored.
type BrandCount struct {
	Brand        string `json:"brand"`
	ProductCount int    `json:"productCount"`
}
