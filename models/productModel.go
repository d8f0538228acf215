package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	RichDescription string         `json:"richDescription"`
	Image           string         `json:"image"`
	Images          datatypes.JSON `json:"images"`
	Brand           string         `json:"brand"`
	Price           float64        `json:"price"`
	CategoryID      uint           `json:"categoryId"`
	Category        *Category      `json:"category,omitempty"`
	CountInStock    int            `json:"countInStock"`
	Rating          float64        `json:"rating"`
	NumReviews      int            `json:"numReviews"`
	IsFeatured      bool           `json:"isFeatured"`
}

// ProductInput is the create/update request body. The category field carries
// the referenced category id, which the handlers verify before writing.
type ProductInput struct {
	Name            string         `json:"name" binding:"required"`
	Description     string         `json:"description" binding:"required"`
	RichDescription string         `json:"richDescription"`
	Image           string         `json:"image"`
	Images          datatypes.JSON `json:"images"`
	Brand           string         `json:"brand"`
	Price           float64        `json:"price"`
	Category        uint           `json:"category" binding:"required"`
	CountInStock    int            `json:"countInStock"`
	Rating          float64        `json:"rating"`
	NumReviews      int            `json:"numReviews"`
	IsFeatured      bool           `json:"isFeatured"`
}
