package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
