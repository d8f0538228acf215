package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderItems       []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress1 string      `json:"shippingAddress1"`
	ShippingAddress2 string      `json:"shippingAddress2"`
	City             string      `json:"city"`
	Zip              string      `json:"zip"`
	Country          string      `json:"country"`
	Phone            string      `json:"phone"`
	Status           string      `json:"status"`
	TotalPrice       float64     `json:"totalPrice"`
	UserID           uint        `json:"userId"`
	User             *User       `json:"user,omitempty"`
	DateOrdered      time.Time   `json:"dateOrdered" gorm:"autoCreateTime"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint     `json:"orderId"`
	Quantity  int      `json:"quantity"`
	ProductID uint     `json:"productId"`
	Product   *Product `json:"product,omitempty"`
}

// OrderItemInput is a submitted cart line item: the referenced product id
// plus a quantity. Prices are never taken from the client.
type OrderItemInput struct {
	Quantity int  `json:"quantity" binding:"required,gt=0"`
	Product  uint `json:"product" binding:"required"`
}

type OrderInput struct {
	OrderItems       []OrderItemInput `json:"orderItems" binding:"required,min=1,dive"`
	ShippingAddress1 string           `json:"shippingAddress1" binding:"required"`
	ShippingAddress2 string           `json:"shippingAddress2"`
	City             string           `json:"city"`
	Zip              string           `json:"zip"`
	Country          string           `json:"country"`
	Phone            string           `json:"phone" binding:"required"`
	Status           string           `json:"status"`
	User             uint             `json:"user" binding:"required"`
}

type OrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}
