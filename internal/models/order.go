package models

import "time"

// OrderStatus is the lifecycle state of an order. Only OrderStatusPending is
// reachable today.
type OrderStatus string

const OrderStatusPending OrderStatus = "Pending"

// CartItem is an uninterpreted line item. Its shape is owned by the client and
// is neither validated nor reconciled against the order total.
type CartItem map[string]interface{}

// Order is a checkout record. Everything except Status is immutable once stored.
type Order struct {
	ID            string      `json:"_id" bson:"_id" gorm:"primaryKey;type:varchar(24)"`
	Name          string      `json:"name" bson:"name" gorm:"type:varchar(255);not null"`
	Address       string      `json:"address" bson:"address" gorm:"type:text;not null"`
	Phone         string      `json:"phone" bson:"phone" gorm:"type:varchar(64);not null"`
	PaymentMethod string      `json:"paymentMethod" bson:"paymentMethod" gorm:"type:varchar(64);not null"`
	CartItems     []CartItem  `json:"cartItems" bson:"cartItems" gorm:"serializer:json;type:text"`
	TotalAmount   float64     `json:"totalAmount" bson:"totalAmount"`
	Status        OrderStatus `json:"status" bson:"status" gorm:"type:varchar(20);default:'Pending'"`
	Date          time.Time   `json:"date" bson:"date"`
}

func (Order) TableName() string {
	return "orders"
}
