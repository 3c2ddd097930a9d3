package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderProduct struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId" binding:"required"`
	Quantity  int                `json:"quantity" bson:"quantity" binding:"required,min=1"`
}

type CardExpireDate struct {
	Month int `json:"month" bson:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" bson:"year" binding:"required"`
}

type OrderCard struct {
	CardNumber     string         `json:"cardNumber" bson:"cardNumber" binding:"required"`
	CardHolderName string         `json:"cardHolderName" bson:"cardHolderName" binding:"required"`
	CardExpireDate CardExpireDate `json:"cardExpireDate" bson:"cardExpireDate" binding:"required"`
	CardCvv        int            `json:"cardCvv" bson:"cardCvv" binding:"required"`
}

type Order struct {
	ID                  primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	OrderID             string             `json:"orderId" bson:"orderId"`
	CustomerID          primitive.ObjectID `json:"customerId" bson:"customerId"`
	Products            []OrderProduct     `json:"products" bson:"products"`
	ShippingAddress     primitive.ObjectID `json:"shippingAddress" bson:"shippingAddress"`
	Quantity            int                `json:"quantity" bson:"quantity"`
	TotalPrice          float64            `json:"totalPrice" bson:"totalPrice"`
	PaymentMethod       string             `json:"paymentMethod" bson:"paymentMethod"`
	Card                *OrderCard         `json:"card,omitempty" bson:"card,omitempty"`
	CargoTrackingNumber string             `json:"cargoTrackingNumber,omitempty" bson:"cargoTrackingNumber,omitempty"`
	IsCanceled          bool               `json:"isCanceled" bson:"isCanceled"`
	IsOrderCompleted    bool               `json:"isOrderCompleted" bson:"isOrderCompleted"`
	OrderDate           time.Time          `json:"orderDate" bson:"orderDate"`
}

func (Order) Collection() string { return "orders" }

type CreateOrderRequest struct {
	Products        []OrderProduct     `json:"products" binding:"required,dive"`
	ShippingAddress primitive.ObjectID `json:"shippingAddress" binding:"required"`
	Quantity        int                `json:"quantity" binding:"required,min=1"`
	TotalPrice      float64            `json:"totalPrice" binding:"required,min=0"`
	PaymentMethod   string             `json:"paymentMethod" binding:"required,oneof=creditCard cash debitCard"`
	Card            *OrderCard         `json:"card"`
}
