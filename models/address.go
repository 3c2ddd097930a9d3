package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Address belongs to either a customer or a seller; exactly one of the two
// owner ids is set.
type Address struct {
	ID           primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	AddressTitle string              `json:"addressTitle" bson:"addressTitle"`
	FirstName    string              `json:"firstName" bson:"firstName"`
	LastName     string              `json:"lastName" bson:"lastName"`
	Phone        string              `json:"phone" bson:"phone"`
	City         string              `json:"city" bson:"city"`
	Street       string              `json:"street" bson:"street"`
	District     string              `json:"district" bson:"district"`
	Neighborhood string              `json:"neighborhood" bson:"neighborhood"`
	Address      string              `json:"address" bson:"address"`
	SellerID     *primitive.ObjectID `json:"sellerId,omitempty" bson:"sellerId,omitempty"`
	CustomerID   *primitive.ObjectID `json:"customerId,omitempty" bson:"customerId,omitempty"`
}

func (Address) Collection() string { return "addresses" }

type AddressRequest struct {
	AddressTitle string `json:"addressTitle" binding:"required"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	Street       string `json:"street"`
	District     string `json:"district"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address" binding:"max=250"`
}

type UpdateAddressRequest struct {
	AddressID    primitive.ObjectID `json:"addressId" binding:"required"`
	AddressTitle *string            `json:"addressTitle"`
	FirstName    *string            `json:"firstName"`
	LastName     *string            `json:"lastName"`
	Phone        *string            `json:"phone"`
	City         *string            `json:"city"`
	Street       *string            `json:"street"`
	District     *string            `json:"district"`
	Neighborhood *string            `json:"neighborhood"`
	Address      *string            `json:"address" binding:"omitempty,max=250"`
}
