package domain

import (
	"time"
)

type Address struct {
	AddressID string    `dynamodbav:"address_id" json:"address_id"`
	UserID    string    `dynamodbav:"user_id"    json:"user_id"`
	Name      string    `dynamodbav:"name"       json:"name"`
	Phone     string    `dynamodbav:"phone"      json:"phone"`
	Address1  string    `dynamodbav:"address1"   json:"address1"`
	Address2  string    `dynamodbav:"address2"   json:"address2"`
	Pincode   int       `dynamodbav:"pincode"    json:"pincode"`
	City      string    `dynamodbav:"city"       json:"city"`
	State     string    `dynamodbav:"state"      json:"state"`
	Country   string    `dynamodbav:"country"    json:"country"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updated_at"`
}

type AddressInput struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Address1 string `validate:"required"`
	Address2 string `validate:"required"`
	Pincode  int    `validate:"required,gt=0"`
	City     string `validate:"required"`
	State    string `validate:"required"`
	Country  string
}
