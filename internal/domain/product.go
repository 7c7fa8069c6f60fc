package domain

import (
	"time"
)

type Product struct {
	ProductID string    `dynamodbav:"product_id" json:"product_id"`
	Name      string    `dynamodbav:"name"       json:"name"`
	Kind      string    `dynamodbav:"kind"       json:"kind"`
	Price     int       `dynamodbav:"price"      json:"price"`
	Discount  int       `dynamodbav:"discount"   json:"discount"`
	Stock     int       `dynamodbav:"stock"      json:"stock"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updated_at"`
}

// ProductFilter narrows a catalog listing. Search is a case-insensitive
// substring match on the name, Kind an exact match; both combine with AND.
// Skip is applied before First.
type ProductFilter struct {
	Search string
	Kind   string
	Skip   int
	First  int
}
