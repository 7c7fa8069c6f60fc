package domain

import (
	"time"
)

// CartLine is one pending-order quantity for a (user, product) pair.
// A quantity of zero or below is never stored; such updates delete the line.
type CartLine struct {
	UserID    string    `dynamodbav:"user_id"    json:"user_id"`
	ProductID string    `dynamodbav:"product_id" json:"product_id"`
	Qty       int       `dynamodbav:"qty"        json:"qty"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updated_at"`
}
