package domain

import (
	"time"
)

// Order carries a denormalized shipping snapshot copied from the address at
// creation time, so later address edits never touch placed orders.
type Order struct {
	OrderID   string      `dynamodbav:"order_id"   json:"order_id"`
	UserID    string      `dynamodbav:"user_id"    json:"user_id"`
	Name      string      `dynamodbav:"name"       json:"name"`
	Phone     string      `dynamodbav:"phone"      json:"phone"`
	Address1  string      `dynamodbav:"address1"   json:"address1"`
	Address2  string      `dynamodbav:"address2"   json:"address2"`
	Pincode   int         `dynamodbav:"pincode"    json:"pincode"`
	City      string      `dynamodbav:"city"       json:"city"`
	State     string      `dynamodbav:"state"      json:"state"`
	Country   string      `dynamodbav:"country"    json:"country"`
	Lines     []OrderLine `dynamodbav:"lines"      json:"lines"`
	CreatedAt time.Time   `dynamodbav:"created_at" json:"created_at"`
}

// OrderLine freezes quantity and unit price at order time; catalog price or
// discount changes never alter an existing line.
type OrderLine struct {
	ProductID   string `dynamodbav:"product_id"   json:"product_id"`
	ProductName string `dynamodbav:"product_name" json:"product_name"`
	Qty         int    `dynamodbav:"qty"          json:"qty"`
	Price       int    `dynamodbav:"price"        json:"price"`
}

// StockDecrement is one conditional stock adjustment inside the checkout
// transaction.
type StockDecrement struct {
	ProductID string
	Qty       int
}
