package domain

import (
	"time"
)

// Appointment occupies a whole calendar day; Date is the partition key
// ("2006-01-02") that makes double booking a conditional-write failure.
type Appointment struct {
	Date      string    `dynamodbav:"date"       json:"date"`
	UserID    string    `dynamodbav:"user_id"    json:"user_id"`
	Timestamp time.Time `dynamodbav:"timestamp"  json:"timestamp"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"created_at"`
}
