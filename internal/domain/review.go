package domain

import (
	"time"
)

type Review struct {
	ReviewID  string    `dynamodbav:"review_id"  json:"review_id"`
	ProductID string    `dynamodbav:"product_id" json:"product_id"`
	UserID    string    `dynamodbav:"user_id"    json:"user_id"`
	Rating    int       `dynamodbav:"rating"     json:"rating"`
	Text      string    `dynamodbav:"text"       json:"text"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"created_at"`
}

// Like rows are keyed (user_id, review_id), so a user can hold at most one
// like per review.
type Like struct {
	UserID    string    `dynamodbav:"user_id"    json:"user_id"`
	ReviewID  string    `dynamodbav:"review_id"  json:"review_id"`
	LikeID    string    `dynamodbav:"like_id"    json:"like_id"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"created_at"`
}

type AddReviewInput struct {
	ProductID string `validate:"required"`
	Rating    int    `validate:"required,min=1,max=5"`
	Text      string
}
