package domain

import (
	"time"
)

type User struct {
	UserID       string    `dynamodbav:"user_id"       json:"user_id"`
	Name         string    `dynamodbav:"name"          json:"name"`
	Email        string    `dynamodbav:"email"         json:"email"`
	Phone        string    `dynamodbav:"phone"         json:"phone"`
	PasswordHash string    `dynamodbav:"password_hash" json:"-"`
	SessionToken string    `dynamodbav:"session_token" json:"-"`
	CreatedAt    time.Time `dynamodbav:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `dynamodbav:"updated_at"    json:"updated_at"`
}

type CreateUserInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Password string `validate:"required,min=8"`
}

type UpdateProfileInput struct {
	Name    *string
	Phone   *string
	Address *AddressInput
}
