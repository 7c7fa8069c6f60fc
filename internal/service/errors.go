package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrProductNotFound    = errors.New("product not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrLikeNotFound       = errors.New("like not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("old password not correct")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrSlotTaken          = errors.New("no slot on that day")

	// Ownership violations keep the wording the clients already display.
	ErrNotOrderOwner   = errors.New("not the owner of the order")
	ErrNotAddressOwner = errors.New("you must be the owner of that address to remove it")
	ErrNotReviewAuthor = errors.New("you must be author of the review to delete it")
)

// StockError identifies the product that cannot cover the requested
// quantity. The triggering order leaves stock and cart untouched.
type StockError struct {
	ProductName string
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock error: not enough stock for %s", e.ProductName)
}

var validate = validator.New()

func validateInput(in interface{}) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}
