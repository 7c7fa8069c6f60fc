package repository

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrLikeNotFound     = errors.New("like not found")
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrUserExists       = errors.New("user already exists")
	ErrLikeExists       = errors.New("like already exists")
	ErrDateTaken        = errors.New("appointment date already taken")
)

// StockConflictError reports which product failed the conditional stock
// check inside the checkout transaction.
type StockConflictError struct {
	ProductID string
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductID)
}
