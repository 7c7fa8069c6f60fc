package service

import (
	"context"
	"errors"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"go.uber.org/zap"
)

type CartService struct {
	carts    CartStore
	products ProductStore
	logger   *zap.Logger
}

func NewCartService(carts CartStore, products ProductStore, logger *zap.Logger) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		logger:   logger,
	}
}

// SetCartLine applies one cart mutation and returns the full cart.
//
// Existing line: add=true adjusts by qty (negative decrements; a result at
// or below zero removes the line); add=false replaces the quantity, or
// removes the line when qty <= 0.
// No existing line: created only when qty > 0, otherwise a no-op.
//
// Stock is not checked here; checkout is the only place that validates it.
func (s *CartService) SetCartLine(ctx context.Context, user *domain.User, productID string, qty int, add bool) ([]domain.CartLine, error) {
	line, err := s.carts.GetLine(ctx, user.UserID, productID)
	switch {
	case err == nil:
		newQty := qty
		if add {
			newQty = line.Qty + qty
		}
		if newQty > 0 {
			line.Qty = newQty
			line.UpdatedAt = time.Now().UTC()
			if err := s.carts.PutLine(ctx, line); err != nil {
				return nil, err
			}
		} else {
			if err := s.carts.DeleteLine(ctx, user.UserID, productID); err != nil {
				return nil, err
			}
		}

	case errors.Is(err, repository.ErrCartLineNotFound):
		if qty > 0 {
			if _, err := s.products.GetProduct(ctx, productID); err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return nil, ErrProductNotFound
				}
				return nil, err
			}
			newLine := &domain.CartLine{
				UserID:    user.UserID,
				ProductID: productID,
				Qty:       qty,
				UpdatedAt: time.Now().UTC(),
			}
			if err := s.carts.PutLine(ctx, newLine); err != nil {
				return nil, err
			}
		}

	default:
		return nil, err
	}

	return s.carts.ListByUser(ctx, user.UserID)
}

func (s *CartService) GetCart(ctx context.Context, user *domain.User) ([]domain.CartLine, error) {
	return s.carts.ListByUser(ctx, user.UserID)
}
