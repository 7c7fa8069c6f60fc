package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/notification"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/pricing"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const mailFromLabel = "Larena Team"

// OrderService turns a cart (or a single product pick) into a persisted
// order. Every line is validated against current stock before anything is
// written; the write itself is one transaction, so a conflicting concurrent
// checkout cancels cleanly instead of overselling.
type OrderService struct {
	orders    OrderStore
	products  ProductStore
	carts     CartStore
	addresses AddressStore
	mailer    notification.Mailer
	logger    *zap.Logger
}

func NewOrderService(orders OrderStore, products ProductStore, carts CartStore, addresses AddressStore, mailer notification.Mailer, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		carts:     carts,
		addresses: addresses,
		mailer:    mailer,
		logger:    logger,
	}
}

// OrderCart checks out the user's whole cart against the given address.
// On success the cart lines are consumed inside the same transaction.
func (s *OrderService) OrderCart(ctx context.Context, user *domain.User, addressID string) (*domain.Order, error) {
	order, err := s.newOrderFor(ctx, user, addressID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.ListByUser(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	requests := make([]domain.StockDecrement, 0, len(cart))
	for _, line := range cart {
		requests = append(requests, domain.StockDecrement{ProductID: line.ProductID, Qty: line.Qty})
	}

	if err := s.placeOrder(ctx, order, requests, true); err != nil {
		return nil, err
	}

	s.logger.Info("Order placed from cart",
		zap.String("order_id", order.OrderID),
		zap.String("user_id", user.UserID),
		zap.Int("line_count", len(order.Lines)))

	s.notifyOrderPlaced(user, order)
	return order, nil
}

// OrderProduct checks out exactly one product/qty pair; the cart is left
// untouched.
func (s *OrderService) OrderProduct(ctx context.Context, user *domain.User, addressID, productID string, qty int) (*domain.Order, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	order, err := s.newOrderFor(ctx, user, addressID)
	if err != nil {
		return nil, err
	}

	requests := []domain.StockDecrement{{ProductID: productID, Qty: qty}}
	if err := s.placeOrder(ctx, order, requests, false); err != nil {
		return nil, err
	}

	s.logger.Info("Order placed for single product",
		zap.String("order_id", order.OrderID),
		zap.String("user_id", user.UserID),
		zap.String("product_id", productID),
		zap.Int("qty", qty))

	s.notifyOrderPlaced(user, order)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, user *domain.User, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != user.UserID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, user.UserID)
}

// newOrderFor snapshots the shipping address into a fresh, unpersisted order.
func (s *OrderService) newOrderFor(ctx context.Context, user *domain.User, addressID string) (*domain.Order, error) {
	address, err := s.addresses.GetAddress(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	return &domain.Order{
		OrderID:   uuid.NewString(),
		UserID:    user.UserID,
		Name:      address.Name,
		Phone:     address.Phone,
		Address1:  address.Address1,
		Address2:  address.Address2,
		Pincode:   address.Pincode,
		City:      address.City,
		State:     address.State,
		Country:   address.Country,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// placeOrder prices every requested line against a fresh product snapshot,
// rejects any line exceeding stock, and only then commits the transactional
// write. The repository re-checks stock conditionally, so a concurrent
// checkout racing past the snapshot still cannot drive stock negative.
func (s *OrderService) placeOrder(ctx context.Context, order *domain.Order, requests []domain.StockDecrement, clearCart bool) error {
	names := make(map[string]string, len(requests))
	lines := make([]domain.OrderLine, 0, len(requests))

	for _, req := range requests {
		product, err := s.products.GetProduct(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if req.Qty > product.Stock {
			return &StockError{ProductName: product.Name}
		}

		names[product.ProductID] = product.Name
		lines = append(lines, domain.OrderLine{
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Qty:         req.Qty,
			Price:       pricing.UnitPrice(product.Price, product.Discount),
		})
	}
	order.Lines = lines

	if err := s.orders.PlaceOrder(ctx, order, requests, clearCart); err != nil {
		var conflict *repository.StockConflictError
		if errors.As(err, &conflict) {
			name, ok := names[conflict.ProductID]
			if !ok {
				name = conflict.ProductID
			}
			return &StockError{ProductName: name}
		}
		return err
	}

	return nil
}

func (s *OrderService) notifyOrderPlaced(user *domain.User, order *domain.Order) {
	subject := fmt.Sprintf("Order Confirmed Id: %s", order.OrderID)

	s.mailer.Send(
		subject,
		fmt.Sprintf("Dear %s,\n\n Your order is confirmed with order id: %s. Please go to your orders section in app to see the order details", user.Name, order.OrderID),
		mailFromLabel,
		[]string{user.Email},
	)

	s.mailer.NotifyAdmins(
		subject,
		fmt.Sprintf("A order has been placed with order id : %s", order.OrderID),
	)
}
