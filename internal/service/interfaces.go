package service

import (
	"context"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
)

// Store interfaces the services depend on; the DynamoDB repositories
// implement them in production and the tests substitute fakes.

type ProductStore interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CartStore interface {
	GetLine(ctx context.Context, userID, productID string) (*domain.CartLine, error)
	PutLine(ctx context.Context, line *domain.CartLine) error
	DeleteLine(ctx context.Context, userID, productID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error)
}

type OrderStore interface {
	PlaceOrder(ctx context.Context, order *domain.Order, decrements []domain.StockDecrement, clearCart bool) error
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type AddressStore interface {
	PutAddress(ctx context.Context, address *domain.Address) error
	GetAddress(ctx context.Context, addressID string) (*domain.Address, error)
	DeleteAddress(ctx context.Context, addressID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
}

type ReviewStore interface {
	PutReview(ctx context.Context, review *domain.Review) error
	GetReview(ctx context.Context, reviewID string) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	PutLike(ctx context.Context, like *domain.Like) error
	GetLike(ctx context.Context, userID, reviewID string) (*domain.Like, error)
	DeleteLike(ctx context.Context, userID, reviewID string) error
	CountLikes(ctx context.Context, reviewID string) (int, error)
}

type AppointmentStore interface {
	CreateAppointment(ctx context.Context, appointment *domain.Appointment) error
	ListAfter(ctx context.Context, after time.Time) ([]domain.Appointment, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	PutUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByToken(ctx context.Context, token string) (*domain.User, error)
}
