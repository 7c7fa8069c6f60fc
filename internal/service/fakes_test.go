package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
)

// In-memory stores standing in for the DynamoDB repositories. memOrders
// mimics the transactional contract of PlaceOrder: all stock conditions are
// checked before anything mutates.

type memProducts struct {
	mu    sync.Mutex
	items map[string]*domain.Product
}

func newMemProducts(products ...*domain.Product) *memProducts {
	m := &memProducts{items: make(map[string]*domain.Product)}
	for _, p := range products {
		m.items[p.ProductID] = p
	}
	return m
}

func (m *memProducts) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[productID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) ListProducts(_ context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Product, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, *p)
	}
	// Map iteration order is random; keep listings stable for the callers.
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (m *memProducts) stock(productID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[productID].Stock
}

type cartKey struct{ userID, productID string }

type memCarts struct {
	mu    sync.Mutex
	items map[cartKey]*domain.CartLine
}

func newMemCarts() *memCarts {
	return &memCarts{items: make(map[cartKey]*domain.CartLine)}
}

func (m *memCarts) GetLine(_ context.Context, userID, productID string) (*domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	line, ok := m.items[cartKey{userID, productID}]
	if !ok {
		return nil, repository.ErrCartLineNotFound
	}
	cp := *line
	return &cp, nil
}

func (m *memCarts) PutLine(_ context.Context, line *domain.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *line
	m.items[cartKey{line.UserID, line.ProductID}] = &cp
	return nil
}

func (m *memCarts) DeleteLine(_ context.Context, userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, cartKey{userID, productID})
	return nil
}

func (m *memCarts) ListByUser(_ context.Context, userID string) ([]domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.CartLine{}
	for k, line := range m.items {
		if k.userID == userID {
			out = append(out, *line)
		}
	}
	return out, nil
}

type memOrders struct {
	mu       sync.Mutex
	products *memProducts
	carts    *memCarts
	items    map[string]*domain.Order
}

func newMemOrders(products *memProducts, carts *memCarts) *memOrders {
	return &memOrders{
		products: products,
		carts:    carts,
		items:    make(map[string]*domain.Order),
	}
}

func (m *memOrders) PlaceOrder(_ context.Context, order *domain.Order, decrements []domain.StockDecrement, clearCart bool) error {
	m.products.mu.Lock()
	defer m.products.mu.Unlock()

	// Validate every condition before mutating anything.
	for _, dec := range decrements {
		p, ok := m.products.items[dec.ProductID]
		if !ok || p.Stock < dec.Qty {
			return &repository.StockConflictError{ProductID: dec.ProductID}
		}
	}

	for _, dec := range decrements {
		m.products.items[dec.ProductID].Stock -= dec.Qty
	}
	if clearCart {
		m.carts.mu.Lock()
		for _, dec := range decrements {
			delete(m.carts.items, cartKey{order.UserID, dec.ProductID})
		}
		m.carts.mu.Unlock()
	}

	m.mu.Lock()
	cp := *order
	m.items[order.OrderID] = &cp
	m.mu.Unlock()
	return nil
}

func (m *memOrders) GetOrder(_ context.Context, orderID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.items[orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (m *memOrders) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Order{}
	for _, order := range m.items {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

type memAddresses struct {
	mu    sync.Mutex
	items map[string]*domain.Address
}

func newMemAddresses(addresses ...*domain.Address) *memAddresses {
	m := &memAddresses{items: make(map[string]*domain.Address)}
	for _, a := range addresses {
		m.items[a.AddressID] = a
	}
	return m
}

func (m *memAddresses) PutAddress(_ context.Context, address *domain.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *address
	m.items[address.AddressID] = &cp
	return nil
}

func (m *memAddresses) GetAddress(_ context.Context, addressID string) (*domain.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.items[addressID]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAddresses) DeleteAddress(_ context.Context, addressID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, addressID)
	return nil
}

func (m *memAddresses) ListByUser(_ context.Context, userID string) ([]domain.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Address{}
	for _, a := range m.items {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type likeKey struct{ userID, reviewID string }

type memReviews struct {
	mu      sync.Mutex
	reviews map[string]*domain.Review
	likes   map[likeKey]*domain.Like
}

func newMemReviews(reviews ...*domain.Review) *memReviews {
	m := &memReviews{
		reviews: make(map[string]*domain.Review),
		likes:   make(map[likeKey]*domain.Like),
	}
	for _, rv := range reviews {
		m.reviews[rv.ReviewID] = rv
	}
	return m
}

func (m *memReviews) PutReview(_ context.Context, review *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *review
	m.reviews[review.ReviewID] = &cp
	return nil
}

func (m *memReviews) GetReview(_ context.Context, reviewID string) (*domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rv, ok := m.reviews[reviewID]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}
	cp := *rv
	return &cp, nil
}

func (m *memReviews) DeleteReview(_ context.Context, reviewID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reviews, reviewID)
	return nil
}

func (m *memReviews) ListByProduct(_ context.Context, productID string) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Review{}
	for _, rv := range m.reviews {
		if rv.ProductID == productID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (m *memReviews) PutLike(_ context.Context, like *domain.Like) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := likeKey{like.UserID, like.ReviewID}
	if _, ok := m.likes[k]; ok {
		return repository.ErrLikeExists
	}
	cp := *like
	m.likes[k] = &cp
	return nil
}

func (m *memReviews) GetLike(_ context.Context, userID, reviewID string) (*domain.Like, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	like, ok := m.likes[likeKey{userID, reviewID}]
	if !ok {
		return nil, repository.ErrLikeNotFound
	}
	cp := *like
	return &cp, nil
}

func (m *memReviews) DeleteLike(_ context.Context, userID, reviewID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := likeKey{userID, reviewID}
	if _, ok := m.likes[k]; !ok {
		return repository.ErrLikeNotFound
	}
	delete(m.likes, k)
	return nil
}

func (m *memReviews) CountLikes(_ context.Context, reviewID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for k := range m.likes {
		if k.reviewID == reviewID {
			count++
		}
	}
	return count, nil
}

type memAppointments struct {
	mu    sync.Mutex
	items map[string]*domain.Appointment
}

func newMemAppointments() *memAppointments {
	return &memAppointments{items: make(map[string]*domain.Appointment)}
}

func (m *memAppointments) CreateAppointment(_ context.Context, appointment *domain.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[appointment.Date]; ok {
		return repository.ErrDateTaken
	}
	cp := *appointment
	m.items[appointment.Date] = &cp
	return nil
}

func (m *memAppointments) ListAfter(_ context.Context, after time.Time) ([]domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Appointment{}
	for _, a := range m.items {
		if a.Timestamp.After(after) {
			out = append(out, *a)
		}
	}
	return out, nil
}

type memUsers struct {
	mu    sync.Mutex
	items map[string]*domain.User
}

func newMemUsers(users ...*domain.User) *memUsers {
	m := &memUsers{items: make(map[string]*domain.User)}
	for _, u := range users {
		m.items[u.UserID] = u
	}
	return m
}

func (m *memUsers) CreateUser(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[user.UserID]; ok {
		return repository.ErrUserExists
	}
	cp := *user
	m.items[user.UserID] = &cp
	return nil
}

func (m *memUsers) PutUser(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.items[user.UserID] = &cp
	return nil
}

func (m *memUsers) GetUser(_ context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUsers) GetByToken(_ context.Context, token string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.items {
		if u.SessionToken != "" && u.SessionToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// fakeMailer records dispatched mail synchronously.
type fakeMailer struct {
	mu         sync.Mutex
	sent       []fakeMail
	adminNotes []fakeMail
}

type fakeMail struct {
	subject    string
	body       string
	fromLabel  string
	recipients []string
}

func (f *fakeMailer) Send(subject, body, fromLabel string, recipients []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, fakeMail{subject, body, fromLabel, recipients})
}

func (f *fakeMailer) NotifyAdmins(subject, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adminNotes = append(f.adminNotes, fakeMail{subject: subject, body: body})
}
