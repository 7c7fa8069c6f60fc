package service

import (
	"context"
	"testing"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testUser() *domain.User {
	return &domain.User{
		UserID: "u1",
		Name:   "Asha",
		Email:  "asha@example.com",
		Phone:  "9999999999",
	}
}

func testAddress(userID string) *domain.Address {
	return &domain.Address{
		AddressID: "a1",
		UserID:    userID,
		Name:      "Asha",
		Phone:     "9999999999",
		Address1:  "12 MG Road",
		Address2:  "Flat 4",
		Pincode:   560001,
		City:      "Bengaluru",
		State:     "Karnataka",
		Country:   "India",
	}
}

type orderFixture struct {
	products *memProducts
	carts    *memCarts
	orders   *memOrders
	mailer   *fakeMailer
	svc      *OrderService
}

func newOrderFixture(products ...*domain.Product) *orderFixture {
	f := &orderFixture{
		products: newMemProducts(products...),
		carts:    newMemCarts(),
		mailer:   &fakeMailer{},
	}
	f.orders = newMemOrders(f.products, f.carts)
	f.svc = NewOrderService(f.orders, f.products, f.carts, newMemAddresses(testAddress("u1")), f.mailer, zap.NewNop())
	return f
}

func (f *orderFixture) addCartLine(userID, productID string, qty int) {
	_ = f.carts.PutLine(context.Background(), &domain.CartLine{
		UserID:    userID,
		ProductID: productID,
		Qty:       qty,
	})
}

func TestOrderCartHappyPath(t *testing.T) {
	f := newOrderFixture(&domain.Product{
		ProductID: "p1", Name: "Silver ring", Price: 100, Discount: 10, Stock: 5,
	})
	f.addCartLine("u1", "p1", 2)

	order, err := f.svc.OrderCart(context.Background(), testUser(), "a1")
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	assert.Equal(t, "p1", order.Lines[0].ProductID)
	assert.Equal(t, 2, order.Lines[0].Qty)
	assert.Equal(t, 90, order.Lines[0].Price)

	// Address snapshot is copied onto the order.
	assert.Equal(t, "12 MG Road", order.Address1)
	assert.Equal(t, 560001, order.Pincode)

	assert.Equal(t, 3, f.products.stock("p1"))

	cart, err := f.carts.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, cart)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "Order Confirmed Id: "+order.OrderID, f.mailer.sent[0].subject)
	assert.Equal(t, []string{"asha@example.com"}, f.mailer.sent[0].recipients)
	require.Len(t, f.mailer.adminNotes, 1)
	assert.Contains(t, f.mailer.adminNotes[0].body, order.OrderID)
}

func TestOrderCartInsufficientStock(t *testing.T) {
	f := newOrderFixture(&domain.Product{
		ProductID: "p1", Name: "Silver ring", Price: 100, Discount: 0, Stock: 1,
	})
	f.addCartLine("u1", "p1", 3)

	_, err := f.svc.OrderCart(context.Background(), testUser(), "a1")

	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Silver ring", stockErr.ProductName)

	// No partial mutation: stock and cart are untouched, no mail queued.
	assert.Equal(t, 1, f.products.stock("p1"))
	cart, _ := f.carts.ListByUser(context.Background(), "u1")
	assert.Len(t, cart, 1)
	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.mailer.adminNotes)
}

func TestOrderCartAllOrNothingAcrossLines(t *testing.T) {
	f := newOrderFixture(
		&domain.Product{ProductID: "p1", Name: "Ring", Price: 50, Stock: 10},
		&domain.Product{ProductID: "p2", Name: "Chain", Price: 80, Stock: 1},
	)
	f.addCartLine("u1", "p1", 2)
	f.addCartLine("u1", "p2", 5)

	_, err := f.svc.OrderCart(context.Background(), testUser(), "a1")

	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Chain", stockErr.ProductName)

	// The passing line must not have been committed either.
	assert.Equal(t, 10, f.products.stock("p1"))
	assert.Equal(t, 1, f.products.stock("p2"))
	cart, _ := f.carts.ListByUser(context.Background(), "u1")
	assert.Len(t, cart, 2)
}

func TestOrderCartMissingAddress(t *testing.T) {
	f := newOrderFixture(&domain.Product{ProductID: "p1", Name: "Ring", Price: 50, Stock: 10})
	f.addCartLine("u1", "p1", 1)

	_, err := f.svc.OrderCart(context.Background(), testUser(), "no-such-address")
	assert.ErrorIs(t, err, ErrAddressNotFound)
	assert.Equal(t, 10, f.products.stock("p1"))
}

func TestOrderCartPriceRoundsUp(t *testing.T) {
	f := newOrderFixture(&domain.Product{
		ProductID: "p1", Name: "Pendant", Price: 99, Discount: 33, Stock: 5,
	})
	f.addCartLine("u1", "p1", 1)

	order, err := f.svc.OrderCart(context.Background(), testUser(), "a1")
	require.NoError(t, err)

	// ceil(99 - 99*33/100) = ceil(66.33) = 67
	assert.Equal(t, 67, order.Lines[0].Price)
}

func TestOrderLinePriceFrozenAfterCatalogChange(t *testing.T) {
	f := newOrderFixture(&domain.Product{
		ProductID: "p1", Name: "Ring", Price: 100, Discount: 10, Stock: 5,
	})
	f.addCartLine("u1", "p1", 1)

	order, err := f.svc.OrderCart(context.Background(), testUser(), "a1")
	require.NoError(t, err)
	require.Equal(t, 90, order.Lines[0].Price)

	// Reprice the product; the stored order keeps the captured price.
	f.products.mu.Lock()
	f.products.items["p1"].Price = 500
	f.products.items["p1"].Discount = 0
	f.products.mu.Unlock()

	stored, err := f.orders.GetOrder(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 90, stored.Lines[0].Price)
}

func TestOrderProduct(t *testing.T) {
	f := newOrderFixture(&domain.Product{
		ProductID: "p1", Name: "Ring", Price: 100, Discount: 0, Stock: 5,
	})
	// Cart content is unrelated to a single-product order.
	f.addCartLine("u1", "p1", 4)

	order, err := f.svc.OrderProduct(context.Background(), testUser(), "a1", "p1", 2)
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	assert.Equal(t, 2, order.Lines[0].Qty)
	assert.Equal(t, 3, f.products.stock("p1"))

	cart, _ := f.carts.ListByUser(context.Background(), "u1")
	assert.Len(t, cart, 1, "cart must be untouched")
	assert.Len(t, f.mailer.sent, 1)
	assert.Len(t, f.mailer.adminNotes, 1)
}

func TestOrderProductRejectsNonPositiveQty(t *testing.T) {
	f := newOrderFixture(&domain.Product{ProductID: "p1", Name: "Ring", Price: 100, Stock: 5})

	_, err := f.svc.OrderProduct(context.Background(), testUser(), "a1", "p1", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = f.svc.OrderProduct(context.Background(), testUser(), "a1", "p1", -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestOrderProductUnknownProduct(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.OrderProduct(context.Background(), testUser(), "a1", "ghost", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, f.mailer.sent)
}

func TestGetOrderOwnership(t *testing.T) {
	f := newOrderFixture(&domain.Product{ProductID: "p1", Name: "Ring", Price: 100, Stock: 5})
	f.addCartLine("u1", "p1", 1)

	order, err := f.svc.OrderCart(context.Background(), testUser(), "a1")
	require.NoError(t, err)

	got, err := f.svc.GetOrder(context.Background(), testUser(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, got.OrderID)

	other := &domain.User{UserID: "u2", Name: "Rahul", Email: "rahul@example.com"}
	_, err = f.svc.GetOrder(context.Background(), other, order.OrderID)
	assert.ErrorIs(t, err, ErrNotOrderOwner)

	_, err = f.svc.GetOrder(context.Background(), testUser(), "no-such-order")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderEmptyCartCreatesEmptyOrder(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.OrderCart(context.Background(), testUser(), "a1")
	require.NoError(t, err)
	assert.Empty(t, order.Lines)
	assert.WithinDuration(t, time.Now(), order.CreatedAt, 5*time.Second)
	assert.Len(t, f.mailer.sent, 1)
}
