package service

import (
	"context"
	"testing"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogFixture() *CatalogService {
	return NewCatalogService(newMemProducts(
		&domain.Product{ProductID: "p1", Name: "Silver Ring", Kind: "ring", Price: 100, Stock: 5},
		&domain.Product{ProductID: "p2", Name: "Gold Ring", Kind: "ring", Price: 900, Stock: 2},
		&domain.Product{ProductID: "p3", Name: "Silver Chain", Kind: "chain", Price: 300, Stock: 1},
	), zap.NewNop())
}

func TestGetProduct(t *testing.T) {
	svc := newCatalogFixture()

	product, err := svc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Silver Ring", product.Name)

	_, err = svc.GetProduct(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	return ids
}

func TestListProductsSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newCatalogFixture()

	out, err := svc.ListProducts(context.Background(), domain.ProductFilter{Search: "silver"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p3"}, productIDs(out))
}

func TestListProductsKindIsExactMatch(t *testing.T) {
	svc := newCatalogFixture()

	out, err := svc.ListProducts(context.Background(), domain.ProductFilter{Kind: "chain"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p3"}, productIDs(out))

	// Substring of a kind does not match.
	out, err = svc.ListProducts(context.Background(), domain.ProductFilter{Kind: "cha"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListProductsSearchAndKindCombine(t *testing.T) {
	svc := newCatalogFixture()

	out, err := svc.ListProducts(context.Background(), domain.ProductFilter{Search: "silver", Kind: "ring"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, productIDs(out))
}

func TestListProductsSkipBeforeFirst(t *testing.T) {
	svc := newCatalogFixture()

	all, err := svc.ListProducts(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// skip=1, first=1 must return exactly the second match.
	out, err := svc.ListProducts(context.Background(), domain.ProductFilter{Skip: 1, First: 1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, all[1].ProductID, out[0].ProductID)

	// Skip past the end yields an empty result, not an error.
	out, err = svc.ListProducts(context.Background(), domain.ProductFilter{Skip: 10})
	require.NoError(t, err)
	assert.Empty(t, out)
}
