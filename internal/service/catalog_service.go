package service

import (
	"context"
	"errors"
	"strings"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"go.uber.org/zap"
)

// CatalogService is a pure reader over the product table.
type CatalogService struct {
	products ProductStore
	logger   *zap.Logger
}

func NewCatalogService(products ProductStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		logger:   logger,
	}
}

func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// ListProducts filters linearly: case-insensitive substring on name, exact
// kind, both ANDed. Skip drops the first N matches before First caps the
// remainder.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Product, 0, len(products))
	search := strings.ToLower(filter.Search)
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filter.Kind != "" && p.Kind != filter.Kind {
			continue
		}
		matched = append(matched, p)
	}

	if filter.Skip > 0 {
		if filter.Skip >= len(matched) {
			return []domain.Product{}, nil
		}
		matched = matched[filter.Skip:]
	}
	if filter.First > 0 && filter.First < len(matched) {
		matched = matched[:filter.First]
	}

	return matched, nil
}
