package service

import (
	"context"
	"errors"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService struct {
	reviews  ReviewStore
	products ProductStore
	logger   *zap.Logger
}

func NewReviewService(reviews ReviewStore, products ProductStore, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		products: products,
		logger:   logger,
	}
}

// AddReview has no uniqueness constraint; a user may review a product more
// than once.
func (s *ReviewService) AddReview(ctx context.Context, user *domain.User, input domain.AddReviewInput) (*domain.Review, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.products.GetProduct(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	review := &domain.Review{
		ReviewID:  uuid.NewString(),
		ProductID: input.ProductID,
		UserID:    user.UserID,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.PutReview(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, user *domain.User, reviewID string) error {
	review, err := s.reviews.GetReview(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != user.UserID {
		return ErrNotReviewAuthor
	}

	return s.reviews.DeleteReview(ctx, reviewID)
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}

// LikeReview is idempotent: liking an already-liked review returns the
// existing like.
func (s *ReviewService) LikeReview(ctx context.Context, user *domain.User, reviewID string) (*domain.Like, error) {
	if _, err := s.reviews.GetReview(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	like := &domain.Like{
		UserID:    user.UserID,
		ReviewID:  reviewID,
		LikeID:    uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	err := s.reviews.PutLike(ctx, like)
	if errors.Is(err, repository.ErrLikeExists) {
		return s.reviews.GetLike(ctx, user.UserID, reviewID)
	}
	if err != nil {
		return nil, err
	}

	return like, nil
}

func (s *ReviewService) UnlikeReview(ctx context.Context, user *domain.User, reviewID string) (*domain.Like, error) {
	like, err := s.reviews.GetLike(ctx, user.UserID, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return nil, ErrLikeNotFound
		}
		return nil, err
	}

	if err := s.reviews.DeleteLike(ctx, user.UserID, reviewID); err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return nil, ErrLikeNotFound
		}
		return nil, err
	}

	return like, nil
}

func (s *ReviewService) LikesCount(ctx context.Context, reviewID string) (int, error) {
	return s.reviews.CountLikes(ctx, reviewID)
}

func (s *ReviewService) IsLiked(ctx context.Context, user *domain.User, reviewID string) (bool, error) {
	_, err := s.reviews.GetLike(ctx, user.UserID, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
