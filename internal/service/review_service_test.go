package service

import (
	"context"
	"testing"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReviewFixture() (*ReviewService, *memReviews) {
	reviews := newMemReviews()
	products := newMemProducts(&domain.Product{ProductID: "p1", Name: "Ring", Stock: 5})
	return NewReviewService(reviews, products, zap.NewNop()), reviews
}

func TestAddReview(t *testing.T) {
	svc, _ := newReviewFixture()

	review, err := svc.AddReview(context.Background(), testUser(), domain.AddReviewInput{
		ProductID: "p1", Rating: 4, Text: "lovely",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ReviewID)
	assert.Equal(t, "u1", review.UserID)
	assert.Equal(t, 4, review.Rating)

	// No uniqueness rule: a second review by the same user is fine.
	_, err = svc.AddReview(context.Background(), testUser(), domain.AddReviewInput{
		ProductID: "p1", Rating: 5,
	})
	require.NoError(t, err)

	list, err := svc.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestAddReviewValidation(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.AddReview(context.Background(), testUser(), domain.AddReviewInput{
		ProductID: "p1", Rating: 9,
	})
	assert.Error(t, err)

	_, err = svc.AddReview(context.Background(), testUser(), domain.AddReviewInput{
		ProductID: "ghost", Rating: 3,
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteReviewOnlyByAuthor(t *testing.T) {
	svc, _ := newReviewFixture()

	review, err := svc.AddReview(context.Background(), testUser(), domain.AddReviewInput{
		ProductID: "p1", Rating: 4,
	})
	require.NoError(t, err)

	other := &domain.User{UserID: "u2", Name: "Rahul"}
	err = svc.DeleteReview(context.Background(), other, review.ReviewID)
	assert.ErrorIs(t, err, ErrNotReviewAuthor)

	err = svc.DeleteReview(context.Background(), testUser(), review.ReviewID)
	require.NoError(t, err)

	list, err := svc.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, list)

	err = svc.DeleteReview(context.Background(), testUser(), review.ReviewID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestLikeReviewIsDeduplicated(t *testing.T) {
	svc, _ := newReviewFixture()

	review, err := svc.AddReview(context.Background(), testUser(), domain.AddReviewInput{
		ProductID: "p1", Rating: 4,
	})
	require.NoError(t, err)

	first, err := svc.LikeReview(context.Background(), testUser(), review.ReviewID)
	require.NoError(t, err)

	second, err := svc.LikeReview(context.Background(), testUser(), review.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, first.LikeID, second.LikeID)

	count, err := svc.LikesCount(context.Background(), review.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// A different user raises the count.
	other := &domain.User{UserID: "u2", Name: "Rahul"}
	_, err = svc.LikeReview(context.Background(), other, review.ReviewID)
	require.NoError(t, err)

	count, err = svc.LikesCount(context.Background(), review.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLikeUnknownReview(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.LikeReview(context.Background(), testUser(), "ghost")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestUnlikeReview(t *testing.T) {
	svc, _ := newReviewFixture()

	review, err := svc.AddReview(context.Background(), testUser(), domain.AddReviewInput{
		ProductID: "p1", Rating: 4,
	})
	require.NoError(t, err)

	// Nothing to remove yet.
	_, err = svc.UnlikeReview(context.Background(), testUser(), review.ReviewID)
	assert.ErrorIs(t, err, ErrLikeNotFound)

	liked, err := svc.LikeReview(context.Background(), testUser(), review.ReviewID)
	require.NoError(t, err)

	removed, err := svc.UnlikeReview(context.Background(), testUser(), review.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, liked.LikeID, removed.LikeID)

	isLiked, err := svc.IsLiked(context.Background(), testUser(), review.ReviewID)
	require.NoError(t, err)
	assert.False(t, isLiked)
}

func TestIsLiked(t *testing.T) {
	svc, _ := newReviewFixture()

	review, err := svc.AddReview(context.Background(), testUser(), domain.AddReviewInput{
		ProductID: "p1", Rating: 4,
	})
	require.NoError(t, err)

	liked, err := svc.IsLiked(context.Background(), testUser(), review.ReviewID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = svc.LikeReview(context.Background(), testUser(), review.ReviewID)
	require.NoError(t, err)

	liked, err = svc.IsLiked(context.Background(), testUser(), review.ReviewID)
	require.NoError(t, err)
	assert.True(t, liked)
}
