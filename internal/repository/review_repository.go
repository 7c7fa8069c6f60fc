package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
)

const (
	productIndexName = "product_id-index"
	reviewIndexName  = "review_id-index"
)

type ReviewRepository struct {
	client     *dynamodb.Client
	tableName  string
	likesTable string
}

func NewReviewRepository(client *dynamodb.Client, tableName, likesTable string) *ReviewRepository {
	return &ReviewRepository{
		client:     client,
		tableName:  tableName,
		likesTable: likesTable,
	}
}

func (r *ReviewRepository) PutReview(ctx context.Context, review *domain.Review) error {
	av, err := attributevalue.MarshalMap(review)
	if err != nil {
		return fmt.Errorf("failed to marshal review: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"review_id": &types.AttributeValueMemberS{Value: reviewID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if result.Item == nil {
		return nil, ErrReviewNotFound
	}

	var review domain.Review
	if err := attributevalue.UnmarshalMap(result.Item, &review); err != nil {
		return nil, fmt.Errorf("failed to unmarshal review: %w", err)
	}

	return &review, nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, reviewID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"review_id": &types.AttributeValueMemberS{Value: reviewID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	keyCond := expression.Key("product_id").Equal(expression.Value(productID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build review query: %w", err)
	}

	var reviews []domain.Review

	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(productIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query reviews: %w", err)
		}
		var batch []domain.Review
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
		}
		reviews = append(reviews, batch...)
	}

	return reviews, nil
}

// PutLike inserts a like keyed (user_id, review_id); a second like by the
// same user fails the condition and returns ErrLikeExists.
func (r *ReviewRepository) PutLike(ctx context.Context, like *domain.Like) error {
	av, err := attributevalue.MarshalMap(like)
	if err != nil {
		return fmt.Errorf("failed to marshal like: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.likesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrLikeExists
		}
		return fmt.Errorf("failed to put like: %w", err)
	}

	return nil
}

func (r *ReviewRepository) GetLike(ctx context.Context, userID, reviewID string) (*domain.Like, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.likesTable),
		Key:       likeKey(userID, reviewID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get like: %w", err)
	}

	if result.Item == nil {
		return nil, ErrLikeNotFound
	}

	var like domain.Like
	if err := attributevalue.UnmarshalMap(result.Item, &like); err != nil {
		return nil, fmt.Errorf("failed to unmarshal like: %w", err)
	}

	return &like, nil
}

func (r *ReviewRepository) DeleteLike(ctx context.Context, userID, reviewID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.likesTable),
		Key:                 likeKey(userID, reviewID),
		ConditionExpression: aws.String("attribute_exists(user_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrLikeNotFound
		}
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}

func (r *ReviewRepository) CountLikes(ctx context.Context, reviewID string) (int, error) {
	keyCond := expression.Key("review_id").Equal(expression.Value(reviewID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return 0, fmt.Errorf("failed to build like query: %w", err)
	}

	count := 0

	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.likesTable),
		IndexName:                 aws.String(reviewIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Select:                    types.SelectCount,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count likes: %w", err)
		}
		count += int(page.Count)
	}

	return count, nil
}

func likeKey(userID, reviewID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id":   &types.AttributeValueMemberS{Value: userID},
		"review_id": &types.AttributeValueMemberS{Value: reviewID},
	}
}
