package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
)

// CartRepository stores cart lines keyed (user_id, product_id).
type CartRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewCartRepository(client *dynamodb.Client, tableName string) *CartRepository {
	return &CartRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *CartRepository) GetLine(ctx context.Context, userID, productID string) (*domain.CartLine, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       cartKey(userID, productID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get cart line: %w", err)
	}

	if result.Item == nil {
		return nil, ErrCartLineNotFound
	}

	var line domain.CartLine
	if err := attributevalue.UnmarshalMap(result.Item, &line); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart line: %w", err)
	}

	return &line, nil
}

func (r *CartRepository) PutLine(ctx context.Context, line *domain.CartLine) error {
	av, err := attributevalue.MarshalMap(line)
	if err != nil {
		return fmt.Errorf("failed to marshal cart line: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put cart line: %w", err)
	}

	return nil
}

func (r *CartRepository) DeleteLine(ctx context.Context, userID, productID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       cartKey(userID, productID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	return nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error) {
	keyCond := expression.Key("user_id").Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build cart query: %w", err)
	}

	var lines []domain.CartLine

	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query cart: %w", err)
		}
		var batch []domain.CartLine
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart lines: %w", err)
		}
		lines = append(lines, batch...)
	}

	return lines, nil
}

func cartKey(userID, productID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id":    &types.AttributeValueMemberS{Value: userID},
		"product_id": &types.AttributeValueMemberS{Value: productID},
	}
}
