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

type AddressRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewAddressRepository(client *dynamodb.Client, tableName string) *AddressRepository {
	return &AddressRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *AddressRepository) PutAddress(ctx context.Context, address *domain.Address) error {
	av, err := attributevalue.MarshalMap(address)
	if err != nil {
		return fmt.Errorf("failed to marshal address: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put address: %w", err)
	}

	return nil
}

func (r *AddressRepository) GetAddress(ctx context.Context, addressID string) (*domain.Address, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"address_id": &types.AttributeValueMemberS{Value: addressID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	if result.Item == nil {
		return nil, ErrAddressNotFound
	}

	var address domain.Address
	if err := attributevalue.UnmarshalMap(result.Item, &address); err != nil {
		return nil, fmt.Errorf("failed to unmarshal address: %w", err)
	}

	return &address, nil
}

func (r *AddressRepository) DeleteAddress(ctx context.Context, addressID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"address_id": &types.AttributeValueMemberS{Value: addressID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	return nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	keyCond := expression.Key("user_id").Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build address query: %w", err)
	}

	var addresses []domain.Address

	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(userIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query addresses: %w", err)
		}
		var batch []domain.Address
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal addresses: %w", err)
		}
		addresses = append(addresses, batch...)
	}

	return addresses, nil
}
