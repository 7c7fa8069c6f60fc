package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
)

const userIndexName = "user_id-index"

type OrderRepository struct {
	client        *dynamodb.Client
	tableName     string
	productsTable string
	cartTable     string
}

func NewOrderRepository(client *dynamodb.Client, tableName, productsTable, cartTable string) *OrderRepository {
	return &OrderRepository{
		client:        client,
		tableName:     tableName,
		productsTable: productsTable,
		cartTable:     cartTable,
	}
}

// PlaceOrder commits an order in a single TransactWriteItems call: the order
// put, one conditional stock decrement per touched product, and (for cart
// checkouts) one delete per consumed cart line. A failed stock condition
// cancels the whole transaction, so nothing is mutated on failure.
func (r *OrderRepository) PlaceOrder(ctx context.Context, order *domain.Order, decrements []domain.StockDecrement, clearCart bool) error {
	av, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item:      av,
			},
		},
	}

	for _, dec := range decrements {
		update := expression.Set(
			expression.Name("stock"),
			expression.Minus(
				expression.Name("stock"),
				expression.Value(dec.Qty),
			),
		).Set(
			expression.Name("updated_at"),
			expression.Value(time.Now().UTC()),
		)

		// Only decrement when the product exists and holds enough stock.
		condition := expression.AttributeExists(expression.Name("product_id")).And(
			expression.GreaterThanEqual(
				expression.Name("stock"),
				expression.Value(dec.Qty),
			),
		)

		expr, err := expression.NewBuilder().
			WithUpdate(update).
			WithCondition(condition).
			Build()
		if err != nil {
			return fmt.Errorf("failed to build stock update: %w", err)
		}

		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.productsTable),
				Key: map[string]types.AttributeValue{
					"product_id": &types.AttributeValueMemberS{Value: dec.ProductID},
				},
				UpdateExpression:          expr.Update(),
				ConditionExpression:       expr.Condition(),
				ExpressionAttributeNames:  expr.Names(),
				ExpressionAttributeValues: expr.Values(),
			},
		})
	}

	if clearCart {
		for _, dec := range decrements {
			items = append(items, types.TransactWriteItem{
				Delete: &types.Delete{
					TableName: aws.String(r.cartTable),
					Key:       cartKey(order.UserID, dec.ProductID),
				},
			})
		}
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			// Cancellation reasons align with TransactItems; the stock
			// updates sit at indices 1..len(decrements).
			for i, reason := range canceled.CancellationReasons {
				if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
					continue
				}
				if i >= 1 && i <= len(decrements) {
					return &StockConflictError{ProductID: decrements[i-1].ProductID}
				}
			}
		}
		return fmt.Errorf("failed to commit order transaction: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if result.Item == nil {
		return nil, ErrOrderNotFound
	}

	var order domain.Order
	if err := attributevalue.UnmarshalMap(result.Item, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}

	return &order, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	keyCond := expression.Key("user_id").Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build order query: %w", err)
	}

	var orders []domain.Order

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
			return nil, fmt.Errorf("failed to query orders: %w", err)
		}
		var batch []domain.Order
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal orders: %w", err)
		}
		orders = append(orders, batch...)
	}

	return orders, nil
}
