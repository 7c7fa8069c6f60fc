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

// AppointmentRepository keys appointments by calendar date, so the
// one-appointment-per-day rule is a conditional write, not a read-then-write.
type AppointmentRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewAppointmentRepository(client *dynamodb.Client, tableName string) *AppointmentRepository {
	return &AppointmentRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *AppointmentRepository) CreateAppointment(ctx context.Context, appointment *domain.Appointment) error {
	av, err := attributevalue.MarshalMap(appointment)
	if err != nil {
		return fmt.Errorf("failed to marshal appointment: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#d)"),
		ExpressionAttributeNames: map[string]string{"#d": "date"},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrDateTaken
		}
		return fmt.Errorf("failed to put appointment: %w", err)
	}

	return nil
}

// ListAfter returns appointments whose timestamp is strictly after the given
// instant.
func (r *AppointmentRepository) ListAfter(ctx context.Context, after time.Time) ([]domain.Appointment, error) {
	filter := expression.Name("timestamp").GreaterThan(expression.Value(after.UTC()))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build appointment scan: %w", err)
	}

	var appointments []domain.Appointment

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointments: %w", err)
		}
		var batch []domain.Appointment
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal appointments: %w", err)
		}
		appointments = append(appointments, batch...)
	}

	return appointments, nil
}
