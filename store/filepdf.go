// Package store implements FilePdf persistence on DynamoDB.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/GeorgeBeta/rkt-regulador2-infra/apperrors"
	"github.com/GeorgeBeta/rkt-regulador2-infra/health"
	"github.com/GeorgeBeta/rkt-regulador2-infra/models"
	"github.com/GeorgeBeta/rkt-regulador2-infra/retries"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type FilePdfStore interface {
	// ListByOwner returns all records owned by userID, oldest first.
	ListByOwner(ctx context.Context, userID string) ([]models.FilePdf, error)
	// Create persists a fully-populated record.
	Create(ctx context.Context, filePdf models.FilePdf) error
	// GetByFilePdfID resolves a record through the filePdfId index.
	GetByFilePdfID(ctx context.Context, filePdfID string) (*models.FilePdf, error)
	// Delete removes the record at key, guarded on filePdfId equality.
	Delete(ctx context.Context, key models.FilePdfKey, filePdfID string) error

	health.ReadinessCheck
}

type DynamoDbFilePdfStoreImpl struct {
	client    DynamoDBClient
	tableName string
	indexName string
}

func NewDynamoDbFilePdfStoreImpl(client DynamoDBClient, tableName, indexName string) *DynamoDbFilePdfStoreImpl {
	return &DynamoDbFilePdfStoreImpl{
		client:    client,
		tableName: tableName,
		indexName: indexName,
	}
}

func (s *DynamoDbFilePdfStoreImpl) IsReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	return retries.Retry(
		ctx,
		retries.HealthAttempts,
		retries.HealthBaseDelay,
		func() error {
			_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
				TableName: aws.String(s.tableName),
			})
			return err
		},
		retries.IsRetriableDbError,
	)
}

func (s *DynamoDbFilePdfStoreImpl) Name() string {
	return "FilePdfStore[" + s.tableName + "]"
}

func (s *DynamoDbFilePdfStoreImpl) ListByOwner(ctx context.Context, userID string) ([]models.FilePdf, error) {
	var items []map[string]types.AttributeValue

	err := retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			out, err := s.client.Query(ctx, &dynamodb.QueryInput{
				TableName:              aws.String(s.tableName),
				KeyConditionExpression: aws.String("userId = :u"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":u": &types.AttributeValueMemberS{Value: userID},
				},
				// createdAt ascending, the table's natural sort order.
				ScanIndexForward: aws.Bool(true),
			})
			if err != nil {
				return err
			}
			items = out.Items
			return nil
		},
		retries.IsRetriableDbError,
	)
	if err != nil {
		return nil, err
	}

	filePdfs := []models.FilePdf{}
	if err := attributevalue.UnmarshalListOfMaps(items, &filePdfs); err != nil {
		return nil, err
	}

	return filePdfs, nil
}

func (s *DynamoDbFilePdfStoreImpl) Create(ctx context.Context, filePdf models.FilePdf) error {
	// Marshal once; retries re-send the identical item so the generated
	// filePdfId doubles as the idempotency key on ambiguous failures.
	item, err := attributevalue.MarshalMap(filePdf)
	if err != nil {
		return err
	}

	return retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
				TableName: aws.String(s.tableName),
				Item:      item,
			})
			return err
		},
		retries.IsRetriableDbError,
	)
}

func (s *DynamoDbFilePdfStoreImpl) GetByFilePdfID(ctx context.Context, filePdfID string) (*models.FilePdf, error) {
	var items []map[string]types.AttributeValue

	// Only the Query itself is retried: an empty result is a definitive
	// not-found, not a transient failure.
	err := retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			out, err := s.client.Query(ctx, &dynamodb.QueryInput{
				TableName:              aws.String(s.tableName),
				IndexName:              aws.String(s.indexName),
				KeyConditionExpression: aws.String("filePdfId = :id"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":id": &types.AttributeValueMemberS{Value: filePdfID},
				},
			})
			if err != nil {
				return err
			}
			items = out.Items
			return nil
		},
		retries.IsRetriableDbError,
	)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, apperrors.ErrFilePdfNotFound
	}

	var filePdf models.FilePdf
	if err := attributevalue.UnmarshalMap(items[0], &filePdf); err != nil {
		return nil, err
	}

	return &filePdf, nil
}

func (s *DynamoDbFilePdfStoreImpl) Delete(ctx context.Context, key models.FilePdfKey, filePdfID string) error {
	keyAttrs, err := attributevalue.MarshalMap(key)
	if err != nil {
		return err
	}

	err = retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			// The condition guards the lookup/delete race: if the slot was
			// concurrently deleted and reused by another record, the ids no
			// longer match and nothing is removed.
			_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName:           aws.String(s.tableName),
				Key:                 keyAttrs,
				ConditionExpression: aws.String("filePdfId = :id"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":id": &types.AttributeValueMemberS{Value: filePdfID},
				},
			})
			return err
		},
		retries.IsRetriableDbError,
	)

	var condFailed *types.ConditionalCheckFailedException
	if errors.As(err, &condFailed) {
		return apperrors.ErrFilePdfNotFound
	}

	return err
}
