package repository

import (
	"context"
	"fmt"
	"strconv"

	"potteryloop/infras/otel"
	"potteryloop/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrTable = "store.table"
	otelAttrKey   = "store.key"
	otelAttrIndex = "store.index"
)

// Store is the generic document store every submission domain builds on.
// One Store maps to one DynamoDB table with a string hash key.
type Store[T any] struct {
	entityName string
	tableName  string
	keyAttr    string
	db         *dynamodb.Client
	otel       otel.Otel
}

func NewStore[T any](entityName, tableName, keyAttr string, db *dynamodb.Client, otel otel.Otel) Store[T] {
	return Store[T]{
		entityName: entityName,
		tableName:  tableName,
		keyAttr:    keyAttr,
		db:         db,
		otel:       otel,
	}
}

// Put writes one record verbatim. Existing records under the same key are
// replaced; submission ids are generated to make that effectively unreachable.
func (s *Store[T]) Put(ctx context.Context, item T) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrTable, s.tableName)

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		log.Error().Err(err).Str("entity", s.entityName).Msg("failed to marshal item")

		return fmt.Errorf("failed to marshal %s: %w", s.entityName, err)
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		log.Error().Err(err).Str("entity", s.entityName).Msg("failed to put item")

		return fmt.Errorf("failed to store %s: %w", s.entityName, err)
	}

	return nil
}

// Get loads one record by key. The second return value reports whether the
// record exists.
func (s *Store[T]) Get(ctx context.Context, key string) (item T, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrTable: s.tableName,
		otelAttrKey:   key,
	})

	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			s.keyAttr: &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("entity", s.entityName).Str("key", key).Msg("failed to get item")

		return item, false, fmt.Errorf("failed to load %s: %w", s.entityName, err)
	}

	if out.Item == nil {
		return item, false, nil
	}

	if err = attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		log.Error().Err(err).Str("entity", s.entityName).Msg("failed to unmarshal item")

		return item, false, fmt.Errorf("failed to unmarshal %s: %w", s.entityName, err)
	}

	return item, true, nil
}

// Scan reads the whole table, following pagination. The submission tables are
// small; the admin tooling is the only caller.
func (s *Store[T]) Scan(ctx context.Context) (items []T, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Scan")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrTable, s.tableName)

	var startKey map[string]types.AttributeValue

	for {
		out, scanErr := s.db.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.tableName),
			ExclusiveStartKey: startKey,
		})
		if scanErr != nil {
			log.Error().Err(scanErr).Str("entity", s.entityName).Msg("failed to scan table")

			return nil, fmt.Errorf("failed to scan %s: %w", s.entityName, scanErr)
		}

		var page []T
		if err = attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			log.Error().Err(err).Str("entity", s.entityName).Msg("failed to unmarshal scan page")

			return nil, fmt.Errorf("failed to unmarshal %s page: %w", s.entityName, err)
		}

		items = append(items, page...)

		if out.LastEvaluatedKey == nil {
			return items, nil
		}

		startKey = out.LastEvaluatedKey
	}
}

// QueryIndex queries a global secondary index for records whose indexed
// attribute equals value. Callers own the policy for a missing index.
func (s *Store[T]) QueryIndex(ctx context.Context, indexName, attr, value string, limit int32) (items []T, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".QueryIndex")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrTable: s.tableName,
		otelAttrIndex: indexName,
	})

	out, err := s.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(indexName),
		KeyConditionExpression: aws.String("#attr = :value"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", s.entityName, attr, err)
	}

	if err = attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		log.Error().Err(err).Str("entity", s.entityName).Msg("failed to unmarshal query result")

		return nil, fmt.Errorf("failed to unmarshal %s query: %w", s.entityName, err)
	}

	return items, nil
}

// Update sets the given attributes on one record.
func (s *Store[T]) Update(ctx context.Context, key string, fields map[string]any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrTable: s.tableName,
		otelAttrKey:   key,
	})

	expr := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	i := 0
	for field, value := range fields {
		av, marshalErr := attributevalue.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal %s field %s: %w", s.entityName, field, marshalErr)
		}

		placeholder := strconv.Itoa(i)
		if expr == "" {
			expr = "SET "
		} else {
			expr += ", "
		}

		expr += "#f" + placeholder + " = :v" + placeholder
		names["#f"+placeholder] = field
		values[":v"+placeholder] = av
		i++
	}

	_, err = s.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			s.keyAttr: &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		log.Error().Err(err).Str("entity", s.entityName).Str("key", key).Msg("failed to update item")

		return fmt.Errorf("failed to update %s: %w", s.entityName, err)
	}

	return nil
}
