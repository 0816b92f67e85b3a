package repository

import (
	"context"
	"errors"
	"time"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPricesTableName           = "prices"
	defaultPriceIdempotencyTableName = "price_idempotency_keys"
	pricesProductIDIndex             = "product_id-index"
	pricesStatusIndex                = "status-index"
)

type priceItem struct {
	ID              string  `dynamodbav:"id"`
	ProductID       string  `dynamodbav:"product_id"`
	StoreID         string  `dynamodbav:"store_id"`
	PriceCents      int64   `dynamodbav:"price_cents"`
	Currency        string  `dynamodbav:"currency"`
	CapturedAt      string  `dynamodbav:"captured_at"`
	SubmittedBy     string  `dynamodbav:"submitted_by,omitempty"`
	PhotoURL        string  `dynamodbav:"photo_url,omitempty"`
	Status          string  `dynamodbav:"status"`
	ConfidenceScore float64 `dynamodbav:"confidence_score"`
	IdempotencyKey  string  `dynamodbav:"idempotency_key,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

type idempotencyKeyItem struct {
	IdempotencyKey string `dynamodbav:"idempotency_key"`
	PriceID        string `dynamodbav:"price_id"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// PriceDynamoRepository persists Price entities in DynamoDB.
//
// Table requirements:
//   - prices: PK id (string), GSI product_id-index (PK: product_id),
//     GSI status-index (PK: status, SK: captured_at)
//   - price_idempotency_keys: PK idempotency_key (string)
//
// DynamoDB cannot enforce uniqueness on a non-key attribute, so the
// at-most-one-price-per-idempotency-key invariant is carried by a marker
// item in the key table, written in the same transaction as the price with
// attribute_not_exists as the condition. A lost race cancels the whole
// transaction and surfaces as ErrIdempotencyKeyConflict.

type PriceDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	idempotencyTable string
}

var _ interfaces.IPriceRepository = (*PriceDynamoRepository)(nil)

func NewPriceDynamoRepository(ddb *dynamodb.Client) *PriceDynamoRepository {
	return &PriceDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("PRICES_TABLE", defaultPricesTableName),
		idempotencyTable: getenvDefault("PRICE_IDEMPOTENCY_TABLE", defaultPriceIdempotencyTableName),
	}
}

func (r *PriceDynamoRepository) Create(ctx context.Context, p entities.Price) (entities.Price, error) {
	it := toPriceItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Price{}, err
	}

	if p.IdempotencyKey == "" {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			return entities.Price{}, err
		}
		return p, nil
	}

	marker := idempotencyKeyItem{
		IdempotencyKey: p.IdempotencyKey,
		PriceID:        p.ID,
		CreatedAt:      it.CreatedAt,
	}
	markerAV, err := attributevalue.MarshalMap(marker)
	if err != nil {
		return entities.Price{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.idempotencyTable),
					Item:                markerAV,
					ConditionExpression: aws.String("attribute_not_exists(#key)"),
					ExpressionAttributeNames: map[string]string{
						"#key": "idempotency_key",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Price{}, interfaces.ErrIdempotencyKeyConflict
		}
		return entities.Price{}, err
	}
	return p, nil
}

func (r *PriceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Price, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Price{}, err
	}
	if len(out.Item) == 0 {
		return entities.Price{}, nil
	}

	var it priceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Price{}, err
	}
	return fromPriceItem(it), nil
}

func (r *PriceDynamoRepository) GetByIdempotencyKey(ctx context.Context, key string) (entities.Price, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.idempotencyTable),
		Key: map[string]types.AttributeValue{
			"idempotency_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Price{}, err
	}
	if len(out.Item) == 0 {
		return entities.Price{}, nil
	}

	var marker idempotencyKeyItem
	if err := attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return entities.Price{}, err
	}
	return r.GetByID(ctx, marker.PriceID)
}

func (r *PriceDynamoRepository) ListByProductID(ctx context.Context, productID string) ([]entities.Price, error) {
	var prices []entities.Price
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(pricesProductIDIndex),
			KeyConditionExpression: aws.String("product_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: productID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it priceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			prices = append(prices, fromPriceItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return prices, nil
}

func (r *PriceDynamoRepository) ListByStatus(ctx context.Context, status entities.PriceStatus, limit int) ([]entities.Price, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pricesStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	prices := make([]entities.Price, 0, len(out.Items))
	for _, raw := range out.Items {
		var it priceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		prices = append(prices, fromPriceItem(it))
	}
	return prices, nil
}

func (r *PriceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PriceStatus) (entities.Price, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Price{}, nil
		}
		return entities.Price{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Price{}, nil
	}

	var it priceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Price{}, err
	}
	return fromPriceItem(it), nil
}

func (r *PriceDynamoRepository) CountByDevice(ctx context.Context) (map[string]interfaces.DeviceSubmissionStats, error) {
	stats := make(map[string]interfaces.DeviceSubmissionStats)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			FilterExpression:     aws.String("attribute_exists(submitted_by)"),
			ProjectionExpression: aws.String("submitted_by, captured_at"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it priceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.SubmittedBy == "" {
				continue
			}
			capturedAt, _ := time.Parse(time.RFC3339Nano, it.CapturedAt)
			s := stats[it.SubmittedBy]
			s.SubmissionsCount++
			if capturedAt.After(s.LastCapturedAt) {
				s.LastCapturedAt = capturedAt
			}
			stats[it.SubmittedBy] = s
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return stats, nil
}

func (r *PriceDynamoRepository) CountSubmissions(ctx context.Context) (interfaces.SubmissionCounters, error) {
	counters := interfaces.SubmissionCounters{
		ByStore:   make(map[string]int),
		ByProduct: make(map[string]int),
	}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("product_id, store_id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return interfaces.SubmissionCounters{}, err
		}
		for _, raw := range out.Items {
			var it priceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return interfaces.SubmissionCounters{}, err
			}
			counters.Total++
			counters.ByStore[it.StoreID]++
			counters.ByProduct[it.ProductID]++
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return counters, nil
}

// isConditionalCancellation reports whether a transaction failed because one
// of its condition checks lost the race.
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toPriceItem(p entities.Price) priceItem {
	return priceItem{
		ID:              p.ID,
		ProductID:       p.ProductID,
		StoreID:         p.StoreID,
		PriceCents:      p.PriceCents,
		Currency:        p.Currency,
		CapturedAt:      p.CapturedAt.UTC().Format(time.RFC3339Nano),
		SubmittedBy:     p.SubmittedBy,
		PhotoURL:        p.PhotoURL,
		Status:          string(p.Status),
		ConfidenceScore: p.ConfidenceScore,
		IdempotencyKey:  p.IdempotencyKey,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPriceItem(it priceItem) entities.Price {
	capturedAt, _ := time.Parse(time.RFC3339Nano, it.CapturedAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Price{
		ID:              it.ID,
		ProductID:       it.ProductID,
		StoreID:         it.StoreID,
		PriceCents:      it.PriceCents,
		Currency:        it.Currency,
		CapturedAt:      capturedAt,
		SubmittedBy:     it.SubmittedBy,
		PhotoURL:        it.PhotoURL,
		Status:          entities.PriceStatus(it.Status),
		ConfidenceScore: it.ConfidenceScore,
		IdempotencyKey:  it.IdempotencyKey,
		CreatedAt:       createdAt,
	}
}
