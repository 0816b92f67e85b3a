package repository

import (
	"context"
	"time"

	"caca_precos/internal/domain/entities"
	"caca_precos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStoresTableName = "stores"

type storeItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	City      string `dynamodbav:"city,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// StoreDynamoRepository resolves and lists Store entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type StoreDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStoreRepository = (*StoreDynamoRepository)(nil)

func NewStoreDynamoRepository(ddb *dynamodb.Client) *StoreDynamoRepository {
	return &StoreDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STORES_TABLE", defaultStoresTableName),
	}
}

func (r *StoreDynamoRepository) GetByID(ctx context.Context, id string) (entities.Store, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Store{}, err
	}
	if len(out.Item) == 0 {
		return entities.Store{}, nil
	}

	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Store{}, err
	}
	return fromStoreItem(it), nil
}

func (r *StoreDynamoRepository) List(ctx context.Context) ([]entities.Store, error) {
	var stores []entities.Store
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it storeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			stores = append(stores, fromStoreItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return stores, nil
}

func fromStoreItem(it storeItem) entities.Store {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Store{ID: it.ID, Name: it.Name, City: it.City, CreatedAt: createdAt}
}
