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

const defaultDevicesTableName = "devices"

type deviceItem struct {
	ID        string `dynamodbav:"id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// DeviceDynamoRepository persists Device entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type DeviceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeviceRepository = (*DeviceDynamoRepository)(nil)

func NewDeviceDynamoRepository(ddb *dynamodb.Client) *DeviceDynamoRepository {
	return &DeviceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEVICES_TABLE", defaultDevicesTableName),
	}
}

func (r *DeviceDynamoRepository) RegisterIfUnseen(ctx context.Context, id string) error {
	it := deviceItem{
		ID:        id,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		// Known device: keep the original created_at.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *DeviceDynamoRepository) List(ctx context.Context, limit int) ([]entities.Device, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	devices := make([]entities.Device, 0, len(out.Items))
	for _, raw := range out.Items {
		var it deviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		devices = append(devices, entities.Device{ID: it.ID, CreatedAt: createdAt})
	}
	return devices, nil
}
