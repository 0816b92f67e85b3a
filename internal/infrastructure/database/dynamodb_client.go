// Package database builds the DynamoDB client shared by the price, product,
// store and device repositories. Table names are not resolved here; each
// repository reads its own table env var (PRICES_TABLE,
// PRICE_IDEMPOTENCY_TABLE, PRODUCTS_TABLE, STORES_TABLE, DEVICES_TABLE).
package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client from the environment.
//
// Env surface:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; points the client at DynamoDB Local,
//     e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := loadAWSConfig(context.Background())
	if err != nil {
		log.Fatalf("[infra][dynamodb] failed to load aws config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	// DynamoDB Local accepts any credentials, but the SDK refuses to sign
	// without them.
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)),
	}
	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(fixedDynamoEndpoint(endpoint)))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// fixedDynamoEndpoint pins the dynamodb service to one endpoint and leaves
// every other AWS service on its default resolution.
func fixedDynamoEndpoint(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service != dynamodb.ServiceID {
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}
		return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
