package remote

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"fleetsync/internal/config"
)

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

// Clients carries the remote client handles, constructed once at process
// start and passed by reference to the orchestrator.
type Clients struct {
	Tables  *DynamoTable
	Objects *S3Objects
}

// NewAWSClients builds the DynamoDB and S3 clients from explicit
// configuration. Static credentials (with optional session token) are used
// when configured; otherwise the default provider chain applies. A base
// endpoint override points both clients at an S3/DynamoDB-compatible stack
// for local testing.
func NewAWSClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKeyID,
				cfg.AWSSecretAccessKey,
				cfg.AWSSessionToken,
			)))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSBaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSBaseEndpoint)
		}
	})
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AWSBaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSBaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &Clients{
		Tables:  NewDynamoTable(dynamoClient),
		Objects: NewS3Objects(s3Client),
	}, nil
}
