package dynamo

import (
	"context"

	"potteryloop/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// New builds the DynamoDB client all submission stores share. Static
// credentials from the environment take precedence; otherwise the default
// chain (instance role, shared config) applies. A non-empty endpoint points
// the client at DynamoDB Local.
func New(config *config.Config) *dynamodb.Client {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(config.Store.Region),
	}

	if config.Store.AccessKeyID != "" {
		staticProvider := credentials.NewStaticCredentialsProvider(
			config.Store.AccessKeyID,
			config.Store.SecretAccessKey,
			"",
		)
		opts = append(opts, awsConfig.WithCredentialsProvider(staticProvider))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading AWS configuration")
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if config.Store.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Store.Endpoint)
		}
	})

	log.Info().
		Str("region", config.Store.Region).
		Msg("DynamoDB client initialized")

	return client
}
