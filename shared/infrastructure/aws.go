package infrastructure

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"
)

// AWSSettings holds the connection settings shared by the SNS and SQS clients.
// Endpoints are only set when talking to LocalStack.
type AWSSettings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	EndpointSNS     string
	EndpointSQS     string
}

// LoadAWSConfig builds the SDK config, using static credentials when given.
func LoadAWSConfig(ctx context.Context, settings AWSSettings) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(settings.Region),
	}

	if settings.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "failed to load AWS config")
	}

	return cfg, nil
}

func NewSNSClient(cfg aws.Config, settings AWSSettings) *sns.Client {
	return sns.NewFromConfig(cfg, func(o *sns.Options) {
		if settings.EndpointSNS != "" {
			o.BaseEndpoint = aws.String(settings.EndpointSNS)
		}
	})
}

func NewSQSClient(cfg aws.Config, settings AWSSettings) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if settings.EndpointSQS != "" {
			o.BaseEndpoint = aws.String(settings.EndpointSQS)
		}
	})
}
