package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	awss3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	awsec2 "tasnim.dev/aws-ops/internal/aws/ec2"
	awsiam "tasnim.dev/aws-ops/internal/aws/iam"
	awslogs "tasnim.dev/aws-ops/internal/aws/logs"
	awsorg "tasnim.dev/aws-ops/internal/aws/organizations"
	awss3 "tasnim.dev/aws-ops/internal/aws/s3"
)

// ServiceClient bundles the service clients for one profile and region.
// Clients are cheap to construct and open no connections until used.
type ServiceClient struct {
	Profile       string
	Region        string
	STS           STSAPI
	IAM           *awsiam.Client
	Organizations *awsorg.Client
	EC2           *awsec2.Client
	Logs          *awslogs.Client
	S3            *awss3.Client
}

func NewServiceClient(ctx context.Context, profile, region string) (*ServiceClient, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return NewServiceClientFromConfig(profile, cfg), nil
}

// NewServiceClientFromConfig builds the bundle from an already loaded config.
func NewServiceClientFromConfig(profile string, cfg aws.Config) *ServiceClient {
	return &ServiceClient{
		Profile:       profile,
		Region:        cfg.Region,
		STS:           sts.NewFromConfig(cfg),
		IAM:           awsiam.NewClient(iam.NewFromConfig(cfg)),
		Organizations: awsorg.NewClient(organizations.NewFromConfig(cfg)),
		EC2:           awsec2.NewClient(ec2.NewFromConfig(cfg)),
		Logs:          awslogs.NewClient(cloudwatchlogs.NewFromConfig(cfg)),
		S3:            awss3.NewClient(awss3sdk.NewFromConfig(cfg)),
	}
}

// AccountID resolves the account behind this client's credentials.
func (c *ServiceClient) AccountID(ctx context.Context) (string, error) {
	return CallerAccountID(ctx, c.STS)
}
