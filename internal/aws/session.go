package aws

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSAPI defines the subset of the STS API we use.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// LoadConfig loads an AWS config with optional profile and region overrides.
func LoadConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	// IAM, Organizations and STS are global; any region reaches them.
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	return cfg, nil
}

// CallerAccountID returns the account ID of the credentials behind api.
func CallerAccountID(ctx context.Context, api STSAPI) (string, error) {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("GetCallerIdentity: %w", err)
	}
	if out.Account == nil {
		return "", errors.New("GetCallerIdentity: no account in response")
	}
	return aws.ToString(out.Account), nil
}

// RegionLister lists the regions visible to a set of credentials.
type RegionLister interface {
	ListRegions(ctx context.Context) ([]string, error)
}

// ValidateRegion reports an error unless region is one EC2 knows about.
func ValidateRegion(ctx context.Context, lister RegionLister, region string) error {
	regions, err := lister.ListRegions(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(regions, region) {
		return fmt.Errorf("invalid region %q", region)
	}
	return nil
}
