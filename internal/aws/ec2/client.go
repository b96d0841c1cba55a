package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

type EC2API interface {
	DescribeRegions(ctx context.Context, params *awsec2.DescribeRegionsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRegionsOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error)
	DescribeNetworkInterfaces(ctx context.Context, params *awsec2.DescribeNetworkInterfacesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNetworkInterfacesOutput, error)
}

type Client struct {
	api EC2API
}

func NewClient(api EC2API) *Client {
	return &Client{api: api}
}

// ListRegions returns every region EC2 knows about, including ones the
// account has not opted into.
func (c *Client) ListRegions(ctx context.Context) ([]string, error) {
	out, err := c.api.DescribeRegions(ctx, &awsec2.DescribeRegionsInput{
		AllRegions: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("DescribeRegions: %w", err)
	}

	regions := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		if r.RegionName != nil {
			regions = append(regions, *r.RegionName)
		}
	}
	return regions, nil
}

// ListSecurityGroupIDs returns the IDs of all security groups in the region.
func (c *Client) ListSecurityGroupIDs(ctx context.Context) (GroupSet, error) {
	groups := GroupSet{}
	var nextToken *string

	for {
		out, err := c.api.DescribeSecurityGroups(ctx, &awsec2.DescribeSecurityGroupsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeSecurityGroups: %w", err)
		}

		for _, sg := range out.SecurityGroups {
			groups.Add(aws.ToString(sg.GroupId))
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return groups, nil
}

// ListAttachedGroupIDs returns the IDs of security groups attached to at
// least one network interface in the region.
func (c *Client) ListAttachedGroupIDs(ctx context.Context) (GroupSet, error) {
	groups := GroupSet{}
	var nextToken *string

	for {
		out, err := c.api.DescribeNetworkInterfaces(ctx, &awsec2.DescribeNetworkInterfacesInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeNetworkInterfaces: %w", err)
		}

		for _, eni := range out.NetworkInterfaces {
			for _, g := range eni.Groups {
				groups.Add(aws.ToString(g.GroupId))
			}
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return groups, nil
}
