package iam

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/smithy-go"
)

type IAMAPI interface {
	ListRoles(ctx context.Context, params *awsiam.ListRolesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListRolesOutput, error)
	GetRole(ctx context.Context, params *awsiam.GetRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.GetRoleOutput, error)
}

type Client struct {
	api IAMAPI
}

func NewClient(api IAMAPI) *Client {
	return &Client{api: api}
}

// ListRoles returns every role in the account, consuming one page at a time.
// LastUsed is not populated; ListRoles does not return it.
func (c *Client) ListRoles(ctx context.Context) ([]IAMRole, error) {
	var roles []IAMRole
	var marker *string

	for {
		out, err := c.api.ListRoles(ctx, &awsiam.ListRolesInput{
			Marker: marker,
		})
		if err != nil {
			return nil, fmt.Errorf("ListRoles: %w", err)
		}

		for _, r := range out.Roles {
			var createdAt time.Time
			if r.CreateDate != nil {
				createdAt = *r.CreateDate
			}

			name := aws.ToString(r.RoleName)
			doc, err := ParsePolicyDocument(aws.ToString(r.AssumeRolePolicyDocument))
			if err != nil {
				return nil, fmt.Errorf("ListRoles(%s): %w", name, err)
			}

			roles = append(roles, IAMRole{
				Name:        name,
				RoleID:      aws.ToString(r.RoleId),
				ARN:         aws.ToString(r.Arn),
				Path:        aws.ToString(r.Path),
				Description: aws.ToString(r.Description),
				CreatedAt:   createdAt,
				TrustPolicy: doc,
			})
		}

		if !out.IsTruncated {
			break
		}
		marker = out.Marker
	}

	return roles, nil
}

// RoleLastUsed looks up when the role was last assumed. It never fails: a
// lookup error is recorded in LastUsed.Err and the result is left invalid.
func (c *Client) RoleLastUsed(ctx context.Context, roleName string) LastUsed {
	out, err := c.api.GetRole(ctx, &awsiam.GetRoleInput{
		RoleName: aws.String(roleName),
	})
	if err != nil {
		return LastUsed{Err: fmt.Errorf("GetRole(%s): %w", roleName, err)}
	}
	if out.Role == nil || out.Role.RoleLastUsed == nil || out.Role.RoleLastUsed.LastUsedDate == nil {
		return LastUsed{}
	}
	return LastUsed{At: *out.Role.RoleLastUsed.LastUsedDate, Valid: true}
}

// ErrorCode returns the AWS API error code wrapped in err, or "" when err
// did not come from the service.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
