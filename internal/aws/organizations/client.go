package organizations

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsorg "github.com/aws/aws-sdk-go-v2/service/organizations"
)

// OrganizationsAPI defines the subset of the Organizations API we use.
type OrganizationsAPI interface {
	ListAccounts(ctx context.Context, params *awsorg.ListAccountsInput, optFns ...func(*awsorg.Options)) (*awsorg.ListAccountsOutput, error)
}

// Client wraps the Organizations API.
type Client struct {
	api OrganizationsAPI
}

// NewClient creates a new organizations client.
func NewClient(api OrganizationsAPI) *Client {
	return &Client{api: api}
}

// ListAccountIDs returns the IDs of every account in the caller's
// organization. It must be called with the management (or delegated admin)
// account's credentials.
func (c *Client) ListAccountIDs(ctx context.Context) (AccountSet, error) {
	ids := AccountSet{}
	var nextToken *string

	for {
		out, err := c.api.ListAccounts(ctx, &awsorg.ListAccountsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("ListAccounts: %w", err)
		}

		for _, a := range out.Accounts {
			if id := aws.ToString(a.Id); id != "" {
				ids[id] = struct{}{}
			}
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return ids, nil
}
