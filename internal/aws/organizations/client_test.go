package organizations

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsorg "github.com/aws/aws-sdk-go-v2/service/organizations"
	orgtypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOrganizationsAPI struct {
	listAccountsFunc func(ctx context.Context, params *awsorg.ListAccountsInput, optFns ...func(*awsorg.Options)) (*awsorg.ListAccountsOutput, error)
}

func (m *mockOrganizationsAPI) ListAccounts(ctx context.Context, params *awsorg.ListAccountsInput, optFns ...func(*awsorg.Options)) (*awsorg.ListAccountsOutput, error) {
	return m.listAccountsFunc(ctx, params, optFns...)
}

func TestListAccountIDs(t *testing.T) {
	var tokens []string
	mock := &mockOrganizationsAPI{
		listAccountsFunc: func(ctx context.Context, params *awsorg.ListAccountsInput, optFns ...func(*awsorg.Options)) (*awsorg.ListAccountsOutput, error) {
			tokens = append(tokens, awssdk.ToString(params.NextToken))
			if params.NextToken == nil {
				return &awsorg.ListAccountsOutput{
					Accounts: []orgtypes.Account{
						{Id: awssdk.String("111111111111"), Name: awssdk.String("management")},
						{Id: awssdk.String("222222222222"), Name: awssdk.String("workloads")},
					},
					NextToken: awssdk.String("page-2"),
				}, nil
			}
			return &awsorg.ListAccountsOutput{
				Accounts: []orgtypes.Account{
					{Id: awssdk.String("444444444444")},
					{Name: awssdk.String("no-id")},
				},
			}, nil
		},
	}

	ids, err := NewClient(mock).ListAccountIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"", "page-2"}, tokens)
	assert.Equal(t, []string{"111111111111", "222222222222", "444444444444"}, ids.Sorted())
	assert.True(t, ids.Contains("222222222222"))
	assert.False(t, ids.Contains("333333333333"))
}

func TestListAccountIDs_Error(t *testing.T) {
	mock := &mockOrganizationsAPI{
		listAccountsFunc: func(ctx context.Context, params *awsorg.ListAccountsInput, optFns ...func(*awsorg.Options)) (*awsorg.ListAccountsOutput, error) {
			return nil, errors.New("AWSOrganizationsNotInUseException")
		},
	}

	ids, err := NewClient(mock).ListAccountIDs(context.Background())
	require.Error(t, err)
	assert.Nil(t, ids)
	assert.Contains(t, err.Error(), "ListAccounts:")
}

func TestNewAccountSet(t *testing.T) {
	s := NewAccountSet("222222222222", "111111111111", "222222222222")
	assert.Len(t, s, 2)
	assert.Equal(t, []string{"111111111111", "222222222222"}, s.Sorted())
}
