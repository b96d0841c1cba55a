package trust

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awsiam "tasnim.dev/aws-ops/internal/aws/iam"
	awsorg "tasnim.dev/aws-ops/internal/aws/organizations"
)

const callerAccount = "111111111111"

var org = awsorg.NewAccountSet("111111111111", "222222222222")

var created = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func role(name string, statements ...[]string) awsiam.IAMRole {
	r := awsiam.IAMRole{Name: name, CreatedAt: created}
	for _, aws := range statements {
		st := awsiam.PolicyStatement{Effect: "Allow"}
		if aws != nil {
			st.Principal = &awsiam.Principal{AWS: aws}
		}
		r.TrustPolicy.Statement = append(r.TrustPolicy.Statement, st)
	}
	return r
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.RoleName
	}
	return out
}

func TestClassify_Scenarios(t *testing.T) {
	roles := []awsiam.IAMRole{
		role("R1", []string{"arn:aws:iam::333333333333:root"}),
		role("R2", []string{"arn:aws:iam::222222222222:role/X"}),
		role("R3", []string{"arn:aws:iam::111111111111:root"}),
		role("R4", []string{"some-federated-id"}),
	}

	report := Classify(roles, callerAccount, org)
	assert.Equal(t, []string{"R1"}, names(report.External))
	assert.Equal(t, []string{"R2"}, names(report.Internal))
	assert.Equal(t, []string{"R4"}, names(report.Unknown))
	assert.Equal(t, 3, report.Len())
}

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		name          string
		role          awsiam.IAMRole
		want          Classification
		wantPrincipal string
		wantOK        bool
	}{
		{
			name: "no statements",
			role: role("empty"),
		},
		{
			name: "service principal only",
			role: role("svc", nil),
		},
		{
			name: "self account only",
			role: role("self", []string{"arn:aws:iam::111111111111:root", "arn:aws:iam::111111111111:role/admin"}),
		},
		{
			name:          "self account then external in same statement",
			role:          role("mixed", []string{"arn:aws:iam::111111111111:root", "arn:aws:iam::999999999999:root"}),
			want:          External,
			wantPrincipal: "arn:aws:iam::999999999999:root",
			wantOK:        true,
		},
		{
			name: "first statement wins over later external",
			role: role("ordered",
				[]string{"arn:aws:iam::222222222222:role/ci"},
				[]string{"arn:aws:iam::999999999999:root"},
			),
			want:          Internal,
			wantPrincipal: "arn:aws:iam::222222222222:role/ci",
			wantOK:        true,
		},
		{
			name: "external in first statement beats later internal",
			role: role("ext-first",
				[]string{"arn:aws:iam::333333333333:root"},
				[]string{"arn:aws:iam::222222222222:root"},
			),
			want:          External,
			wantPrincipal: "arn:aws:iam::333333333333:root",
			wantOK:        true,
		},
		{
			name: "later statement decides after self",
			role: role("later",
				[]string{"arn:aws:iam::111111111111:root"},
				nil,
				[]string{"AROAEXAMPLEUNIQUEID"},
			),
			want:          Unknown,
			wantPrincipal: "AROAEXAMPLEUNIQUEID",
			wantOK:        true,
		},
		{
			name:          "wildcard aws principal",
			role:          role("star", []string{"*"}),
			want:          Unknown,
			wantPrincipal: "*",
			wantOK:        true,
		},
		{
			name:          "colon but no account segment",
			role:          role("short", []string{"arn:aws"}),
			want:          Unknown,
			wantPrincipal: "arn:aws",
			wantOK:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, principal, ok := ClassifyRole(tt.role, callerAccount, org)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPrincipal, principal)
		})
	}
}

func TestClassify_BucketsAreDisjoint(t *testing.T) {
	var roles []awsiam.IAMRole
	principals := []string{
		"arn:aws:iam::333333333333:root",
		"arn:aws:iam::222222222222:root",
		"arn:aws:iam::111111111111:root",
		"federated",
	}
	for i := 0; i < 40; i++ {
		roles = append(roles, role(fmt.Sprintf("role-%02d", i),
			[]string{principals[i%4]},
			[]string{principals[(i/4)%4]},
		))
	}

	report := Classify(roles, callerAccount, org)
	seen := map[string]Classification{}
	for _, c := range Classifications {
		for _, e := range report.Bucket(c) {
			prev, dup := seen[e.RoleName]
			require.False(t, dup, "%s in both %s and %s", e.RoleName, prev, c)
			seen[e.RoleName] = c
		}
	}
	// role-10 and role-26 only reference the caller account.
	assert.NotContains(t, seen, "role-10")
	assert.NotContains(t, seen, "role-26")
	assert.Equal(t, len(seen), report.Len())
}

func TestClassify_PreservesOrder(t *testing.T) {
	roles := []awsiam.IAMRole{
		role("zeta", []string{"arn:aws:iam::333333333333:root"}),
		role("alpha", []string{"arn:aws:iam::444444444444:root"}),
		role("mid", []string{"arn:aws:iam::555555555555:root"}),
	}
	report := Classify(roles, callerAccount, org)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names(report.External))
}

func TestClassify_EntryFields(t *testing.T) {
	used := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r1 := role("used", []string{"arn:aws:iam::333333333333:root"})
	r1.LastUsed = awsiam.LastUsed{At: used, Valid: true}
	r2 := role("unused", []string{"arn:aws:iam::222222222222:root"})

	report := Classify([]awsiam.IAMRole{r1, r2}, callerAccount, org)
	require.Len(t, report.External, 1)
	require.Len(t, report.Internal, 1)

	assert.Equal(t, Entry{
		RoleName:     "used",
		CreationDate: "2024-06-01 09:00:00 UTC",
		LastUsed:     "2026-01-02 03:04:05 UTC",
		Principal:    "arn:aws:iam::333333333333:root",
	}, report.External[0])
	assert.Equal(t, "No activity", report.Internal[0].LastUsed)
}

type stubLookup map[string]awsiam.LastUsed

func (s stubLookup) RoleLastUsed(ctx context.Context, roleName string) awsiam.LastUsed {
	return s[roleName]
}

func TestAttachLastUsed(t *testing.T) {
	used := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	roles := []awsiam.IAMRole{
		role("ok", []string{"arn:aws:iam::333333333333:root"}),
		role("gone", []string{"arn:aws:iam::222222222222:root"}),
		role("never", []string{"federated"}),
	}
	lookup := stubLookup{
		"ok":   {At: used, Valid: true},
		"gone": {Err: &smithy.GenericAPIError{Code: "NoSuchEntity"}},
	}

	AttachLastUsed(context.Background(), roles, lookup)
	assert.True(t, roles[0].LastUsed.Valid)
	assert.False(t, roles[1].LastUsed.Valid)
	assert.Nil(t, roles[1].LastUsed.Err)
	assert.False(t, roles[2].LastUsed.Valid)

	// A failed lookup still leaves the role classified.
	report := Classify(roles, callerAccount, org)
	require.Len(t, report.Internal, 1)
	assert.Equal(t, "gone", report.Internal[0].RoleName)
	assert.Equal(t, "No activity", report.Internal[0].LastUsed)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "AccessDenied", errorCode(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.Equal(t, "unknown", errorCode(errors.New("boom")))
}
