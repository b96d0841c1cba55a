// Package trust classifies IAM roles by who their trust policy lets assume
// them, relative to the caller's AWS Organization.
package trust

import (
	awsiam "tasnim.dev/aws-ops/internal/aws/iam"
	awsorg "tasnim.dev/aws-ops/internal/aws/organizations"
	"tasnim.dev/aws-ops/internal/utils"
)

// Classification is the bucket a role is reported in.
type Classification string

const (
	External Classification = "External"
	Internal Classification = "Internal"
	Unknown  Classification = "Unknown"
)

// Classifications lists the buckets in report order.
var Classifications = []Classification{External, Internal, Unknown}

// Entry is one reported role.
type Entry struct {
	RoleName     string
	CreationDate string
	LastUsed     string
	// Principal is the trust principal that decided the classification.
	Principal string
}

// Report holds the classified roles. The buckets are disjoint and keep role
// enumeration order.
type Report struct {
	External []Entry
	Internal []Entry
	Unknown  []Entry
}

// Bucket returns the entries classified as c.
func (r *Report) Bucket(c Classification) []Entry {
	switch c {
	case External:
		return r.External
	case Internal:
		return r.Internal
	case Unknown:
		return r.Unknown
	}
	return nil
}

// Len returns the number of classified roles.
func (r *Report) Len() int {
	return len(r.External) + len(r.Internal) + len(r.Unknown)
}

func (r *Report) add(c Classification, e Entry) {
	switch c {
	case External:
		r.External = append(r.External, e)
	case Internal:
		r.Internal = append(r.Internal, e)
	case Unknown:
		r.Unknown = append(r.Unknown, e)
	}
}

// Classify sorts roles into the External, Internal and Unknown buckets.
// callerAccount is the account the roles live in; org holds the member
// accounts of its organization. Roles whose trust policy names no AWS
// principal outside callerAccount are left out.
func Classify(roles []awsiam.IAMRole, callerAccount string, org awsorg.AccountSet) *Report {
	report := &Report{}
	for _, role := range roles {
		c, principal, ok := ClassifyRole(role, callerAccount, org)
		if !ok {
			continue
		}
		report.add(c, Entry{
			RoleName:     role.Name,
			CreationDate: utils.TimeOr(role.CreatedAt, utils.ReportTime, ""),
			LastUsed:     role.LastUsed.Format(utils.ReportTime),
			Principal:    principal,
		})
	}
	return report
}

// ClassifyRole returns the classification decided by the first AWS principal
// in the role's trust policy that is not callerAccount itself, along with
// that principal. ok is false when no principal decides.
func ClassifyRole(role awsiam.IAMRole, callerAccount string, org awsorg.AccountSet) (Classification, string, bool) {
	for _, st := range role.TrustPolicy.Statement {
		for _, principal := range st.AWSPrincipals() {
			if c, ok := classifyPrincipal(principal, callerAccount, org); ok {
				return c, principal, true
			}
		}
	}
	return "", "", false
}

func classifyPrincipal(principal, callerAccount string, org awsorg.AccountSet) (Classification, bool) {
	account, ok := utils.ARNAccountID(principal)
	switch {
	case !ok:
		return Unknown, true
	case !org.Contains(account):
		return External, true
	case account != callerAccount:
		return Internal, true
	}
	return "", false
}
