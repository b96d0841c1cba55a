package trust

import (
	"context"

	"k8s.io/klog/v2"

	awsiam "tasnim.dev/aws-ops/internal/aws/iam"
)

// LastUsedLookup resolves when a role was last assumed.
type LastUsedLookup interface {
	RoleLastUsed(ctx context.Context, roleName string) awsiam.LastUsed
}

// AttachLastUsed fills in LastUsed for every role, one lookup at a time.
// A failed lookup leaves the role at "No activity" and is only logged.
func AttachLastUsed(ctx context.Context, roles []awsiam.IAMRole, lookup LastUsedLookup) {
	for i := range roles {
		lu := lookup.RoleLastUsed(ctx, roles[i].Name)
		if lu.Err != nil {
			klog.V(1).Infof("last used lookup for %s failed (%s): %v", roles[i].Name, errorCode(lu.Err), lu.Err)
			lu = awsiam.LastUsed{}
		}
		roles[i].LastUsed = lu
	}
}

func errorCode(err error) string {
	if code := awsiam.ErrorCode(err); code != "" {
		return code
	}
	return "unknown"
}
