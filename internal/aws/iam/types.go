package iam

import "time"

// NoActivity stands in for the last-used date of a role that was never
// assumed or whose last-used lookup failed.
const NoActivity = "No activity"

// IAMRole is a role as enumerated by ListRoles, with its trust policy parsed.
type IAMRole struct {
	Name        string
	RoleID      string
	ARN         string
	Path        string
	Description string
	CreatedAt   time.Time
	LastUsed    LastUsed
	TrustPolicy PolicyDocument
}

// LastUsed is the optional last-used timestamp of a role. Valid is false
// when the role was never assumed or the lookup failed; Err carries the
// lookup failure, if any.
type LastUsed struct {
	At    time.Time
	Valid bool
	Err   error
}

// Format renders the timestamp with layout, or NoActivity when unset.
func (l LastUsed) Format(layout string) string {
	if !l.Valid {
		return NoActivity
	}
	return l.At.Format(layout)
}
