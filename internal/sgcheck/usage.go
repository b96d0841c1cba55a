// Package sgcheck reports whether security groups are attached to any
// network interface.
package sgcheck

import (
	"strings"

	awsec2 "tasnim.dev/aws-ops/internal/aws/ec2"
)

// Usage is the outcome for a list of checked security groups. Each group
// appears in exactly one list, in the order it was requested.
type Usage struct {
	InUse       []string
	Unused      []string
	Nonexistent []string
}

// Classify checks each requested group against the groups that exist in the
// region and those attached to network interfaces.
func Classify(check []string, existing, attached awsec2.GroupSet) Usage {
	var u Usage
	for _, id := range check {
		switch {
		case !existing.Contains(id):
			u.Nonexistent = append(u.Nonexistent, id)
		case attached.Contains(id):
			u.InUse = append(u.InUse, id)
		default:
			u.Unused = append(u.Unused, id)
		}
	}
	return u
}

// ParseGroupIDs accepts group IDs as separate arguments, comma separated, or
// in the bracketed list form "['sg-1', 'sg-2']". Duplicates are dropped.
func ParseGroupIDs(args []string) []string {
	seen := map[string]bool{}
	var ids []string
	for _, arg := range args {
		arg = strings.Trim(strings.TrimSpace(arg), "[]")
		for _, field := range strings.Split(arg, ",") {
			id := strings.Trim(strings.TrimSpace(field), `'"[] `)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
