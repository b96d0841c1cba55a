package sgcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	awsec2 "tasnim.dev/aws-ops/internal/aws/ec2"
)

func groups(ids ...string) awsec2.GroupSet {
	s := awsec2.GroupSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func TestClassify(t *testing.T) {
	existing := groups("sg-web", "sg-db", "sg-old", "sg-other")
	attached := groups("sg-web", "sg-db", "sg-other")

	u := Classify([]string{"sg-old", "sg-web", "sg-typo", "sg-db"}, existing, attached)
	assert.Equal(t, []string{"sg-web", "sg-db"}, u.InUse)
	assert.Equal(t, []string{"sg-old"}, u.Unused)
	assert.Equal(t, []string{"sg-typo"}, u.Nonexistent)
}

func TestClassify_Empty(t *testing.T) {
	u := Classify(nil, groups("sg-a"), groups())
	assert.Empty(t, u.InUse)
	assert.Empty(t, u.Unused)
	assert.Empty(t, u.Nonexistent)
}

func TestClassify_AttachedButNotListedIsNonexistent(t *testing.T) {
	// ENIs can reference groups from a peered VPC that DescribeSecurityGroups
	// does not return; such IDs are still reported as missing here.
	u := Classify([]string{"sg-peer"}, groups(), groups("sg-peer"))
	assert.Equal(t, []string{"sg-peer"}, u.Nonexistent)
	assert.Empty(t, u.InUse)
}

func TestParseGroupIDs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"separate args", []string{"sg-1", "sg-2"}, []string{"sg-1", "sg-2"}},
		{"comma separated", []string{"sg-1,sg-2, sg-3"}, []string{"sg-1", "sg-2", "sg-3"}},
		{"bracketed list", []string{"['sg-089c5df23b33ac8b5', 'sg-05816c13731074c0d']"}, []string{"sg-089c5df23b33ac8b5", "sg-05816c13731074c0d"}},
		{"double quoted list", []string{`["sg-1","sg-2"]`}, []string{"sg-1", "sg-2"}},
		{"duplicates dropped", []string{"sg-1", "sg-1,sg-2"}, []string{"sg-1", "sg-2"}},
		{"blanks ignored", []string{"", " , ", "[]"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGroupIDs(tt.args))
		})
	}
}
