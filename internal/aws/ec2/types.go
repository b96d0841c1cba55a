package ec2

// GroupSet is a set of security group IDs.
type GroupSet map[string]struct{}

// Add inserts id, ignoring empty IDs.
func (s GroupSet) Add(id string) {
	if id != "" {
		s[id] = struct{}{}
	}
}

// Contains reports whether id is in the set.
func (s GroupSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}
