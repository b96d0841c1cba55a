package organizations

import "sort"

// AccountSet is the set of account IDs belonging to an organization.
type AccountSet map[string]struct{}

// NewAccountSet builds a set from ids.
func NewAccountSet(ids ...string) AccountSet {
	s := make(AccountSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a member account.
func (s AccountSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the member IDs in ascending order.
func (s AccountSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
