package entities

import "sort"

// ConflictPair names two msgids whose labels are shown in the same dialog,
// so their accelerators must differ.
type ConflictPair struct {
	First  string
	Second string
}

// ConflictPairs is the hand-maintained table of co-occurring labels.
var ConflictPairs = []ConflictPair{
	{First: "_OK", Second: "_Cancel"},
	{First: "_Accept", Second: "_Cancel"},
	{First: "_Yes", Second: "_No"},
}

// IDSet is a read-only set of msgids.
type IDSet map[string]struct{}

// Watched derives the set of msgids appearing in any of pairs.
func Watched(pairs []ConflictPair) IDSet {
	set := make(IDSet, 2*len(pairs))
	for _, p := range pairs {
		set[p.First] = struct{}{}
		set[p.Second] = struct{}{}
	}
	return set
}

func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Missing returns the members of s that are not keys of entries, sorted.
func (s IDSet) Missing(entries map[string]string) []string {
	var missing []string
	for id := range s {
		if _, ok := entries[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}
