package model

import "strconv"

// Node is the snapshot record of one cluster compute node: its identifying
// name, labels, and allocatable resource quantities in their string
// encoding. This is the only view of a node the classification core sees;
// validators treat it as read-only for the duration of a pass.
type Node struct {
	Name        string            `json:"name"`
	Labels      map[string]string `json:"labels"`
	Allocatable map[string]string `json:"allocatable"`
}

// Label returns the value of a label key, or "" when the key is absent.
// Lookups are case-sensitive exact matches.
func (n Node) Label(key string) string {
	return n.Labels[key]
}

// AllocatableCount parses the allocatable quantity for the given resource
// key as a non-negative integer. Missing, malformed, or negative values
// count as zero: a node that advertises hardware without a parsable
// quantity is treated as having none.
func (n Node) AllocatableCount(key string) int64 {
	v, ok := n.Allocatable[key]
	if !ok {
		return 0
	}
	count, err := strconv.ParseInt(v, 10, 64)
	if err != nil || count < 0 {
		return 0
	}
	return count
}
