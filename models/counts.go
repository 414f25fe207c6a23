package models

import "sort"

// Outcomes is the raw outcome multiset produced by a simulator backend: one
// bitstring per shot, in the order the backend produced them.
type Outcomes []string

// Counts maps an observed bitstring to the number of shots that produced it.
// Only observed outcomes appear; a key is never mapped to zero.
type Counts map[string]int

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Keys returns the observed bitstrings in lexicographic order.
func (c Counts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Probability returns the observed frequency of key, or 0 for an empty
// histogram.
func (c Counts) Probability(key string) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c[key]) / float64(total)
}
