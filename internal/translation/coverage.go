package translation

import "sort"

// Coverage records which tokens were found in the dictionary during a run
type Coverage struct {
	total   int
	matched int
	missing map[string]int
}

// NewCoverage creates an empty coverage report
func NewCoverage() *Coverage {
	return &Coverage{
		missing: make(map[string]int),
	}
}

// Record adds one translated token, identified by its lookup key
func (c *Coverage) Record(key string, matched bool) {
	c.total++
	if matched {
		c.matched++
		return
	}
	c.missing[key]++
}

// Total returns the number of tokens seen
func (c *Coverage) Total() int {
	return c.total
}

// Matched returns the number of tokens that had a translation
func (c *Coverage) Matched() int {
	return c.matched
}

// Missing returns the distinct keys without a translation, sorted
func (c *Coverage) Missing() []string {
	keys := make([]string, 0, len(c.missing))
	for k := range c.missing {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MissingCount returns how often key was seen without a translation
func (c *Coverage) MissingCount(key string) int {
	return c.missing[key]
}
