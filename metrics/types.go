package metrics

import "errors"

var (
	// ErrEmptyInput indicates that no labels were supplied.
	ErrEmptyInput = errors.New("metrics: empty input")

	// ErrLengthMismatch indicates labels and values differ in length.
	ErrLengthMismatch = errors.New("metrics: labels and values differ in length")

	// ErrNegativeLabel indicates a label below zero.
	ErrNegativeLabel = errors.New("metrics: negative label")

	// ErrLabelGap indicates that some integer in 0..max(label) never occurs.
	ErrLabelGap = errors.New("metrics: labels are not a dense 0-based enumeration")

	// ErrNonFiniteValue indicates a NaN or infinite numeric value.
	ErrNonFiniteValue = errors.New("metrics: value is NaN or infinite")

	// ErrBadCount indicates a hand-built descriptor with a non-positive count.
	ErrBadCount = errors.New("metrics: category count must be positive")
)

// Categories is the category descriptor set: three parallel sequences
// (id, element count, mean) indexed consistently.
//
// Ids are exactly 0..Len()-1, enforced by construction. The zero value is
// an empty set. A Categories is immutable once built and safe to share.
type Categories struct {
	ids    []int
	counts []int
	means  []float64
	pos    []int // pos[id] = position of id in ids
}

// Len returns the number of categories.
func (c Categories) Len() int { return len(c.ids) }

// IDs returns the category ids in descriptor order (a copy).
func (c Categories) IDs() []int { return append([]int(nil), c.ids...) }

// Counts returns the element counts in descriptor order (a copy).
func (c Categories) Counts() []int { return append([]int(nil), c.counts...) }

// Means returns the per-category means in descriptor order (a copy).
func (c Categories) Means() []float64 { return append([]float64(nil), c.means...) }

// Index reports the descriptor position of id.
func (c Categories) Index(id int) (int, bool) {
	if id < 0 || id >= len(c.pos) {
		return 0, false
	}

	return c.pos[id], true
}

// Count returns the element count of id, or 0 for an unknown id.
func (c Categories) Count(id int) int {
	i, ok := c.Index(id)
	if !ok {
		return 0
	}

	return c.counts[i]
}

// Mean returns the mean of id, or 0 for an unknown id.
func (c Categories) Mean(id int) float64 {
	i, ok := c.Index(id)
	if !ok {
		return 0
	}

	return c.means[i]
}

// Total returns the number of elements across all categories.
func (c Categories) Total() int {
	var n int
	for _, k := range c.counts {
		n += k
	}

	return n
}
