// Package metrics aggregates labelled observations into per-category
// descriptors: how many elements each category holds and their mean.
//
// Two scoring modes share one aggregation shape:
//
//   - Numeric  — arithmetic mean of real values per category.
//   - TrueRate — fraction of true values per category.
//
// Labels must form a dense 0-based enumeration 0..max with no gaps.
// Violations are reported with named sentinel errors (ErrLabelGap and
// friends) instead of aborting the process.
//
// Category order follows the first occurrence of each label, so the
// descriptor set is fully determined by its input.
//
// Complexity: O(n) time, O(g) extra memory for g categories.
package metrics
