// Package stats holds the pure computations behind artist metrics: order matching and
// sales folding, rating averages, growth estimates, catalog ranking and the synthetic
// day by day distribution of aggregate totals.
//
// Nothing here performs I/O or logs. Diagnostics are returned in the results.
package stats
