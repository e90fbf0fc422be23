// Package bench is the experiment harness layered on the flowlab core.
// It consumes the core strictly through its public API: build a network
// from a generated edge list, invoke one engine, read the flow value and
// counters, and derive the cut or matching.
//
// A run walks the configured parameter grid — graph family × parameters
// × seed × algorithm × repeat — and produces one Trial row per engine
// invocation, cross-checking max-flow-min-cut duality on every trial
// (a violation aborts the run; it is the chief correctness oracle).
// Rows are then reduced to per-seed runtime medians and per-setting
// paired speedups with bootstrap confidence intervals, and everything
// is written as CSV for downstream tabulation.
//
// Trials run sequentially; each owns its network, so there is no shared
// mutable state between them.
package bench
