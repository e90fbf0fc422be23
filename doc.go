// Package flowlab is a compact laboratory for maximum-flow / minimum-cut
// computation and the experiments built on top of it.
//
// 🚀 What is flowlab?
//
//	A small, deterministic library that brings together:
//		• flownet  — the residual network: paired forward/twin arcs with
//		             index back-references, insertion-ordered adjacency
//		• maxflow  — Edmonds–Karp (BFS augmenting paths) and Dinic
//		             (level graph + blocking flow), with per-run counters
//		• mincut   — source-side reachability cut over the residual graph
//		• matching — bipartite maximum matching via unit-capacity reduction
//		• netgen   — seeded synthetic graph families for experiments
//		• bench    — trial runner, duality cross-check, medians and
//		             bootstrap confidence intervals, CSV output
//
// ✨ Why choose flowlab?
//
//   - Algorithm-equivalence by construction – both engines must agree on
//     every network, and the min-cut derivation is asserted against the
//     flow value wherever both are computed
//   - Deterministic – fixed seeds reproduce graphs, trials, and summaries
//   - Instrumented – every run returns named counters (search rounds,
//     augmentations, phases, arc scans) for algorithmic comparison
//
// The core packages (flownet, maxflow, mincut, matching) are pure and
// synchronous: no goroutines, no logging, no hidden state. The bench
// harness and cmd/flowbench consume them only through their public API.
//
//	go get github.com/katalvlaran/flowlab
package flowlab
