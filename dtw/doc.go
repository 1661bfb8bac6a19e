// Package dtw aligns two token sequences under Dynamic Time Warping,
// tuned for very long execution traces read from disk.
//
// 🚀 What is DTW here?
//
//	DTW finds the minimum-cost monotone alignment between two sequences
//	of discrete token ids, pricing substitutions through a distance
//	oracle and insertions/deletions through a constant gap cost. It is
//	the core of trace diffing:
//	  • Execution-trace comparison (instruction streams, syscalls)
//	  • Log and text-token alignment
//	  • Regression triage over very long recorded runs
//
// ✨ Four cooperating variants:
//   - Standard — exact O(N·M) full matrix, returns cost and warp path
//   - Linear   — exact cost only, two rolling rows, O(min(N,M)) memory
//   - Windowed — fills only cells inside a per-row column band
//   - Fast     — multi-resolution approximation: halve, recurse,
//     project the coarse path to a band, refine with Windowed
//
// ⚙️ Usage:
//
//	dist := dtw.DefaultTokenDistance()
//	std := dtw.NewStandard(dist)
//	cost, path, err := std.Calculate(a, b) // a, b implement dtw.Accessor
//
//	fast, err := dtw.NewFast(dist, 2, 100, std)
//	cost, path, err = fast.Calculate(a, b)
//
// Sequences reach the engine only through the Accessor capability set
// {Len, At, Half}; the trace package provides in-memory and mmap-backed
// implementations. Every variant borrows its Distance oracle by
// read-only reference and is safe for concurrent calls as long as each
// call owns its accessors.
//
// Performance:
//
//   - Standard/Windowed: O(N·M) time, O(N·M) memory
//   - Linear:            O(N·M) time, O(min(N,M)) memory
//   - Fast:              O(N·M) memory (the refinement allocates the
//     full grid and fills only the projected band), recursion depth
//     O(log min(N,M))
package dtw
