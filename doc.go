// Package tracedtw aligns very long execution traces with Dynamic
// Time Warping.
//
// 🚀 What is tracedtw?
//
//	A toolkit for comparing token streams — instruction traces, logs,
//	any line-oriented text — at scales where full cost matrices are
//	infeasible:
//
//	  • Exact DTW: full-matrix with warp path, or linear-memory cost
//	  • Banded DTW: per-row dynamic windows, Sakoe–Chiba bands
//	  • FastDTW: multi-resolution approximation with a real path
//	  • Trace binaries: compact interned token streams, mmap-backed
//
// ✨ Why tracedtw?
//
//   - Disk-scale        — sequences are read through an accessor
//     capability set; mmap keeps billion-token traces out of RAM
//   - Deterministic     — fixed tie-breaking yields reproducible paths
//   - Composable        — bring your own distance oracle or accessor
//
// Everything is organised under three packages plus one binary:
//
//	dtw/           — the alignment engine and its four variants
//	trace/         — token interning, trace binaries, accessors
//	align/         — alignment pretty-printing
//	cmd/dtw-tools/ — the command-line front-end
//
// Quick ASCII example of a warp path through a cost grid:
//
//	    b →
//	  a ┌──────────┐
//	  ↓ │＼         │
//	    │ ＼__      │
//	    │    ＼     │
//	    │     ＼__＼│
//	    └──────────┘
//
// See each package's doc.go for contracts and examples.
//
//	go get github.com/katalvlaran/tracedtw
package tracedtw
