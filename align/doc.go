// SPDX-License-Identifier: MIT

// Package align computes pairwise sequence alignments with the classical
// dynamic-programming algorithms: Needleman-Wunsch (global) and
// Smith-Waterman (local).
//
// 🚀 What is pairwise alignment?
//
//	Two symbol sequences (DNA, protein, any Unicode text) are laid on top of
//	each other, inserting gap symbols ('-') so that equal symbols line up.
//	Every column is scored with a linear Scoring policy:
//	  • Match   : both symbols are equal
//	  • Mismatch: both symbols differ
//	  • Gap     : one side holds a gap symbol
//
// ✨ Key features:
//   - Global alignment spanning both inputs (BuildGlobalMatrix, BacktrackGlobal)
//   - Local alignment of the best-scoring segments (BuildLocalMatrix, BacktrackLocal)
//   - Deterministic tie-breaks: diagonal, then up, then left during traceback;
//     the first maximal cell in row-major order is the local Best Cell
//   - Symbols are runes: a multi-byte character occupies one column and one
//     matrix row or column
//   - Memory-lean traceback: provenance is recomputed from score values,
//     no pointer matrix is stored
//   - One-shot runners Global and Local returning a Result with score,
//     coordinates and Stats
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	s := align.DefaultScoring() // match=1, mismatch=0, gap=-1
//	res, err := align.Global("GATTACA", "GCATGCU", s)
//	if err != nil {
//	  // only an inconsistent matrix can fail here
//	}
//	fmt.Println(res.Score, res.Seq1, res.Seq2)
//
// Performance:
//
//   - Time:   O(N·M) for fill, O(N+M) for traceback
//   - Memory: O(N·M) for the score matrix
//
// The engines are pure functions of their inputs: no logging, no global
// state, safe to call from concurrent goroutines on distinct inputs.
package align
