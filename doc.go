// SPDX-License-Identifier: MIT

// Package seqalign is a small toolkit for pairwise alignment of nucleotide
// sequences with linear gap scoring.
//
// 🚀 What is seqalign?
//
//	A pure-Go library and command that brings together:
//		• Global alignment: Needleman-Wunsch matrix fill + traceback
//		• Local alignment: Smith-Waterman matrix fill + Best Cell traceback
//		• FASTA input with a built-in fallback pair
//		• Plain-text rendering of score matrices and aligned rows
//		• YAML configuration and structured logging for the CLI
//
// ✨ Why choose seqalign?
//
//   - Explicit errors: inconsistent matrices are reported, never papered over
//   - Deterministic: fixed tie-break order, identical input gives identical output
//   - Configurable: every scoring weight and default is a setting
//
// Layout:
//
//	align/    : score matrix, global and local engines, traceback, results
//	fasta/    : FASTA parsing and sequence-pair selection
//	render/   : text formatting of matrices, alignments and reports
//	config/   : YAML configuration with validation
//	pipeline/ : concurrent global/local runs with logging
//	cmd/seqalign/ : the command-line driver
//
// Quick example:
//
//	res, _ := align.Global("GATTACA", "GCATGCU", align.DefaultScoring())
//	fmt.Println(res.Score, res.Seq1, res.Seq2)
//
//	go install github.com/katalvlaran/seqalign/cmd/seqalign@latest
package seqalign
