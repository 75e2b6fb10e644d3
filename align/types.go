// SPDX-License-Identifier: MIT

package align

import (
	"strings"
	"unicode/utf8"
)

// GapSymbol is the placeholder emitted opposite a symbol that aligns to nothing.
const GapSymbol = '-'

// Default scoring weights, used by DefaultScoring.
const (
	DefaultMatch    = 1
	DefaultMismatch = 0
	DefaultGap      = -1
)

// Scoring is a linear scoring policy applied uniformly to every column.
//
// Fields:
//   - Match   : added when both aligned symbols are equal.
//   - Mismatch: added when both aligned symbols differ.
//   - Gap     : added once per gap symbol (no open/extend distinction).
type Scoring struct {
	Match    int `yaml:"match"`
	Mismatch int `yaml:"mismatch"`
	Gap      int `yaml:"gap"`
}

// DefaultScoring returns match=1, mismatch=0, gap=-1.
func DefaultScoring() Scoring {
	return Scoring{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// Substitution returns Match if a == b and Mismatch otherwise.
func (s Scoring) Substitution(a, b rune) int {
	if a == b {
		return s.Match
	}

	return s.Mismatch
}

// Cell is a matrix coordinate: I indexes seq1 prefixes, J indexes seq2 prefixes.
type Cell struct {
	I, J int
}

// Alignment is a pair of equal-length rows over the input alphabet plus
// GapSymbol. Lengths and columns count symbols (runes), not bytes.
type Alignment struct {
	Seq1 string
	Seq2 string
}

// Len returns the number of aligned columns.
func (a Alignment) Len() int {
	return utf8.RuneCountInString(a.Seq1)
}

// columns calls fn for every column present in both rows. Rows of unequal
// length, which the engines never produce, are cut to the shorter one.
func (a Alignment) columns(fn func(x, y rune)) {
	r1, r2 := []rune(a.Seq1), []rune(a.Seq2)
	for k := range min(len(r1), len(r2)) {
		fn(r1[k], r2[k])
	}
}

// Midline returns the column markers used in textual reports:
// '|' for a match, '.' for a mismatch and ' ' for a gap column.
func (a Alignment) Midline() string {
	var sb strings.Builder
	a.columns(func(x, y rune) {
		switch {
		case x == GapSymbol || y == GapSymbol:
			sb.WriteByte(' ')
		case x == y:
			sb.WriteByte('|')
		default:
			sb.WriteByte('.')
		}
	})

	return sb.String()
}

// Ungapped strips gap symbols from both rows, recovering the aligned
// segments of the original inputs.
func (a Alignment) Ungapped() (string, string) {
	return stripGaps(a.Seq1), stripGaps(a.Seq2)
}

func stripGaps(s string) string {
	return strings.ReplaceAll(s, string(GapSymbol), "")
}

// Stats summarizes an alignment column by column.
type Stats struct {
	Length     int
	Matches    int
	Mismatches int
	Gaps       int
	// Identity is Matches/Length, 0 for an empty alignment.
	Identity float64
}

// Stats counts matches, mismatches and gap columns.
// Complexity: O(Len).
func (a Alignment) Stats() Stats {
	var st Stats
	a.columns(func(x, y rune) {
		st.Length++
		switch {
		case x == GapSymbol || y == GapSymbol:
			st.Gaps++
		case x == y:
			st.Matches++
		default:
			st.Mismatches++
		}
	})
	if st.Length > 0 {
		st.Identity = float64(st.Matches) / float64(st.Length)
	}

	return st
}

// Evaluate recomputes the alignment score column by column under s.
func (a Alignment) Evaluate(s Scoring) int {
	total := 0
	a.columns(func(x, y rune) {
		if x == GapSymbol || y == GapSymbol {
			total += s.Gap
			return
		}
		total += s.Substitution(x, y)
	})

	return total
}

// Result is the outcome of a full pipeline run (matrix fill + traceback).
type Result struct {
	Alignment

	// Score is M[n][m] for global runs and the Best Cell value for local runs.
	Score int

	// Start is the cell where the traceback stopped; End is where it began.
	// Global runs always span (0,0)..(n,m). For local runs symbols
	// Start.I..End.I-1 of seq1 and Start.J..End.J-1 of seq2 (rune indices)
	// are the aligned segments.
	Start, End Cell

	// Matrix is the filled score matrix, read-only once returned.
	Matrix *Matrix
}
