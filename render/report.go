// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/seqalign/align"
)

const bannerWidth = 60

// Sections selects what Report prints. Global or Local may be nil to skip
// that pipeline.
type Sections struct {
	Seq1, Seq2 string
	Global     *align.Result
	Local      *align.Result
	ShowMatrix bool
}

// Report writes the full textual report of an alignment run: the inputs,
// then for each pipeline an optional score matrix, the score and the
// aligned rows.
func Report(w io.Writer, s Sections) error {
	ew := &errWriter{w: w}
	ew.printf("Sequence 1: %s\n", s.Seq1)
	ew.printf("Sequence 2: %s\n", s.Seq2)

	if s.Global != nil && ew.err == nil {
		banner(ew, "GLOBAL ALIGNMENT (Needleman-Wunsch)")
		if s.ShowMatrix {
			ew.printf("\n=== Score matrix (global) ===\n")
			if ew.err == nil {
				ew.err = Matrix(w, s.Seq1, s.Seq2, s.Global.Matrix)
			}
		}
		ew.printf("\nFinal score: %d\n", s.Global.Score)
		ew.printf("\n=== Global alignment ===\n")
		if ew.err == nil {
			ew.err = Alignment(w, s.Global.Alignment)
		}
		summary(ew, s.Global.Stats())
	}

	if s.Local != nil && ew.err == nil {
		banner(ew, "LOCAL ALIGNMENT (Smith-Waterman)")
		if s.ShowMatrix {
			ew.printf("\n=== Score matrix (local) ===\n")
			if ew.err == nil {
				ew.err = Matrix(w, s.Seq1, s.Seq2, s.Local.Matrix)
			}
		}
		ew.printf("\nMax score: %d\n", s.Local.Score)
		ew.printf("Max score position: (%d, %d)\n", s.Local.End.I, s.Local.End.J)
		ew.printf("\n=== Local alignment ===\n")
		if ew.err == nil {
			ew.err = Alignment(w, s.Local.Alignment)
		}
		summary(ew, s.Local.Stats())
	}

	return ew.err
}

func banner(ew *errWriter, title string) {
	rule := strings.Repeat("=", bannerWidth)
	pad := max(0, (bannerWidth-len(title))/2)
	ew.printf("\n%s\n%s%s\n%s\n", rule, strings.Repeat(" ", pad), title, rule)
}

func summary(ew *errWriter, st align.Stats) {
	ew.printf("Length: %d  Matches: %d  Mismatches: %d  Gaps: %d  Identity: %.1f%%\n",
		st.Length, st.Matches, st.Mismatches, st.Gaps, 100*st.Identity)
}
