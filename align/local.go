// SPDX-License-Identifier: MIT

package align

// Smith-Waterman local alignment
//
// Algorithm Outline:
//  1. Allocate (n+1)x(m+1) matrix M; boundaries stay 0 so an alignment may
//     start anywhere.
//  2. For i = 1..n, j = 1..m:
//     M[i][j] = max(0, M[i-1][j-1] + sub, M[i-1][j] + gap, M[i][j-1] + gap)
//     and record (i,j) as Best Cell when M[i][j] is strictly greater than the
//     best so far. Equal later values never replace it.
//  3. Backtrack from Best Cell while i>0 && j>0 && M[i][j]>0. A cell whose
//     score no neighbour reproduces was produced by the 0 floor and ends the
//     walk as well.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)

// BuildLocalMatrix fills the Smith-Waterman score matrix for seq1 and seq2
// and returns it together with the Best Cell and its score. When no cell is
// positive the Best Cell is (0,0) with score 0.
func BuildLocalMatrix(seq1, seq2 string, s Scoring) (*Matrix, Cell, int) {
	return buildLocal([]rune(seq1), []rune(seq2), s)
}

func buildLocal(seq1, seq2 []rune, s Scoring) (*Matrix, Cell, int) {
	n, k := len(seq1), len(seq2)
	mat := newMatrix(n+1, k+1)

	var (
		best  Cell
		score int
		i, j  int
	)
	for i = 1; i <= n; i++ {
		for j = 1; j <= k; j++ {
			diag := mat.at(i-1, j-1) + s.Substitution(seq1[i-1], seq2[j-1])
			up := mat.at(i-1, j) + s.Gap
			left := mat.at(i, j-1) + s.Gap
			v := max(0, diag, up, left)
			mat.set(i, j, v)
			if v > score {
				score = v
				best = Cell{I: i, J: j}
			}
		}
	}

	return mat, best, score
}

// BacktrackLocal reconstructs the local alignment ending at best from a
// matrix produced by BuildLocalMatrix with the same sequences and Scoring.
// The result may be shorter than either input; no gap padding is added.
//
// Errors:
//   - ErrNilMatrix / ErrShapeMismatch if mat does not fit the sequences.
//   - ErrOutOfRange if best lies outside mat.
func BacktrackLocal(seq1, seq2 string, mat *Matrix, best Cell, s Scoring) (Alignment, error) {
	aln, _, err := tracebackLocal([]rune(seq1), []rune(seq2), mat, best, s)

	return aln, err
}

// tracebackLocal is BacktrackLocal that also reports where the walk stopped.
func tracebackLocal(seq1, seq2 []rune, mat *Matrix, best Cell, s Scoring) (Alignment, Cell, error) {
	if err := checkShape("BacktrackLocal", mat, len(seq1), len(seq2)); err != nil {
		return Alignment{}, Cell{}, err
	}
	if _, err := mat.indexOf("BacktrackLocal", best.I, best.J); err != nil {
		return Alignment{}, Cell{}, err
	}

	i, j := best.I, best.J
	b := newRowBuilder(i + j)
	for i > 0 && j > 0 && mat.at(i, j) > 0 {
		mv := predecessor(seq1, seq2, mat, s, i, j)
		if mv == moveNone {
			break
		}
		i, j = b.apply(seq1, seq2, mv, i, j)
	}

	return b.alignment(), Cell{I: i, J: j}, nil
}

// Local runs the full Smith-Waterman pipeline.
func Local(seq1, seq2 string, s Scoring) (*Result, error) {
	r1, r2 := []rune(seq1), []rune(seq2)
	mat, best, score := buildLocal(r1, r2, s)
	aln, start, err := tracebackLocal(r1, r2, mat, best, s)
	if err != nil {
		return nil, err
	}

	return &Result{
		Alignment: aln,
		Score:     score,
		Start:     start,
		End:       best,
		Matrix:    mat,
	}, nil
}
