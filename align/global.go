// SPDX-License-Identifier: MIT

package align

// Needleman-Wunsch global alignment
//
// Algorithm Outline:
//  1. Let n and m be the symbol (rune) counts of seq1 and seq2.
//     Allocate (n+1)x(m+1) matrix M.
//  2. Initialize the boundaries with cumulative gap penalties:
//     M[i][0] = i*gap, M[0][j] = j*gap
//  3. For i = 1..n, j = 1..m:
//     M[i][j] = max(M[i-1][j-1] + sub(seq1[i-1], seq2[j-1]),
//     M[i-1][j] + gap,
//     M[i][j-1] + gap)
//  4. score = M[n][m].
//  5. Backtrack from (n,m) while i>0 && j>0, then pad the remaining prefix
//     of either sequence with gap symbols.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)

// BuildGlobalMatrix fills the Needleman-Wunsch score matrix for seq1 and seq2.
// Empty inputs are valid and yield a matrix holding only the gap boundary.
func BuildGlobalMatrix(seq1, seq2 string, s Scoring) *Matrix {
	return buildGlobal([]rune(seq1), []rune(seq2), s)
}

func buildGlobal(seq1, seq2 []rune, s Scoring) *Matrix {
	n, k := len(seq1), len(seq2)
	mat := newMatrix(n+1, k+1)

	var i, j int
	for i = 0; i <= n; i++ {
		mat.set(i, 0, i*s.Gap)
	}
	for j = 0; j <= k; j++ {
		mat.set(0, j, j*s.Gap)
	}

	for i = 1; i <= n; i++ {
		for j = 1; j <= k; j++ {
			diag := mat.at(i-1, j-1) + s.Substitution(seq1[i-1], seq2[j-1])
			up := mat.at(i-1, j) + s.Gap
			left := mat.at(i, j-1) + s.Gap
			mat.set(i, j, max(diag, up, left))
		}
	}

	return mat
}

// BacktrackGlobal reconstructs one optimal global alignment from a matrix
// produced by BuildGlobalMatrix with the same sequences and Scoring.
//
// Errors:
//   - ErrNilMatrix / ErrShapeMismatch if mat does not fit the sequences.
//   - ErrInconsistentMatrix if some cell cannot be reproduced from any
//     neighbour; the walk stops there instead of guessing a step.
func BacktrackGlobal(seq1, seq2 string, mat *Matrix, s Scoring) (Alignment, error) {
	return backtrackGlobal([]rune(seq1), []rune(seq2), mat, s)
}

func backtrackGlobal(seq1, seq2 []rune, mat *Matrix, s Scoring) (Alignment, error) {
	i, j := len(seq1), len(seq2)
	if err := checkShape("BacktrackGlobal", mat, i, j); err != nil {
		return Alignment{}, err
	}

	b := newRowBuilder(i + j)
	for i > 0 && j > 0 {
		mv := predecessor(seq1, seq2, mat, s, i, j)
		if mv == moveNone {
			return Alignment{}, cellErrorf("BacktrackGlobal", i, j, ErrInconsistentMatrix)
		}
		i, j = b.apply(seq1, seq2, mv, i, j)
	}

	// Remaining prefix becomes a straight gap run.
	for ; i > 0; i-- {
		b.push(seq1[i-1], GapSymbol)
	}
	for ; j > 0; j-- {
		b.push(GapSymbol, seq2[j-1])
	}

	return b.alignment(), nil
}

// Global runs the full Needleman-Wunsch pipeline.
func Global(seq1, seq2 string, s Scoring) (*Result, error) {
	r1, r2 := []rune(seq1), []rune(seq2)
	mat := buildGlobal(r1, r2, s)
	aln, err := backtrackGlobal(r1, r2, mat, s)
	if err != nil {
		return nil, err
	}
	n, k := len(r1), len(r2)

	return &Result{
		Alignment: aln,
		Score:     mat.at(n, k),
		Start:     Cell{},
		End:       Cell{I: n, J: k},
		Matrix:    mat,
	}, nil
}
