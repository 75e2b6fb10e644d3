// SPDX-License-Identifier: MIT

package align

import "slices"

// move identifies the predecessor a traceback step came from.
type move int

const (
	moveNone move = iota
	moveDiag
	moveUp
	moveLeft
)

// predecessor re-derives which neighbour produced M[i][j].
// Preference order on ties: diagonal, then up, then left.
// Requires i > 0 and j > 0.
// Complexity: O(1).
func predecessor(seq1, seq2 []rune, m *Matrix, s Scoring, i, j int) move {
	cur := m.at(i, j)
	switch {
	case cur == m.at(i-1, j-1)+s.Substitution(seq1[i-1], seq2[j-1]):
		return moveDiag
	case cur == m.at(i-1, j)+s.Gap:
		return moveUp
	case cur == m.at(i, j-1)+s.Gap:
		return moveLeft
	default:
		return moveNone
	}
}

// rowBuilder accumulates aligned columns during the reverse walk and
// reverses them once at the end.
type rowBuilder struct {
	a1, a2 []rune
}

func newRowBuilder(capacity int) *rowBuilder {
	return &rowBuilder{a1: make([]rune, 0, capacity), a2: make([]rune, 0, capacity)}
}

func (b *rowBuilder) push(x, y rune) {
	b.a1 = append(b.a1, x)
	b.a2 = append(b.a2, y)
}

// apply emits the column for mv and returns the moved-to coordinates.
func (b *rowBuilder) apply(seq1, seq2 []rune, mv move, i, j int) (int, int) {
	switch mv {
	case moveDiag:
		b.push(seq1[i-1], seq2[j-1])
		return i - 1, j - 1
	case moveUp:
		b.push(seq1[i-1], GapSymbol)
		return i - 1, j
	case moveLeft:
		b.push(GapSymbol, seq2[j-1])
		return i, j - 1
	}

	return i, j
}

func (b *rowBuilder) alignment() Alignment {
	slices.Reverse(b.a1)
	slices.Reverse(b.a2)

	return Alignment{Seq1: string(b.a1), Seq2: string(b.a2)}
}
