// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix_Grid renders the AT/AG global matrix.
func TestMatrix_Grid(t *testing.T) {
	m := align.BuildGlobalMatrix("AT", "AG", align.DefaultScoring())
	var buf bytes.Buffer
	require.NoError(t, render.Matrix(&buf, "AT", "AG", m))

	want := "" +
		"           -    A    G\n" +
		"      +---------------\n" +
		"   -  |    0   -1   -2\n" +
		"   A  |   -1    1    0\n" +
		"   T  |   -2    0    1\n"
	assert.Equal(t, want, buf.String())
}

// TestMatrix_WideScores widens every column to fit the longest value.
func TestMatrix_WideScores(t *testing.T) {
	m := align.BuildGlobalMatrix("A", "C", align.Scoring{Match: 1, Mismatch: 0, Gap: -1000})
	var buf bytes.Buffer
	require.NoError(t, render.Matrix(&buf, "A", "C", m))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "   -  |      0  -1000", lines[2])
	assert.Equal(t, "   A  |  -1000      0", lines[3])
	assert.Equal(t, len(lines[0]), len(lines[2]), "header aligned with rows")
}

// TestMatrix_BadInput rejects nil and mismatched matrices.
func TestMatrix_BadInput(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Matrix(&buf, "A", "C", nil), align.ErrNilMatrix)

	m := align.BuildGlobalMatrix("AT", "AG", align.DefaultScoring())
	assert.ErrorIs(t, render.Matrix(&buf, "A", "AG", m), align.ErrShapeMismatch)
}

// TestAlignment_Block prints rows and midline.
func TestAlignment_Block(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Alignment(&buf, align.Alignment{Seq1: "GTT-AC", Seq2: "GTTGAC"}))
	assert.Equal(t, "Seq1: GTT-AC\n      ||| ||\nSeq2: GTTGAC\n", buf.String())
}

// TestReport_Sections includes only the requested pipelines.
func TestReport_Sections(t *testing.T) {
	s := align.DefaultScoring()
	g, err := align.Global("AT", "AG", s)
	require.NoError(t, err)
	l, err := align.Local("AT", "AG", s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, render.Sections{Seq1: "AT", Seq2: "AG", Global: g, Local: l, ShowMatrix: true}))
	out := buf.String()
	assert.Contains(t, out, "Sequence 1: AT\nSequence 2: AG\n")
	assert.Contains(t, out, "GLOBAL ALIGNMENT (Needleman-Wunsch)")
	assert.Contains(t, out, "=== Score matrix (global) ===")
	assert.Contains(t, out, "Final score: 1\n")
	assert.Contains(t, out, "LOCAL ALIGNMENT (Smith-Waterman)")
	assert.Contains(t, out, "Max score: 1\nMax score position: (1, 1)\n")
	assert.Contains(t, out, "Identity: 50.0%")

	buf.Reset()
	require.NoError(t, render.Report(&buf, render.Sections{Seq1: "AT", Seq2: "AG", Local: l}))
	out = buf.String()
	assert.NotContains(t, out, "GLOBAL")
	assert.NotContains(t, out, "Score matrix")
	assert.Contains(t, out, "Seq1: A\n      |\nSeq2: A\n")
}

type failingWriter struct{}

var errBrokenPipe = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

// TestReport_WriteError surfaces the first write failure.
func TestReport_WriteError(t *testing.T) {
	g, err := align.Global("AT", "AG", align.DefaultScoring())
	require.NoError(t, err)
	err = render.Report(failingWriter{}, render.Sections{Seq1: "AT", Seq2: "AG", Global: g, ShowMatrix: true})
	assert.ErrorIs(t, err, errBrokenPipe)
}

// TestMatrix_UnicodeLabels labels one row or column per character.
func TestMatrix_UnicodeLabels(t *testing.T) {
	m := align.BuildGlobalMatrix("é", "e", align.DefaultScoring())
	var buf bytes.Buffer
	require.NoError(t, render.Matrix(&buf, "é", "e", m))

	want := "" +
		"           -    e\n" +
		"      +----------\n" +
		"   -  |    0   -1\n" +
		"   é  |   -1    0\n"
	assert.Equal(t, want, buf.String())
}

// TestAlignment_UnequalRows prints mismatched rows without failing.
func TestAlignment_UnequalRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Alignment(&buf, align.Alignment{Seq1: "ACG", Seq2: "A"}))
	assert.Equal(t, "Seq1: ACG\n      |\nSeq2: A\n", buf.String())
}
