// SPDX-License-Identifier: MIT

package fasta_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/fasta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRecords = `>seq1 first test sequence
ATGCGTAC
GTTAGC

>seq2
ATGCCGTC
GTTAGG
`

// writeFile stores content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestParse_MultiLine joins wrapped sequence lines and splits headers.
func TestParse_MultiLine(t *testing.T) {
	recs, err := fasta.Parse(strings.NewReader(twoRecords))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, fasta.Record{ID: "seq1", Description: "first test sequence", Seq: "ATGCGTACGTTAGC"}, recs[0])
	assert.Equal(t, fasta.Record{ID: "seq2", Seq: "ATGCCGTCGTTAGG"}, recs[1])
}

// TestParse_EdgeCases covers CRLF endings, blank lines and empty records.
func TestParse_EdgeCases(t *testing.T) {
	in := ">first\r\nACGT\r\n\r\nAC\r\n>empty\r\n>x spaced  desc \r\n  gg tt  \r\n"
	recs, err := fasta.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2, "the empty record is dropped")

	assert.Equal(t, fasta.Record{ID: "first", Seq: "ACGTAC"}, recs[0])
	assert.Equal(t, "x", recs[1].ID)
	assert.Equal(t, "spaced  desc", recs[1].Description)
	assert.Equal(t, "ggtt", recs[1].Seq, "case kept, whitespace dropped")
}

// TestParse_Unicode keeps multi-byte symbols intact.
func TestParse_Unicode(t *testing.T) {
	recs, err := fasta.Parse(strings.NewReader(">a\nαβγ\n>b\nαγ\n"))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "αβγ", recs[0].Seq)
	assert.Equal(t, "αγ", recs[1].Seq)
}

// TestParse_NoRecords reports ErrNoRecords for blank or header-only input.
func TestParse_NoRecords(t *testing.T) {
	for _, in := range []string{"", "\n\n", ">only\n>headers\n"} {
		_, err := fasta.Parse(strings.NewReader(in))
		assert.ErrorIs(t, err, fasta.ErrNoRecords, "input %q", in)
	}
}

// TestReadFile_PlainAndGzip reads the same records from both encodings.
func TestReadFile_PlainAndGzip(t *testing.T) {
	plain := writeFile(t, "pair.fasta", twoRecords)

	gzPath := filepath.Join(t.TempDir(), "pair.fasta.gz")
	fh, err := os.Create(gzPath)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(twoRecords))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	want, err := fasta.ReadFile(plain)
	require.NoError(t, err)
	got, err := fasta.ReadFile(gzPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestReadFile_Errors surfaces missing files and corrupt gzip streams.
func TestReadFile_Errors(t *testing.T) {
	_, err := fasta.ReadFile(filepath.Join(t.TempDir(), "missing.fasta"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, "bad.fasta.gz", "not gzip")
	_, err = fasta.ReadFile(bad)
	assert.Error(t, err)

	empty := writeFile(t, "empty.fasta", "")
	_, err = fasta.ReadFile(empty)
	assert.ErrorIs(t, err, fasta.ErrNoRecords)
	assert.Contains(t, err.Error(), empty)
}
