// SPDX-License-Identifier: MIT

// Package fasta reads the input sequences for an alignment run.
//
// Parsing is delegated to biogo's FASTA reader: a record starts at a '>'
// header line and every following line up to the next header is appended
// to its sequence. The header's first word is the ID and the rest is the
// description. Whitespace inside sequence lines (including CR from CRLF
// files) is discarded. Records whose sequence is empty are dropped. Symbols
// are otherwise kept verbatim: no case folding and no alphabet checks, since
// alignment compares characters literally.
package fasta

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

var (
	// ErrNoRecords indicates that the input holds no non-empty sequence.
	ErrNoRecords = errors.New("fasta: no sequences found")

	// ErrTooFewSequences indicates that fewer than two sequences are available for a pair.
	ErrTooFewSequences = errors.New("fasta: need at least two sequences")
)

// Record is one FASTA entry.
type Record struct {
	ID          string // first word of the header, without '>'
	Description string // rest of the header line
	Seq         string
}

// Parse reads all records from r.
func Parse(r io.Reader) ([]Record, error) {
	// alphabet.DNA only types the template; letters are never validated.
	template := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(biofasta.NewReader(r, template))

	var records []Record
	for sc.Next() {
		rec, err := toRecord(sc.Seq())
		if err != nil {
			return nil, err
		}
		if rec.Seq != "" {
			records = append(records, rec)
		}
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

// toRecord maps a parsed biogo sequence onto Record.
func toRecord(s seq.Sequence) (Record, error) {
	ls, ok := s.(*linear.Seq)
	if !ok {
		return Record{}, fmt.Errorf("fasta: unexpected sequence type %T", s)
	}

	return Record{
		ID:          strings.TrimSpace(ls.Name()),
		Description: strings.TrimSpace(ls.Description()),
		Seq:         letters(ls.Seq),
	}, nil
}

// letters converts biogo letters to a string, dropping ASCII whitespace.
func letters(ls alphabet.Letters) string {
	var sb strings.Builder
	sb.Grow(len(ls))
	for _, l := range ls {
		switch l {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			continue
		}
		sb.WriteByte(byte(l))
	}

	return sb.String()
}

// ReadFile parses the file at path. "-" reads stdin; a ".gz" suffix is
// decompressed transparently.
func ReadFile(path string) ([]Record, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		fh.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return struct {
		io.Reader
		io.Closer
	}{Reader: gr, Closer: fh}, nil
}
