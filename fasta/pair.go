// SPDX-License-Identifier: MIT

package fasta

import "fmt"

// Default pair used when no usable input is available.
const (
	DefaultSeq1 = "ATGCGTACGTTAGC"
	DefaultSeq2 = "ATGCCGTCGTTAGG"
)

// Pair is the two sequences fed to an alignment run.
type Pair struct {
	Seq1, Seq2 Record
	// Source names where the pair came from: a path, or "defaults".
	Source string
}

// DefaultPair wraps two literal sequences as a Pair with Source "defaults".
func DefaultPair(seq1, seq2 string) Pair {
	return Pair{
		Seq1:   Record{ID: "seq1", Seq: seq1},
		Seq2:   Record{ID: "seq2", Seq: seq2},
		Source: "defaults",
	}
}

// PairFromRecords takes the first two records; extra records are ignored.
func PairFromRecords(records []Record, source string) (Pair, error) {
	if len(records) < 2 {
		return Pair{}, fmt.Errorf("%s: %d record(s): %w", source, len(records), ErrTooFewSequences)
	}

	return Pair{Seq1: records[0], Seq2: records[1], Source: source}, nil
}

// LoadPair reads path and returns its first two records.
func LoadPair(path string) (Pair, error) {
	records, err := ReadFile(path)
	if err != nil {
		return Pair{}, err
	}

	return PairFromRecords(records, path)
}

// PairOrDefault is LoadPair that never fails: on any error it returns def
// together with the error that caused the substitution, so the caller can
// report it. An empty path selects def without error.
func PairOrDefault(path string, def Pair) (Pair, error) {
	if path == "" {
		return def, nil
	}
	p, err := LoadPair(path)
	if err != nil {
		return def, err
	}

	return p, nil
}
