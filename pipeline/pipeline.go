// SPDX-License-Identifier: MIT

// Package pipeline drives the global and local alignment runs for one
// sequence pair.
//
// The two runs share no state, so Run executes them concurrently and
// collects every failure instead of stopping at the first. Each finished
// result is checked by rescoring its alignment column by column; a result
// whose rows do not add up to the reported score is rejected.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"cloudeng.io/errors"
	"cloudeng.io/sync/errgroup"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/fasta"
)

var (
	// ErrUnknownMode is returned by ParseMode for unrecognised names.
	ErrUnknownMode = errors.New("pipeline: unknown mode")

	// ErrScoreMismatch indicates an alignment that does not rescore to its
	// reported score.
	ErrScoreMismatch = errors.New("pipeline: alignment does not match score")
)

// Mode selects which pipelines Run executes.
type Mode int

const (
	// Both runs the global and the local pipeline.
	Both Mode = iota
	// GlobalOnly runs only Needleman-Wunsch.
	GlobalOnly
	// LocalOnly runs only Smith-Waterman.
	LocalOnly
)

var modeNames = [...]string{Both: "both", GlobalOnly: "global", LocalOnly: "local"}

// String returns the name accepted by ParseMode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode maps "both", "global" or "local" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}

	return Both, fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

func (m Mode) global() bool { return m == Both || m == GlobalOnly }
func (m Mode) local() bool  { return m == Both || m == LocalOnly }

// Report is the outcome of Run. Global and Local are nil for pipelines that
// were not selected.
type Report struct {
	Pair    fasta.Pair
	Scoring align.Scoring
	Global  *align.Result
	Local   *align.Result

	GlobalElapsed time.Duration
	LocalElapsed  time.Duration
}

// Run aligns pair under s with the pipelines selected by mode.
//
// Both pipelines run to completion even if one fails; the returned error
// then holds every failure and supports errors.Is for each of them. A
// context cancelled before a pipeline starts skips that pipeline.
func Run(ctx context.Context, logger *slog.Logger, pair fasta.Pair, s align.Scoring, mode Mode) (*Report, error) {
	seq1, seq2 := pair.Seq1.Seq, pair.Seq2.Seq
	rep := &Report{Pair: pair, Scoring: s}
	logger.Info("alignment started",
		"source", pair.Source,
		"seq1.id", pair.Seq1.ID, "seq1.len", utf8.RuneCountInString(seq1),
		"seq2.id", pair.Seq2.ID, "seq2.len", utf8.RuneCountInString(seq2),
		"mode", mode.String(),
		"match", s.Match, "mismatch", s.Mismatch, "gap", s.Gap)

	var g errgroup.T
	if mode.global() {
		g.Go(func() error {
			res, elapsed, err := run(ctx, "global", seq1, seq2, s, align.Global)
			if err != nil {
				return err
			}
			rep.Global, rep.GlobalElapsed = res, elapsed
			logResult(logger, "global", res, elapsed)
			return nil
		})
	}
	if mode.local() {
		g.Go(func() error {
			res, elapsed, err := run(ctx, "local", seq1, seq2, s, align.Local)
			if err != nil {
				return err
			}
			rep.Local, rep.LocalElapsed = res, elapsed
			logResult(logger, "local", res, elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("alignment failed", "error", err)
		return rep, err
	}

	return rep, nil
}

type alignFunc func(seq1, seq2 string, s align.Scoring) (*align.Result, error)

func run(ctx context.Context, name, seq1, seq2 string, s align.Scoring, fn alignFunc) (*align.Result, time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", name, err)
	}
	start := time.Now()
	res, err := fn(seq1, seq2, s)
	elapsed := time.Since(start)
	if err != nil {
		return nil, elapsed, fmt.Errorf("%s: %w", name, err)
	}
	if err := Verify(res, s); err != nil {
		return nil, elapsed, fmt.Errorf("%s: %w", name, err)
	}

	return res, elapsed, nil
}

// Verify checks that res rescoring under s gives res.Score and that its rows
// have equal length.
func Verify(res *align.Result, s align.Scoring) error {
	if n1, n2 := res.Len(), utf8.RuneCountInString(res.Seq2); n1 != n2 {
		return fmt.Errorf("rows of length %d and %d: %w", n1, n2, ErrScoreMismatch)
	}
	if got := res.Evaluate(s); got != res.Score {
		return fmt.Errorf("rescored %d, reported %d: %w", got, res.Score, ErrScoreMismatch)
	}

	return nil
}

func logResult(logger *slog.Logger, name string, res *align.Result, elapsed time.Duration) {
	st := res.Stats()
	logger.Info(name+" alignment finished",
		"score", res.Score,
		"start", fmt.Sprintf("(%d,%d)", res.Start.I, res.Start.J),
		"end", fmt.Sprintf("(%d,%d)", res.End.I, res.End.J),
		"length", st.Length,
		"identity", st.Identity,
		"elapsed", elapsed)
	logger.Debug(name+" alignment rows", "seq1", res.Seq1, "seq2", res.Seq2)
}

// LoadPair returns the pair read from path, or def when path is empty or
// unusable. A fallback caused by a bad input is logged as a warning and is
// not an error.
func LoadPair(logger *slog.Logger, path string, def fasta.Pair) fasta.Pair {
	pair, err := fasta.PairOrDefault(path, def)
	if err != nil {
		logger.Warn("using default sequences", "input", path, "error", err)
		return pair
	}
	logger.Debug("sequences loaded", "source", pair.Source)

	return pair
}
