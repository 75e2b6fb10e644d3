// SPDX-License-Identifier: MIT

// Package config holds the run configuration: scoring weights, the fallback
// sequence pair, the input path and logging settings. It is loaded from YAML
// and every field has a documented default.
package config

import (
	"bytes"
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/fasta"
)

var (
	// ErrInvalidScoring indicates weights that make alignment meaningless.
	ErrInvalidScoring = errors.New("config: invalid scoring")

	// ErrEmptyDefault indicates a missing fallback sequence.
	ErrEmptyDefault = errors.New("config: default sequence is empty")
)

// Defaults is the literal pair used when the input cannot provide one.
type Defaults struct {
	Seq1 string `yaml:"seq1"`
	Seq2 string `yaml:"seq2"`
}

// Config is the YAML document accepted by --config.
//
//	scoring: {match: 1, mismatch: 0, gap: -1}
//	defaults: {seq1: ATGCGTACGTTAGC, seq2: ATGCCGTCGTTAGG}
//	input: sequences.fasta
//	show_matrix: true
//	logging: {level: 2, format: text}
type Config struct {
	Scoring    align.Scoring         `yaml:"scoring"`
	Defaults   Defaults              `yaml:"defaults"`
	Input      string                `yaml:"input"`
	ShowMatrix bool                  `yaml:"show_matrix"`
	Logging    cmdutil.LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Scoring:    align.DefaultScoring(),
		Defaults:   Defaults{Seq1: fasta.DefaultSeq1, Seq2: fasta.DefaultSeq2},
		ShowMatrix: true,
		Logging:    cmdutil.LoggingConfig{Level: 1, Format: "text"},
	}
}

// Parse decodes spec on top of Default; unknown fields are rejected.
// An empty document yields Default.
func Parse(spec []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(spec)) == 0 {
		return cfg, cfg.Validate()
	}
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Load reads the YAML file at path, honouring any file systems attached to
// ctx with file.ContextWithFS, and parses it with Parse.
func Load(ctx context.Context, path string) (Config, error) {
	spec, err := file.FSReadFile(ctx, path)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := Parse(spec)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every problem at once.
//
// Rules:
//   - Gap must not be positive, otherwise gaps are rewarded without bound.
//   - Match must not be below Mismatch.
//   - Both default sequences must be non-empty.
func (c Config) Validate() error {
	var errs errors.M
	s := c.Scoring
	if s.Gap > 0 {
		errs.Append(fmt.Errorf("gap %d > 0: %w", s.Gap, ErrInvalidScoring))
	}
	if s.Match < s.Mismatch {
		errs.Append(fmt.Errorf("match %d < mismatch %d: %w", s.Match, s.Mismatch, ErrInvalidScoring))
	}
	if c.Defaults.Seq1 == "" {
		errs.Append(fmt.Errorf("defaults.seq1: %w", ErrEmptyDefault))
	}
	if c.Defaults.Seq2 == "" {
		errs.Append(fmt.Errorf("defaults.seq2: %w", ErrEmptyDefault))
	}

	return errs.Err()
}

// DefaultPair returns the configured fallback sequences as a fasta.Pair.
func (c Config) DefaultPair() fasta.Pair {
	return fasta.DefaultPair(c.Defaults.Seq1, c.Defaults.Seq2)
}

// Marshal renders c as YAML, used to describe the effective configuration.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
