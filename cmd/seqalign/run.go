// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/pipeline"
	"github.com/katalvlaran/seqalign/render"
)

// CommonFlags are accepted by every command.
type CommonFlags struct {
	cmdutil.LoggingFlags
	ConfigFile string `subcmd:"config,,'YAML configuration file; built-in defaults are used if not set'"`
}

type AlignFlags struct {
	CommonFlags
	Scoring  string `subcmd:"scoring,,'match,mismatch,gap weights, e.g. 1,-1,-1; overrides the config file'"`
	NoMatrix bool   `subcmd:"no-matrix,false,do not print the score matrices"`
}

type modeFlags struct {
	AlignFlags
	Mode string `subcmd:"mode,both,'pipelines to run: both, global or local'"`
}

type configFlags struct {
	CommonFlags
}

// flagDefaults clears the --log-format default so that an explicit value can
// be told apart from an unset flag when merging with the config file.
var flagDefaults = map[string]any{"log-format": ""}

var stdout io.Writer = os.Stdout

// loadConfig returns the configuration named by --config, or the defaults.
func (cf *CommonFlags) loadConfig(ctx context.Context) (config.Config, error) {
	if cf.ConfigFile == "" {
		cfg := config.Default()
		cfg.Logging = cf.LoggingConfig()
		return cfg, nil
	}
	cfg, err := config.Load(ctx, cf.ConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	// Explicit logging flags win over the file.
	if cf.Level != 0 {
		cfg.Logging.Level = cf.Level
	}
	if cf.File != "" {
		cfg.Logging.File = cf.File
	}
	if cf.Format != "" {
		cfg.Logging.Format = cf.Format
	}
	if cf.SourceCode {
		cfg.Logging.SourceCode = true
	}

	return cfg, nil
}

// parseScoring parses "match,mismatch,gap".
func parseScoring(v string) (align.Scoring, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return align.Scoring{}, fmt.Errorf("--scoring=%q: want match,mismatch,gap", v)
	}
	var w [3]int
	for k, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return align.Scoring{}, fmt.Errorf("--scoring=%q: %w", v, err)
		}
		w[k] = n
	}

	return align.Scoring{Match: w[0], Mismatch: w[1], Gap: w[2]}, nil
}

func runner(mode pipeline.Mode) func(context.Context, any, []string) error {
	return func(ctx context.Context, values any, args []string) error {
		return runAlign(ctx, stdout, values.(*AlignFlags), args, mode)
	}
}

func runSelected(ctx context.Context, values any, args []string) error {
	fv := values.(*modeFlags)
	mode, err := pipeline.ParseMode(fv.Mode)
	if err != nil {
		return err
	}

	return runAlign(ctx, stdout, &fv.AlignFlags, args, mode)
}

// runAlign resolves configuration and input, runs the selected pipelines and
// writes the report to out.
func runAlign(ctx context.Context, out io.Writer, fv *AlignFlags, args []string, mode pipeline.Mode) error {
	cfg, err := fv.loadConfig(ctx)
	if err != nil {
		return err
	}
	if fv.Scoring != "" {
		if cfg.Scoring, err = parseScoring(fv.Scoring); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if fv.NoMatrix {
		cfg.ShowMatrix = false
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	pair := pipeline.LoadPair(logger.Logger, cfg.Input, cfg.DefaultPair())
	rep, err := pipeline.Run(ctx, logger.Logger, pair, cfg.Scoring, mode)
	if err != nil {
		return err
	}

	return render.Report(out, render.Sections{
		Seq1:       pair.Seq1.Seq,
		Seq2:       pair.Seq2.Seq,
		Global:     rep.Global,
		Local:      rep.Local,
		ShowMatrix: cfg.ShowMatrix,
	})
}

func describeConfig(ctx context.Context, values any, _ []string) error {
	return writeConfig(ctx, stdout, values.(*configFlags))
}

func writeConfig(ctx context.Context, out io.Writer, fv *configFlags) error {
	cfg, err := fv.loadConfig(ctx)
	if err != nil {
		return err
	}
	buf, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(buf)

	return err
}
