// SPDX-License-Identifier: MIT

// Command seqalign aligns a pair of nucleotide sequences with
// Needleman-Wunsch (global) and Smith-Waterman (local) and prints the score
// matrices, scores and aligned rows.
//
//	seqalign align [--config=seqalign.yaml] [--scoring=1,-1,-1] [--mode=local] [pair.fasta]
//	seqalign global pair.fasta
//	seqalign local --no-matrix pair.fasta
//	seqalign config --config=seqalign.yaml
//
// Without a FASTA file, or when it holds fewer than two sequences, the
// configured default pair is used.
package main

import (
	"context"
	"errors"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"

	"github.com/katalvlaran/seqalign/pipeline"
)

var cmdSet *subcmd.CommandSet

var errInterrupt = errors.New("interrupt")

func init() {
	modeFlagSet := subcmd.NewFlagSet()
	modeFlagSet.MustRegisterFlagStruct(&modeFlags{}, flagDefaults, nil)
	alignFlagSet := subcmd.NewFlagSet()
	alignFlagSet.MustRegisterFlagStruct(&AlignFlags{}, flagDefaults, nil)
	configFlagSet := subcmd.NewFlagSet()
	configFlagSet.MustRegisterFlagStruct(&configFlags{}, flagDefaults, nil)

	alignCmd := subcmd.NewCommand("align", modeFlagSet, runSelected, subcmd.OptionalSingleArgument())
	alignCmd.Document("run global and local alignment, or one of them with --mode", "[fasta-file]")

	globalCmd := subcmd.NewCommand("global", alignFlagSet, runner(pipeline.GlobalOnly), subcmd.OptionalSingleArgument())
	globalCmd.Document("run Needleman-Wunsch global alignment only", "[fasta-file]")

	localCmd := subcmd.NewCommand("local", alignFlagSet, runner(pipeline.LocalOnly), subcmd.OptionalSingleArgument())
	localCmd.Document("run Smith-Waterman local alignment only", "[fasta-file]")

	configCmd := subcmd.NewCommand("config", configFlagSet, describeConfig, subcmd.WithoutArguments())
	configCmd.Document("print the effective YAML configuration")

	cmdSet = subcmd.NewCommandSet(alignCmd, configCmd, globalCmd, localCmd)
}

func main() {
	ctx, cancel := context.WithCancelCause(context.Background())
	cmdutil.HandleSignals(func() { cancel(errInterrupt) }, os.Interrupt)
	err := cmdSet.Dispatch(ctx)
	if context.Cause(ctx) == errInterrupt {
		cmdutil.Exit("%v", errInterrupt)
	}
	if err != nil {
		cmdutil.Exit("%v", err)
	}
}
