// Copyright 2026 numseq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/afsmath/numseq/internal/log"
	"github.com/afsmath/numseq/seq"
)

// options holds the flag values shared by every subcommand.
type options struct {
	typeName string
	logEnv   string
	verbose  bool

	scalar string
	with   []string

	// logger is built in PersistentPreRunE unless already set.
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithLogger(nil)
}

func newRootCmdWithLogger(logger *zap.Logger) *cobra.Command {
	opts := &options{logger: logger}

	root := &cobra.Command{
		Use:           "seqtool",
		Short:         "Element-wise arithmetic and sorting over numeric sequences",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			env, err := log.ParseEnv(opts.logEnv)
			if err != nil {
				return err
			}
			opts.logger, err = log.New(env, opts.verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.typeName, "type", "t", seq.Int32.String(), "element type (see 'seqtool kinds')")
	pf.StringVar(&opts.logEnv, "log-env", os.Getenv(log.EnvVar), "logging configuration: dev or prod")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSortCmd(opts))
	for _, op := range []opName{opAdd, opSub, opMul, opDiv} {
		root.AddCommand(newArithCmd(opts, op))
	}
	root.AddCommand(newKindsCmd())
	return root
}

func newSortCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sort VALUES...",
		Short: "Sort values in ascending order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, opts, request{op: opSort, values: splitValues(args)})
		},
	}
}

var arithShort = map[opName]string{
	opAdd: "Add a scalar or another sequence to every value",
	opSub: "Subtract a scalar or another sequence from every value",
	opMul: "Multiply every value by a scalar or another sequence",
	opDiv: "Divide every value by a scalar or another sequence (x/0 = x)",
}

func newArithCmd(opts *options, op opName) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(op) + " VALUES...",
		Short: arithShort[op],
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request{op: op, values: splitValues(args)}
			if cmd.Flags().Changed("with") {
				req.with = splitValues(opts.with)
			} else {
				req.scalar = opts.scalar
			}
			return runOp(cmd, opts, req)
		},
	}
	cmd.Flags().StringVarP(&opts.scalar, "scalar", "s", "", "scalar right-hand operand")
	cmd.Flags().StringSliceVarP(&opts.with, "with", "w", nil, "right-hand sequence, same length as VALUES")
	cmd.MarkFlagsMutuallyExclusive("scalar", "with")
	cmd.MarkFlagsOneRequired("scalar", "with")
	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the allowed element types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range seq.Kinds() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %2d bits\n", k, k.Bits())
			}
			return nil
		},
	}
}

func runOp(cmd *cobra.Command, opts *options, req request) error {
	kind, err := seq.ParseKind(opts.typeName)
	if err != nil {
		return err
	}
	logger := opts.logger.With(zap.Stringer("kind", kind), zap.String("op", string(req.op)))
	logger.Debug("running", zap.Int("values", len(req.values)), zap.Int("with", len(req.with)))

	out, err := execute(kind, req)
	if err != nil {
		logger.Debug("failed", zap.Error(err))
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// splitValues flattens space- and comma-separated arguments into single
// values, dropping empty entries.
func splitValues(args []string) []string {
	parts := lo.FlatMap(args, func(arg string, _ int) []string {
		return strings.Split(arg, ",")
	})
	parts = lo.Map(parts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Compact(parts)
}
