package main

import (
	"fmt"

	"github.com/deltalog/deltalog/compiler/parser"
	"github.com/deltalog/deltalog/compiler/semantic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (d *driver) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check file.dl [file.dl ...]",
		Short: "parse and analyze a program, reporting the first error",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := d.analyze(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d source, %d derived, %d update predicates\n",
				a.Extensional.Len(), a.Intensional.Len(), len(a.Deltas))
			return nil
		},
	}
}

func (d *driver) analyze(files []string) (*semantic.Analysis, error) {
	p, err := parser.ParseProgram("", files...)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("parsed", zap.Int("statements", len(p.Parsed())))
	a, err := semantic.Analyze(p)
	if err != nil {
		return nil, err
	}
	d.logger.Info("analysis complete",
		zap.Int("extensional", a.Extensional.Len()),
		zap.Int("intensional", a.Intensional.Len()),
		zap.Int("updates", len(a.Deltas)),
		zap.String("query", a.Query.Atom.Name))
	return a, nil
}
