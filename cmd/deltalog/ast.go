package main

import (
	"encoding/json"

	"github.com/deltalog/deltalog/compiler/parser"
	"github.com/spf13/cobra"
)

func (d *driver) astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast file.dl [file.dl ...]",
		Short: "print the parsed program as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parser.ParseProgram("", args...)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p.Parsed())
		},
	}
}
