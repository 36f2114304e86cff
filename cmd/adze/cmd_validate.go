package main

import (
	"fmt"

	"github.com/adze-cad/adze/pkg/ast"
	"github.com/adze-cad/adze/pkg/csg"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file.json]",
	Short: "Convert an AST and re-check tree invariants",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		nodes, err := ast.Decode(data)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		result := csg.Process(nodes, cfg)
		printDiagnostics(result.Errors)
		printDiagnostics(result.Warns)

		findings := csg.Validate(result.Tree)
		printDiagnostics(findings)

		if !result.Success || len(findings) > 0 {
			return fmt.Errorf("validation failed: %d conversion error(s), %d invariant violation(s)",
				len(result.Errors), len(findings))
		}
		meta := result.Tree.Meta
		fmt.Printf("ok: %d nodes (%d primitives, %d operations), max depth %d\n",
			meta.NodeCount, meta.PrimitiveCount, meta.OperationCount, meta.MaxDepth)
		return nil
	},
}
