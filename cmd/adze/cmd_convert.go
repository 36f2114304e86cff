package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adze-cad/adze/pkg/ast"
	"github.com/adze-cad/adze/pkg/csg"
	"github.com/spf13/cobra"
)

var flagPretty bool

var convertCmd = &cobra.Command{
	Use:   "convert [file.json]",
	Short: "Convert an AST JSON file (or stdin) to a CSG tree",
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

		enc := json.NewEncoder(os.Stdout)
		if flagPretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(result); err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("conversion finished with %d error(s)", len(result.Errors))
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&flagPretty, "pretty", false, "indent JSON output")
}
