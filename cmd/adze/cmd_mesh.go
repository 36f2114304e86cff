package main

import (
	"fmt"
	"os"

	"github.com/adze-cad/adze/pkg/ast"
	"github.com/adze-cad/adze/pkg/csg"
	"github.com/adze-cad/adze/pkg/kernel/sdfx"
	"github.com/adze-cad/adze/pkg/tessellate"
	"github.com/spf13/cobra"
)

var (
	flagOutput string
	flagCells  int
)

var meshCmd = &cobra.Command{
	Use:   "mesh [file.json]",
	Short: "Convert an AST and mesh the CSG tree to binary STL",
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
		if !result.Success {
			return fmt.Errorf("conversion finished with %d error(s)", len(result.Errors))
		}
		if len(result.Tree.Roots) == 0 {
			return fmt.Errorf("nothing to mesh: tree is empty")
		}

		k := sdfx.New()
		k.MeshCells = flagCells
		meshes, err := tessellate.Tessellate(result.Tree, k)
		if err != nil {
			return err
		}

		out, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer out.Close()

		if err := writeSTL(out, meshes); err != nil {
			return fmt.Errorf("write %s: %w", flagOutput, err)
		}

		var tris int
		for _, m := range meshes {
			tris += m.TriangleCount()
		}
		fmt.Printf("wrote %s: %d mesh(es), %d triangles\n", flagOutput, len(meshes), tris)
		return nil
	},
}

func init() {
	meshCmd.Flags().StringVarP(&flagOutput, "output", "o", "out.stl", "output STL path")
	meshCmd.Flags().IntVar(&flagCells, "cells", 0, "marching cubes resolution (0 = default)")
}
