package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adze-cad/adze/pkg/csg"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagMaxDepth int
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "adze",
	Short: "Convert solid-modeling ASTs into CSG trees",
	Long: "adze converts parsed solid-modeling source (AST JSON) into a typed\n" +
		"CSG tree of primitives, boolean operations, and transforms, and can\n" +
		"validate the result or mesh it to STL.",
}

func main() {
	rootCmd.AddCommand(convertCmd, validateCmd, meshCmd)

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"processor config YAML file")
	rootCmd.PersistentFlags().IntVar(&flagMaxDepth, "max-depth", 0,
		"override the recursion depth limit")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable diagnostic logging")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}

// loadConfig resolves the effective processor config from flags.
func loadConfig() (csg.Config, error) {
	cfg := csg.DefaultConfig()
	if flagConfig != "" {
		loaded, err := csg.LoadConfig(flagConfig)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if flagMaxDepth > 0 {
		cfg.MaxDepth = flagMaxDepth
	}
	if flagVerbose {
		cfg.EnableLogging = true
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return cfg, nil
}

// readInput reads an AST payload from a file argument, or stdin for "-".
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
