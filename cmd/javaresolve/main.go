// Package main provides the javaresolve binary entry point.  javaresolve
// resolves simple and qualified Java names against a workspace of source
// files, a classpath and the JDK, and validates import declarations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackb/javaresolve/pkg/resolveconfig"
)

const (
	Version = "0.1.0"
	appName = "javaresolve"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Resolve Java names and validate imports",
		Long: `javaresolve resolves Java names the way the compiler does: through
lexical scopes, single-type and on-demand imports, static imports and the
implicit java.lang import.

Types are looked up in the workspace sources, the classpath and the JDK.
Classpath and JDK entries are jar files or JSON/YAML index specs.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file path (YAML)")
	flags.StringVar(&a.overrides.Root, "root", "", "workspace root; relative patterns are expanded against it")
	flags.StringSliceVar(&a.overrides.JDK.Entries, "jdk", nil, "JDK index entries (jar files or index specs, globs allowed)")
	flags.StringSliceVar(&a.overrides.Classpath.Entries, "classpath", nil, "classpath entries (jar files or index specs, globs allowed)")
	flags.StringSliceVar(&a.overrides.Workspace.Sources, "sources", nil, "workspace source globs")
	flags.StringVar(&a.overrides.Log.Level, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.overrides.Log.Format, "log-format", "", "log format (console, json)")
	flags.IntVar(&a.overrides.Parallelism, "parallelism", 0, "max concurrent jar and source reads")
	flags.BoolVar(&a.showProgress, "progress", false, "report loading progress on stderr")
	flags.BoolVar(&a.debug, "debug", false, "dump resolution values on stderr")

	cmd.AddCommand(
		resolveCmd(a),
		diagnoseCmd(a),
		indexCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

// app holds the state shared by the subcommands.
type app struct {
	configPath   string
	overrides    resolveconfig.Config
	showProgress bool
	debug        bool
}
