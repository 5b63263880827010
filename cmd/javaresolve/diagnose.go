package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/stackb/javaresolve/pkg/javaparse"
	"github.com/stackb/javaresolve/pkg/resolver"
)

func diagnoseCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "diagnose [FILE...]",
		Short: "Report unresolved, ambiguous and duplicate imports",
		Long: `Diagnose validates the import declarations of the given files, or of every
workspace file when none are given.  Each finding is printed as
FILE:LINE:COL: CODE: MESSAGE.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			files := e.workspace.Files
			if len(args) > 0 {
				files = nil
				for _, arg := range args {
					f, err := e.file(arg)
					if err != nil {
						return err
					}
					files = append(files, f)
				}
			}
			sort.SliceStable(files, func(i, j int) bool {
				return files[i].Filename < files[j].Filename
			})

			total := 0
			for _, f := range files {
				n, err := printDiagnostics(cmd.OutOrStdout(), e, f)
				if err != nil {
					return err
				}
				total += n
			}
			e.logger.Info().Int("files", len(files)).Int("diagnostics", total).Msg("imports checked")

			if strict && total > 0 {
				return fmt.Errorf("found %d import diagnostics", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any diagnostic is reported")

	return cmd
}

func printDiagnostics(out io.Writer, e *env, f *javaparse.File) (int, error) {
	diags := e.resolver.DiagnoseImports(f.Imports)
	if len(diags) == 0 {
		return 0, nil
	}
	src, err := os.ReadFile(f.Filename)
	if err != nil {
		return 0, err
	}
	name := f.Filename
	if rel, err := filepath.Rel(e.config.Root, f.Filename); err == nil {
		name = rel
	}
	for _, d := range diags {
		line, col := position(src, d.Span)
		fmt.Fprintf(out, "%s:%d:%d: %s: %s\n", name, line, col, d.Code, d.Message)
	}
	return len(diags), nil
}

// position returns the 1-based line and column of the start of span.
func position(src []byte, span resolver.Span) (line, col int) {
	offset := span.Start
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	line = bytes.Count(before, []byte("\n")) + 1
	col = offset - bytes.LastIndexByte(before, '\n')
	return
}
