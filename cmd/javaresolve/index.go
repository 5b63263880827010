package main

import (
	"fmt"
	"strings"

	"github.com/bazelbuild/bazel-gazelle/label"
	"github.com/spf13/cobra"

	"github.com/stackb/javaresolve/pkg/typeindex"
)

func indexCmd(a *app) *cobra.Command {
	var (
		from string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "index --out FILE JAR...",
		Short: "Write an index spec for jar files",
		Long: `Index scans the given jar files (and merges any given index specs) into
one index spec.  The output is YAML when FILE ends in .yaml or .yml and JSON
otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := a.configure()
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), config)

			if out == "" {
				return fmt.Errorf("--out is required")
			}
			if from != "" {
				if _, err := label.Parse(from); err != nil {
					return fmt.Errorf("--label: %w", err)
				}
			}

			specs := make([]*typeindex.IndexSpec, 0, len(args))
			for _, filename := range args {
				var spec *typeindex.IndexSpec
				if strings.HasSuffix(filename, ".jar") {
					spec, err = typeindex.ReadJarSpec(filename, from)
				} else {
					spec, err = typeindex.ReadIndexSpec(filename)
				}
				if err != nil {
					return err
				}
				logger.Debug().Str("file", filename).Int("classes", len(spec.Classes)).Msg("indexed")
				specs = append(specs, spec)
			}

			merged := typeindex.MergeIndexSpecs(from, specs...)
			if err := typeindex.WriteIndexSpec(out, merged); err != nil {
				return err
			}
			logger.Info().
				Str("out", out).
				Int("classes", len(merged.Classes)).
				Int("packages", len(merged.Packages)).
				Msg("index written")
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "label", "", "label recorded as the provider of the indexed types")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")

	return cmd
}
