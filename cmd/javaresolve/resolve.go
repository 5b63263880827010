package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackb/javaresolve/pkg/javaname"
	"github.com/stackb/javaresolve/pkg/javaparse"
	"github.com/stackb/javaresolve/pkg/resolver"
)

func resolveCmd(a *app) *cobra.Command {
	var (
		in   string
		kind string
	)

	cmd := &cobra.Command{
		Use:   "resolve FILE NAME...",
		Short: "Resolve names in the scope of a source file",
		Long: `Resolve prints the resolution of each NAME as seen from FILE.

Simple names are looked up in the file scope, or in the body of the type
given by --in.  Dotted names are resolved as qualified type names.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			f, err := e.file(args[0])
			if err != nil {
				return err
			}
			scopes := f.Scopes()
			scope := scopes.File.File
			if in != "" {
				id, ok := scopes.Classes[javaname.TypeName(in)]
				if !ok {
					return fmt.Errorf("%s: no type %s", f.Filename, in)
				}
				scope = id
			}
			return a.resolveNames(cmd.OutOrStdout(), cmd.ErrOrStderr(), e.resolver, scopes, scope, kind, args[1:])
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "binary name of the type whose body is the lookup scope")
	cmd.Flags().StringVar(&kind, "kind", "any", "namespace of simple names (any, type, value, method)")

	return cmd
}

func (a *app) resolveNames(out, stderr io.Writer, r *resolver.Resolver, scopes *javaparse.Scopes, scope resolver.ScopeID, kind string, names []string) error {
	for _, name := range names {
		if strings.Contains(name, ".") {
			res, ok := r.ResolveQualifiedTypeResolutionInScope(scopes.Graph, scope, javaname.ParseQualifiedName(name))
			if !ok {
				fmt.Fprintf(out, "%s\tunresolved\n", name)
				continue
			}
			a.dump(stderr, res)
			fmt.Fprintf(out, "%s\t%s\n", name, describe(r, scopes, resolver.Resolved{Resolution: resolver.Type{Type: res}}))
			continue
		}

		var nr resolver.NameResolution
		switch kind {
		case "any":
			nr = r.ResolveNameDetailed(scopes.Graph, scope, javaname.Name(name))
		case "type":
			nr = r.ResolveTypeNameDetailed(scopes.Graph, scope, javaname.Name(name))
		case "value":
			nr = r.ResolveValueNameDetailed(scopes.Graph, scope, javaname.Name(name))
		case "method":
			nr = r.ResolveMethodNameDetailed(scopes.Graph, scope, javaname.Name(name))
		default:
			return fmt.Errorf("unknown kind %q (want any, type, value or method)", kind)
		}
		a.dump(stderr, nr)
		fmt.Fprintf(out, "%s\t%s\n", name, describe(r, scopes, nr))
	}
	return nil
}

// describe formats a resolution.  Source types are followed by their binary
// name.
func describe(r *resolver.Resolver, scopes *javaparse.Scopes, nr resolver.NameResolution) string {
	res, ok := nr.Option()
	if !ok {
		return nr.String()
	}
	if t, ok := res.(resolver.Type); ok {
		if src, ok := t.Type.(resolver.SourceType); ok {
			if name, ok := r.TypeNameForResolution(scopes.Graph, src); ok {
				return fmt.Sprintf("%v %s", t, name)
			}
		}
	}
	return res.String()
}
