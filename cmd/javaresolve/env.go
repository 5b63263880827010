package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaparse"
	"github.com/stackb/javaresolve/pkg/progress"
	"github.com/stackb/javaresolve/pkg/resolveconfig"
	"github.com/stackb/javaresolve/pkg/resolver"
	"github.com/stackb/javaresolve/pkg/typeindex"
)

// env is a loaded resolution environment.
type env struct {
	config    *resolveconfig.Config
	logger    zerolog.Logger
	resolver  *resolver.Resolver
	workspace *javaparse.Workspace
}

// configure loads the config file, if any, and applies the command line
// overrides.
func (a *app) configure() (*resolveconfig.Config, error) {
	config := resolveconfig.DefaultConfig()
	if a.configPath != "" {
		loaded, err := resolveconfig.LoadFile(a.configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	config.Merge(&a.overrides)

	root, err := filepath.Abs(config.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	config.Root = root
	return config, nil
}

// load builds the type indices, parses the workspace and constructs the
// resolver.
func (a *app) load(ctx context.Context, stderr io.Writer) (*env, error) {
	config, err := a.configure()
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger := newLogger(stderr, config)

	var out mobyprogress.Output
	if a.showProgress {
		out = progress.NewProgressOutput(stderr)
	}

	jdkEntries, err := typeindex.CollectFiles(config.Root, config.JDK.Entries)
	if err != nil {
		return nil, fmt.Errorf("jdk: %w", err)
	}
	if len(jdkEntries) == 0 {
		return nil, fmt.Errorf("jdk: no entries matched %v", config.JDK.Entries)
	}
	classpathEntries, err := typeindex.CollectFiles(config.Root, config.Classpath.Entries)
	if err != nil {
		return nil, fmt.Errorf("classpath: %w", err)
	}
	sources, err := typeindex.CollectFiles(config.Root, config.Workspace.Sources)
	if err != nil {
		return nil, fmt.Errorf("sources: %w", err)
	}

	indexer := typeindex.NewClasspathLoader(logger, out)
	parser := javaparse.NewLoader(logger, out)
	if config.Parallelism > 0 {
		indexer.Parallelism = config.Parallelism
		parser.Parallelism = config.Parallelism
	}

	jdk, err := indexer.Load(ctx, "jdk", jdkEntries)
	if err != nil {
		return nil, fmt.Errorf("jdk: %w", err)
	}
	classpath, err := indexer.Load(ctx, "classpath", classpathEntries)
	if err != nil {
		return nil, fmt.Errorf("classpath: %w", err)
	}
	ws, err := parser.Load(ctx, config.Root, sources)
	if err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}

	r := resolver.New(jdk,
		resolver.WithClasspath(typeindex.NewChainIndex(ws.DefMap, classpath)),
		resolver.WithWorkspace(ws.DefMap),
		resolver.WithLogger(logger),
	)

	return &env{
		config:    config,
		logger:    logger,
		resolver:  r,
		workspace: ws,
	}, nil
}

// file returns the workspace file with the given name.  Files outside the
// workspace are parsed on their own; their types are visible only within
// the file.
func (e *env) file(filename string) (*javaparse.File, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	if rel, err := filepath.Rel(e.config.Root, abs); err == nil {
		if f, ok := e.workspace.File(rel); ok {
			return f, nil
		}
	}

	p, err := javaparse.NewParser()
	if err != nil {
		return nil, err
	}
	defer p.Close()

	e.logger.Debug().Str("file", abs).Msg("file is not part of the workspace")
	return p.ParseFile(hir.FileID(len(e.workspace.Files)), abs)
}

func newLogger(w io.Writer, config *resolveconfig.Config) zerolog.Logger {
	var logger zerolog.Logger
	if config.Log.Format == "json" {
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	}
	return logger.Level(config.Level()).With().Timestamp().Logger()
}

// dump writes v to w when debugging is enabled.
func (a *app) dump(w io.Writer, v ...interface{}) {
	if !a.debug {
		return
	}
	spew.Fdump(w, v...)
}
