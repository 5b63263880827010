package javaparse

import (
	"context"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bazelbuild/bazel-gazelle/label"
	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/workspace"
)

// Workspace is the set of parsed workspace source files together with the
// definition map of their types.
type Workspace struct {
	Root   string
	Files  []*File
	DefMap *workspace.DefMap
}

// File returns the parsed file with the given name, relative to the root.
func (w *Workspace) File(rel string) (*File, bool) {
	filename := filepath.Join(w.Root, rel)
	for _, f := range w.Files {
		if f.Filename == filename || f.Filename == rel {
			return f, true
		}
	}
	return nil, false
}

// Loader parses workspace source files.
type Loader struct {
	logger   zerolog.Logger
	progress mobyprogress.Output
	// Parallelism bounds the number of files parsed at once.
	Parallelism int
}

// NewLoader constructs a loader.  A nil progress output disables progress
// reporting.
func NewLoader(logger zerolog.Logger, progress mobyprogress.Output) *Loader {
	return &Loader{
		logger:      logger,
		progress:    progress,
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// Load parses the files concurrently, then registers their types in the
// given order so that the first declaration of a binary name wins
// regardless of scheduling.  Files are labeled by their directory relative
// to root.
func (l *Loader) Load(ctx context.Context, root string, filenames []string) (*Workspace, error) {
	files := make([]*File, len(filenames))

	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	if l.Parallelism > 0 {
		g.SetLimit(l.Parallelism)
	}
	for i, filename := range filenames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := NewParser()
			if err != nil {
				return err
			}
			defer p.Close()

			file, err := p.ParseFile(hir.FileID(i), filename)
			if err != nil {
				return err
			}
			if file.HasErrors {
				l.logger.Warn().Str("file", filename).Msg("syntax errors; declarations may be incomplete")
			}
			files[i] = file

			mu.Lock()
			done++
			l.writeProgress(done, len(filenames))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ws := &Workspace{
		Root:   root,
		Files:  files,
		DefMap: workspace.NewDefMap(),
	}
	for _, file := range files {
		shadowed, err := file.Register(ws.DefMap, fileLabel(root, file.Filename))
		if err != nil {
			return nil, err
		}
		for _, name := range shadowed {
			l.logger.Debug().
				Str("file", file.Filename).
				Stringer("type", name).
				Msg("type already declared by an earlier file")
		}
	}

	l.logger.Info().
		Int("files", len(files)).
		Int("types", ws.DefMap.Len()).
		Msg("workspace loaded")
	return ws, nil
}

func (l *Loader) writeProgress(current, total int) {
	if l.progress == nil {
		return
	}
	if err := l.progress.WriteProgress(mobyprogress.Progress{
		ID:         "workspace",
		Action:     "parsing sources",
		Current:    int64(current),
		Total:      int64(total),
		Units:      "files",
		LastUpdate: current == total,
	}); err != nil {
		l.logger.Debug().Err(err).Msg("progress write failed")
	}
}

// fileLabel names the package directory of a source file, the way a
// per-directory java_library would.  Files outside of root get no label.
func fileLabel(root, filename string) label.Label {
	rel, err := filepath.Rel(root, filename)
	if err != nil || strings.HasPrefix(filepath.ToSlash(rel), "../") {
		return label.NoLabel
	}
	pkg := path.Dir(filepath.ToSlash(rel))
	if pkg == "." {
		return label.New("", "", "root")
	}
	return label.New("", pkg, path.Base(pkg))
}
