package typeindex

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bazelbuild/bazel-gazelle/label"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CollectFiles expands the given doublestar patterns.  Relative patterns are
// matched under root, absolute ones as-is.  Results keep pattern order;
// matches within one pattern are sorted and duplicates are dropped.
func CollectFiles(root string, patterns []string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		var names []string
		var err error
		if filepath.IsAbs(pattern) {
			if !doublestar.ValidatePathPattern(pattern) {
				return nil, fmt.Errorf("invalid glob pattern %q", pattern)
			}
			names, err = doublestar.FilepathGlob(pattern)
		} else {
			if !doublestar.ValidatePattern(pattern) {
				return nil, fmt.Errorf("invalid glob pattern %q", pattern)
			}
			names, err = doublestar.Glob(fsys, pattern)
		}
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		sort.Strings(names)
		for _, name := range names {
			abs := name
			if !filepath.IsAbs(abs) {
				abs = filepath.Join(root, name)
			}
			if seen[abs] {
				continue
			}
			seen[abs] = true
			files = append(files, abs)
		}
	}
	return files, nil
}

// ClasspathLoader builds a ChainIndex from jar files and index specs.
type ClasspathLoader struct {
	logger   zerolog.Logger
	progress mobyprogress.Output
	// Parallelism bounds the number of jars read at once.
	Parallelism int
}

// NewClasspathLoader constructs a loader.  A nil progress output disables
// progress reporting.
func NewClasspathLoader(logger zerolog.Logger, progress mobyprogress.Output) *ClasspathLoader {
	return &ClasspathLoader{
		logger:      logger,
		progress:    progress,
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// Load reads every entry concurrently and chains the resulting indices in
// the given order.  Entries ending in .jar are scanned; anything else is read
// as an IndexSpec file.
func (l *ClasspathLoader) Load(ctx context.Context, provider string, entries []string) (*ChainIndex, error) {
	indices := make([]TypeIndex, len(entries))

	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	if l.Parallelism > 0 {
		g.SetLimit(l.Parallelism)
	}
	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			spec, err := l.readEntry(entry)
			if err != nil {
				return err
			}
			ix, err := NewTrieIndexFromSpecs(fmt.Sprintf("%s[%d]", provider, i), spec)
			if err != nil {
				return err
			}
			indices[i] = ix

			mu.Lock()
			done++
			l.writeProgress(done, len(entries))
			mu.Unlock()

			l.logger.Debug().
				Str("entry", entry).
				Int("types", ix.Len()).
				Msg("indexed classpath entry")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("provider", provider).
		Int("entries", len(entries)).
		Msg("classpath loaded")
	return NewChainIndex(indices...), nil
}

func (l *ClasspathLoader) readEntry(entry string) (*IndexSpec, error) {
	if strings.HasSuffix(entry, jarFileSuffix) {
		return ReadJarSpec(entry, jarLabel(entry))
	}
	return ReadIndexSpec(entry)
}

func (l *ClasspathLoader) writeProgress(current, total int) {
	if l.progress == nil {
		return
	}
	if err := l.progress.WriteProgress(mobyprogress.Progress{
		ID:         "classpath",
		Action:     "indexing classpath",
		Current:    int64(current),
		Total:      int64(total),
		Units:      "entries",
		LastUpdate: current == total,
	}); err != nil {
		l.logger.Debug().Err(err).Msg("progress write failed")
	}
}

// jarLabel names a jar by its file name when no better provenance is known.
func jarLabel(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), jarFileSuffix)
	return label.New("", "", cleanupLabelName(name)).String()
}

func cleanupLabelName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
