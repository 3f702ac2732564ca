// Package corpus computes the NCD between every pair of FASTA files in a corpus.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/SweetiePi/bioncd-hackseq/internal/ncd"
	"github.com/andrew-torda/matrix"
	"golang.org/x/sync/errgroup"
)

// fastaExts are extensions of files picked up from a directory
var fastaExts = []string{".fa", ".fasta", ".fna", ".ffn", ".faa", ".frn", ".fas"}

// Matrix is the pairwise distances between a set of FASTA files.
type Matrix struct {
	// Paths of the FASTA files, in row/column order
	Paths []string

	// Distances is a symmetric matrix of NCD values
	Distances *matrix.FMatrix2d

	// Comparisons are the computed pairs, row-major over the upper triangle
	Comparisons []*ncd.Comparison
}

// RunOptions are settings for a corpus run.
type RunOptions struct {
	// Workers is the number of comparisons run at once. Defaults to the CPU count
	Workers int

	// Self compares each file against itself, filling the diagonal
	Self bool
}

// pair is a cell in the upper triangle of the distance matrix
type pair struct {
	i, j int
}

// Run compares every pair of paths. Comparisons run concurrently, and the
// first failure cancels those that haven't started.
func Run(ctx context.Context, paths []string, sizer *ncd.Sizer, opts RunOptions) (*Matrix, error) {
	if len(paths) < 2 && !(opts.Self && len(paths) == 1) {
		return nil, fmt.Errorf("need at least two FASTA files to compare, got %d", len(paths))
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var pairs []pair
	for i := range paths {
		start := i + 1
		if opts.Self {
			start = i
		}
		for j := start; j < len(paths); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	m := &Matrix{
		Paths:       paths,
		Distances:   matrix.NewFMatrix2d(len(paths), len(paths)),
		Comparisons: make([]*ncd.Comparison, len(pairs)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k, p := range pairs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			c, err := sizer.Compare(paths[p.i], paths[p.j])
			if err != nil {
				return err
			}

			m.Comparisons[k] = c
			m.Distances.Mat[p.i][p.j] = float32(c.NCD)
			m.Distances.Mat[p.j][p.i] = float32(c.NCD)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err // cancelled by the caller before all pairs were scheduled
	}
	return m, nil
}

// FASTAFiles expands args into FASTA file paths. Directories are replaced by
// the FASTA files directly inside them, sorted by name. Files are kept as is.
func FASTAFiles(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to find input %s: %w", arg, err)
		}

		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}

		var dirPaths []string
		for _, e := range entries {
			if !e.IsDir() && isFASTA(e.Name()) {
				dirPaths = append(dirPaths, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(dirPaths)
		paths = append(paths, dirPaths...)
	}
	return paths, nil
}

// isFASTA checks the file's extension, ignoring a trailing ".gz"
func isFASTA(name string) bool {
	name = strings.TrimSuffix(strings.ToLower(name), ".gz")
	ext := filepath.Ext(name)
	for _, e := range fastaExts {
		if ext == e {
			return true
		}
	}
	return false
}
