package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/SweetiePi/bioncd-hackseq/internal/corpus"
	"github.com/SweetiePi/bioncd-hackseq/internal/ncd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// matrixCmd is for the distances between every pair of FASTA files in a corpus
var matrixCmd = &cobra.Command{
	Use:                        "matrix [fasta|dir] ... [fastaN|dirN]",
	Short:                      "Compute the NCD between every pair of FASTA files",
	Args:                       cobra.MinimumNArgs(1),
	Run:                        matrixExec,
	SuggestionsMinimumDistance: 2,
	Long: `
Compute the Normalized Compression Distance between every pair of FASTA files.
Directories are expanded to the FASTA files inside them (.fa, .fasta, .fna, ...).

Each file is compressed alone once. Pairs are compared in parallel.

Output formats:
	tsv     one line per pair: x, y, ncd
	matrix  square, tab separated distance matrix with a header of file names
	json    the matrix, settings and every compressed size`,
	Example: "  bioncd matrix -a lzma -o distances.json genomes/",
}

// matrixExec writes the pairwise distance matrix of a corpus
func matrixExec(cmd *cobra.Command, args []string) {
	conf, opts, err := parseConfig()
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	out, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	self, _ := cmd.Flags().GetBool("self")
	if format == "" {
		format = corpus.FormatFromPath(out)
	}

	paths, err := corpus.FASTAFiles(args)
	if err != nil {
		stderr.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	sizer := ncd.NewSizer(opts)
	m, err := corpus.Run(ctx, paths, sizer, corpus.RunOptions{
		Workers: conf.Workers,
		Self:    self,
	})
	if err != nil {
		stderr.Fatalln(err)
	}
	elapsed := time.Since(start)

	if err = writeMatrix(cmd, out, format, m, opts, elapsed); err != nil {
		stderr.Fatalln(err)
	}

	if conf.Verbose {
		stderr.Printf("compared %d pairs of %d files in %s (%d compressions)\n", len(m.Comparisons), len(paths), elapsed, sizer.Compressions())
	}
}

// writeMatrix writes to the output file, or stdout if there isn't one
func writeMatrix(cmd *cobra.Command, out, format string, m *corpus.Matrix, opts ncd.Options, elapsed time.Duration) (err error) {
	if out == "" {
		return corpus.Write(cmd.OutOrStdout(), format, m, opts, elapsed)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", out, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return corpus.Write(f, format, m, opts, elapsed)
}

// set flags
func init() {
	matrixCmd.Flags().StringP("out", "o", "", "output file name (stdout if unset)")
	matrixCmd.Flags().StringP("format", "f", "", "output format: "+strings.Join(corpus.Formats(), ", ")+" (guessed from --out, else tsv)")
	matrixCmd.Flags().IntP("workers", "w", 0, "comparisons to run at once (defaults to the CPU count)")
	matrixCmd.Flags().Bool("self", false, "also compare each file against itself")

	if err := viper.BindPFlag("workers", matrixCmd.Flags().Lookup("workers")); err != nil {
		stderr.Fatal(err)
	}

	RootCmd.AddCommand(matrixCmd)
}
