package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/SweetiePi/bioncd-hackseq/internal/compress"
	"github.com/SweetiePi/bioncd-hackseq/internal/ncd"
	"github.com/spf13/cobra"
)

// pairCmd is for the distance between two FASTA files
var pairCmd = &cobra.Command{
	Use:                        "pair [x.fa] [y.fa]",
	Short:                      "Compute the NCD between the sequences of two FASTA files",
	Args:                       cobra.ExactArgs(2),
	Run:                        pairExec,
	SuggestionsMinimumDistance: 2,
	Long: `
Compute the Normalized Compression Distance between two FASTA files. All the
records of a file are concatenated into one sequence before compressing.

Each file is compressed alone and concatenated with the other in both orders,
and the smaller of the two concatenations is used.`,
	Example: "  bioncd pair -a lzma --bwt x.fa y.fa",
}

// pairExec prints the NCD between two FASTA files
func pairExec(cmd *cobra.Command, args []string) {
	conf, opts, err := parseConfig()
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	start := time.Now()
	c, err := ncd.Compare(args[0], args[1], opts)
	if err != nil {
		stderr.Fatalln(err)
	}

	out := cmd.OutOrStdout()
	if conf.Verbose {
		writeSizes(out, c)
		fmt.Fprintf(out, "%s\n\n", time.Since(start))
	}
	fmt.Fprintf(out, "%s\t%s\t%0.6f\n", args[0], args[1], c.NCD)
}

// writeSizes logs the compressed sizes behind a comparison
func writeSizes(w io.Writer, c *ncd.Comparison) {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "\tsource\talgorithm\tsize\tpath\t\n")
	for _, row := range []struct {
		label  string
		result compress.Result
	}{
		{"x", c.X},
		{"y", c.Y},
		{"xy", c.XY},
		{"yx", c.YX},
	} {
		r := row.result
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t\n", row.label, r.Name, r.Algorithm, r.Size, r.Path)
	}
	tw.Flush()
}

func init() {
	RootCmd.AddCommand(pairCmd)
}
