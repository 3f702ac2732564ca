package cmd

import (
	"fmt"

	"github.com/SweetiePi/bioncd-hackseq/internal/ncd"
	"github.com/SweetiePi/bioncd-hackseq/internal/seqio"
	"github.com/spf13/cobra"
)

// sizeCmd is for the compressed size of one FASTA file, or two concatenated
var sizeCmd = &cobra.Command{
	Use:                        "size [fasta] [second fasta]",
	Short:                      "Compressed size of a FASTA file, or of two concatenated",
	Args:                       cobra.RangeArgs(1, 2),
	Run:                        sizeExec,
	SuggestionsMinimumDistance: 2,
	Long: `
Compress the sequence of a FASTA file and print its compressed size in bytes.
With a second file, the two sequences are concatenated (first then second) and
compressed together.

With --save-dir the compressed bytes are written to <name><ext>, where <name>
is the file name, or the first file's stem followed by the second's name.`,
	Example: "  bioncd size -a bzip2 -d compressed x.fa y.fa",
}

// sizeExec prints the compressed size of a source
func sizeExec(cmd *cobra.Command, args []string) {
	_, opts, err := parseConfig()
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	src := seqio.Single(args[0])
	if len(args) == 2 {
		src = seqio.Pair(args[0], args[1])
	}

	result, err := ncd.NewSizer(opts).Size(src)
	if err != nil {
		stderr.Fatalln(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\t%s\t%d\n", src, result.Algorithm, result.Size)
	if result.Path != "" {
		fmt.Fprintf(out, "wrote %s\n", result.Path)
	}
}

func init() {
	RootCmd.AddCommand(sizeCmd)
}
