package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/SweetiePi/bioncd-hackseq/internal/compress"
	"github.com/spf13/cobra"
)

// algorithmsCmd is for listing out the compressors that can be passed to --algorithm
var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the compression algorithms",
	Long: `Lists the compression algorithms by name along with the extension of
files written with --save-dir.

	<Name>	<Extension>`,
	Aliases: []string{"algs"},
	Run:     algorithmsExec,
}

// algorithmsExec prints every algorithm and its extension
func algorithmsExec(cmd *cobra.Command, args []string) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 3, ' ', 0)
	for _, alg := range compress.Algorithms() {
		fmt.Fprintf(tw, "%s\t%s\t\n", alg, alg.Extension())
	}
	tw.Flush()
}

func init() {
	RootCmd.AddCommand(algorithmsCmd)
}
