// Package cmd is for command line interactions with the bioncd application
package cmd

import (
	"log"
	"os"

	"github.com/SweetiePi/bioncd-hackseq/config"
	"github.com/SweetiePi/bioncd-hackseq/internal/ncd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "bioncd",
	Short: "Estimate the similarity of biological sequences by compression",
	Long: `Estimate the similarity of biological sequences with the Normalized Compression Distance (NCD).

Sequences that share structure compress better together than apart:

	NCD(x,y) = (min(C(xy), C(yx)) - min(C(x), C(y))) / max(C(x), C(y))

where C is the compressed size under one of: lzma, gzip, bzip2, zlib, lz4.
Related sequences have a small distance, unrelated ones are close to 1.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

// set flags shared by every command
func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringP("algorithm", "a", string(config.DefaultAlgorithm), "compression algorithm: lzma, gzip, bzip2, zlib, lz4")
	flags.BoolP("reverse-complement", "r", false, "reverse complement sequences before compressing")
	flags.BoolP("bwt", "b", false, "Burrows-Wheeler transform sequences before compressing (after -r)")
	flags.StringP("save-dir", "d", "", "directory to write the compressed sequences to")
	flags.String("measure", "stream", `compressed size convention: "stream" (bytes in the stream) or "pyobject" (stream + 33)`)
	flags.StringP("settings", "s", "", "settings file (YAML, JSON or TOML) with defaults for these flags")
	flags.BoolP("verbose", "v", false, "log compressed sizes and timing")

	for _, name := range []string{"algorithm", "reverse-complement", "bwt", "save-dir", "measure", "settings", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			stderr.Fatal(err)
		}
	}
}

// parseConfig reads the settings for a command and returns them as comparison options
func parseConfig() (*config.Config, ncd.Options, error) {
	c, err := config.New()
	if err != nil {
		return nil, ncd.Options{}, err
	}

	opts, err := c.Options()
	if err != nil {
		return nil, ncd.Options{}, err
	}

	return c, opts, nil
}
