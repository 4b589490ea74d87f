package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/MShaffar19/riegeli"
	"github.com/MShaffar19/riegeli/compress"
	"github.com/MShaffar19/riegeli/memstream"
	"github.com/MShaffar19/riegeli/stream"
)

var decompressCmd = &cobra.Command{
	Use:   "decompress [file]",
	Short: "Decompress a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecompress,
}

func init() {
	decompressCmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"output file (default stdout)")
	rootCmd.AddCommand(decompressCmd)
}

func runDecompress(cmd *cobra.Command, args []string) error {
	opts, err := riegeli.ParseCompressorOptions(flagOptions)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	input, err := readInput(args)
	if err != nil {
		return err
	}

	source, err := compress.NewSource(memstream.NewSource(input), opts.Algorithm(),
		compress.WithLogger(logger))
	if err != nil {
		return err
	}
	output, err := io.ReadAll(stream.NewIOReader(source))
	if err != nil {
		return err
	}
	if err := source.Close(); err != nil {
		return err
	}
	return writeOutput(output)
}
