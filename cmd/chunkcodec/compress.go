package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MShaffar19/riegeli"
	"github.com/MShaffar19/riegeli/compress"
	"github.com/MShaffar19/riegeli/memstream"
)

var flagOutput string

var compressCmd = &cobra.Command{
	Use:   "compress [file]",
	Short: "Compress a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"output file (default stdout)")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
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

	dst := memstream.NewSink()
	sink, err := compress.NewSink(dst, opts, compress.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := sink.Write(input); err != nil {
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	return writeOutput(dst.Bytes())
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func writeOutput(data []byte) error {
	if flagOutput == "" || flagOutput == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
