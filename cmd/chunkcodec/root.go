package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagOptions string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "chunkcodec",
	Short: "Compress and decompress streams with the container codecs",
	Long: `chunkcodec compresses and decompresses byte streams with the codecs
of the container format. The codec is selected with a compression option
list, for example "brotli:9,window_log:24" or "zstd:-5".`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOptions, "codec", "c", "brotli",
		"compression options (uncompressed|brotli[:level]|zstd[:level]|snappy, plus window_log:N)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
}

func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}
