// Command chunkcodec compresses and decompresses byte streams with the
// codecs of the container format, and inspects compression option
// strings.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
