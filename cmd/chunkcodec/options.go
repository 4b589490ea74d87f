package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MShaffar19/riegeli"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Parse compression options and print their canonical form",
	Args:  cobra.NoArgs,
	RunE:  runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	opts, err := riegeli.ParseCompressorOptions(flagOptions)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "canonical:  %s\n", opts)
	fmt.Fprintf(out, "algorithm:  %s\n", opts.Algorithm())
	fmt.Fprintf(out, "level:      %d\n", opts.Level())
	if wl, ok := opts.WindowLog(); ok {
		fmt.Fprintf(out, "window_log: %d\n", wl)
	} else {
		fmt.Fprintf(out, "window_log: auto\n")
	}
	if ct, ok := opts.Algorithm().CompressionType(); ok {
		fmt.Fprintf(out, "chunk tag:  0x%02x (%s)\n", uint8(ct), ct)
	} else {
		fmt.Fprintf(out, "chunk tag:  none (framed outside chunk compression)\n")
	}
	return nil
}
