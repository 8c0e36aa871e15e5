package cmd

import (
	"github.com/spf13/cobra"

	"github.com/audiomath/melfeat/internal/app"
)

var filterbankCmd = &cobra.Command{
	Use:   "filterbank",
	Short: "Dump the triangular Mel filterbank matrix",
	Long: `Build and print the triangular Mel filterbank for a configuration.

The filterbank depends only on the filter count, FFT size, sample rate,
and frequency range; no input signal is read. Rows are filters, columns
are the fft/2+1 non-redundant FFT bins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeature(cmd, app.FeatureFilterbank)
	},
}

func init() {
	rootCmd.AddCommand(filterbankCmd)
	addFeatureFlags(filterbankCmd, false)
}
