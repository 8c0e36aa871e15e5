package cmd

import (
	"github.com/spf13/cobra"

	"github.com/audiomath/melfeat/internal/app"
)

var sscCmd = &cobra.Command{
	Use:   "ssc",
	Short: "Compute spectral subband centroids",
	Long: `Compute the spectral subband centroid matrix of a raw PCM signal:
the power-weighted centroid frequency of each Mel band per frame.
Shares the filterbank with mfcc and fbank but skips log compression
and the cosine transform.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeature(cmd, app.FeatureSSC)
	},
}

func init() {
	rootCmd.AddCommand(sscCmd)
	addFeatureFlags(sscCmd, true)
}
