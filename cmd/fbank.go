package cmd

import (
	"github.com/spf13/cobra"

	"github.com/audiomath/melfeat/internal/app"
)

var fbankCmd = &cobra.Command{
	Use:   "fbank",
	Short: "Compute Mel-filterbank energies",
	Long: `Compute the Mel-filterbank energy matrix of a raw PCM signal,
together with the total power-spectrum energy of each frame. Use
logfbank for the log-compressed variant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeature(cmd, app.FeatureFbank)
	},
}

var logfbankCmd = &cobra.Command{
	Use:   "logfbank",
	Short: "Compute log Mel-filterbank energies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeature(cmd, app.FeatureLogFbank)
	},
}

func init() {
	rootCmd.AddCommand(fbankCmd)
	rootCmd.AddCommand(logfbankCmd)
	addFeatureFlags(fbankCmd, true)
	addFeatureFlags(logfbankCmd, true)
}
