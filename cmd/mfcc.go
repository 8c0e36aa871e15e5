package cmd

import (
	"github.com/spf13/cobra"

	"github.com/audiomath/melfeat/internal/app"
)

var mfccCmd = &cobra.Command{
	Use:   "mfcc",
	Short: "Compute Mel-frequency cepstral coefficients",
	Long: `Compute an MFCC matrix from a raw PCM signal.

Each output row is the feature vector of one analysis frame. With
--deltas N the matrix is widened by N derivative blocks, giving
cepstra*(1+N) columns per frame.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeature(cmd, app.FeatureMFCC)
	},
}

func init() {
	rootCmd.AddCommand(mfccCmd)
	addFeatureFlags(mfccCmd, true)

	mfccCmd.Flags().Int("cepstra", 13, "number of cepstral coefficients")
	mfccCmd.Flags().Float64("lifter", 22, "liftering coefficient, 0 disables")
	mfccCmd.Flags().Bool("energy", true, "replace coefficient 0 with log frame energy")
	mfccCmd.Flags().Int("deltas", 0, "number of derivative blocks to append")
	mfccCmd.Flags().Int("delta-spread", 2, "neighbor frames per side in derivative estimates")
}

// runFeature wires the invoked command's flags into an application run.
func runFeature(cmd *cobra.Command, feature app.Feature) error {
	bindFeatureFlags(cmd)

	application, err := app.New(&app.Context{
		InputFile:    inputFile,
		OutputFile:   outputFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
	})
	if err != nil {
		return err
	}
	return application.Run(feature)
}
