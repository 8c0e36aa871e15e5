package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile   string
	verbose      bool
	logLevel     string
	outputFormat string
	outputFile   string
	inputFile    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "melfeat",
	Short: "Audio feature extraction toolkit",
	Long: `melfeat extracts spectral and cepstral features from raw audio signals.

It reads headerless signed 16-bit little-endian mono PCM (the format
produced by "ffmpeg -f s16le -ac 1") from a file or stdin and computes:

- MFCC (Mel-frequency cepstral coefficients, with optional deltas)
- Mel-filterbank energies and log energies
- Spectral subband centroids
- The triangular Mel filterbank matrix itself

Results are written as JSON, YAML, or CSV matrices with one analysis
frame per row.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.config/melfeat/melfeat.yaml)")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json",
		"output format (json, yaml, csv)")
	rootCmd.PersistentFlags().StringVar(&outputFile, "out", "",
		"write results to file instead of stdout")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".config", "melfeat"))
		viper.AddConfigPath("./configs")
		viper.SetConfigName("melfeat")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MELFEAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// featureFlagKeys maps flag names shared by the feature subcommands to
// their keys in the feature config tree.
var featureFlagKeys = map[string]string{
	"sample-rate":     "feature.sample_rate",
	"filters":         "feature.num_filters",
	"fft":             "feature.fft_size",
	"min-freq":        "feature.min_freq",
	"max-freq":        "feature.max_freq",
	"preemphasis":     "feature.preemphasis",
	"window":          "feature.window_duration",
	"step":            "feature.step_duration",
	"window-function": "feature.window_function",
	"cepstra":         "feature.num_cepstra",
	"lifter":          "feature.lifter_coeff",
	"energy":          "feature.use_energy",
	"deltas":          "feature.num_derivatives",
	"delta-spread":    "feature.derivative_spread",
}

// addFeatureFlags registers the pipeline parameter flags shared by the
// feature subcommands. The flags are bound into viper per command at run
// time (bindFeatureFlags), since several commands carry the same keys.
func addFeatureFlags(cmd *cobra.Command, withSignal bool) {
	if withSignal {
		cmd.Flags().StringVarP(&inputFile, "input", "i", "-",
			"raw s16le PCM input file (\"-\" for stdin)")
		cmd.Flags().Float64("preemphasis", 0.97, "pre-emphasis coefficient, 0 disables")
		cmd.Flags().Duration("window", 25*time.Millisecond, "analysis window length")
		cmd.Flags().Duration("step", 10*time.Millisecond, "step between windows")
		cmd.Flags().String("window-function", "rectangular",
			"analysis window (rectangular, hamming, hann)")
	}

	cmd.Flags().Int("sample-rate", 16000, "sample rate of the input in Hz")
	cmd.Flags().Int("filters", 26, "number of Mel filters")
	cmd.Flags().Int("fft", 512, "FFT size")
	cmd.Flags().Float64("min-freq", 0, "lowest filterbank band edge in Hz")
	cmd.Flags().Float64("max-freq", 0, "highest filterbank band edge in Hz (0 = Nyquist)")
}

// bindFeatureFlags binds the invoked command's feature flags into viper.
func bindFeatureFlags(cmd *cobra.Command) {
	for name, key := range featureFlagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			viper.BindPFlag(key, flag)
		}
	}
}
